package domain

import "errors"

var (
	// ErrInvalidIdentity is returned when a name, role list or target user is unusable.
	ErrInvalidIdentity = errors.New("invalid identity")
	// ErrInvalidRole is returned for blank or oversized role labels.
	ErrInvalidRole = errors.New("invalid role")
	// ErrIDAllocation wraps failures of the ID allocator.
	ErrIDAllocation = errors.New("id allocation failed")
)
