package domain

import (
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// Principal is anything the authorization layer can identify by name.
type Principal interface {
	Name() string
}

// User is an authenticated actor: a display name, a stable numeric ID and a
// set of role labels. All methods are safe for concurrent use. A User must
// not be copied after construction.
type User struct {
	id   int64
	name string

	mu    sync.RWMutex
	roles map[string]struct{}
}

var _ Principal = (*User)(nil)

// NewUser returns a user with the given ID and name and no roles.
func NewUser(id int64, name string) *User {
	return &User{id: id, name: name, roles: make(map[string]struct{})}
}

// NewUserWithRoles returns a user holding a copy of roles. Duplicates collapse
// and a nil slice yields an empty role set.
func NewUserWithRoles(id int64, name string, roles []string) *User {
	u := &User{id: id, name: name, roles: make(map[string]struct{}, len(roles))}
	for _, r := range roles {
		u.roles[r] = struct{}{}
	}
	return u
}

func (u *User) Name() string { return u.name }

// ID returns the identifier assigned at construction.
func (u *User) ID() int64 { return u.id }

// Roles returns a sorted snapshot of the role set.
func (u *User) Roles() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]string, 0, len(u.roles))
	for r := range u.roles {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	_, ok := u.roles[role]
	return ok
}

// AddRole inserts role into the role set. Adding a role twice is a no-op.
func (u *User) AddRole(role string) {
	u.Grant(role)
}

// Grant is AddRole that also reports whether the role was newly added.
func (u *User) Grant(role string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.roles[role]; ok {
		return false
	}
	u.roles[role] = struct{}{}
	return true
}

// RemoveRole deletes role and reports whether it was present.
func (u *User) RemoveRole(role string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.roles[role]; !ok {
		return false
	}
	delete(u.roles, role)
	return true
}

func (u *User) String() string {
	return u.name + "#" + strconv.FormatInt(u.id, 10)
}

// MarshalZerologObject lets a user be attached to log events via Object("user", u).
func (u *User) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("id", u.id).
		Str("name", u.name).
		Strs("roles", u.Roles())
}

type userJSON struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userJSON{ID: u.id, Name: u.name, Roles: u.Roles()})
}
