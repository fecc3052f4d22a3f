// Package guard gates access to the management area on the presence of
// a session token.
package guard

import (
	"errors"

	"wash-admin/internal/model"
	"wash-admin/internal/role"
)

// ErrUnauthenticated is the "redirect to login" signal: the caller
// should send the user to the login entry point.
var ErrUnauthenticated = errors.New("not signed in, run 'washadmin login' first")

// ErrNotPermitted means the session is valid but the role's permission
// table does not list the requested area.
var ErrNotPermitted = errors.New("your role does not have access to this area")

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// SessionReader is what the guard needs from the session store.
type SessionReader interface {
	Get() model.Session
}

// Guard re-reads the session store on every evaluation; it never
// caches, so a cleared or corrupted record flips the state on the next
// check. Token validity is not verified server-side here.
type Guard struct {
	sessions SessionReader
}

func New(sessions SessionReader) *Guard {
	return &Guard{sessions: sessions}
}

func (g *Guard) State() State {
	if g.sessions.Get().Active() {
		return Authenticated
	}
	return Unauthenticated
}

// Require returns the current session, or ErrUnauthenticated when no
// non-empty token exists.
func (g *Guard) Require() (model.Session, error) {
	current := g.sessions.Get()
	if !current.Active() {
		return model.Session{}, ErrUnauthenticated
	}
	return current, nil
}

// RequireItem additionally checks the role's navigation table for the
// given item id.
func (g *Guard) RequireItem(item string) (model.Session, error) {
	current, err := g.Require()
	if err != nil {
		return model.Session{}, err
	}

	current.User = normalizedUser(current.User)
	if !role.CanView(role.Role(current.User.Role), item) {
		return model.Session{}, ErrNotPermitted
	}

	return current, nil
}

func normalizedUser(user *model.UserRecord) *model.UserRecord {
	if user == nil {
		user = &model.UserRecord{}
	}
	clone := *user
	clone.Role = string(role.Resolve(clone.Role))
	return &clone
}
