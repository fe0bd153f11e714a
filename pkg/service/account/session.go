package account

import (
	"errors"

	"github.com/google/uuid"
)

// ErrSessionClosed is returned when a logged-out or nil session is used.
var ErrSessionClosed = errors.New("session closed")

// Session is the handle returned by a successful sign in. It names the account by id;
// the account itself stays in the store.
type Session struct {
	ID        uuid.UUID
	AccountID int
	closed    bool
}

func newSession(accountID int) *Session {
	return &Session{ID: uuid.New(), AccountID: accountID}
}

// Active reports whether the session has not been logged out.
func (s *Session) Active() bool {
	return s != nil && !s.closed
}
