// Package sessions implements server-side session state: opaque tokens bound
// to account ids, with a fixed absolute lifetime.
package sessions

import "time"

// Session binds an opaque token to an account id. The account itself is not
// owned by the session; it is looked up by the caller when needed.
type Session struct {
	Token     string
	AccountID int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is the key-value capability backing the manager. Implementations
// must be safe for concurrent use.
type Store interface {
	Put(session *Session)
	Get(token string) (*Session, bool)
	Delete(token string)
	DeleteExpired(now time.Time)
}
