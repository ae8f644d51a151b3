package sessions

import (
	"context"
	"time"

	"github.com/loginbox/loginbox/internal/common"
)

// Manager issues, resolves, and destroys session tokens.
type Manager struct {
	store    Store
	validity time.Duration
}

func NewManager(store Store, validity time.Duration) *Manager {
	return &Manager{store: store, validity: validity}
}

// Start creates a new session bound to accountID and returns its token.
func (m *Manager) Start(accountID int64) (string, error) {
	token, err := common.MakeRandHexString(32)
	if err != nil {
		return "", err
	}

	now := time.Now()
	m.store.Put(&Session{
		Token:     token,
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.validity),
	})

	return token, nil
}

// Lookup resolves a token to its bound account id. Expiry is evaluated
// lazily: an expired session is removed and reported as absent.
func (m *Manager) Lookup(token string) (int64, bool) {
	session, ok := m.store.Get(token)
	if !ok {
		return 0, false
	}

	if time.Now().After(session.ExpiresAt) {
		m.store.Delete(token)
		return 0, false
	}

	return session.AccountID, true
}

// Destroy removes a session. Destroying an absent session is a no-op,
// so logout stays idempotent.
func (m *Manager) Destroy(token string) {
	m.store.Delete(token)
}

// Janitor sweeps expired sessions at the given interval until ctx is done.
// Lazy expiry in Lookup keeps correctness either way; the sweep only keeps
// the store from growing without bound.
func (m *Manager) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.store.DeleteExpired(time.Now())
		}
	}
}
