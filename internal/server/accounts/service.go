// Package accounts holds the account model, its repositories, and the
// service that orchestrates registration, login, and session-gated access.
package accounts

import (
	"context"
	"errors"

	"github.com/loginbox/loginbox/internal/common"
	"github.com/loginbox/loginbox/internal/server/hashing"
	"github.com/loginbox/loginbox/internal/server/sessions"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

// Service is the authentication orchestrator. It validates input, delegates
// to the repository and hasher, and drives the session manager. It is the
// only component that touches both account and session state.
type Service struct {
	repo     Repository
	hasher   hashing.Hasher
	sessions *sessions.Manager
}

func NewService(repo Repository, hasher hashing.Hasher, sessions *sessions.Manager) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		sessions: sessions,
	}
}

// Register validates the credentials, hashes the password, and creates a new
// account. Validation failures are reported before anything touches storage.
func (s *Service) Register(ctx context.Context, email, password string) (*Account, error) {

	if email == "" || password == "" {
		return nil, common.ErrorFieldsRequired
	}

	if len(password) < MinPasswordLength {
		return nil, common.ErrorPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account, err := s.repo.Create(ctx, &Account{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Login verifies the credentials and starts a session on success, returning
// the account and the session token. An unknown email and a wrong password
// are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, string, error) {

	if email == "" || password == "" {
		return nil, "", common.ErrorFieldsRequired
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.sessions.Start(account.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return account, token, nil
}

// CheckAuth reports whether the token resolves to a live session backed by
// an existing account. It is a query and never fails: any miss, stale
// session, or storage error reads as "not authenticated".
func (s *Service) CheckAuth(ctx context.Context, token string) (*Account, bool) {

	if token == "" {
		return nil, false
	}

	accountID, ok := s.sessions.Lookup(token)
	if !ok {
		return nil, false
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, false
	}

	return account, true
}

// Dashboard resolves the session and re-fetches the account from the store,
// so a deleted account is reflected immediately as a stale session.
func (s *Service) Dashboard(ctx context.Context, token string) (*Account, error) {

	accountID, ok := s.sessions.Lookup(token)
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Logout destroys the session. Destroying an absent session is a no-op, so
// logout never fails from the caller's perspective.
func (s *Service) Logout(token string) {
	s.sessions.Destroy(token)
}
