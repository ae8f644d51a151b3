package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/loginbox/loginbox/internal/common"
)

// InMemoryRepository keeps accounts in a map. It is used by tests and by the
// in-memory repository manager.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*Account
	byID    map[int64]*Account
	lastID  int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail: make(map[string]*Account),
		byID:    make(map[int64]*Account),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, account *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.lastID++
	account.ID = r.lastID
	account.CreatedAt = time.Now()

	stored := *account
	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored

	return account, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copied := *account
	return &copied, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copied := *account
	return &copied, nil
}

// Remove deletes an account. The HTTP surface has no delete operation; this
// exists so tests can simulate a stale session pointing at a vanished account.
func (r *InMemoryRepository) Remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account, ok := r.byID[id]; ok {
		delete(r.byEmail, account.Email)
		delete(r.byID, id)
	}
}
