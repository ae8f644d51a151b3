package accounts

import (
	"context"
)

// Repository persists account records. Emails are matched exactly, with no
// normalization. There are no update or delete operations.
type Repository interface {
	// Create persists a new account and fills in its id and creation time.
	// It returns common.ErrorAlreadyExists if the email is already taken.
	Create(ctx context.Context, account *Account) (*Account, error)

	// GetByEmail returns common.ErrorNotFound if no account has this email.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// GetByID returns common.ErrorNotFound if no account has this id.
	GetByID(ctx context.Context, id int64) (*Account, error)
}
