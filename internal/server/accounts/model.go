package accounts

import "time"

// Account is a stored credential record. PasswordHash is never serialized
// outbound; HTTP responses use projection structs that omit it.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
