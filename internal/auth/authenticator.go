package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the account does not exist so that
// unknown emails cost the same as wrong passwords.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZtU5Zt0cNlH8ZkfQ3SQm1u")

// Authenticator verifies admin email/password pairs.
type Authenticator struct {
	accounts AccountStore
}

// NewAuthenticator creates an Authenticator backed by accounts.
func NewAuthenticator(accounts AccountStore) *Authenticator {
	return &Authenticator{accounts: accounts}
}

// Authenticate returns the account for valid credentials. Unknown emails,
// wrong passwords and disabled accounts all yield ErrInvalidCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	if a.accounts == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	account, err := a.accounts.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, ErrAccountNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if account.Disabled {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// Session builds the session payload for a signed-in account.
func (a *Account) Session(provider string) *SessionData {
	return &SessionData{
		AdminID:  a.ID,
		Email:    a.Email,
		Name:     a.Name,
		Provider: provider,
	}
}
