package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
)

// MinPasswordLength is the shortest password HashPassword accepts.
const MinPasswordLength = 8

// Account is an administrator allowed into the admin area.
type Account struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Disabled     bool
}

// AccountStore looks up administrators.
type AccountStore interface {
	// FindByEmail returns ErrAccountNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StaticAccounts is an AccountStore holding a fixed set of accounts,
// typically the single admin from the environment.
type StaticAccounts struct {
	accounts map[string]Account
}

// NewStaticAccounts indexes accounts by normalized email. Accounts without
// an ID get one derived from the email so it is stable across restarts.
func NewStaticAccounts(accounts ...Account) *StaticAccounts {
	s := &StaticAccounts{accounts: make(map[string]Account, len(accounts))}
	for _, a := range accounts {
		a.Email = NormalizeEmail(a.Email)
		if a.ID == uuid.Nil {
			a.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+a.Email))
		}
		s.accounts[a.Email] = a
	}
	return s
}

// FindByEmail implements AccountStore.
func (s *StaticAccounts) FindByEmail(_ context.Context, email string) (*Account, error) {
	a, ok := s.accounts[NormalizeEmail(email)]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &a, nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
