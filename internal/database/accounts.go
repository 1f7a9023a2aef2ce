package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/aisb-selection/aisb/internal/auth"
)

// ErrAccountExists is returned by Create for a duplicate email.
var ErrAccountExists = errors.New("an admin with this email already exists")

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Accounts is the Postgres-backed admin account store.
type Accounts struct {
	db *DB
}

// NewAccounts creates an account store on db.
func NewAccounts(db *DB) *Accounts {
	return &Accounts{db: db}
}

// adminRow mirrors a row of the admins table.
type adminRow struct {
	ID           pgtype.UUID
	Email        string
	Name         pgtype.Text
	PasswordHash string
	Disabled     bool
}

func (r adminRow) account() *auth.Account {
	return &auth.Account{
		ID:           pgUUIDToUUID(r.ID),
		Email:        r.Email,
		Name:         pgTextToString(r.Name),
		PasswordHash: r.PasswordHash,
		Disabled:     r.Disabled,
	}
}

// FindByEmail implements auth.AccountStore.
func (a *Accounts) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	var row adminRow
	err := a.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, disabled
		FROM admins
		WHERE email = $1
	`, auth.NormalizeEmail(email)).Scan(&row.ID, &row.Email, &row.Name, &row.PasswordHash, &row.Disabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query admin: %w", err)
	}
	return row.account(), nil
}

// Create inserts a new admin account.
func (a *Accounts) Create(ctx context.Context, email, name, passwordHash string) (*auth.Account, error) {
	var row adminRow
	err := a.db.Pool.QueryRow(ctx, `
		INSERT INTO admins (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, name, password_hash, disabled
	`, auth.NormalizeEmail(email), toPgText(name), passwordHash).
		Scan(&row.ID, &row.Email, &row.Name, &row.PasswordHash, &row.Disabled)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return row.account(), nil
}

// toPgText converts a string to pgtype.Text.
func toPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// pgTextToString converts pgtype.Text to a string.
func pgTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// pgUUIDToUUID converts pgtype.UUID to uuid.UUID.
func pgUUIDToUUID(p pgtype.UUID) uuid.UUID {
	if !p.Valid {
		return uuid.UUID{}
	}
	return uuid.UUID(p.Bytes)
}
