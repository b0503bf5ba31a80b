package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateEmail is returned when an account with the email already exists.
var ErrDuplicateEmail = errors.New("account with this email already exists")

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) Create(ctx context.Context, email, passwordHash, role string) (*Account, error) {
	a := Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Email, a.PasswordHash, a.Role, a.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("account insert: %w", err)
	}
	return &a, nil
}

// GetByEmail returns nil, nil when no account matches.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role, created_at
		FROM accounts
		WHERE email = ?
	`, email)

	var a Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("account get: %w", err)
	}
	return &a, nil
}

func (r *AccountRepo) UpdateRole(ctx context.Context, id, role string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE accounts SET role = ? WHERE id = ?`, role, id); err != nil {
		return fmt.Errorf("account update role: %w", err)
	}
	return nil
}
