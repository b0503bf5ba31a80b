package engine

import (
	"context"
	"errors"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"vitacoach/internal/storage"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

func parseEmail(field, input string) (string, error) {
	email := normalizeEmail(input)
	if email == "" {
		return "", required(field)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ValidationError{Field: field, Reason: "not a valid email address"}
	}
	return email, nil
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, password string, role Role) (*storage.Account, error) {
	addr, err := parseEmail("email", email)
	if err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if !role.IsValid() {
		role = DefaultRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acct, err := s.accounts.Create(ctx, addr, string(hash), string(role))
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "account registered", "email", addr, "role", role)
	return acct, nil
}

// Authenticate verifies credentials without touching the state blob.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*storage.Account, error) {
	acct, err := s.accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return acct, nil
}

// Login verifies credentials and sets the session flag and role.
func (s *Service) Login(ctx context.Context, email, password string) (*storage.Account, error) {
	acct, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if _, err := s.update(ctx, func(st *storage.State) error {
		st.IsAuthenticated = true
		st.AccountEmail = acct.Email
		st.Role = string(parseStoredRole(acct.Role))
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "signed in", "email", acct.Email, "role", acct.Role)
	return acct, nil
}

// Logout clears the session; progress and settings stay.
func (s *Service) Logout(ctx context.Context) error {
	_, err := s.update(ctx, func(st *storage.State) error {
		st.IsAuthenticated = false
		st.AccountEmail = ""
		return nil
	})
	return err
}

// SwitchRole flips the active view and remembers it on the account so the
// next login opens the same view.
func (s *Service) SwitchRole(ctx context.Context, role Role) error {
	if !role.IsValid() {
		return ValidationError{Field: "role", Reason: "want doctor|patient"}
	}
	st, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireAuth(st); err != nil {
			return err
		}
		st.Role = string(role)
		return nil
	})
	if err != nil {
		return err
	}
	return s.rememberRole(ctx, st.AccountEmail, role)
}

// rememberRole stores role on the signed-in account. Sessions without an
// account row are left alone.
func (s *Service) rememberRole(ctx context.Context, email string, role Role) error {
	if email == "" {
		return nil
	}
	acct, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if acct == nil || acct.Role == string(role) {
		return nil
	}
	return s.accounts.UpdateRole(ctx, acct.ID, string(role))
}

// CheckSession returns ErrNotAuthenticated unless email is the account the
// blob is currently signed in as. Tokens issued before a logout or another
// login fail it.
func (s *Service) CheckSession(ctx context.Context, email string) error {
	st, err := s.State(ctx)
	if err != nil {
		return err
	}
	if err := RequireAuth(st); err != nil {
		return err
	}
	if email == "" || normalizeEmail(email) != normalizeEmail(st.AccountEmail) {
		return ErrNotAuthenticated
	}
	return nil
}
