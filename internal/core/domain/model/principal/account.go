package principal

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

var (
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
	ErrWrongPassword           = errors.New("wrong password")
	ErrEmailTaken              = errors.New("email is already registered")
)

// Account is the persisted principal together with its credentials.
type Account struct {
	kernel.Entity

	principal    Principal
	passwordHash string
}

// NewAccount hashes the password with bcrypt and builds a new account.
func NewAccount(id kernel.UUID, email, password string, role Role, now time.Time) (*Account, error) {
	p, err := NewPrincipal(id, email, role)
	if err != nil {
		return nil, err
	}

	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return nil, errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, maxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	return &Account{
		Entity:       kernel.NewEntity(id, now),
		principal:    p,
		passwordHash: string(hash),
	}, nil
}

// RestoreAccount rebuilds an account read from storage. The hash is trusted as stored.
func RestoreAccount(entity kernel.Entity, email string, role Role, passwordHash string) (*Account, error) {
	p, err := NewPrincipal(entity.ID(), email, role)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}

	return &Account{Entity: entity, principal: p, passwordHash: passwordHash}, nil
}

// Validate ensures the account was built by a constructor.
func (a *Account) Validate() error {
	if a == nil || a.principal.Validate() != nil {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// Principal returns the request-facing view of the account.
func (a *Account) Principal() Principal {
	return a.principal
}

// PasswordHash is exposed for persistence only.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// CheckPassword compares a candidate password against the stored hash.
func (a *Account) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}
