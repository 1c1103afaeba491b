package principal

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the actor attached to a request. It is immutable; callers get
// copies.
type Principal struct {
	id    kernel.UUID
	email string
	role  Role

	guard guard.ConstructorGuard
}

// NewPrincipal validates and builds a Principal.
func NewPrincipal(id kernel.UUID, email string, role Role) (Principal, error) {
	p := Principal{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setEmail(email),
		p.setRole(role),
	); err != nil {
		return Principal{}, err
	}

	return p, nil
}

// Validate ensures the principal went through NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) ID() kernel.UUID {
	return p.id
}

func (p Principal) Email() string {
	return p.email
}

func (p Principal) Role() Role {
	return p.role
}

// HasRole is a shorthand used by the authorization guard.
func (p Principal) HasRole(role Role) bool {
	return p.role == role
}

func (p *Principal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Principal) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = strings.ToLower(email)
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
