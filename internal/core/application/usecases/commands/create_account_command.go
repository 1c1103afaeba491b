package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand registers a new principal. The password is hashed by
// the handler and never stored in clear.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	role     principal.Role

	guard guard.ConstructorGuard
}

func NewCreateAccountCommand(email, password string, role principal.Role) (CreateAccountCommand, error) {
	cmd := CreateAccountCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	return cmd, nil
}

func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

func (c CreateAccountCommand) Email() string {
	return c.email
}

func (c CreateAccountCommand) Password() string {
	return c.password
}

func (c CreateAccountCommand) Role() principal.Role {
	return c.role
}

func (c *CreateAccountCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *CreateAccountCommand) setRole(role principal.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
