package commands

import (
	"errors"
	"strings"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrLogInCommandIsNotConstructed = errors.New(
	"LogInCommand must be created via NewLogInCommand constructor",
)

// LogInCommand exchanges credentials for a signed token.
type LogInCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLogInCommand(email, password string) (LogInCommand, error) {
	cmd := LogInCommand{guard: guard.NewConstructorGuard()}

	email = strings.TrimSpace(email)
	if email == "" {
		return LogInCommand{}, errs.NewValueIsRequiredError("email")
	}
	cmd.email = email
	cmd.password = password

	return cmd, nil
}

func (c LogInCommand) Validate() error {
	return c.guard.Validate(ErrLogInCommandIsNotConstructed)
}

func (c LogInCommand) Email() string {
	return c.email
}

func (c LogInCommand) Password() string {
	return c.password
}
