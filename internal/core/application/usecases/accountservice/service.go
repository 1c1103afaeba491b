// Package accountservice exposes registration, log-in and the current
// principal profile as result.Output values.
package accountservice

import (
	"context"
	"errors"
	"log/slog"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/application/usecases/result"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"
)

const (
	MsgEmailTaken            = "There is a user with that email already"
	MsgUserNotFound          = "User not found"
	MsgWrongPassword         = "Wrong password"
	MsgInvalidRole           = "Invalid role"
	MsgInvalidAccount        = "Email and a password of 8 to 72 characters are required"
	MsgCouldNotCreateAccount = "Could not create account"
	MsgCouldNotLogIn         = "Could not log in"
	MsgCouldNotLoadPrincipal = "Could not load user"
)

type Handlers struct {
	CreateAccount commands.CreateAccountCommandHandler
	LogIn         commands.LogInCommandHandler
	GetAccount    queries.GetAccountQueryHandler
}

type Service struct {
	handlers Handlers
	logger   *slog.Logger
}

func New(handlers Handlers, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{handlers: handlers, logger: logger.With("component", "account-service")}
}

type CreateAccountInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreateAccountData struct {
	ID kernel.UUID `json:"id"`
}

type LogInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogInData struct {
	Token string `json:"token"`
}

func (s *Service) CreateAccount(ctx context.Context, in CreateAccountInput) result.Output[CreateAccountData] {
	role, err := principal.ParseRole(in.Role)
	if err != nil {
		return result.Failure[CreateAccountData](MsgInvalidRole)
	}

	cmd, err := commands.NewCreateAccountCommand(in.Email, in.Password, role)
	if err != nil {
		return result.Failure[CreateAccountData](MsgInvalidAccount)
	}

	id, err := s.handlers.CreateAccount.Handle(ctx, cmd)
	switch {
	case err == nil:
		return result.Success(CreateAccountData{ID: id})
	case errors.Is(err, principal.ErrEmailTaken):
		return result.Failure[CreateAccountData](MsgEmailTaken)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return result.Failure[CreateAccountData](MsgInvalidAccount)
	default:
		s.logger.ErrorContext(ctx, "create account failed", "error", err)
		return result.Failure[CreateAccountData](MsgCouldNotCreateAccount)
	}
}

// LogIn returns a signed token for valid credentials.
func (s *Service) LogIn(ctx context.Context, in LogInInput) result.Output[LogInData] {
	cmd, err := commands.NewLogInCommand(in.Email, in.Password)
	if err != nil {
		return result.Failure[LogInData](MsgUserNotFound)
	}

	token, err := s.handlers.LogIn.Handle(ctx, cmd)
	switch {
	case err == nil:
		return result.Success(LogInData{Token: token})
	case errors.Is(err, commands.ErrAccountNotFound):
		return result.Failure[LogInData](MsgUserNotFound)
	case errors.Is(err, principal.ErrWrongPassword):
		return result.Failure[LogInData](MsgWrongPassword)
	default:
		s.logger.ErrorContext(ctx, "log in failed", "error", err)
		return result.Failure[LogInData](MsgCouldNotLogIn)
	}
}

func (s *Service) Me(ctx context.Context, user principal.Principal) result.Output[queries.AccountResponse] {
	query, err := queries.NewGetAccountQuery(user)
	if err != nil {
		return result.Failure[queries.AccountResponse](MsgCouldNotLoadPrincipal)
	}
	profile, err := s.handlers.GetAccount.Handle(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "load principal failed", "error", err)
		return result.Failure[queries.AccountResponse](MsgCouldNotLoadPrincipal)
	}
	return result.Success(profile)
}
