package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery returns the profile of the requesting principal.
type GetAccountQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

func NewGetAccountQuery(actor principal.Principal) (GetAccountQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAccountQuery{}, err
	}
	return GetAccountQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

type AccountResponse struct {
	ID    kernel.UUID    `json:"id"`
	Email string         `json:"email"`
	Role  principal.Role `json:"role"`
}

// GetAccountQueryHandler answers from the principal already attached to the
// request; the authenticator loaded it from the store moments earlier.
type GetAccountQueryHandler struct{}

func NewGetAccountQueryHandler() GetAccountQueryHandler {
	return GetAccountQueryHandler{}
}

func (GetAccountQueryHandler) Handle(_ context.Context, query GetAccountQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}
	return AccountResponse{
		ID:    query.actor.ID(),
		Email: query.actor.Email(),
		Role:  query.actor.Role(),
	}, nil
}
