package auth

import (
	"errors"

	"eats/internal/core/domain/model/principal"
)

var ErrUnauthorized = errors.New("unauthorized")

// Requirement is the role class an operation demands.
type Requirement string

const (
	Public   Requirement = "PUBLIC"
	Any      Requirement = "ANY"
	Customer             = Requirement(principal.Customer)
	Owner                = Requirement(principal.Owner)
	Delivery             = Requirement(principal.Delivery)
)

// Authorize applies req to an optional principal. p is nil when the request
// carries none.
func Authorize(p *principal.Principal, req Requirement) error {
	switch req {
	case Public:
		return nil
	case Any:
		if p == nil {
			return ErrUnauthorized
		}
		return nil
	case Customer, Owner, Delivery:
		if p == nil || !p.HasRole(principal.Role(req)) {
			return ErrUnauthorized
		}
		return nil
	default:
		return ErrUnauthorized
	}
}

// Operation names shared by the policy and the transport routes.
const (
	OpCreateAccount = "createAccount"
	OpLogIn         = "logIn"
	OpMe            = "me"
	OpCreateOrder   = "createOrder"
	OpGetOrders     = "getOrders"
	OpGetOrder      = "getOrder"
	OpEditOrder     = "editOrder"
	OpTakeOrder     = "takeOrder"
)

// Policy maps operation names to their requirement.
type Policy map[string]Requirement

// DefaultPolicy is the policy the service runs with.
func DefaultPolicy() Policy {
	return Policy{
		OpCreateAccount: Public,
		OpLogIn:         Public,
		OpMe:            Any,
		OpCreateOrder:   Customer,
		OpGetOrders:     Any,
		OpGetOrder:      Any,
		OpEditOrder:     Any,
		OpTakeOrder:     Delivery,
	}
}

// Authorize checks operation against the policy. Operations the policy does
// not list are denied.
func (p Policy) Authorize(operation string, who *principal.Principal) error {
	req, ok := p[operation]
	if !ok {
		return ErrUnauthorized
	}
	return Authorize(who, req)
}
