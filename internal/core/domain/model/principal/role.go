package principal

import (
	"fmt"
	"strings"

	"eats/internal/pkg/errs"
)

// Role is the class of actor a principal belongs to.
type Role string

const (
	Customer Role = "CUSTOMER"
	Owner    Role = "OWNER"
	Delivery Role = "DELIVERY"
)

// Roles lists every valid role in a stable order.
func Roles() []Role {
	return []Role{Customer, Owner, Delivery}
}

// ParseRole accepts the role name in any letter case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate rejects anything outside Roles().
func (r Role) Validate() error {
	switch r {
	case Customer, Owner, Delivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
