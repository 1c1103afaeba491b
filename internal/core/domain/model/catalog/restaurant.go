package catalog

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// Restaurant is a catalog entry owned by an OWNER principal.
type Restaurant struct {
	id      kernel.UUID
	name    string
	ownerID kernel.UUID
}

// NewRestaurant validates and builds a Restaurant.
func NewRestaurant(id kernel.UUID, name string, ownerID kernel.UUID) (Restaurant, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return Restaurant{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Restaurant{}, errs.NewValueIsRequiredError("restaurant name")
	}
	return Restaurant{id: id, name: name, ownerID: ownerID}, nil
}

func (r Restaurant) ID() kernel.UUID {
	return r.id
}

func (r Restaurant) Name() string {
	return r.name
}

func (r Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}
