package order

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
)

// Restaurant is the slice of a catalog restaurant an order keeps: its id and
// the owner who may act on the order.
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID
}

func NewRestaurant(id, ownerID kernel.UUID) (Restaurant, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return Restaurant{}, err
	}
	return Restaurant{id: id, ownerID: ownerID}, nil
}

func (r Restaurant) ID() kernel.UUID {
	return r.id
}

func (r Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}
