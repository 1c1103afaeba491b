package order

import (
	"eats/internal/core/domain/model/kernel"
)

// ItemOption is a customer selection for one dish option. An empty Choice
// means no choice was given.
type ItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// Item is one dish line of an order. Option names are kept as typed even when
// the dish does not define them.
type Item struct {
	dishID  kernel.UUID
	options []ItemOption
}

// NewItem builds an order line for the given dish.
func NewItem(dishID kernel.UUID, options []ItemOption) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	return Item{dishID: dishID, options: append([]ItemOption(nil), options...)}, nil
}

func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// Options returns a copy of the selected options.
func (i Item) Options() []ItemOption {
	return append([]ItemOption(nil), i.options...)
}
