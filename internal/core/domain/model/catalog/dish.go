package catalog

import (
	"errors"
	"fmt"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DishChoice is one selectable variant of a DishOption. A zero Extra means
// the choice is free.
type DishChoice struct {
	Name  string          `json:"name"`
	Extra decimal.Decimal `json:"extra"`
}

// DishOption is a named customisation with an optional surcharge of its own
// and an optional list of choices.
type DishOption struct {
	Name    string          `json:"name"`
	Extra   decimal.Decimal `json:"extra"`
	Choices []DishChoice    `json:"choices,omitempty"`
}

// FindChoice returns the choice named name, if any.
func (o DishOption) FindChoice(name string) (DishChoice, bool) {
	for _, c := range o.Choices {
		if c.Name == name {
			return c, true
		}
	}
	return DishChoice{}, false
}

// Dish is a menu entry with a base price and option definitions.
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	basePrice    decimal.Decimal
	options      []DishOption
}

// MoneyScale is the number of decimal places money amounts may carry. Order
// totals are stored and reported at this scale, so sums of valid amounts are
// never rounded.
const MoneyScale = 2

// NewDish validates and builds a Dish. Prices and extras must not be negative
// and must not have more than MoneyScale decimal places.
func NewDish(
	id, restaurantID kernel.UUID,
	name string,
	basePrice decimal.Decimal,
	options []DishOption,
) (Dish, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate()); err != nil {
		return Dish{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Dish{}, errs.NewValueIsRequiredError("dish name")
	}
	if err := validateAmount("dish price", basePrice); err != nil {
		return Dish{}, err
	}
	for _, o := range options {
		if err := validateAmount("option extra", o.Extra); err != nil {
			return Dish{}, fmt.Errorf("option %s: %w", o.Name, err)
		}
		for _, c := range o.Choices {
			if err := validateAmount("choice extra", c.Extra); err != nil {
				return Dish{}, fmt.Errorf("option %s, choice %s: %w", o.Name, c.Name, err)
			}
		}
	}

	return Dish{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		basePrice:    basePrice,
		options:      append([]DishOption(nil), options...),
	}, nil
}

func (d Dish) ID() kernel.UUID {
	return d.id
}

func (d Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

func (d Dish) Name() string {
	return d.name
}

func (d Dish) BasePrice() decimal.Decimal {
	return d.basePrice
}

// Options returns a copy of the option definitions.
func (d Dish) Options() []DishOption {
	return append([]DishOption(nil), d.options...)
}

// FindOption returns the option definition named name, if any.
func (d Dish) FindOption(name string) (DishOption, bool) {
	for _, o := range d.options {
		if o.Name == name {
			return o, true
		}
	}
	return DishOption{}, false
}

func validateAmount(param string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", v))
	}
	if !v.Equal(v.Round(MoneyScale)) {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s has more than %d decimal places", v, MoneyScale))
	}
	return nil
}
