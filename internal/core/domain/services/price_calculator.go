package services

import (
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderLine pairs a catalog dish with the options the customer picked for it.
type OrderLine struct {
	Dish    catalog.Dish
	Options []order.ItemOption
}

// PriceCalculator computes item prices and order totals.
//
// Business rules:
//   - an item costs the dish base price plus the extra of every matched option
//     and the extra of every matched choice
//   - option or choice names the dish does not define add nothing
//   - an option without a matched choice still adds its own extra
//
// Example:
//
//	calc := services.NewPriceCalculator()
//	price := calc.ComputeItemPrice(pizza, []order.ItemOption{{Name: "size", Choice: "large"}})
type PriceCalculator struct{}

func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// ComputeItemPrice returns the price of one dish with the given selections.
// The result is never below the dish base price.
func (PriceCalculator) ComputeItemPrice(dish catalog.Dish, selected []order.ItemOption) decimal.Decimal {
	price := dish.BasePrice()

	for _, sel := range selected {
		opt, ok := dish.FindOption(sel.Name)
		if !ok {
			continue
		}
		price = price.Add(opt.Extra)

		if sel.Choice == "" {
			continue
		}
		if choice, ok := opt.FindChoice(sel.Choice); ok {
			price = price.Add(choice.Extra)
		}
	}

	return price
}

// ComputeOrderTotal sums ComputeItemPrice over all lines.
func (c PriceCalculator) ComputeOrderTotal(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(c.ComputeItemPrice(l.Dish, l.Options))
	}
	return total
}
