// Package services provides domain services that work across aggregates of the
// ordering backend.
//
// The package includes:
//   - PriceCalculator: prices order lines from catalog dishes and the customer's
//     option selections
package services
