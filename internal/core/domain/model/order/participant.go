package order

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
)

// IsParticipant reports whether p is the order's customer, its assigned
// driver, or the owner of its restaurant.
func IsParticipant(o *Order, p principal.Principal) bool {
	if o == nil {
		return false
	}
	return isParticipantID(o, p.ID())
}

func isParticipantID(o *Order, id kernel.UUID) bool {
	if id.IsZero() {
		return false
	}
	if o.customerID.IsEqual(id) || o.restaurant.ownerID.IsEqual(id) {
		return true
	}
	return o.driverID != nil && o.driverID.IsEqual(id)
}
