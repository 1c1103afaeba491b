package order

import "eats/internal/core/domain/model/principal"

func getAllowedTargets() map[principal.Role]map[Status]struct{} {
	return map[principal.Role]map[Status]struct{}{
		principal.Customer: {},
		principal.Owner:    {Cooking: {}, Cooked: {}},
		principal.Delivery: {PickedUp: {}, Delivered: {}},
	}
}

// CanTransition reports whether the role class may set target. The current
// status is deliberately not consulted.
func CanTransition(role principal.Role, target Status) bool {
	_, ok := getAllowedTargets()[role][target]
	return ok
}

// CanSetAnyStatus reports whether the role may set at least one status.
// Customers can't.
func CanSetAnyStatus(role principal.Role) bool {
	return len(getAllowedTargets()[role]) > 0
}
