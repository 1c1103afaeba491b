// Package order holds the Order aggregate of the ordering backend and the
// rules that govern who may see and change it.
//
// The package includes:
//   - Order: the aggregate root with its items, total and assigned driver
//   - Status: the lifecycle states Pending -> Cooking -> Cooked -> PickedUp -> Delivered
//   - CanTransition: which role class may set which target status
//   - IsParticipant: whether a principal is the customer, driver or restaurant owner
//
// Key business rules:
//   - The total is computed once when the order is placed and never recomputed
//   - Status changes only through ChangeStatus, which checks participation and role
//   - CanTransition does not check reachability from the current status; an
//     owner may go from Pending straight to Cooked or repeat the same status
//   - Every mutation bumps the version so storage can reject concurrent writes
package order
