package kernel

import "time"

// Entity carries the identity and timestamps shared by every persisted
// aggregate. It is embedded by value; it is not a base class.
type Entity struct {
	id        UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewEntity stamps a fresh identity at the given time.
func NewEntity(id UUID, now time.Time) Entity {
	return Entity{id: id, createdAt: now, updatedAt: now}
}

// RestoreEntity rebuilds an Entity read from storage.
func RestoreEntity(id UUID, createdAt, updatedAt time.Time) Entity {
	return Entity{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

// ID returns the entity identifier.
func (e Entity) ID() UUID {
	return e.id
}

// CreatedAt returns the creation timestamp.
func (e Entity) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (e Entity) UpdatedAt() time.Time {
	return e.updatedAt
}

// Touch moves UpdatedAt forward.
func (e *Entity) Touch(now time.Time) {
	e.updatedAt = now
}
