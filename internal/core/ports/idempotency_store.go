package ports

import "context"

// IdempotencyStore remembers the result of a request keyed by a client-chosen
// key. scope separates key spaces, typically the principal id.
type IdempotencyStore interface {
	// TryLock reserves the key. It returns false when the key is already taken.
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)

	// Release drops a reservation whose request failed so it can be retried.
	Release(ctx context.Context, scope, key string) error
}
