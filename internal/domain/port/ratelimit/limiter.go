package ratelimit

import "context"

// Limiter gates inbound requests by client key against a sliding-window quota.
// An error means the limiter itself failed and must be surfaced to the caller,
// never treated as an allow or a deny.
type Limiter interface {
	// Check records an attempt for the key and reports whether it is allowed
	Check(ctx context.Context, key string) (bool, error)
}
