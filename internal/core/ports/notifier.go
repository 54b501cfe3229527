package ports

import "context"

// Notifier sends account notifications. Implementations must be safe to call
// from a detached goroutine; a returned error is logged by the caller and
// never propagated to the user.
type Notifier interface {
	SendWelcome(ctx context.Context, email, username string) error
}
