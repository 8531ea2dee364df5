package notifier

import "context"

// Client polls the backend for the unread notification count while a
// session is active.
type Client interface {
	ScheduleUnreadCountPolling(ctx context.Context) error
}
