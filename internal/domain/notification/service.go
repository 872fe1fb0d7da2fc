package notification

import (
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/sse"
)

// Publisher delivers ephemeral notifications: best-effort, asynchronous,
// at-most-once. Implementations must never block the caller or surface
// delivery failures; failures are logged and dropped.
type Publisher interface {
	// Publish sends a typed message to one user's channel.
	Publish(userID string, notifType Type, message string)

	// NotifyLateArrival alerts every superuser that an employee checked in
	// late, by channel and by email.
	NotifyLateArrival(username string, lateMinutes int)

	// NotifyLowBalance alerts every superuser that an employee's remaining
	// annual leave dropped below the threshold.
	NotifyLowBalance(username string, remainingDays float64)

	// Subscribe attaches a listener to a user's channel. The returned
	// cleanup function must be called when the listener goes away.
	Subscribe(userID string) (<-chan sse.Event, func())

	// Stop drains the queue and terminates the background workers.
	Stop()
}
