package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/notification"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/email"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/sse"
)

// Config tunes the dispatcher.
type Config struct {
	QueueSize   int // default: 1000
	WorkerCount int // default: 2
}

// job is one unit of delivery work. Recipients receive the notification over
// their SSE channel; when emailSubject is set, the same recipients also get
// a plain-text email.
type job struct {
	notification notification.Notification

	// resolveAdmins defers the superuser lookup to the worker so the
	// triggering request never waits on it.
	resolveAdmins bool
	recipients    []string

	emailSubject string
	emailBody    string
}

type dispatcher struct {
	users  user.UserRepository
	hub    *sse.Hub
	sender email.Sender
	config Config

	queue  chan job
	wg     sync.WaitGroup
	stopCh chan struct{}
	once   sync.Once
}

// NewDispatcher creates the notification publisher with background workers.
// Delivery is best-effort and at-most-once: a full queue drops the message.
func NewDispatcher(users user.UserRepository, hub *sse.Hub, sender email.Sender, cfg Config) notification.Publisher {
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}

	d := &dispatcher{
		users:  users,
		hub:    hub,
		sender: sender,
		config: cfg,
		queue:  make(chan job, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	slog.Info("notification dispatcher started",
		"workers", cfg.WorkerCount,
		"queue_size", cfg.QueueSize,
	)

	return d
}

func (d *dispatcher) worker(id int) {
	defer d.wg.Done()

	for {
		select {
		case j := <-d.queue:
			d.deliver(id, j)
		case <-d.stopCh:
			// Drain whatever is left before exiting.
			for {
				select {
				case j := <-d.queue:
					d.deliver(id, j)
				default:
					return
				}
			}
		}
	}
}

func (d *dispatcher) deliver(workerID int, j job) {
	recipients := j.recipients
	var emails []string

	if j.resolveAdmins {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		admins, err := d.users.ListSuperusers(ctx)
		if err != nil {
			slog.Error("failed to resolve admin recipients, dropping notification",
				"worker", workerID,
				"error", err,
			)
			return
		}
		for _, admin := range admins {
			recipients = append(recipients, admin.ID)
			if admin.Email != "" {
				emails = append(emails, admin.Email)
			}
		}
	}

	for _, userID := range recipients {
		d.hub.Publish(userID, sse.Event{
			UserID: userID,
			Event:  "notification",
			Data:   j.notification,
		})
	}

	if j.emailSubject != "" {
		if err := d.sender.SendAdminAlert(emails, j.emailSubject, j.emailBody); err != nil {
			slog.Error("admin alert email failed",
				"worker", workerID,
				"subject", j.emailSubject,
				"error", err,
			)
		}
	}
}

// enqueue hands a job to the workers without blocking. A full queue drops
// the job; notifications are fire-and-forget.
func (d *dispatcher) enqueue(j job) {
	select {
	case d.queue <- j:
	default:
		slog.Warn("notification queue full, dropping message", "type", j.notification.Type)
	}
}

func (d *dispatcher) newNotification(notifType notification.Type, message string) notification.Notification {
	return notification.Notification{
		ID:        uuid.New().String(),
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// Publish implements notification.Publisher.
func (d *dispatcher) Publish(userID string, notifType notification.Type, message string) {
	d.enqueue(job{
		notification: d.newNotification(notifType, message),
		recipients:   []string{userID},
	})
}

// NotifyLateArrival implements notification.Publisher.
func (d *dispatcher) NotifyLateArrival(username string, lateMinutes int) {
	var message string
	if lateMinutes > 60 {
		message = fmt.Sprintf("%s was %d hours %d minutes late today.",
			username, lateMinutes/60, lateMinutes%60)
	} else {
		message = fmt.Sprintf("%s was %d minutes late today.", username, lateMinutes)
	}

	d.enqueue(job{
		notification:  d.newNotification(notification.TypeWarning, message),
		resolveAdmins: true,
		emailSubject:  "Late Arrival Alert",
		emailBody:     message,
	})
}

// NotifyLowBalance implements notification.Publisher.
func (d *dispatcher) NotifyLowBalance(username string, remainingDays float64) {
	message := fmt.Sprintf("Employee %s is running low on annual leave: %.2f days remaining.",
		username, remainingDays)

	d.enqueue(job{
		notification:  d.newNotification(notification.TypeWarning, message),
		resolveAdmins: true,
		emailSubject:  "Low Annual Leave Alert",
		emailBody:     message,
	})
}

// Subscribe implements notification.Publisher.
func (d *dispatcher) Subscribe(userID string) (<-chan sse.Event, func()) {
	return d.hub.Subscribe(userID)
}

// Stop implements notification.Publisher.
func (d *dispatcher) Stop() {
	d.once.Do(func() {
		close(d.stopCh)
	})
	d.wg.Wait()
}
