package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/redis/rueidis"

	repository "handoff-tracker.com/handoff-tracker/internal/repositories"
	"handoff-tracker.com/handoff-tracker/pkg/log"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

// Dispatcher delivers notifications in the background: each one is persisted
// as a row and published to a redis channel for downstream consumers.
// Delivery is best effort; failures are logged and dropped, never surfaced
// to the code that queued the notification.
type Dispatcher struct {
	queue   chan model.Notification
	wg      sync.WaitGroup
	repo    *repository.NotificationRepository
	redis   rueidis.Client
	channel string
	logger  *slog.Logger
}

func NewDispatcher(
	repo *repository.NotificationRepository,
	redis rueidis.Client,
	channel string,
	workers int,
	buffer int,
) *Dispatcher {
	d := &Dispatcher{
		queue:   make(chan model.Notification, buffer),
		repo:    repo,
		redis:   redis,
		channel: channel,
		logger:  log.WithModule("notify"),
	}

	for i := 1; i <= workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

// Notify queues a notification without blocking. When the buffer is full the
// notification is dropped and logged.
func (d *Dispatcher) Notify(notification model.Notification) {
	select {
	case d.queue <- notification:
	default:
		d.logger.Warn("notification queue full, dropping",
			"task_id", notification.TaskID,
			"user_id", notification.UserID,
		)
	}
}

func (d *Dispatcher) worker(workerID int) {
	defer d.wg.Done()

	d.logger.Debug("notification worker started", "worker", workerID)

	for notification := range d.queue {
		d.deliver(workerID, notification)
	}

	d.logger.Debug("notification worker stopped", "worker", workerID)
}

func (d *Dispatcher) deliver(workerID int, notification model.Notification) {
	ctx := context.Background()

	if err := d.repo.Create(ctx, &notification); err != nil {
		d.logger.Error("failed to store notification",
			"worker", workerID,
			"task_id", notification.TaskID,
			"error", err,
		)
	}

	if d.redis == nil || d.channel == "" {
		return
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		d.logger.Error("failed to encode notification", "worker", workerID, "error", err)
		return
	}

	if err := d.redis.Do(
		ctx,
		d.redis.B().Publish().Channel(d.channel).Message(string(payload)).Build(),
	).Error(); err != nil {
		d.logger.Error("failed to publish notification",
			"worker", workerID,
			"task_id", notification.TaskID,
			"error", err,
		)
	}
}

// Shutdown stops accepting work and waits for in-flight deliveries, bounded
// by ctx.
func (d *Dispatcher) Shutdown(ctx context.Context) {
	close(d.queue)

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("notification dispatcher shut down cleanly")
	case <-ctx.Done():
		d.logger.Warn("notification dispatcher shutdown timed out")
	}
}
