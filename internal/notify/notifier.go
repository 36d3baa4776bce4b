package notify

import model "handoff-tracker.com/handoff-tracker/pkg/models"

// Notifier accepts a notification for asynchronous delivery. Implementations
// must never block the caller and must never report failure back to it: by
// the time a notification exists, the mutation that produced it has already
// committed.
type Notifier interface {
	Notify(notification model.Notification)
}
