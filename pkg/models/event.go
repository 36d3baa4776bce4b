package model

import (
	"time"

	"handoff-tracker.com/handoff-tracker/internal/constants"
)

// TaskEvent is one append-only audit record. Rows are never updated or
// deleted; the event log is the sole source of truth for task history.
type TaskEvent struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	TaskID      string               `gorm:"size:36;not null;index" json:"task_id"`
	EventType   constants.EventType  `gorm:"type:varchar(30);not null" json:"event_type"`
	OldStatus   *constants.Status    `gorm:"type:varchar(20)" json:"old_status,omitempty"`
	NewStatus   *constants.Status    `gorm:"type:varchar(20)" json:"new_status,omitempty"`
	OldPriority *constants.Priority  `gorm:"type:varchar(10)" json:"old_priority,omitempty"`
	NewPriority *constants.Priority  `gorm:"type:varchar(10)" json:"new_priority,omitempty"`
	ChangedByID string               `gorm:"size:36;not null" json:"changed_by_id"`
	CreatedAt   time.Time            `json:"created_at"`
}
