package repository

import (
	"context"

	"gorm.io/gorm"

	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

// EventRepository reads the append-only audit log. Event rows are only ever
// written inside TaskRepository transactions, alongside the task change they
// record; there is deliberately no update or delete here.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByTask(ctx context.Context, taskID string) ([]model.TaskEvent, error) {
	var events []model.TaskEvent
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at asc").
		Find(&events).Error
	return events, err
}
