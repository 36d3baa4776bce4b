package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "handoff-tracker.com/handoff-tracker/internal/errors"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateWithEvent inserts a task together with its CREATED audit event in one
// transaction. A task row without an explaining event must never exist.
func (r *TaskRepository) CreateWithEvent(ctx context.Context, task *model.Task, event *model.TaskEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		return tx.Create(event).Error
	})
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

// Mutate runs mutate against a freshly-read task row and commits the changed
// row together with the event the closure returns, as one atomic unit. The
// re-read inside the transaction is what captures old status/priority for the
// event; a concurrently deleted task surfaces as ErrTaskNotFound. Either the
// task update and the event both land, or neither does.
func (r *TaskRepository) Mutate(
	ctx context.Context,
	taskID string,
	mutate func(task *model.Task) (*model.TaskEvent, error),
) (*model.Task, error) {
	var task model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		event, err := mutate(&task)
		if err != nil {
			return err
		}

		if err := tx.Save(&task).Error; err != nil {
			return err
		}

		return tx.Create(event).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}
