package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"handoff-tracker.com/handoff-tracker/internal/constants"
	apperrors "handoff-tracker.com/handoff-tracker/internal/errors"
	"handoff-tracker.com/handoff-tracker/internal/notify"
	repository "handoff-tracker.com/handoff-tracker/internal/repositories"
	"handoff-tracker.com/handoff-tracker/internal/workflow"
	"handoff-tracker.com/handoff-tracker/pkg/log"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

// TaskService coordinates task mutations: the transition decision is pure
// (workflow package), the commit is a single task+event transaction
// (repository layer), and notifications go out only after a successful
// commit. Decide and commit are deliberately separate steps; ApplyMutation
// trusts that the caller already validated a status change.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	templateRepo *repository.TemplateRepository
	eventRepo    *repository.EventRepository
	notifier     notify.Notifier
	logger       *slog.Logger
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	templateRepo *repository.TemplateRepository,
	eventRepo *repository.EventRepository,
	notifier notify.Notifier,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		templateRepo: templateRepo,
		eventRepo:    eventRepo,
		notifier:     notifier,
		logger:       log.WithModule("tasks"),
	}
}

type CreateTaskInput struct {
	Title        string
	Description  string
	Priority     constants.Priority
	TemplateID   *string
	AssigneeID   *string
	CustomFields map[string]any
}

func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput, actorID string) (*model.Task, error) {
	priority := input.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Status:       constants.StatusOpen,
		Priority:     priority,
		TemplateID:   input.TemplateID,
		CustomFields: input.CustomFields,
		AssigneeID:   input.AssigneeID,
		CreatorID:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	status := task.Status
	event := &model.TaskEvent{
		ID:          uuid.NewString(),
		TaskID:      task.ID,
		EventType:   constants.EventCreated,
		NewStatus:   &status,
		ChangedByID: actorID,
		CreatedAt:   now,
	}

	if err := s.taskRepo.CreateWithEvent(ctx, task, event); err != nil {
		s.logger.Error("task create commit failed", "error", err)
		return nil, apperrors.ErrCommitFailed
	}

	if task.AssigneeID != nil {
		s.emitAssignmentNotification(task)
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *TaskService) ListEvents(ctx context.Context, taskID string) ([]model.TaskEvent, error) {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.eventRepo.ListByTask(ctx, taskID)
}

// ValidateTransition resolves the task's template and runs the pure
// transition check against it. An unset or dangling template id degrades to
// "no constraints"; only a store failure is an error.
func (s *TaskService) ValidateTransition(
	ctx context.Context,
	task *model.Task,
	requestedStatus constants.Status,
	candidateFields map[string]any,
) (workflow.Outcome, error) {
	var template *model.WorkflowTemplate

	if task.TemplateID != nil {
		found, err := s.templateRepo.FindByID(ctx, *task.TemplateID)
		if err != nil {
			return workflow.Outcome{}, err
		}
		template = found
	}

	return workflow.ValidateTransition(template, task.Status, requestedStatus, candidateFields), nil
}

// Changes describes one mutation. Nil pointers mean "leave unchanged". A
// non-nil CustomFields map replaces the stored set wholesale; callers that
// want to keep earlier values must read and re-supply them.
type Changes struct {
	Status       *constants.Status
	Priority     *constants.Priority
	CustomFields map[string]any
	AssigneeID   *string
}

// ApplyMutation commits a validated change. It re-reads the task inside the
// transaction to capture the before state, applies the changes, and appends
// exactly one event; both writes land or neither does. Reassignment queues a
// notification after the commit, best effort.
func (s *TaskService) ApplyMutation(
	ctx context.Context,
	taskID string,
	changes Changes,
	eventType constants.EventType,
	actorID string,
) (*model.Task, error) {
	var notifyTask *model.Task

	task, err := s.taskRepo.Mutate(ctx, taskID, func(task *model.Task) (*model.TaskEvent, error) {
		oldStatus := task.Status
		oldPriority := task.Priority
		oldAssignee := task.AssigneeID

		if changes.Status != nil {
			task.Status = *changes.Status
		}
		if changes.Priority != nil {
			task.Priority = *changes.Priority
		}
		if changes.CustomFields != nil {
			task.CustomFields = changes.CustomFields
		}
		if changes.AssigneeID != nil {
			task.AssigneeID = changes.AssigneeID
		}
		task.UpdatedAt = time.Now().UTC()

		event := &model.TaskEvent{
			ID:          uuid.NewString(),
			TaskID:      task.ID,
			EventType:   eventType,
			ChangedByID: actorID,
			CreatedAt:   task.UpdatedAt,
		}

		if changes.Status != nil {
			newStatus := task.Status
			event.OldStatus = &oldStatus
			event.NewStatus = &newStatus
		}
		if changes.Priority != nil {
			newPriority := task.Priority
			event.OldPriority = &oldPriority
			event.NewPriority = &newPriority
		}

		if changes.AssigneeID != nil && (oldAssignee == nil || *oldAssignee != *changes.AssigneeID) {
			notifyTask = task
		}

		return event, nil
	})
	if err != nil {
		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.logger.Error("task mutation commit failed", "task_id", taskID, "error", err)
		return nil, apperrors.ErrCommitFailed
	}

	if notifyTask != nil {
		s.emitAssignmentNotification(task)
	}

	return task, nil
}

func (s *TaskService) emitAssignmentNotification(task *model.Task) {
	if s.notifier == nil || task.AssigneeID == nil {
		return
	}

	s.notifier.Notify(model.Notification{
		ID:        uuid.NewString(),
		UserID:    *task.AssigneeID,
		TaskID:    task.ID,
		Message:   "you were assigned to task: " + task.Title,
		CreatedAt: time.Now().UTC(),
	})
}
