package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"handoff-tracker.com/handoff-tracker/internal/constants"
	dto "handoff-tracker.com/handoff-tracker/internal/data_models"
	apperrors "handoff-tracker.com/handoff-tracker/internal/errors"
	"handoff-tracker.com/handoff-tracker/internal/http/validators"
	"handoff-tracker.com/handoff-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

// actorID reads the resolved actor from the X-Actor-Id header. Resolving the
// actor (authentication, authorization against the task) is the caller's
// concern; the tracker only records who made each change.
func actorID(c echo.Context) (string, error) {
	actor := c.Request().Header.Get("X-Actor-Id")
	if actor == "" {
		return "", echo.NewHTTPError(apperrors.ErrActorRequired.StatusCode, apperrors.ErrActorRequired.Message)
	}
	return actor, nil
}

func httpError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}

func (h *Handler) CreateTask(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), services.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     constants.Priority(req.Priority),
		TemplateID:   req.TemplateID,
		AssigneeID:   req.AssigneeID,
		CustomFields: req.CustomFields,
	}, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) ListTaskEvents(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	events, err := h.taskService.ListEvents(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":  len(events),
		"events": events,
	})
}

// UpdateTask is the validate-then-commit path for every human-facing task
// mutation. Status changes run through the transition validator against the
// task's template before anything is written; a rejection comes back as 422
// with the full rule context so the caller can fix the request in one trip.
func (h *Handler) UpdateTask(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	task, err := h.taskService.GetTask(ctx, id)
	if err != nil {
		return httpError(err)
	}

	changes := services.Changes{
		CustomFields: req.CustomFields,
		AssigneeID:   req.AssigneeID,
	}
	if req.Status != nil {
		status := constants.Status(*req.Status)
		changes.Status = &status
	}
	if req.Priority != nil {
		priority := constants.Priority(*req.Priority)
		changes.Priority = &priority
	}

	if changes.Status != nil {
		// The candidate set is what will actually be committed: the request's
		// replacement set when supplied, otherwise the stored values.
		candidate := req.CustomFields
		if candidate == nil {
			candidate = task.CustomFields
		}

		outcome, err := h.taskService.ValidateTransition(ctx, task, *changes.Status, candidate)
		if err != nil {
			return httpError(err)
		}
		if !outcome.Allowed {
			return c.JSON(http.StatusUnprocessableEntity, outcome)
		}
	}

	updated, err := h.taskService.ApplyMutation(ctx, id, changes, eventTypeFor(changes), actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// eventTypeFor picks the single audit event type for a mutation. A mutation
// touching several attributes is recorded under its most significant one.
func eventTypeFor(changes services.Changes) constants.EventType {
	switch {
	case changes.Status != nil:
		return constants.EventStatusChanged
	case changes.Priority != nil:
		return constants.EventPriorityChanged
	case changes.AssigneeID != nil:
		return constants.EventAssigned
	default:
		return constants.EventFieldsUpdated
	}
}
