package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	dto "handoff-tracker.com/handoff-tracker/internal/data_models"
)

var validate = validator.New()

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if err := validate.Struct(r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Status == nil && r.Priority == nil && r.CustomFields == nil && r.AssigneeID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no changes supplied")
	}
	if err := validate.Struct(r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func ValidateTemplateRequest(r *dto.TemplateRequest) error {
	if err := validate.Struct(r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
