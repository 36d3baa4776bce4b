package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "handoff-tracker.com/handoff-tracker/internal/data_models"
	"handoff-tracker.com/handoff-tracker/internal/http/validators"
	"handoff-tracker.com/handoff-tracker/internal/services"
)

type TemplateHandler struct {
	templateService *services.TemplateService
}

func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTemplateRequest(&req); err != nil {
		return err
	}

	template, err := h.templateService.CreateTemplate(c.Request().Context(), services.TemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Steps:       req.Steps,
	}, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandler) GetTemplate(c echo.Context) error {
	template, err := h.templateService.GetTemplate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	templates, err := h.templateService.ListTemplates(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list templates")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":     len(templates),
		"templates": templates,
	})
}

func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTemplateRequest(&req); err != nil {
		return err
	}

	template, err := h.templateService.UpdateTemplate(c.Request().Context(), c.Param("id"), services.TemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Steps:       req.Steps,
	}, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.templateService.DeleteTemplate(c.Request().Context(), c.Param("id"), actor); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
