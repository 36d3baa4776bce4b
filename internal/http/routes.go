package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "handoff-tracker.com/handoff-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, th *TemplateHandler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.GET("/tasks/:id/events", h.ListTaskEvents)

	e.POST("/templates", th.CreateTemplate)
	e.GET("/templates", th.ListTemplates)
	e.GET("/templates/:id", th.GetTemplate)
	e.PUT("/templates/:id", th.UpdateTemplate)
	e.DELETE("/templates/:id", th.DeleteTemplate)
}
