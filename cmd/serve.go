package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "handoff-tracker.com/handoff-tracker/internal/configs"
	httpapi "handoff-tracker.com/handoff-tracker/internal/http"
	"handoff-tracker.com/handoff-tracker/internal/notify"
	repository "handoff-tracker.com/handoff-tracker/internal/repositories"
	"handoff-tracker.com/handoff-tracker/internal/services"
	"handoff-tracker.com/handoff-tracker/pkg/log"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker HTTP API and the notification dispatcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			slog.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		log.Setup(cfg.LogLevel)

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		taskRepo := repository.NewTaskRepository(database)
		templateRepo := repository.NewTemplateRepository(database)
		eventRepo := repository.NewEventRepository(database)
		notificationRepo := repository.NewNotificationRepository(database)

		dispatcher := notify.NewDispatcher(
			notificationRepo,
			redisClient,
			cfg.RedisNotifyChannel,
			cfg.NotifyWorkers,
			cfg.NotifyBuffer,
		)

		taskService := services.NewTaskService(taskRepo, templateRepo, eventRepo, dispatcher)
		templateService := services.NewTemplateService(templateRepo)

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService)
		templateHandler := httpapi.NewTemplateHandler(templateService)
		httpapi.Register(e, handler, templateHandler, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			slog.Info("HTTP server listening", "addr", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				slog.Info("server stopped", "error", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)
		dispatcher.Shutdown(shutdownCtx)

		slog.Info("HTTP server and notification dispatcher shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
