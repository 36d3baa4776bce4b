package notify

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	repository "handoff-tracker.com/handoff-tracker/internal/repositories"
	model "handoff-tracker.com/handoff-tracker/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Notification{}))

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestDispatcher_PersistsNotifications(t *testing.T) {
	repo := repository.NewNotificationRepository(setupTestDB(t))
	dispatcher := NewDispatcher(repo, nil, "", 1, 4)

	dispatcher.Notify(model.Notification{
		ID:      uuid.NewString(),
		UserID:  "user-9",
		TaskID:  "task-1",
		Message: "you were assigned to task: Handoff",
	})

	// Shutdown waits for in-flight deliveries
	dispatcher.Shutdown(context.Background())

	stored, err := repo.ListByUser(context.Background(), "user-9")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "task-1", stored[0].TaskID)
}

func TestDispatcher_DropsWhenBufferFull(t *testing.T) {
	repo := repository.NewNotificationRepository(setupTestDB(t))

	// zero workers: nothing drains the buffer
	dispatcher := &Dispatcher{
		queue:  make(chan model.Notification, 1),
		repo:   repo,
		logger: slog.Default(),
	}

	dispatcher.Notify(model.Notification{ID: "a", UserID: "u", TaskID: "t"})
	dispatcher.Notify(model.Notification{ID: "b", UserID: "u", TaskID: "t"})

	assert.Len(t, dispatcher.queue, 1)
}
