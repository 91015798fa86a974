package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"stagedesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEvent(t *testing.T, db *gorm.DB, name string) *models.Event {
	t.Helper()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return mustCreateEvent(t, NewEventService(db), name, start, start.AddDate(0, 0, 1))
}

func TestCreateTask_LinksEventsAndDropsDanglingIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	ctx := context.Background()

	owner := mustCreateContact(t, NewContactService(db), ContactInput{FirstName: "Dana", LastName: "Reed"})
	event := createTestEvent(t, db, "Summer Gala")

	task, err := svc.CreateTask(ctx, TaskInput{
		OwnerID:  owner.ID,
		Title:    "Send rider to venue",
		EventIDs: []uint{event.ID, 9999},
	})
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, got.Events, 1)
	assert.Equal(t, event.ID, got.Events[0].ID)
}

func TestUpdateTask_ReplacesLinks(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	ctx := context.Background()

	owner := mustCreateContact(t, NewContactService(db), ContactInput{FirstName: "Dana", LastName: "Reed"})
	first := createTestEvent(t, db, "Spring Fling")
	second := createTestEvent(t, db, "Fall Ball")

	task, err := svc.CreateTask(ctx, TaskInput{
		OwnerID:  owner.ID,
		Title:    "Confirm headliner",
		EventIDs: []uint{first.ID},
	})
	require.NoError(t, err)

	err = svc.UpdateTask(ctx, task.ID, TaskInput{
		OwnerID:  owner.ID,
		Title:    "Confirm headliner",
		IsDone:   true,
		EventIDs: []uint{second.ID},
	})
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDone)
	require.Len(t, got.Events, 1)
	assert.Equal(t, second.ID, got.Events[0].ID)
}

func TestDeleteTask_ClearsJoinRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	ctx := context.Background()

	owner := mustCreateContact(t, NewContactService(db), ContactInput{FirstName: "Dana", LastName: "Reed"})
	event := createTestEvent(t, db, "Winter Showcase")

	task, err := svc.CreateTask(ctx, TaskInput{
		OwnerID:  owner.ID,
		Title:    "Book sound crew",
		EventIDs: []uint{event.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))

	var links int64
	db.Table("task_event_links").Where("task_id = ?", task.ID).Count(&links)
	assert.Zero(t, links)

	_, err = svc.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestCreateTask_RequiresOwnerAndTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	_, err := svc.CreateTask(context.Background(), TaskInput{Title: "No owner"})
	assert.ErrorIs(t, err, ErrTaskInvalidInput)
}
