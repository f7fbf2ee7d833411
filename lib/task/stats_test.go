package taskhandler

import (
	"testing"
	"time"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func makeTask(status models.TaskStatus, due *time.Time) dbmodels.Task {
	return dbmodels.Task{
		Status:  status,
		DueDate: due,
	}
}

func TestCalcStats(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	t.Run("пустой список", func(t *testing.T) {
		stats := CalcStats(nil, now)
		require.Equal(t, 0, stats.Total)
		require.Equal(t, 0, stats.Overdue)
		require.Empty(t, stats.ByStatus)
	})

	t.Run("сводка по статусам и просрочке", func(t *testing.T) {
		tasks := []dbmodels.Task{
			makeTask(models.TaskStatusPending, &past),
			makeTask(models.TaskStatusInProgress, &past),
			makeTask(models.TaskStatusInProgress, &future),
			makeTask(models.TaskStatusCompleted, &past),
			makeTask(models.TaskStatusCancelled, &past),
			makeTask(models.TaskStatusPending, nil),
		}
		stats := CalcStats(tasks, now)
		require.Equal(t, 6, stats.Total)
		require.Equal(t, 2, stats.ByStatus[models.TaskStatusPending])
		require.Equal(t, 2, stats.ByStatus[models.TaskStatusInProgress])
		require.Equal(t, 1, stats.ByStatus[models.TaskStatusCompleted])
		require.Equal(t, 1, stats.ByStatus[models.TaskStatusCancelled])
		// завершенные и отмененные не считаются просроченными
		require.Equal(t, 2, stats.Overdue)
	})
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	t.Run("просрочена активная задача с истекшим сроком", func(t *testing.T) {
		require.True(t, makeTask(models.TaskStatusInProgress, &past).IsOverdue(now))
	})
	t.Run("завершенная задача не просрочена", func(t *testing.T) {
		require.False(t, makeTask(models.TaskStatusCompleted, &past).IsOverdue(now))
	})
	t.Run("без срока не просрочена", func(t *testing.T) {
		require.False(t, makeTask(models.TaskStatusPending, nil).IsOverdue(now))
	})
}
