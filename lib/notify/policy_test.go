package notifyhandler

import (
	"testing"
	"time"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func testRequest() dbmodels.MocRequest {
	return dbmodels.MocRequest{
		BaseOrgModel: dbmodels.BaseOrgModel{
			BaseModel: dbmodels.BaseModel{ID: "req-1"},
			OrgID:     "org-1",
		},
		RequestNumber: "MOC-2026-00042",
		Title:         "Замена насоса",
		AuthorID:      "author-1",
	}
}

func TestPolicyRecipients(t *testing.T) {
	req := testRequest()

	t.Run("подача заявки уведомляет всех согласующих", func(t *testing.T) {
		targets := OnSubmitted(req, []string{"u1", "u2", "u3"})
		require.Len(t, targets, 3)
		for idx, userID := range []string{"u1", "u2", "u3"} {
			require.Equal(t, userID, targets[idx].UserID)
			require.Equal(t, models.PushMocSubmitted, targets[idx].Data.Code)
			require.Equal(t, "req-1", targets[idx].RequestID)
		}
	})

	t.Run("смена статуса уведомляет автора", func(t *testing.T) {
		targets := OnStatusChanged(req, models.MocStatusUnderReview)
		require.Len(t, targets, 1)
		require.Equal(t, "author-1", targets[0].UserID)
		require.Equal(t, models.PushMocStatusChanged, targets[0].Data.Code)
		require.Contains(t, targets[0].Data.Msg, models.MocStatusUnderReview.ToHuman())
	})

	t.Run("согласование уведомляет автора", func(t *testing.T) {
		targets := OnApproved(req)
		require.Len(t, targets, 1)
		require.Equal(t, "author-1", targets[0].UserID)
		require.Equal(t, models.PushMocApproved, targets[0].Data.Code)
	})

	t.Run("отклонение уведомляет автора", func(t *testing.T) {
		targets := OnRejected(req, "Иванов Иван")
		require.Len(t, targets, 1)
		require.Equal(t, "author-1", targets[0].UserID)
		require.Equal(t, models.PushMocRejected, targets[0].Data.Code)
		require.Contains(t, targets[0].Data.Msg, "Иванов Иван")
	})

	t.Run("запрос изменений уведомляет автора", func(t *testing.T) {
		targets := OnChangesRequested(req, "Петров Петр")
		require.Len(t, targets, 1)
		require.Equal(t, "author-1", targets[0].UserID)
		require.Equal(t, models.PushMocChangesRequested, targets[0].Data.Code)
	})

	t.Run("внедрение уведомляет автора и согласующих без дублей", func(t *testing.T) {
		targets := OnImplemented(req, []string{"u1", "author-1", "u2"})
		require.Len(t, targets, 3)
		require.Equal(t, "author-1", targets[0].UserID)
		require.Equal(t, "u1", targets[1].UserID)
		require.Equal(t, "u2", targets[2].UserID)
	})

	t.Run("комментарий не уведомляет его автора", func(t *testing.T) {
		targets := OnCommentAdded(req, "Иванов Иван", "u1", []string{"u1", "u2"})
		require.Len(t, targets, 2)
		require.Equal(t, "author-1", targets[0].UserID)
		require.Equal(t, "u2", targets[1].UserID)
	})
}

func TestPolicyTasks(t *testing.T) {
	assignee := "worker-1"
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("назначение задачи уведомляет исполнителя", func(t *testing.T) {
		task := dbmodels.Task{
			RequestID:  "req-1",
			Title:      "Обновить схему",
			AssigneeID: &assignee,
		}
		targets := OnTaskAssigned(task, "MOC-2026-00042")
		require.Len(t, targets, 1)
		require.Equal(t, assignee, targets[0].UserID)
		require.Equal(t, models.PushTaskAssigned, targets[0].Data.Code)
	})

	t.Run("задача без исполнителя не дает уведомлений", func(t *testing.T) {
		task := dbmodels.Task{
			RequestID: "req-1",
			Title:     "Обновить схему",
		}
		require.Empty(t, OnTaskAssigned(task, "MOC-2026-00042"))
	})

	t.Run("напоминание о сроке содержит дату", func(t *testing.T) {
		task := dbmodels.Task{
			RequestID:  "req-1",
			Title:      "Обновить схему",
			AssigneeID: &assignee,
			DueDate:    &due,
		}
		targets := OnTaskDue(task, "MOC-2026-00042")
		require.Len(t, targets, 1)
		require.Contains(t, targets[0].Data.Msg, "15.09.2026")
	})
}
