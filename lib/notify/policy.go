package notifyhandler

import (
	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"
)

// Target - адресат уведомления с готовым содержимым
type Target struct {
	UserID    string
	Data      models.NotificationData
	RequestID string
}

// OnSubmitted - заявка подана, уведомляются все согласующие
func OnSubmitted(req dbmodels.MocRequest, approverIDs []string) []Target {
	result := make([]Target, 0, len(approverIDs))
	for _, userID := range approverIDs {
		result = append(result, Target{
			UserID:    userID,
			Data:      models.GetPushMocSubmitted(req.RequestNumber, req.Title),
			RequestID: req.ID,
		})
	}
	return result
}

// OnStatusChanged - статус заявки сменился, уведомляется автор
func OnStatusChanged(req dbmodels.MocRequest, newStatus models.MocStatus) []Target {
	return []Target{
		{
			UserID:    req.AuthorID,
			Data:      models.GetPushMocStatusChanged(req.RequestNumber, req.Title, newStatus.ToHuman()),
			RequestID: req.ID,
		},
	}
}

// OnApproved - заявка согласована всеми, уведомляется автор
func OnApproved(req dbmodels.MocRequest) []Target {
	return []Target{
		{
			UserID:    req.AuthorID,
			Data:      models.GetPushMocApproved(req.RequestNumber, req.Title),
			RequestID: req.ID,
		},
	}
}

// OnRejected - заявка отклонена, уведомляется автор
func OnRejected(req dbmodels.MocRequest, rejectedBy string) []Target {
	return []Target{
		{
			UserID:    req.AuthorID,
			Data:      models.GetPushMocRejected(req.RequestNumber, req.Title, rejectedBy),
			RequestID: req.ID,
		},
	}
}

// OnChangesRequested - запрошены изменения, уведомляется автор
func OnChangesRequested(req dbmodels.MocRequest, requestedBy string) []Target {
	return []Target{
		{
			UserID:    req.AuthorID,
			Data:      models.GetPushMocChangesRequested(requestedBy, req.RequestNumber, req.Title),
			RequestID: req.ID,
		},
	}
}

// OnImplemented - изменение внедрено, уведомляются автор и согласующие
func OnImplemented(req dbmodels.MocRequest, approverIDs []string) []Target {
	result := []Target{
		{
			UserID:    req.AuthorID,
			Data:      models.GetPushMocImplemented(req.RequestNumber, req.Title),
			RequestID: req.ID,
		},
	}
	for _, userID := range approverIDs {
		if userID == req.AuthorID {
			continue
		}
		result = append(result, Target{
			UserID:    userID,
			Data:      models.GetPushMocImplemented(req.RequestNumber, req.Title),
			RequestID: req.ID,
		})
	}
	return result
}

// OnCommentAdded - уведомляются участники заявки, кроме автора комментария
func OnCommentAdded(req dbmodels.MocRequest, commentBy, commentByID string, approverIDs []string) []Target {
	result := []Target{}
	seen := map[string]bool{commentByID: true}
	recipients := append([]string{req.AuthorID}, approverIDs...)
	for _, userID := range recipients {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		result = append(result, Target{
			UserID:    userID,
			Data:      models.GetPushMocCommentAdded(commentBy, req.RequestNumber, req.Title),
			RequestID: req.ID,
		})
	}
	return result
}

// OnTaskAssigned - уведомляется исполнитель задачи
func OnTaskAssigned(task dbmodels.Task, requestNumber string) []Target {
	if task.AssigneeID == nil || *task.AssigneeID == "" {
		return nil
	}
	return []Target{
		{
			UserID:    *task.AssigneeID,
			Data:      models.GetPushTaskAssigned(requestNumber, task.Title),
			RequestID: task.RequestID,
		},
	}
}

// OnTaskDue - срок задачи подходит, уведомляется исполнитель
func OnTaskDue(task dbmodels.Task, requestNumber string) []Target {
	if task.AssigneeID == nil || *task.AssigneeID == "" || task.DueDate == nil {
		return nil
	}
	return []Target{
		{
			UserID:    *task.AssigneeID,
			Data:      models.GetPushTaskDue(task.Title, requestNumber, task.DueDate.Format("02.01.2006")),
			RequestID: task.RequestID,
		},
	}
}
