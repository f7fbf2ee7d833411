package mocapimodels

import (
	"fmt"
	"strings"
	"time"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"
)

type TaskCreateData struct {
	RequestID   string             `json:"request_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	AssigneeID  string             `json:"assignee_id"`
	Priority    models.MocPriority `json:"priority"`
	DueDate     *time.Time         `json:"due_date"`
}

func (v TaskCreateData) Validate() error {
	if v.Title == "" {
		return models.NewValidationError("отсутствует название задачи")
	}
	if v.RequestID == "" {
		return models.NewValidationError("отсутствует ссылка на заявку")
	}
	if v.Priority != "" {
		if err := v.Priority.Validate(); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	return nil
}

type TaskEditData struct {
	Status     *models.TaskStatus  `json:"status"`
	AssigneeID *string             `json:"assignee_id"`
	Priority   *models.MocPriority `json:"priority"`
	DueDate    *time.Time          `json:"due_date"`
}

func (v TaskEditData) Validate() error {
	if v.Status != nil {
		if err := v.Status.Validate(); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	if v.Priority != nil {
		if err := v.Priority.Validate(); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	return nil
}

type TaskView struct {
	ID           string             `json:"id"`
	RequestID    string             `json:"request_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	AssigneeID   string             `json:"assignee_id"`
	AssigneeName string             `json:"assignee_name"`
	Status       models.TaskStatus  `json:"status"`
	StatusHuman  string             `json:"status_human"`
	Priority     models.MocPriority `json:"priority"`
	DueDate      *time.Time         `json:"due_date"`
	CompletedAt  *time.Time         `json:"completed_at"`
	IsOverdue    bool               `json:"is_overdue"`
	CreatedAt    time.Time          `json:"created_at"`
}

func TaskConvert(rec dbmodels.Task, now time.Time) TaskView {
	assigneeName := ""
	if rec.Assignee != nil {
		assigneeName = strings.TrimSpace(fmt.Sprintf("%v %v", rec.Assignee.FirstName, rec.Assignee.LastName))
	}
	assigneeID := ""
	if rec.AssigneeID != nil {
		assigneeID = *rec.AssigneeID
	}
	return TaskView{
		ID:           rec.ID,
		RequestID:    rec.RequestID,
		Title:        rec.Title,
		Description:  rec.Description,
		AssigneeID:   assigneeID,
		AssigneeName: assigneeName,
		Status:       rec.Status,
		StatusHuman:  rec.Status.ToHuman(),
		Priority:     rec.Priority,
		DueDate:      rec.DueDate,
		CompletedAt:  rec.CompletedAt,
		IsOverdue:    rec.IsOverdue(now),
		CreatedAt:    rec.CreatedAt,
	}
}

type TaskStats struct {
	Total    int                       `json:"total"`
	ByStatus map[models.TaskStatus]int `json:"by_status"`
	Overdue  int                       `json:"overdue"`
}
