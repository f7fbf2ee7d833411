package dbmodels

import (
	"time"

	"moc-tools-backend/models"
)

type Task struct {
	BaseOrgModel
	RequestID   string `gorm:"type:varchar(36);index"`
	Title       string `gorm:"type:varchar(255)"`
	Description string
	AssigneeID  *string  `gorm:"type:varchar(36)"`
	Assignee    *OrgUser `gorm:"foreignKey:AssigneeID"`
	CreatorID   string   `gorm:"type:varchar(36)"`
	Status      models.TaskStatus  `gorm:"type:varchar(50)"`
	Priority    models.MocPriority `gorm:"type:varchar(100)"`
	DueDate     *time.Time
	CompletedAt *time.Time
}

// IsOverdue - задача просрочена: не завершена, срок задан и уже прошел
func (t Task) IsOverdue(now time.Time) bool {
	return t.Status.IsActive() && t.DueDate != nil && t.DueDate.Before(now)
}
