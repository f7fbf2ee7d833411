package dbmodels

import (
	"time"

	"moc-tools-backend/models"
)

type Approver struct {
	BaseOrgModel
	RequestID    string   `gorm:"type:varchar(36);index"`
	UserID       string   `gorm:"type:varchar(36)"`
	User         *OrgUser `gorm:"foreignKey:UserID"`
	RequiredRole string   `gorm:"type:varchar(255)"` // роль согласующего в заявке (главный инженер, ОТиПБ и тд)
	State        models.ApprovalState `gorm:"type:varchar(50)"`
	Comment      string
	RespondedAt  *time.Time
}
