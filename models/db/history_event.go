package dbmodels

import (
	"moc-tools-backend/models"
)

// HistoryEvent - журнал действий по заявке, только добавление записей
type HistoryEvent struct {
	BaseOrgModel
	RequestID string   `gorm:"type:varchar(36);index"`
	ActorID   string   `gorm:"type:varchar(36)"`
	Actor     *OrgUser `gorm:"foreignKey:ActorID"`
	EventType models.HistoryEventType `gorm:"type:varchar(50)"`
	Details   EntityChanges           `gorm:"type:jsonb"`
}
