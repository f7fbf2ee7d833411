package dbmodels

import (
	"moc-tools-backend/models"
)

// PushSettings - настройка каналов уведомления по коду события
type PushSettings struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);index"`
	Code        models.PushSettingCode `gorm:"type:varchar(100)"`
	SystemValue *bool
	EmailValue  *bool
}

func (p PushSettings) SystemEnabled() bool {
	// по умолчанию внутрисистемные уведомления включены
	return p.SystemValue == nil || *p.SystemValue
}

func (p PushSettings) EmailEnabled() bool {
	return p.EmailValue != nil && *p.EmailValue
}
