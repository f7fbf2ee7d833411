package dbmodels

import (
	"moc-tools-backend/models"
)

// PushData - сохраненное внутрисистемное уведомление пользователя
type PushData struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);index"`
	Code      models.PushSettingCode `gorm:"type:varchar(100)"`
	Title     string `gorm:"type:varchar(255)"`
	Msg       string
	RequestID string `gorm:"type:varchar(36)"` // ссылка на заявку
	IsViewed  bool
}
