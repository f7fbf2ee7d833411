package notifyapimodels

import (
	"time"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"
)

type PushSettingView struct {
	Code          models.PushSettingCode `json:"code"`
	Name          string                 `json:"name"`
	SystemEnabled bool                   `json:"system_enabled"`
	EmailEnabled  bool                   `json:"email_enabled"`
}

type PushSettingUpdateData struct {
	Code        models.PushSettingCode `json:"code"`
	SystemValue *bool                  `json:"system_value"`
	EmailValue  *bool                  `json:"email_value"`
}

func (v PushSettingUpdateData) Validate() error {
	if _, ok := models.PushCodeMap[v.Code]; !ok {
		return models.NewValidationError("неизвестный код события")
	}
	return nil
}

type NotificationView struct {
	ID        string                 `json:"id"`
	Code      models.PushSettingCode `json:"code"`
	Title     string                 `json:"title"`
	Msg       string                 `json:"msg"`
	RequestID string                 `json:"request_id"`
	IsViewed  bool                   `json:"is_viewed"`
	CreatedAt time.Time              `json:"created_at"`
}

func NotificationConvert(rec dbmodels.PushData) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Code:      rec.Code,
		Title:     rec.Title,
		Msg:       rec.Msg,
		RequestID: rec.RequestID,
		IsViewed:  rec.IsViewed,
		CreatedAt: rec.CreatedAt,
	}
}

type MarkViewedData struct {
	IDs []string `json:"ids"`
}
