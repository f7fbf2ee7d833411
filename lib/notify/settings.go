package notifyhandler

import (
	"sort"

	"moc-tools-backend/models"
	notifyapimodels "moc-tools-backend/models/api/notify"
	dbmodels "moc-tools-backend/models/db"
)

// ListSettings отдает настройки каналов по всем кодам событий,
// отсутствующая запись означает значения по умолчанию
func (i impl) ListSettings(userID string) ([]notifyapimodels.PushSettingView, error) {
	stored, err := i.pushSettingsStore.List(userID)
	if err != nil {
		return nil, err
	}
	byCode := map[models.PushSettingCode]int{}
	for idx, rec := range stored {
		byCode[rec.Code] = idx
	}
	result := make([]notifyapimodels.PushSettingView, 0, len(models.PushCodeMap))
	for code, tpl := range models.PushCodeMap {
		view := notifyapimodels.PushSettingView{
			Code:          code,
			Name:          tpl.Name,
			SystemEnabled: true,
			EmailEnabled:  false,
		}
		if idx, ok := byCode[code]; ok {
			view.SystemEnabled = stored[idx].SystemEnabled()
			view.EmailEnabled = stored[idx].EmailEnabled()
		}
		result = append(result, view)
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].Code < result[b].Code
	})
	return result, nil
}

func dbPushSetting(userID string, data notifyapimodels.PushSettingUpdateData) dbmodels.PushSettings {
	return dbmodels.PushSettings{
		UserID:      userID,
		Code:        data.Code,
		SystemValue: data.SystemValue,
		EmailValue:  data.EmailValue,
	}
}

func (i impl) UpdateSetting(userID string, data notifyapimodels.PushSettingUpdateData) error {
	existing, err := i.pushSettingsStore.GetByCode(userID, data.Code)
	if err != nil {
		return err
	}
	if existing == nil {
		rec := dbPushSetting(userID, data)
		return i.pushSettingsStore.Create(rec)
	}
	updMap := map[string]interface{}{}
	if data.SystemValue != nil {
		updMap["system_value"] = *data.SystemValue
	}
	if data.EmailValue != nil {
		updMap["email_value"] = *data.EmailValue
	}
	if len(updMap) == 0 {
		return nil
	}
	return i.pushSettingsStore.Update(userID, data.Code, updMap)
}

func (i impl) ListFeed(userID string) ([]notifyapimodels.NotificationView, error) {
	list, err := i.pushDataStore.List(userID)
	if err != nil {
		return nil, err
	}
	result := make([]notifyapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notifyapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) MarkViewed(userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.pushDataStore.MarkViewed(userID, ids)
}
