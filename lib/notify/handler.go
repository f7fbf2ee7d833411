package notifyhandler

import (
	"time"

	"moc-tools-backend/config"
	"moc-tools-backend/db"
	pushdatastore "moc-tools-backend/lib/notify/push/data-store"
	pushsettingsstore "moc-tools-backend/lib/notify/push/settings-store"
	orgusersstore "moc-tools-backend/lib/org/users/store"
	"moc-tools-backend/lib/smtp"
	connectionhub "moc-tools-backend/lib/ws/hub/connection-hub"
	notifyapimodels "moc-tools-backend/models/api/notify"
	dbmodels "moc-tools-backend/models/db"
	wsmodels "moc-tools-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Notify(targets []Target)
	SendNotification(target Target)
	ListSettings(userID string) ([]notifyapimodels.PushSettingView, error)
	UpdateSetting(userID string, data notifyapimodels.PushSettingUpdateData) error
	ListFeed(userID string) ([]notifyapimodels.NotificationView, error)
	MarkViewed(userID string, ids []string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		orgUserStore:      orgusersstore.NewInstance(db.DB),
		pushSettingsStore: pushsettingsstore.NewInstance(db.DB),
		pushDataStore:     pushdatastore.NewInstance(db.DB),
	}
}

type impl struct {
	orgUserStore      orgusersstore.Provider
	pushSettingsStore pushsettingsstore.Provider
	pushDataStore     pushdatastore.Provider
}

func (i impl) getLogger(userID, code string) *log.Entry {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", code)
	return logger
}

func (i impl) Notify(targets []Target) {
	for _, target := range targets {
		i.SendNotification(target)
	}
}

func (i impl) SendNotification(target Target) {
	logger := i.getLogger(target.UserID, string(target.Data.Code))
	user, err := i.orgUserStore.GetByID(target.UserID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя")
		return
	}
	if user == nil {
		logger.Error("пользователь не найден")
		return
	}
	if !user.PushEnabled {
		return
	}
	pushSetting, err := i.pushSettingsStore.GetByCode(target.UserID, target.Data.Code)
	if err != nil {
		logger.WithError(err).Error("ошибка получения настройки по событию")
		return
	}
	systemEnabled := true
	emailEnabled := false
	if pushSetting != nil {
		systemEnabled = pushSetting.SystemEnabled()
		emailEnabled = pushSetting.EmailEnabled()
	}
	if systemEnabled {
		i.sendSystem(target)
	}
	if emailEnabled {
		i.sendEmail(user.Email, target)
	}
}

func dbPushData(target Target) dbmodels.PushData {
	return dbmodels.PushData{
		UserID:    target.UserID,
		Code:      target.Data.Code,
		Title:     target.Data.Title,
		Msg:       target.Data.Msg,
		RequestID: target.RequestID,
	}
}

// sendSystem сохраняет уведомление и досылает его в открытое ws-соединение
func (i impl) sendSystem(target Target) {
	logger := i.getLogger(target.UserID, string(target.Data.Code))
	rec := dbPushData(target)
	err := i.pushDataStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения уведомления")
		return
	}
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(target.UserID) {
		msg := wsmodels.ServerMessage{
			ToUserID:  target.UserID,
			Time:      time.Now().Format("02.01.2006 15:04:05"),
			Code:      string(target.Data.Code),
			Title:     target.Data.Title,
			Msg:       target.Data.Msg,
			RequestID: target.RequestID,
		}
		connectionhub.Instance.SendMessage(msg)
	}
}

func (i impl) sendEmail(email string, target Target) {
	logger := i.getLogger(target.UserID, string(target.Data.Code))
	if email == "" || smtp.Instance == nil {
		return
	}
	err := smtp.Instance.SendEMail(config.Conf.Smtp.User, email, target.Data.Msg, target.Data.Title)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки email уведомления")
	}
}
