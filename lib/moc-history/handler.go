package mochistoryhandler

import (
	"moc-tools-backend/db"
	mochistorystore "moc-tools-backend/lib/moc-history/store"
	"moc-tools-backend/models"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	List(orgID, requestID string) ([]mocapimodels.HistoryEventView, error)
	Append(orgID, requestID, actorID string, eventType models.HistoryEventType, details dbmodels.EntityChanges)
	// AppendStrict - для записей в рамках транзакции перехода статуса:
	// переход и его запись в журнале фиксируются только вместе
	AppendStrict(orgID, requestID, actorID string, eventType models.HistoryEventType, details dbmodels.EntityChanges) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: mochistorystore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: mochistorystore.NewInstance(tx),
	}
}

type impl struct {
	store mochistorystore.Provider
}

func (i impl) List(orgID, requestID string) ([]mocapimodels.HistoryEventView, error) {
	list, err := i.store.List(orgID, requestID)
	if err != nil {
		return nil, err
	}
	result := make([]mocapimodels.HistoryEventView, 0, len(list))
	for _, rec := range list {
		result = append(result, mocapimodels.HistoryEventConvert(rec))
	}
	return result, nil
}

// Append добавляет запись в журнал заявки. Журнал только пополняется,
// записи не изменяются и не удаляются.
func (i impl) Append(orgID, requestID, actorID string, eventType models.HistoryEventType, details dbmodels.EntityChanges) {
	rec := dbmodels.HistoryEvent{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrgID: orgID,
		},
		RequestID: requestID,
		ActorID:   actorID,
		EventType: eventType,
		Details:   details,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("org_id", orgID).
			WithField("request_id", requestID).
			WithError(err).
			Error("Ошибка добавления записи в журнал заявки")
	}
}

func (i impl) AppendStrict(orgID, requestID, actorID string, eventType models.HistoryEventType, details dbmodels.EntityChanges) error {
	rec := dbmodels.HistoryEvent{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrgID: orgID,
		},
		RequestID: requestID,
		ActorID:   actorID,
		EventType: eventType,
		Details:   details,
	}
	_, err := i.store.Create(rec)
	return err
}
