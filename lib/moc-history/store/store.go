package mochistorystore

import (
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.HistoryEvent) (id string, err error)
	List(orgID, requestID string) (list []dbmodels.HistoryEvent, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HistoryEvent) (id string, err error) {
	err = i.db.
		Omit("Actor").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(orgID, requestID string) (list []dbmodels.HistoryEvent, err error) {
	list = []dbmodels.HistoryEvent{}
	tx := i.db.
		Where("org_id = ?", orgID).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Preload("Actor")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
