package analyticsstore

import (
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	ListRequests(orgID string, filter mocapimodels.AnalyticsFilter) (list []dbmodels.MocRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// ListRequests отбирает заявки, созданные в пределах периода,
// вместе с задачами для сводных показателей
func (i impl) ListRequests(orgID string, filter mocapimodels.AnalyticsFilter) (list []dbmodels.MocRequest, err error) {
	list = []dbmodels.MocRequest{}
	tx := i.db.
		Where("org_id = ?", orgID).
		Where("created_at >= ?", filter.From).
		Where("created_at <= ?", filter.To)
	if filter.FacilityID != "" {
		tx = tx.Where("facility_id = ?", filter.FacilityID)
	}
	err = tx.
		Preload("Tasks").
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
