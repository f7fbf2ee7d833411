package mocreqstore

import (
	"moc-tools-backend/models"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.MocRequest) (id string, err error)
	GetByID(orgID, id string) (rec *dbmodels.MocRequest, err error)
	Update(orgID, id string, updMap map[string]interface{}) error
	UpdateWithVersion(orgID, id string, version int64, updMap map[string]interface{}) error
	Delete(orgID, id string) error
	List(orgID string, filter mocapimodels.MocFilter) (list []dbmodels.MocRequest, err error)
	ListCount(orgID string, filter mocapimodels.MocFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MocRequest) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(orgID, id string) (*dbmodels.MocRequest, error) {
	rec := dbmodels.MocRequest{}
	err := i.db.
		Where("id = ?", id).
		Where("org_id = ?", orgID).
		Preload("Author").
		Preload("Facility").
		Preload("Approvers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Approvers.User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(orgID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.MocRequest{}).
		Where("id = ?", id).
		Where("org_id = ?", orgID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// UpdateWithVersion применяет изменения только если версия записи не
// изменилась с момента чтения, иначе возвращает ErrConcurrentModification
func (i impl) UpdateWithVersion(orgID, id string, version int64, updMap map[string]interface{}) error {
	updMap["version"] = version + 1
	tx := i.db.
		Model(&dbmodels.MocRequest{}).
		Where("id = ?", id).
		Where("org_id = ?", orgID).
		Where("version = ?", version).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrConcurrentModification
	}
	return nil
}

func (i impl) Delete(orgID, id string) error {
	rec := dbmodels.MocRequest{
		BaseOrgModel: dbmodels.BaseOrgModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			OrgID:     orgID,
		},
	}
	err := i.db.
		Delete(&rec).
		Error

	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(orgID string, filter mocapimodels.MocFilter) (list []dbmodels.MocRequest, err error) {
	list = []dbmodels.MocRequest{}
	tx := i.getListTx(orgID, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx = tx.
		Preload("Author").
		Preload("Facility").
		Preload("Approvers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Approvers.User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(orgID string, filter mocapimodels.MocFilter) (count int64, err error) {
	tx := i.getListTx(orgID, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) getListTx(orgID string, filter mocapimodels.MocFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.MocRequest{}).
		Where("org_id = ?", orgID)
	if len(filter.Statuses) > 0 {
		tx = tx.Where("status in (?)", filter.Statuses)
	}
	if filter.FacilityID != "" {
		tx = tx.Where("facility_id = ?", filter.FacilityID)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.ChangeType != "" {
		tx = tx.Where("change_type = ?", filter.ChangeType)
	}
	if filter.AuthorID != "" {
		tx = tx.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.Where("request_number ILIKE ? OR title ILIKE ?", search, search)
	}
	return tx
}
