package approvalstore

import (
	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Approver) (id string, err error)
	GetByID(orgID, id string) (rec *dbmodels.Approver, err error)
	Update(orgID, id string, updMap map[string]interface{}) error
	Delete(orgID, id string) error
	List(orgID, requestID string) (list []dbmodels.Approver, err error)
	ResetToPending(orgID, requestID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Approver) (id string, err error) {
	err = i.db.
		Omit("User").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(orgID, id string) (*dbmodels.Approver, error) {
	rec := dbmodels.Approver{}
	err := i.db.
		Where("id = ?", id).
		Where("org_id = ?", orgID).
		Preload("User").
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
		Model(&dbmodels.Approver{}).
		Where("id = ?", id).
		Where("org_id = ?", orgID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(orgID, id string) error {
	rec := dbmodels.Approver{
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

func (i impl) List(orgID, requestID string) (list []dbmodels.Approver, err error) {
	list = []dbmodels.Approver{}
	tx := i.db.
		Where("org_id = ?", orgID).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Preload("User")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ResetToPending(orgID, requestID string) error {
	updMap := map[string]interface{}{
		"state":        models.AStatePending,
		"comment":      "",
		"responded_at": nil,
	}
	err := i.db.
		Model(&dbmodels.Approver{}).
		Where("org_id = ?", orgID).
		Where("request_id = ?", requestID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
