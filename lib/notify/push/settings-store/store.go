package pushsettingsstore

import (
	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PushSettings) error
	Update(userID string, code models.PushSettingCode, updMap map[string]interface{}) error
	List(userID string) (settingsList []dbmodels.PushSettings, err error)
	GetByCode(userID string, code models.PushSettingCode) (*dbmodels.PushSettings, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PushSettings) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) Update(userID string, code models.PushSettingCode, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.PushSettings{}).
		Where("user_id = ?", userID).
		Where("code = ?", code).
		Updates(updMap).
		Error
}

func (i impl) List(userID string) (settingsList []dbmodels.PushSettings, err error) {
	tx := i.db.Model(dbmodels.PushSettings{})
	err = tx.
		Where("user_id = ?", userID).
		Find(&settingsList).
		Error
	if err != nil {
		return nil, err
	}
	return settingsList, nil
}

// GetByCode - при отсутствии записи возвращает nil, действуют значения по умолчанию
func (i impl) GetByCode(userID string, code models.PushSettingCode) (*dbmodels.PushSettings, error) {
	rec := dbmodels.PushSettings{}
	err := i.db.Model(dbmodels.PushSettings{}).
		Where("user_id = ?", userID).
		Where("code = ?", code).
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
