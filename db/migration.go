package db

import (
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Org{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Org")
	}
	if err := DB.AutoMigrate(&dbmodels.OrgUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры OrgUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Facility{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Facility")
	}
	if err := DB.AutoMigrate(&dbmodels.MocRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MocRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.Approver{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Approver")
	}
	if err := DB.AutoMigrate(&dbmodels.Task{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Task")
	}
	if err := DB.AutoMigrate(&dbmodels.HistoryEvent{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры HistoryEvent")
	}
	if err := DB.AutoMigrate(&dbmodels.MocCounter{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MocCounter")
	}
	if err := DB.AutoMigrate(&dbmodels.PushData{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PushData")
	}
	if err := DB.AutoMigrate(&dbmodels.PushSettings{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PushSettings")
	}
	if err := DB.AutoMigrate(&dbmodels.FileRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileRecord")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
