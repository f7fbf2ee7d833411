package numerator

import (
	"fmt"
	"time"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	NextRequestNumber(orgID string, now time.Time) (string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// NextRequestNumber выдает следующий номер заявки вида MOC-<год>-<NNNNN>.
// Счетчик отдельный на организацию и год, строка блокируется до конца транзакции.
func (i impl) NextRequestNumber(orgID string, now time.Time) (string, error) {
	year := now.Year()
	rec := dbmodels.MocCounter{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("org_id = ?", orgID).
		Where("year = ?", year).
		First(&rec).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.Wrap(err, "ошибка получения счетчика заявок")
		}
		rec = dbmodels.MocCounter{
			OrgID: orgID,
			Year:  year,
		}
	}
	rec.LastNumber++
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", saveErr(err)
	}
	return Format(year, rec.LastNumber), nil
}

// saveErr переводит конфликт уникальности при одновременной первой
// заявке года в ошибку конкурентного изменения, клиент повторяет запрос
func saveErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrap(models.ErrConcurrentModification, "счетчик заявок уже создан параллельно")
	}
	return errors.Wrap(err, "ошибка обновления счетчика заявок")
}

func Format(year int, number int64) string {
	return fmt.Sprintf("MOC-%d-%05d", year, number)
}
