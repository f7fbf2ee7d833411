package dbmodels

import (
	"time"

	"moc-tools-backend/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MocRequest struct {
	BaseOrgModel
	RequestNumber   string `gorm:"type:varchar(50);uniqueIndex"` // присваивается нумератором при подаче
	Title           string `gorm:"type:varchar(255)"`
	AuthorID        string
	Author          *OrgUser `gorm:"foreignKey:AuthorID"`
	FacilityID      *string  `gorm:"type:varchar(36);index:idx_moc_facility"`
	Facility        *Facility
	ChangeType      models.ChangeType  `gorm:"type:varchar(100)"`
	Priority        models.MocPriority `gorm:"type:varchar(100)"`
	Status          models.MocStatus   `gorm:"type:varchar(50);index"`
	Description     string
	Justification   string         // обоснование изменения
	RiskProbability int            // вероятность, 1-5
	RiskSeverity    int            // тяжесть последствий, 1-5
	RiskCategory    string         `gorm:"type:varchar(255)"`
	IsTemporary     bool           // временное изменение
	AffectedAreas   pq.StringArray `gorm:"type:text[]"` // затронутые системы/участки
	TargetDate      *time.Time     // плановая дата внедрения
	ReviewDeadline  *time.Time     // срок рассмотрения
	SubmittedAt     *time.Time
	CompletedAt     *time.Time
	Version         int64 // оптимистичная блокировка при пересчете консенсуса
	Approvers       []Approver     `gorm:"foreignKey:RequestID"`
	Tasks           []Task         `gorm:"foreignKey:RequestID"`
	HistoryEvents   []HistoryEvent `gorm:"foreignKey:RequestID"`
}

func (m *MocRequest) AfterDelete(tx *gorm.DB) (err error) {
	if m.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("request_id = ?", m.ID).Delete(&Approver{})
	tx.Clauses(clause.Returning{}).Where("request_id = ?", m.ID).Delete(&Task{})
	tx.Clauses(clause.Returning{}).Where("request_id = ?", m.ID).Delete(&HistoryEvent{})
	return
}
