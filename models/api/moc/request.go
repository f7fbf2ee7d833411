package mocapimodels

import (
	"time"

	"moc-tools-backend/models"
	apimodels "moc-tools-backend/models/api"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
)

type MocRequestData struct {
	Title           string             `json:"title"`            // название изменения
	FacilityID      string             `json:"facility_id"`      // ид объекта/установки
	ChangeType      models.ChangeType  `json:"change_type"`      // тип изменения
	Priority        models.MocPriority `json:"priority"`         // приоритет
	Description     string             `json:"description"`      // описание изменения
	Justification   string             `json:"justification"`    // обоснование
	RiskProbability int                `json:"risk_probability"` // вероятность, 1-5
	RiskSeverity    int                `json:"risk_severity"`    // тяжесть последствий, 1-5
	RiskCategory    string             `json:"risk_category"`    // категория риска
	IsTemporary     bool               `json:"is_temporary"`     // временное изменение
	AffectedAreas   []string           `json:"affected_areas"`   // затронутые системы/участки
	TargetDate      *time.Time         `json:"target_date"`      // плановая дата внедрения
	ReviewDeadline  *time.Time         `json:"review_deadline"`  // срок рассмотрения
}

// Validate - минимальные требования к черновику
func (v MocRequestData) Validate() error {
	if v.Title == "" {
		return models.NewValidationError("отсутствует название изменения")
	}
	if err := v.Priority.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := v.ChangeType.Validate(); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validateRiskValue(v.RiskProbability, true); err != nil {
		return err
	}
	if err := validateRiskValue(v.RiskSeverity, true); err != nil {
		return err
	}
	return nil
}

// ValidateForSubmit - полные требования перед подачей на согласование
func (v MocRequestData) ValidateForSubmit() error {
	if err := v.Validate(); err != nil {
		return err
	}
	if v.FacilityID == "" {
		return models.NewValidationError("отсутствует ссылка на объект")
	}
	if v.Description == "" {
		return models.NewValidationError("отсутствует описание изменения")
	}
	if v.Justification == "" {
		return models.NewValidationError("отсутствует обоснование изменения")
	}
	if err := validateRiskValue(v.RiskProbability, false); err != nil {
		return err
	}
	if err := validateRiskValue(v.RiskSeverity, false); err != nil {
		return err
	}
	if len(v.AffectedAreas) == 0 {
		return models.NewValidationError("не указаны затронутые системы/участки")
	}
	return nil
}

func validateRiskValue(value int, zeroAllowed bool) error {
	if value == 0 && zeroAllowed {
		return nil
	}
	if value < 1 || value > 5 {
		return models.NewValidationError("оценка риска должна быть в диапазоне от 1 до 5")
	}
	return nil
}

type MocRequestCreateData struct {
	MocRequestData
	Approvers
}

func (v MocRequestCreateData) Validate() error {
	if err := v.MocRequestData.Validate(); err != nil {
		return err
	}
	return v.Approvers.Validate()
}

type MocRequestEditData struct {
	MocRequestData
	Approvers
}

func (v MocRequestEditData) Validate() error {
	if err := v.MocRequestData.Validate(); err != nil {
		return err
	}
	return v.Approvers.Validate()
}

type MocFilter struct {
	apimodels.Pagination
	Statuses   []models.MocStatus `json:"statuses"`
	FacilityID string             `json:"facility_id"`
	Priority   models.MocPriority `json:"priority"`
	ChangeType models.ChangeType  `json:"change_type"`
	AuthorID   string             `json:"author_id"`
	Search     string             `json:"search"` // по номеру и названию
}

type MocRequestView struct {
	MocRequestData
	ID            string           `json:"id"`
	RequestNumber string           `json:"request_number"`
	Status        models.MocStatus `json:"status"`
	StatusHuman   string           `json:"status_human"`
	AuthorID      string           `json:"author_id"`
	AuthorName    string           `json:"author_name"`
	FacilityName  string           `json:"facility_name"`
	RiskScore     int              `json:"risk_score"`
	RiskTier      string           `json:"risk_tier"`
	CreatedAt     time.Time        `json:"created_at"`
	SubmittedAt   *time.Time       `json:"submitted_at"`
	CompletedAt   *time.Time       `json:"completed_at"`
	Approvers     []ApproverView   `json:"approvers"`
}

type CommentData struct {
	Comment string `json:"comment"`
}

func (v CommentData) Validate() error {
	if v.Comment == "" {
		return errors.New("отсутствует текст комментария")
	}
	return nil
}

func MocRequestConvert(rec dbmodels.MocRequest, score int, tier string) MocRequestView {
	result := MocRequestView{
		MocRequestData: MocRequestData{
			Title:           rec.Title,
			ChangeType:      rec.ChangeType,
			Priority:        rec.Priority,
			Description:     rec.Description,
			Justification:   rec.Justification,
			RiskProbability: rec.RiskProbability,
			RiskSeverity:    rec.RiskSeverity,
			RiskCategory:    rec.RiskCategory,
			IsTemporary:     rec.IsTemporary,
			AffectedAreas:   rec.AffectedAreas,
			TargetDate:      rec.TargetDate,
			ReviewDeadline:  rec.ReviewDeadline,
		},
		ID:            rec.ID,
		RequestNumber: rec.RequestNumber,
		Status:        rec.Status,
		StatusHuman:   rec.Status.ToHuman(),
		AuthorID:      rec.AuthorID,
		RiskScore:     score,
		RiskTier:      tier,
		CreatedAt:     rec.CreatedAt,
		SubmittedAt:   rec.SubmittedAt,
		CompletedAt:   rec.CompletedAt,
	}
	if rec.FacilityID != nil {
		result.FacilityID = *rec.FacilityID
	}
	if rec.Facility != nil {
		result.FacilityName = rec.Facility.Name
	}
	if rec.Author != nil {
		result.AuthorName = rec.Author.GetFullName()
	}
	result.Approvers = make([]ApproverView, 0, len(rec.Approvers))
	for _, approver := range rec.Approvers {
		result.Approvers = append(result.Approvers, ApproverConvert(approver))
	}
	return result
}
