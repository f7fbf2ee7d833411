package orgapimodels

import (
	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
)

type OrgUserData struct {
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number"`
	JobTitle    string          `json:"job_title"`
	Role        models.UserRole `json:"role"`
}

func (v OrgUserData) Validate() error {
	if v.Email == "" {
		return errors.New("отсутствует email")
	}
	if v.FirstName == "" || v.LastName == "" {
		return errors.New("не указаны имя и фамилия сотрудника")
	}
	return nil
}

type OrgUserCreateData struct {
	OrgUserData
	Password string `json:"password"`
}

func (v OrgUserCreateData) Validate() error {
	if err := v.OrgUserData.Validate(); err != nil {
		return err
	}
	if len(v.Password) < 8 {
		return errors.New("пароль должен содержать не менее 8 символов")
	}
	return nil
}

type OrgUserView struct {
	OrgUserData
	ID        string `json:"id"`
	OrgID     string `json:"org_id"`
	IsActive  bool   `json:"is_active"`
	RoleHuman string `json:"role_human"`
}

func OrgUserConvert(rec dbmodels.OrgUser) OrgUserView {
	return OrgUserView{
		OrgUserData: OrgUserData{
			Email:       rec.Email,
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			PhoneNumber: rec.PhoneNumber,
			JobTitle:    rec.JobTitle,
			Role:        rec.Role,
		},
		ID:        rec.ID,
		OrgID:     rec.OrgID,
		IsActive:  rec.IsActive,
		RoleHuman: rec.Role.ToHuman(),
	}
}
