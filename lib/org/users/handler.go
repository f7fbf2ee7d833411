package orgusershandler

import (
	"moc-tools-backend/db"
	orgusersstore "moc-tools-backend/lib/org/users/store"
	"moc-tools-backend/models"
	orgapimodels "moc-tools-backend/models/api/org"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Create(orgID string, data orgapimodels.OrgUserCreateData) (id string, hMsg string, err error)
	Update(orgID, id string, data orgapimodels.OrgUserData) (hMsg string, err error)
	Get(orgID, id string) (*orgapimodels.OrgUserView, error)
	List(orgID string) ([]orgapimodels.OrgUserView, error)
	Deactivate(orgID, id string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: orgusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store orgusersstore.Provider
}

func (i impl) Create(orgID string, data orgapimodels.OrgUserCreateData) (id string, hMsg string, err error) {
	existing, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "Сотрудник с таким email уже зарегистрирован", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	role := data.Role
	if role == "" {
		role = models.OrgUserRole
	}
	rec := dbmodels.OrgUser{
		Password:    string(hash),
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		IsActive:    true,
		PhoneNumber: data.PhoneNumber,
		OrgID:       orgID,
		JobTitle:    data.JobTitle,
		Role:        role,
		PushEnabled: true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания сотрудника")
	}
	return id, "", nil
}

func (i impl) Update(orgID, id string, data orgapimodels.OrgUserData) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.OrgID != orgID {
		return "Сотрудник не найден", nil
	}
	updMap := map[string]interface{}{
		"first_name":   data.FirstName,
		"last_name":    data.LastName,
		"phone_number": data.PhoneNumber,
		"job_title":    data.JobTitle,
	}
	if data.Role != "" {
		updMap["role"] = data.Role
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка изменения сотрудника")
	}
	return "", nil
}

func (i impl) Get(orgID, id string) (*orgapimodels.OrgUserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.OrgID != orgID {
		return nil, nil
	}
	result := orgapimodels.OrgUserConvert(*rec)
	return &result, nil
}

func (i impl) List(orgID string) ([]orgapimodels.OrgUserView, error) {
	list, err := i.store.List(orgID)
	if err != nil {
		return nil, err
	}
	result := make([]orgapimodels.OrgUserView, 0, len(list))
	for _, rec := range list {
		result = append(result, orgapimodels.OrgUserConvert(rec))
	}
	return result, nil
}

func (i impl) Deactivate(orgID, id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.OrgID != orgID {
		return "Сотрудник не найден", nil
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": false})
	if err != nil {
		return "", errors.Wrap(err, "ошибка блокировки сотрудника")
	}
	return "", nil
}
