package facilityhandler

import (
	"moc-tools-backend/db"
	facilitystore "moc-tools-backend/lib/dicts/facility/store"
	dictapimodels "moc-tools-backend/models/api/dict"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(orgID string, data dictapimodels.FacilityData) (id string, err error)
	Get(orgID, id string) (*dictapimodels.FacilityView, error)
	Update(orgID, id string, data dictapimodels.FacilityData) error
	Delete(orgID, id string) error
	List(orgID string) ([]dictapimodels.FacilityView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: facilitystore.NewInstance(db.DB),
	}
}

type impl struct {
	store facilitystore.Provider
}

func (i impl) Create(orgID string, data dictapimodels.FacilityData) (id string, err error) {
	rec := dbmodels.Facility{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrgID: orgID,
		},
		Name:        data.Name,
		Code:        data.Code,
		Address:     data.Address,
		Description: data.Description,
		IsActive:    true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания объекта")
	}
	return id, nil
}

func (i impl) Get(orgID, id string) (*dictapimodels.FacilityView, error) {
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	result := dictapimodels.FacilityConvert(*rec)
	return &result, nil
}

func (i impl) Update(orgID, id string, data dictapimodels.FacilityData) error {
	updMap := map[string]interface{}{
		"name":        data.Name,
		"code":        data.Code,
		"address":     data.Address,
		"description": data.Description,
	}
	err := i.store.Update(orgID, id, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка изменения объекта")
	}
	return nil
}

func (i impl) Delete(orgID, id string) error {
	return i.store.Delete(orgID, id)
}

func (i impl) List(orgID string) ([]dictapimodels.FacilityView, error) {
	list, err := i.store.List(orgID)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.FacilityView, 0, len(list))
	for _, rec := range list {
		result = append(result, dictapimodels.FacilityConvert(rec))
	}
	return result, nil
}
