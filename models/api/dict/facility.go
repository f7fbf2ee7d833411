package dictapimodels

import (
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
)

type FacilityData struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (v FacilityData) Validate() error {
	if v.Name == "" {
		return errors.New("отсутствует название объекта")
	}
	return nil
}

type FacilityView struct {
	FacilityData
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

func FacilityConvert(rec dbmodels.Facility) FacilityView {
	return FacilityView{
		FacilityData: FacilityData{
			Name:        rec.Name,
			Code:        rec.Code,
			Address:     rec.Address,
			Description: rec.Description,
		},
		ID:       rec.ID,
		IsActive: rec.IsActive,
	}
}
