package dbmodels

type Facility struct {
	BaseOrgModel
	Name        string `gorm:"type:varchar(255)"`
	Code        string `gorm:"type:varchar(50)"`
	Address     string `gorm:"type:varchar(500)"`
	Description string
	IsActive    bool
}

func (f Facility) Validate() error {
	if err := f.BaseOrgModel.Validate(); err != nil {
		return err
	}
	return nil
}
