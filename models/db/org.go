package dbmodels

type Org struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Inn         string `gorm:"type:varchar(12)"`
	Kpp         string `gorm:"type:varchar(9)"`
	Address     string `gorm:"type:varchar(500)"`
	Description string
	IsActive    bool
}
