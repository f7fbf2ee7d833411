package dbmodels

import (
	"fmt"
	"time"

	"moc-tools-backend/models"
)

type OrgUser struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);index"`
	IsActive    bool
	PhoneNumber string `gorm:"type:varchar(15)"`
	OrgID       string `gorm:"type:varchar(36);index"`
	JobTitle    string `gorm:"type:varchar(255)"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
	PushEnabled bool
	LastLogin   time.Time
}

func (r OrgUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
