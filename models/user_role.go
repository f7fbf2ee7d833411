package models

type UserRole string

const (
	OrgAdminRole UserRole = "ORG_ADMIN_ROLE"
	OrgUserRole  UserRole = "ORG_USER_ROLE"
)

var roleHumanName = map[UserRole]string{
	OrgAdminRole: "Администратор",
	OrgUserRole:  "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsOrgAdmin() bool {
	return r == OrgAdminRole
}

const SystemUser = "Система"

type UserStatus string

const (
	OrgUserWorkingStatus   UserStatus = "WORKING"
	OrgUserDismissedStatus UserStatus = "DISMISSED"
)

var userStatusHumanName = map[UserStatus]string{
	OrgUserWorkingStatus:   "Работает",
	OrgUserDismissedStatus: "Уволен",
}

func (r UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}
