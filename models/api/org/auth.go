package orgapimodels

import (
	"github.com/pkg/errors"
)

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (v LoginData) Validate() error {
	if v.Email == "" {
		return errors.New("отсутствует email")
	}
	if v.Password == "" {
		return errors.New("отсутствует пароль")
	}
	return nil
}

type LoginResponse struct {
	Token string `json:"token"`
}
