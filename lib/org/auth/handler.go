package authhandler

import (
	"time"

	"moc-tools-backend/config"
	"moc-tools-backend/db"
	orgstore "moc-tools-backend/lib/org/store"
	orgusersstore "moc-tools-backend/lib/org/users/store"
	orgapimodels "moc-tools-backend/models/api/org"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Login(data orgapimodels.LoginData) (token string, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: orgusersstore.NewInstance(db.DB),
		orgStore:   orgstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore orgusersstore.Provider
	orgStore   orgstore.Provider
}

func (i impl) Login(data orgapimodels.LoginData) (token string, hMsg string, err error) {
	user, err := i.usersStore.GetByEmail(data.Email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "Неверный email или пароль", nil
	}
	if !user.IsActive {
		return "", "Учетная запись заблокирована", nil
	}
	org, err := i.orgStore.GetByID(user.OrgID)
	if err != nil {
		return "", "", err
	}
	if org == nil || !org.IsActive {
		return "", "Организация заблокирована", nil
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password))
	if err != nil {
		return "", "Неверный email или пароль", nil
	}

	ttl := time.Duration(config.Conf.Auth.TokenTTLHours) * time.Hour
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"org_id":  user.OrgID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = jwtToken.SignedString([]byte(config.Conf.Auth.JWTSecret))
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка выпуска токена")
	}
	updErr := i.usersStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if updErr != nil {
		log.
			WithField("user_id", user.ID).
			WithError(updErr).
			Error("Ошибка обновления даты входа")
	}
	return token, "", nil
}
