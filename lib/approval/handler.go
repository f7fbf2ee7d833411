package approvalhandler

import (
	"fmt"

	"moc-tools-backend/db"
	approvalstore "moc-tools-backend/lib/approval/store"
	orgusersstore "moc-tools-backend/lib/org/users/store"
	"moc-tools-backend/models"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Get(orgID, requestID string) ([]mocapimodels.ApproverView, error)
	Save(orgID, requestID string, approvers []mocapimodels.ApproverData) (hMsg string, err error)
	Consensus(orgID, requestID string) (models.ApprovalState, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         approvalstore.NewInstance(db.DB),
		orgUsersStore: orgusersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:         approvalstore.NewInstance(tx),
		orgUsersStore: orgusersstore.NewInstance(tx),
	}
}

type impl struct {
	store         approvalstore.Provider
	orgUsersStore orgusersstore.Provider
}

func (i impl) GetLogger(orgID, requestID string) *log.Entry {
	logger := log.
		WithField("org_id", orgID).
		WithField("request_id", requestID)
	return logger
}

func (i impl) Get(orgID, requestID string) ([]mocapimodels.ApproverView, error) {
	currentList, err := i.store.List(orgID, requestID)
	if err != nil {
		return nil, err
	}
	result := make([]mocapimodels.ApproverView, 0, len(currentList))
	for _, rec := range currentList {
		result = append(result, mocapimodels.ApproverConvert(rec))
	}
	return result, nil
}

// Save синхронизирует цепочку согласующих с переданным списком.
// Допустимо только пока никто не вынес решение.
func (i impl) Save(orgID, requestID string, approvers []mocapimodels.ApproverData) (hMsg string, err error) {
	usersMap := map[string]int{}                //0-оставить/1-добавить/-1 удалить
	currentMap := map[string]dbmodels.Approver{} //[userid]rec
	currentList, err := i.store.List(orgID, requestID)
	if err != nil {
		return "", err
	}
	for _, current := range currentList {
		if current.State.IsDecided() {
			return "Изменение цепочки согласования недоступно, по заявке уже есть решения", nil
		}
		usersMap[current.UserID] = -1
		currentMap[current.UserID] = current
	}

	roleMap := map[string]string{}
	for _, approver := range approvers {
		user, err := i.orgUsersStore.GetByID(approver.UserID)
		if err != nil {
			return "", err
		}
		if user == nil || user.OrgID != orgID {
			return fmt.Sprintf("Сотрудник %v не найден в справочнике сотрудников", approver.UserID), nil
		}

		what, ok := usersMap[approver.UserID]
		if ok {
			if what < 0 {
				usersMap[approver.UserID] = 0
			} else {
				return fmt.Sprintf("Сотрудник %v уже был указан в цепочке согласования", user.GetFullName()), nil
			}
		} else {
			usersMap[approver.UserID] = 1
		}
		roleMap[approver.UserID] = approver.RequiredRole
	}
	for userID, what := range usersMap {
		switch what {
		case -1: // удаляем отсутствующих
			currentRec, ok := currentMap[userID]
			if ok {
				err = i.store.Delete(orgID, currentRec.ID)
				if err != nil {
					return "", err
				}
			}
		case 1: // добавляем новых
			rec := dbmodels.Approver{
				BaseOrgModel: dbmodels.BaseOrgModel{
					OrgID: orgID,
				},
				RequestID:    requestID,
				UserID:       userID,
				RequiredRole: roleMap[userID],
				State:        models.AStatePending,
			}
			_, err := i.store.Create(rec)
			if err != nil {
				return "", errors.Wrapf(err, "Ошибка сохранения цепочки согласования, approver=%+v", rec)
			}
		}
	}
	return "", nil
}

// Consensus перечитывает согласующих и возвращает итог по правилам вето/единогласия
func (i impl) Consensus(orgID, requestID string) (models.ApprovalState, error) {
	list, err := i.store.List(orgID, requestID)
	if err != nil {
		return models.AStatePending, err
	}
	return Consensus(list), nil
}
