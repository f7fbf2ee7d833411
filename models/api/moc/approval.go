package mocapimodels

import (
	"fmt"
	"strings"
	"time"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
)

type Approvers struct {
	Approvers []ApproverData `json:"approvers"`
}

func (v Approvers) Validate() error {
	for _, item := range v.Approvers {
		err := item.Validate()
		if err != nil {
			return err
		}
	}
	return nil
}

type ApproverData struct {
	UserID       string `json:"user_id"`
	RequiredRole string `json:"required_role"`
}

func (a ApproverData) Validate() error {
	if a.UserID == "" {
		return errors.New("отсутствует идентификатор пользователя")
	}
	return nil
}

type ApprovalDecision struct {
	Comment string `json:"comment"`
}

// ValidateForApprove - при согласовании комментарий не обязателен
func (v ApprovalDecision) ValidateForApprove() error {
	return nil
}

// ValidateForReject - отклонение и запрос изменений требуют обоснования
func (v ApprovalDecision) ValidateForReject() error {
	if v.Comment == "" {
		return models.ErrMissingComment
	}
	return nil
}

type ApproverView struct {
	ApproverData
	ID          string               `json:"id"`
	UserName    string               `json:"user_name"`
	State       models.ApprovalState `json:"state"`
	StateHuman  string               `json:"state_human"`
	Comment     string               `json:"comment"`
	RespondedAt *time.Time           `json:"responded_at"`
}

func ApproverConvert(rec dbmodels.Approver) ApproverView {
	userName := ""
	if rec.User != nil {
		userName = strings.TrimSpace(fmt.Sprintf("%v %v", rec.User.FirstName, rec.User.LastName))
	}
	return ApproverView{
		ApproverData: ApproverData{
			UserID:       rec.UserID,
			RequiredRole: rec.RequiredRole,
		},
		ID:          rec.ID,
		UserName:    userName,
		State:       rec.State,
		StateHuman:  rec.State.ToHuman(),
		Comment:     rec.Comment,
		RespondedAt: rec.RespondedAt,
	}
}
