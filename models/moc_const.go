package models

import (
	"github.com/pkg/errors"
)

type MocStatus string

const (
	MocStatusDraft       MocStatus = "DRAFT"
	MocStatusSubmitted   MocStatus = "SUBMITTED"
	MocStatusUnderReview MocStatus = "UNDER_REVIEW"
	MocStatusApproved    MocStatus = "APPROVED"
	MocStatusRejected    MocStatus = "REJECTED"
	MocStatusImplemented MocStatus = "IMPLEMENTED"
)

var mocStatusHumanName = map[MocStatus]string{
	MocStatusDraft:       "Черновик",
	MocStatusSubmitted:   "Подана",
	MocStatusUnderReview: "На согласовании",
	MocStatusApproved:    "Согласована",
	MocStatusRejected:    "Отклонена",
	MocStatusImplemented: "Внедрена",
}

func (s MocStatus) ToHuman() string {
	if human, exist := mocStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// допустимые переходы статуса заявки на изменение
var mocStatusFlow = map[MocStatus][]MocStatus{
	MocStatusDraft:       {MocStatusSubmitted},
	MocStatusSubmitted:   {MocStatusUnderReview},
	MocStatusUnderReview: {MocStatusApproved, MocStatusRejected},
	MocStatusApproved:    {MocStatusImplemented},
	MocStatusRejected:    {},
	MocStatusImplemented: {},
}

func (s MocStatus) IsAllowChange(newStatus MocStatus) bool {
	for _, allowed := range mocStatusFlow[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsFinished - заявка в конечном статусе, не учитывается при расчете просрочки
func (s MocStatus) IsFinished() bool {
	return s == MocStatusApproved || s == MocStatusRejected || s == MocStatusImplemented
}

// AllowDecision - по заявке допустимы решения согласующих
func (s MocStatus) AllowDecision() bool {
	return s == MocStatusSubmitted || s == MocStatusUnderReview
}

// AllowEdit - автор может изменять заявку
func (s MocStatus) AllowEdit() bool {
	return s == MocStatusDraft || s == MocStatusUnderReview
}

func (s MocStatus) Validate() error {
	if _, exist := mocStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус заявки: %v", s)
	}
	return nil
}

type ChangeType string

const (
	ChangeTypeEquipment ChangeType = "оборудование"
	ChangeTypeProcess   ChangeType = "технологический процесс"
	ChangeTypeProcedure ChangeType = "процедура"
	ChangeTypeOrg       ChangeType = "организационное изменение"
	ChangeTypeInfra     ChangeType = "инфраструктура"
)

func (c ChangeType) Validate() error {
	switch c {
	case ChangeTypeEquipment, ChangeTypeProcess, ChangeTypeProcedure, ChangeTypeOrg, ChangeTypeInfra:
		return nil
	}
	return errors.Errorf("неизвестный тип изменения: %v", c)
}

type MocPriority string

const (
	MocPriorityLow      MocPriority = "низкий"
	MocPriorityMedium   MocPriority = "средний"
	MocPriorityHigh     MocPriority = "высокий"
	MocPriorityCritical MocPriority = "критический"
)

func (p MocPriority) Validate() error {
	switch p {
	case MocPriorityLow, MocPriorityMedium, MocPriorityHigh, MocPriorityCritical:
		return nil
	}
	return errors.Errorf("неизвестный приоритет: %v", p)
}
