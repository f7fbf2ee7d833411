package models

import "github.com/pkg/errors"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

var taskStatusHumanName = map[TaskStatus]string{
	TaskStatusPending:    "Ожидает",
	TaskStatusInProgress: "В работе",
	TaskStatusCompleted:  "Выполнена",
	TaskStatusCancelled:  "Отменена",
}

func (s TaskStatus) ToHuman() string {
	if human, exist := taskStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsActive - задача учитывается при расчете просрочки
func (s TaskStatus) IsActive() bool {
	return s != TaskStatusCompleted && s != TaskStatusCancelled
}

func (s TaskStatus) Validate() error {
	if _, exist := taskStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус задачи: %v", s)
	}
	return nil
}
