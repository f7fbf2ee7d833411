package models

import (
	"github.com/pkg/errors"
)

// Ошибки движка жизненного цикла заявок.
// Все ошибки локальные и восстанавливаемые, вызывающая сторона
// исправляет запрос или повторяет операцию.
var (
	ErrNotFound               = errors.New("запись не найдена")
	ErrValidation             = errors.New("некорректные данные запроса")
	ErrInvalidTransition      = errors.New("недопустимый переход статуса")
	ErrMissingComment         = errors.New("отсутствует обязательный комментарий")
	ErrConcurrentModification = errors.New("запись изменена параллельной операцией, повторите запрос")
)

func NewInvalidTransition(current, attempted MocStatus) error {
	return errors.Wrapf(ErrInvalidTransition, "текущий статус %v, запрошенный %v", current, attempted)
}

func NewValidationError(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}
