package models

type HistoryEventType string

const (
	HistoryEventCreated          HistoryEventType = "created"
	HistoryEventStatusChanged    HistoryEventType = "status_changed"
	HistoryEventApproved         HistoryEventType = "approved"
	HistoryEventRejected         HistoryEventType = "rejected"
	HistoryEventChangesRequested HistoryEventType = "changes_requested"
	HistoryEventCommentAdded     HistoryEventType = "comment_added"
	HistoryEventTaskCreated      HistoryEventType = "task_created"
	HistoryEventApproversReset   HistoryEventType = "approvers_reset"
)

var historyEventHumanName = map[HistoryEventType]string{
	HistoryEventCreated:          "Заявка создана",
	HistoryEventStatusChanged:    "Изменён статус",
	HistoryEventApproved:         "Согласовано",
	HistoryEventRejected:         "Отклонено",
	HistoryEventChangesRequested: "Запрошены изменения",
	HistoryEventCommentAdded:     "Добавлен комментарий",
	HistoryEventTaskCreated:      "Создана задача",
	HistoryEventApproversReset:   "Решения согласующих сброшены",
}

func (t HistoryEventType) ToHuman() string {
	if human, exist := historyEventHumanName[t]; exist {
		return human
	}
	return string(t)
}
