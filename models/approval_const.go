package models

type ApprovalState string

const (
	AStatePending          ApprovalState = "PENDING"
	AStateApproved         ApprovalState = "APPROVED"
	AStateRejected         ApprovalState = "REJECTED"
	AStateChangesRequested ApprovalState = "CHANGES_REQUESTED"
	AStateRemoved          ApprovalState = "REMOVED"
)

var approvalStateHumanName = map[ApprovalState]string{
	AStatePending:          "Ожидает решения",
	AStateApproved:         "Согласовано",
	AStateRejected:         "Отклонено",
	AStateChangesRequested: "Требуются изменения",
	AStateRemoved:          "Исключен из цепочки",
}

func (s ApprovalState) ToHuman() string {
	if human, exist := approvalStateHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsDecided - согласующий уже вынес решение
func (s ApprovalState) IsDecided() bool {
	return s == AStateApproved || s == AStateRejected || s == AStateChangesRequested
}

// CommentRequired - для решения обязателен комментарий
func (s ApprovalState) CommentRequired() bool {
	return s == AStateRejected || s == AStateChangesRequested
}
