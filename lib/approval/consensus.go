package approvalhandler

import (
	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"
)

// Consensus вычисляет итог согласования по всем согласующим заявки:
// - любое отклонение - итог Rejected (вето, независимо от остальных);
// - иначе любой запрос изменений - итог ChangesRequested;
// - иначе все согласовали - итог Approved (требуется единогласие,
//   частичное согласование заявку не продвигает);
// - иначе остаются нерешенные - итог Pending, переход не выполняется.
func Consensus(approvers []dbmodels.Approver) models.ApprovalState {
	if len(approvers) == 0 {
		return models.AStatePending
	}
	hasChangesRequested := false
	hasPending := false
	for _, approver := range approvers {
		switch approver.State {
		case models.AStateRejected:
			return models.AStateRejected
		case models.AStateChangesRequested:
			hasChangesRequested = true
		case models.AStateApproved:
		default:
			hasPending = true
		}
	}
	if hasChangesRequested {
		return models.AStateChangesRequested
	}
	if hasPending {
		return models.AStatePending
	}
	return models.AStateApproved
}
