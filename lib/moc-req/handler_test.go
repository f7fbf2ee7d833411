package mocreqhandler

import (
	"testing"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestAllowContentEdit(t *testing.T) {
	t.Run("черновик правится свободно", func(t *testing.T) {
		rec := dbmodels.MocRequest{Status: models.MocStatusDraft}
		require.Empty(t, allowContentEdit(rec))
	})

	t.Run("на рассмотрении без решений правка доступна", func(t *testing.T) {
		rec := dbmodels.MocRequest{
			Status: models.MocStatusUnderReview,
			Approvers: []dbmodels.Approver{
				{State: models.AStatePending},
				{State: models.AStatePending},
			},
		}
		require.Empty(t, allowContentEdit(rec))
	})

	t.Run("решение согласующего блокирует правку", func(t *testing.T) {
		rec := dbmodels.MocRequest{
			Status: models.MocStatusUnderReview,
			Approvers: []dbmodels.Approver{
				{State: models.AStateApproved},
				{State: models.AStatePending},
			},
		}
		require.NotEmpty(t, allowContentEdit(rec))
	})

	t.Run("статусы без права правки", func(t *testing.T) {
		for _, status := range []models.MocStatus{
			models.MocStatusSubmitted,
			models.MocStatusApproved,
			models.MocStatusRejected,
			models.MocStatusImplemented,
		} {
			rec := dbmodels.MocRequest{Status: status}
			require.NotEmpty(t, allowContentEdit(rec), status)
		}
	})
}
