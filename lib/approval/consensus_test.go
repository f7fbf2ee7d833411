package approvalhandler

import (
	"testing"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func makeApprovers(states ...models.ApprovalState) []dbmodels.Approver {
	result := make([]dbmodels.Approver, 0, len(states))
	for _, state := range states {
		result = append(result, dbmodels.Approver{State: state})
	}
	return result
}

func TestConsensus(t *testing.T) {
	t.Run(`empty set stays pending`, func(t *testing.T) {
		require.Equal(t, models.AStatePending, Consensus(nil))
	})

	t.Run(`rejection is a veto`, func(t *testing.T) {
		require.Equal(t, models.AStateRejected,
			Consensus(makeApprovers(models.AStateApproved, models.AStateRejected)))
		require.Equal(t, models.AStateRejected,
			Consensus(makeApprovers(models.AStateRejected, models.AStatePending, models.AStateChangesRequested)))
	})

	t.Run(`changes requested wins over pending and approved`, func(t *testing.T) {
		require.Equal(t, models.AStateChangesRequested,
			Consensus(makeApprovers(models.AStateApproved, models.AStateChangesRequested, models.AStatePending)))
	})

	t.Run(`unanimity required for approval`, func(t *testing.T) {
		require.Equal(t, models.AStatePending,
			Consensus(makeApprovers(models.AStateApproved, models.AStateApproved, models.AStatePending)))
		require.Equal(t, models.AStateApproved,
			Consensus(makeApprovers(models.AStateApproved, models.AStateApproved, models.AStateApproved)))
	})

	t.Run(`single approver`, func(t *testing.T) {
		require.Equal(t, models.AStateApproved, Consensus(makeApprovers(models.AStateApproved)))
		require.Equal(t, models.AStatePending, Consensus(makeApprovers(models.AStatePending)))
	})
}
