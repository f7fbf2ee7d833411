package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMocStatusFlow(t *testing.T) {
	t.Run("допустимые переходы", func(t *testing.T) {
		require.True(t, MocStatusDraft.IsAllowChange(MocStatusSubmitted))
		require.True(t, MocStatusSubmitted.IsAllowChange(MocStatusUnderReview))
		require.True(t, MocStatusUnderReview.IsAllowChange(MocStatusApproved))
		require.True(t, MocStatusUnderReview.IsAllowChange(MocStatusRejected))
		require.True(t, MocStatusApproved.IsAllowChange(MocStatusImplemented))
	})
	t.Run("недопустимые переходы", func(t *testing.T) {
		require.False(t, MocStatusDraft.IsAllowChange(MocStatusApproved))
		require.False(t, MocStatusDraft.IsAllowChange(MocStatusImplemented))
		require.False(t, MocStatusSubmitted.IsAllowChange(MocStatusDraft))
		require.False(t, MocStatusUnderReview.IsAllowChange(MocStatusImplemented))
		require.False(t, MocStatusApproved.IsAllowChange(MocStatusRejected))
	})
	t.Run("из конечных статусов", func(t *testing.T) {
		for _, newStatus := range []MocStatus{MocStatusDraft, MocStatusSubmitted, MocStatusUnderReview, MocStatusApproved, MocStatusImplemented} {
			require.False(t, MocStatusRejected.IsAllowChange(newStatus))
			require.False(t, MocStatusImplemented.IsAllowChange(newStatus))
		}
	})
}

func TestMocStatusFlags(t *testing.T) {
	t.Run("конечные статусы", func(t *testing.T) {
		require.False(t, MocStatusDraft.IsFinished())
		require.False(t, MocStatusSubmitted.IsFinished())
		require.False(t, MocStatusUnderReview.IsFinished())
		require.True(t, MocStatusApproved.IsFinished())
		require.True(t, MocStatusRejected.IsFinished())
		require.True(t, MocStatusImplemented.IsFinished())
	})
	t.Run("решения согласующих", func(t *testing.T) {
		require.False(t, MocStatusDraft.AllowDecision())
		require.True(t, MocStatusSubmitted.AllowDecision())
		require.True(t, MocStatusUnderReview.AllowDecision())
		require.False(t, MocStatusApproved.AllowDecision())
	})
	t.Run("изменение автором", func(t *testing.T) {
		require.True(t, MocStatusDraft.AllowEdit())
		require.False(t, MocStatusSubmitted.AllowEdit())
		require.True(t, MocStatusUnderReview.AllowEdit())
		require.False(t, MocStatusRejected.AllowEdit())
	})
}

func TestMocStatusValidate(t *testing.T) {
	require.NoError(t, MocStatusUnderReview.Validate())
	require.Error(t, MocStatus("UNKNOWN").Validate())
}
