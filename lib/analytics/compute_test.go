package analyticshandler

import (
	"testing"
	"time"

	"moc-tools-backend/models"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func approvedRequest(submitted, completed time.Time) dbmodels.MocRequest {
	return dbmodels.MocRequest{
		Status:      models.MocStatusApproved,
		SubmittedAt: &submitted,
		CompletedAt: &completed,
	}
}

func TestAvgApprovalDays(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("без согласованных заявок показатель отсутствует", func(t *testing.T) {
		list := []dbmodels.MocRequest{
			{Status: models.MocStatusUnderReview},
			{Status: models.MocStatusRejected},
		}
		require.Nil(t, AvgApprovalDays(list))
	})

	t.Run("дни округляются вверх по каждой заявке", func(t *testing.T) {
		// 7 дней 6 часов -> 8 дней
		list := []dbmodels.MocRequest{
			approvedRequest(base, base.Add(7*24*time.Hour+6*time.Hour)),
		}
		result := AvgApprovalDays(list)
		require.NotNil(t, result)
		require.Equal(t, 8, *result)
	})

	t.Run("среднее округляется до ближайшего целого", func(t *testing.T) {
		// 8 и 5 дней -> среднее 6.5 -> 7
		list := []dbmodels.MocRequest{
			approvedRequest(base, base.Add(8*24*time.Hour)),
			approvedRequest(base, base.Add(5*24*time.Hour)),
		}
		result := AvgApprovalDays(list)
		require.NotNil(t, result)
		require.Equal(t, 7, *result)
	})

	t.Run("внедренные заявки учитываются", func(t *testing.T) {
		completed := base.Add(3 * 24 * time.Hour)
		list := []dbmodels.MocRequest{
			{
				Status:      models.MocStatusImplemented,
				SubmittedAt: &base,
				CompletedAt: &completed,
			},
		}
		result := AvgApprovalDays(list)
		require.NotNil(t, result)
		require.Equal(t, 3, *result)
	})
}

func TestOverdueCount(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	list := []dbmodels.MocRequest{
		{Status: models.MocStatusUnderReview, ReviewDeadline: &past},
		{Status: models.MocStatusSubmitted, ReviewDeadline: &past},
		{Status: models.MocStatusUnderReview, ReviewDeadline: &future},
		// конечный статус просрочкой не считается
		{Status: models.MocStatusApproved, ReviewDeadline: &past},
		{Status: models.MocStatusRejected, ReviewDeadline: &past},
		{Status: models.MocStatusUnderReview},
	}
	require.Equal(t, 2, OverdueCount(list, now))
}

func TestMonthlyTrends(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	june := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	july := time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)
	august := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	september := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	t.Run("каждый месяц периода присутствует в ряду", func(t *testing.T) {
		list := []dbmodels.MocRequest{
			{
				BaseOrgModel: dbmodels.BaseOrgModel{BaseModel: dbmodels.BaseModel{CreatedAt: june}},
				Status:       models.MocStatusApproved,
				CompletedAt:  &august,
			},
		}
		trends := MonthlyTrends(list, from, to)
		require.Len(t, trends, 3)
		require.Equal(t, 6, trends[0].Month)
		require.Equal(t, 7, trends[1].Month)
		require.Equal(t, 8, trends[2].Month)
		// июль без активности остается нулевым
		require.Equal(t, mocapimodels.MonthlyTrend{Year: 2026, Month: 7}, trends[1])
		require.Equal(t, 1, trends[0].Created)
		require.Equal(t, 1, trends[2].Approved)
	})

	t.Run("создание и итог разносятся по своим месяцам", func(t *testing.T) {
		list := []dbmodels.MocRequest{
			{
				BaseOrgModel: dbmodels.BaseOrgModel{BaseModel: dbmodels.BaseModel{CreatedAt: june}},
				Status:       models.MocStatusApproved,
				CompletedAt:  &july,
			},
			{
				BaseOrgModel: dbmodels.BaseOrgModel{BaseModel: dbmodels.BaseModel{CreatedAt: july}},
				Status:       models.MocStatusRejected,
				CompletedAt:  &august,
			},
			{
				BaseOrgModel: dbmodels.BaseOrgModel{BaseModel: dbmodels.BaseModel{CreatedAt: august}},
				Status:       models.MocStatusDraft,
			},
		}
		trends := MonthlyTrends(list, from, to)
		require.Len(t, trends, 3)
		require.Equal(t, 1, trends[0].Created)
		require.Equal(t, 1, trends[1].Approved)
		require.Equal(t, 1, trends[2].Rejected)
	})

	t.Run("даты за пределами периода не учитываются", func(t *testing.T) {
		list := []dbmodels.MocRequest{
			{
				BaseOrgModel: dbmodels.BaseOrgModel{BaseModel: dbmodels.BaseModel{CreatedAt: june}},
				Status:       models.MocStatusApproved,
				CompletedAt:  &september,
			},
		}
		trends := MonthlyTrends(list, from, to)
		require.Len(t, trends, 3)
		require.Equal(t, 1, trends[0].Created)
		for _, item := range trends {
			// завершение в сентябре не попадает ни в один месяц ряда
			require.Zero(t, item.Approved)
			require.NotEqual(t, 9, item.Month)
		}
	})
}

func TestTaskCompletionRate(t *testing.T) {
	t.Run("без задач показатель отсутствует", func(t *testing.T) {
		list := []dbmodels.MocRequest{{Status: models.MocStatusApproved}}
		require.Nil(t, TaskCompletionRate(list))
	})

	t.Run("процент выполненных", func(t *testing.T) {
		list := []dbmodels.MocRequest{
			{
				Tasks: []dbmodels.Task{
					{Status: models.TaskStatusCompleted},
					{Status: models.TaskStatusCompleted},
					{Status: models.TaskStatusInProgress},
				},
			},
		}
		result := TaskCompletionRate(list)
		require.NotNil(t, result)
		require.Equal(t, 67, *result)
	})
}

func TestDashboard(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	filter := mocapimodels.AnalyticsFilter{
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:   now,
	}
	list := []dbmodels.MocRequest{
		{Status: models.MocStatusDraft, Priority: models.MocPriorityLow, ChangeType: models.ChangeTypeEquipment},
		{Status: models.MocStatusUnderReview, Priority: models.MocPriorityHigh, ChangeType: models.ChangeTypeEquipment},
	}
	view := Dashboard(list, filter, now)
	require.Equal(t, 1, view.StatusCounts[models.MocStatusDraft])
	require.Equal(t, 1, view.StatusCounts[models.MocStatusUnderReview])
	require.Equal(t, 2, view.ChangeTypeCounts[models.ChangeTypeEquipment])
	require.Nil(t, view.AvgApprovalDays)
	require.Nil(t, view.TaskCompletionRate)
}
