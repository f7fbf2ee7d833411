package mocapimodels

import (
	"time"

	"moc-tools-backend/models"
)

type AnalyticsFilter struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	FacilityID string    `json:"facility_id"`
}

func (v AnalyticsFilter) Validate() error {
	if v.From.IsZero() || v.To.IsZero() {
		return models.NewValidationError("не задан период для аналитики")
	}
	if v.To.Before(v.From) {
		return models.NewValidationError("конец периода раньше начала")
	}
	return nil
}

type MonthlyTrend struct {
	Year     int `json:"year"`
	Month    int `json:"month"`
	Created  int `json:"created"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type DashboardView struct {
	StatusCounts     map[models.MocStatus]int   `json:"status_counts"`
	PriorityCounts   map[models.MocPriority]int `json:"priority_counts"`
	ChangeTypeCounts map[models.ChangeType]int  `json:"change_type_counts"`
	// AvgApprovalDays - среднее время согласования в днях, nil если нет
	// заявок со статусом Approved за период
	AvgApprovalDays *int           `json:"avg_approval_days"`
	OverdueCount    int            `json:"overdue_count"`
	MonthlyTrends   []MonthlyTrend `json:"monthly_trends"`
	// TaskCompletionRate - процент выполненных задач, nil если задач нет
	TaskCompletionRate *int `json:"task_completion_rate"`
}
