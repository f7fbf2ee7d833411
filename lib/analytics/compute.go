package analyticshandler

import (
	"math"
	"time"

	"moc-tools-backend/models"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"
)

// Dashboard собирает сводку по отобранным заявкам на момент now
func Dashboard(list []dbmodels.MocRequest, filter mocapimodels.AnalyticsFilter, now time.Time) mocapimodels.DashboardView {
	result := mocapimodels.DashboardView{
		StatusCounts:     map[models.MocStatus]int{},
		PriorityCounts:   map[models.MocPriority]int{},
		ChangeTypeCounts: map[models.ChangeType]int{},
	}
	for _, rec := range list {
		result.StatusCounts[rec.Status]++
		result.PriorityCounts[rec.Priority]++
		result.ChangeTypeCounts[rec.ChangeType]++
	}
	result.AvgApprovalDays = AvgApprovalDays(list)
	result.OverdueCount = OverdueCount(list, now)
	result.MonthlyTrends = MonthlyTrends(list, filter.From, filter.To)
	result.TaskCompletionRate = TaskCompletionRate(list)
	return result
}

// AvgApprovalDays - среднее время согласования: по каждой согласованной
// заявке длительность округляется вверх до целых дней, среднее по
// заявкам округляется до ближайшего целого. Без согласованных заявок
// показатель отсутствует.
func AvgApprovalDays(list []dbmodels.MocRequest) *int {
	sum := 0
	count := 0
	for _, rec := range list {
		if rec.SubmittedAt == nil || rec.CompletedAt == nil {
			continue
		}
		if rec.Status != models.MocStatusApproved && rec.Status != models.MocStatusImplemented {
			continue
		}
		days := int(math.Ceil(rec.CompletedAt.Sub(*rec.SubmittedAt).Hours() / 24))
		if days < 0 {
			continue
		}
		sum += days
		count++
	}
	if count == 0 {
		return nil
	}
	avg := int(math.Round(float64(sum) / float64(count)))
	return &avg
}

// OverdueCount - заявки с истекшим сроком рассмотрения, еще не
// доведенные до конечного статуса
func OverdueCount(list []dbmodels.MocRequest, now time.Time) int {
	count := 0
	for _, rec := range list {
		if rec.Status.IsFinished() {
			continue
		}
		if rec.ReviewDeadline != nil && rec.ReviewDeadline.Before(now) {
			count++
		}
	}
	return count
}

// MonthlyTrends - помесячная динамика за период: создание по дате
// создания, итоги по дате завершения. В ряду присутствует каждый
// календарный месяц периода, даты за его пределами не учитываются.
func MonthlyTrends(list []dbmodels.MocRequest, from, to time.Time) []mocapimodels.MonthlyTrend {
	byMonth := map[int]*mocapimodels.MonthlyTrend{}
	keys := []int{}
	first := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for cur := first; !cur.After(last); cur = cur.AddDate(0, 1, 0) {
		key := cur.Year()*100 + int(cur.Month())
		byMonth[key] = &mocapimodels.MonthlyTrend{
			Year:  cur.Year(),
			Month: int(cur.Month()),
		}
		keys = append(keys, key)
	}
	trend := func(at time.Time) *mocapimodels.MonthlyTrend {
		if at.Before(from) || at.After(to) {
			return nil
		}
		return byMonth[at.Year()*100+int(at.Month())]
	}
	for _, rec := range list {
		if item := trend(rec.CreatedAt); item != nil {
			item.Created++
		}
		if rec.CompletedAt == nil {
			continue
		}
		item := trend(*rec.CompletedAt)
		if item == nil {
			continue
		}
		switch rec.Status {
		case models.MocStatusApproved, models.MocStatusImplemented:
			item.Approved++
		case models.MocStatusRejected:
			item.Rejected++
		}
	}
	result := make([]mocapimodels.MonthlyTrend, 0, len(keys))
	for _, key := range keys {
		result = append(result, *byMonth[key])
	}
	return result
}

// TaskCompletionRate - процент выполненных задач по всем заявкам
// выборки, без задач показатель отсутствует
func TaskCompletionRate(list []dbmodels.MocRequest) *int {
	total := 0
	completed := 0
	for _, rec := range list {
		for _, task := range rec.Tasks {
			total++
			if task.Status == models.TaskStatusCompleted {
				completed++
			}
		}
	}
	if total == 0 {
		return nil
	}
	rate := int(math.Round(float64(completed) * 100 / float64(total)))
	return &rate
}
