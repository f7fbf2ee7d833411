package taskhandler

import (
	"time"

	"moc-tools-backend/models"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"
)

// CalcStats считает сводку по задачам заявки: всего, по статусам
// и количество просроченных на момент now
func CalcStats(tasks []dbmodels.Task, now time.Time) mocapimodels.TaskStats {
	stats := mocapimodels.TaskStats{
		Total:    len(tasks),
		ByStatus: map[models.TaskStatus]int{},
	}
	for _, task := range tasks {
		stats.ByStatus[task.Status]++
		if task.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats
}
