package taskdueworker

import (
	"context"
	"time"

	"moc-tools-backend/db"
	mocreqstore "moc-tools-backend/lib/moc-req/store"
	notifyhandler "moc-tools-backend/lib/notify"
	taskstore "moc-tools-backend/lib/task/store"
	baseworker "moc-tools-backend/lib/utils/base-worker"
	"moc-tools-backend/lib/utils/helpers"
)

// за сколько до срока исполнителю уходит напоминание
const dueSoonWindow = 24 * time.Hour

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:      *baseworker.NewInstance("TaskDueWorker", 15*time.Second, 60*time.Minute),
		taskStore:     taskstore.NewInstance(db.DB),
		mocReqStore:   mocreqstore.NewInstance(db.DB),
		notifyHandler: notifyhandler.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	taskStore     taskstore.Provider
	mocReqStore   mocreqstore.Provider
	notifyHandler notifyhandler.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	deadline := time.Now().Add(dueSoonWindow)
	list, err := i.taskStore.ListDueSoon(deadline)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения списка задач с истекающим сроком")
		return
	}
	for _, task := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		req, err := i.mocReqStore.GetByID(task.OrgID, task.RequestID)
		if err != nil {
			logger.
				WithError(err).
				WithField("task_id", task.ID).
				Error("Ошибка получения заявки по задаче")
			continue
		}
		if req == nil {
			continue
		}
		i.notifyHandler.Notify(notifyhandler.OnTaskDue(task, req.RequestNumber))
	}
}
