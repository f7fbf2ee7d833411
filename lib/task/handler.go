package taskhandler

import (
	"time"

	"moc-tools-backend/db"
	mochistoryhandler "moc-tools-backend/lib/moc-history"
	mocreqstore "moc-tools-backend/lib/moc-req/store"
	notifyhandler "moc-tools-backend/lib/notify"
	taskstore "moc-tools-backend/lib/task/store"
	initchecker "moc-tools-backend/lib/utils/init-checker"
	"moc-tools-backend/models"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(orgID, userID string, data mocapimodels.TaskCreateData) (id string, hMsg string, err error)
	Update(orgID, id string, data mocapimodels.TaskEditData) (hMsg string, err error)
	Delete(orgID, id string) error
	ListByRequest(orgID, requestID string) ([]mocapimodels.TaskView, error)
	Stats(orgID, requestID string) (mocapimodels.TaskStats, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          taskstore.NewInstance(db.DB),
		mocReqStore:    mocreqstore.NewInstance(db.DB),
		historyHandler: mochistoryhandler.Instance,
		notifyHandler:  notifyhandler.Instance,
	}
	initchecker.CheckInit(
		"historyHandler", instance.historyHandler,
		"notifyHandler", instance.notifyHandler,
	)
	Instance = instance
}

type impl struct {
	store          taskstore.Provider
	mocReqStore    mocreqstore.Provider
	historyHandler mochistoryhandler.Provider
	notifyHandler  notifyhandler.Provider
}

func (i impl) getLogger(orgID, id string) *log.Entry {
	logger := log.
		WithField("org_id", orgID).
		WithField("task_id", id)
	return logger
}

func (i impl) Create(orgID, userID string, data mocapimodels.TaskCreateData) (id string, hMsg string, err error) {
	req, err := i.mocReqStore.GetByID(orgID, data.RequestID)
	if err != nil {
		return "", "", err
	}
	if req == nil {
		return "", "Заявка не найдена", nil
	}
	priority := data.Priority
	if priority == "" {
		priority = models.MocPriorityMedium
	}
	rec := dbmodels.Task{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrgID: orgID,
		},
		RequestID:   data.RequestID,
		Title:       data.Title,
		Description: data.Description,
		CreatorID:   userID,
		Status:      models.TaskStatusPending,
		Priority:    priority,
		DueDate:     data.DueDate,
	}
	if data.AssigneeID != "" {
		rec.AssigneeID = &data.AssigneeID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		i.getLogger(orgID, "").
			WithError(err).
			Error("ошибка создания задачи")
		return "", "", err
	}
	i.historyHandler.Append(orgID, data.RequestID, userID, models.HistoryEventTaskCreated, dbmodels.EntityChanges{
		Description: data.Title,
	})
	i.notifyHandler.Notify(notifyhandler.OnTaskAssigned(rec, req.RequestNumber))
	i.getLogger(orgID, id).Info("создана задача")
	return id, "", nil
}

// Update меняет задачу частично, completed_at проставляется только
// при завершении и очищается при возврате задачи в работу
func (i impl) Update(orgID, id string, data mocapimodels.TaskEditData) (hMsg string, err error) {
	logger := i.getLogger(orgID, id)
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Задача не найдена", nil
	}
	updMap := map[string]interface{}{}
	assigneeChanged := false
	if data.Status != nil && *data.Status != rec.Status {
		updMap["status"] = *data.Status
		if *data.Status == models.TaskStatusCompleted {
			updMap["completed_at"] = time.Now()
		} else if rec.Status == models.TaskStatusCompleted {
			updMap["completed_at"] = nil
		}
	}
	if data.AssigneeID != nil {
		if *data.AssigneeID == "" {
			updMap["assignee_id"] = nil
		} else {
			updMap["assignee_id"] = *data.AssigneeID
			assigneeChanged = rec.AssigneeID == nil || *rec.AssigneeID != *data.AssigneeID
		}
	}
	if data.Priority != nil {
		updMap["priority"] = *data.Priority
	}
	if data.DueDate != nil {
		updMap["due_date"] = *data.DueDate
	}
	err = i.store.Update(orgID, id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка изменения задачи")
		return "", err
	}
	if assigneeChanged {
		req, err := i.mocReqStore.GetByID(orgID, rec.RequestID)
		if err == nil && req != nil {
			rec.AssigneeID = data.AssigneeID
			i.notifyHandler.Notify(notifyhandler.OnTaskAssigned(*rec, req.RequestNumber))
		}
	}
	logger.Info("обновлена задача")
	return "", nil
}

func (i impl) Delete(orgID, id string) error {
	logger := i.getLogger(orgID, id)
	err := i.store.Delete(orgID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка удаления задачи")
		return err
	}
	logger.Info("удалена задача")
	return nil
}

func (i impl) ListByRequest(orgID, requestID string) ([]mocapimodels.TaskView, error) {
	list, err := i.store.ListByRequest(orgID, requestID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	result := make([]mocapimodels.TaskView, 0, len(list))
	for _, rec := range list {
		result = append(result, mocapimodels.TaskConvert(rec, now))
	}
	return result, nil
}

func (i impl) Stats(orgID, requestID string) (mocapimodels.TaskStats, error) {
	list, err := i.store.ListByRequest(orgID, requestID)
	if err != nil {
		return mocapimodels.TaskStats{}, err
	}
	return CalcStats(list, time.Now()), nil
}
