package mocreqhandler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"moc-tools-backend/db"
	approvalhandler "moc-tools-backend/lib/approval"
	approvalstore "moc-tools-backend/lib/approval/store"
	facilitystore "moc-tools-backend/lib/dicts/facility/store"
	pdfexport "moc-tools-backend/lib/export/pdf"
	xlsexport "moc-tools-backend/lib/export/xls"
	mochistoryhandler "moc-tools-backend/lib/moc-history"
	mocreqstore "moc-tools-backend/lib/moc-req/store"
	notifyhandler "moc-tools-backend/lib/notify"
	"moc-tools-backend/lib/numerator"
	"moc-tools-backend/lib/risk"
	initchecker "moc-tools-backend/lib/utils/init-checker"
	"moc-tools-backend/lib/utils/lock"
	"moc-tools-backend/models"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(orgID, userID string, data mocapimodels.MocRequestCreateData) (id string, hMsg string, err error)
	GetByID(orgID, id string) (item mocapimodels.MocRequestView, err error)
	Update(orgID, id, userID string, data mocapimodels.MocRequestEditData) (hMsg string, err error)
	Delete(orgID, id, userID string) (hMsg string, err error)
	List(orgID string, filter mocapimodels.MocFilter) (list []mocapimodels.MocRequestView, rowCount int64, err error)
	Submit(ctx context.Context, orgID, id, userID string) (hMsg string, err error)
	Approve(ctx context.Context, orgID, id, userID string, data mocapimodels.ApprovalDecision) (hMsg string, err error)
	Reject(ctx context.Context, orgID, id, userID string, data mocapimodels.ApprovalDecision) (hMsg string, err error)
	RequestChanges(ctx context.Context, orgID, id, userID string, data mocapimodels.ApprovalDecision) (hMsg string, err error)
	Implement(orgID, id, userID string) (hMsg string, err error)
	AddComment(orgID, id, userID string, data mocapimodels.CommentData) (hMsg string, err error)
	ExportRegister(orgID string, filter mocapimodels.MocFilter) (*bytes.Buffer, error)
	ExportCard(orgID, id string) (pdfFile []byte, number string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          mocreqstore.NewInstance(db.DB),
		approvalStore:  approvalstore.NewInstance(db.DB),
		facilityStore:  facilitystore.NewInstance(db.DB),
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
	store          mocreqstore.Provider
	approvalStore  approvalstore.Provider
	facilityStore  facilitystore.Provider
	historyHandler mochistoryhandler.Provider
	notifyHandler  notifyhandler.Provider
}

// время ожидания блокировки по заявке при конкурирующих решениях
const decisionLockWait = 10 * time.Second

// максимум записей в выгрузке реестра
const exportLimit = 1000

func (i impl) getLogger(orgID, id string) *log.Entry {
	logger := log.
		WithField("org_id", orgID).
		WithField("rec_id", id)
	return logger
}

func (i impl) checkDependency(orgID string, data mocapimodels.MocRequestData) error {
	if data.FacilityID != "" {
		facilityRec, err := i.facilityStore.GetByID(orgID, data.FacilityID)
		if err != nil {
			return err
		}
		if facilityRec == nil {
			return models.NewValidationError("объект не найден в справочнике")
		}
	}
	return nil
}

func (i impl) Create(orgID, userID string, data mocapimodels.MocRequestCreateData) (id string, hMsg string, err error) {
	logger := log.WithField("org_id", orgID)
	err = i.checkDependency(orgID, data.MocRequestData)
	if err != nil {
		return "", "", err
	}
	rec := dbmodels.MocRequest{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrgID: orgID,
		},
		AuthorID:        userID,
		Title:           data.Title,
		ChangeType:      data.ChangeType,
		Priority:        data.Priority,
		Status:          models.MocStatusDraft,
		Description:     data.Description,
		Justification:   data.Justification,
		RiskProbability: data.RiskProbability,
		RiskSeverity:    data.RiskSeverity,
		RiskCategory:    data.RiskCategory,
		IsTemporary:     data.IsTemporary,
		AffectedAreas:   data.AffectedAreas,
		TargetDate:      data.TargetDate,
		ReviewDeadline:  data.ReviewDeadline,
	}
	if data.FacilityID != "" {
		rec.FacilityID = &data.FacilityID
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := mocreqstore.NewInstance(tx)
		chainHandler := approvalhandler.NewHandlerWithTx(tx)
		historyHandler := mochistoryhandler.NewHandlerWithTx(tx)
		id, err = store.Create(rec)
		if err != nil {
			logger.
				WithField("request", fmt.Sprintf("%+v", data)).
				WithError(err).
				Error("Ошибка создания заявки")
			return err
		}
		hMsg, err = chainHandler.Save(orgID, id, data.Approvers.Approvers)
		if err != nil {
			return err
		}
		if hMsg != "" {
			return models.NewValidationError(hMsg)
		}
		return historyHandler.AppendStrict(orgID, id, userID, models.HistoryEventCreated, dbmodels.EntityChanges{
			Description: "Заявка на изменение создана",
		})
	})
	if err != nil {
		return "", "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Создана заявка")
	return id, "", nil
}

func (i impl) GetByID(orgID, id string) (item mocapimodels.MocRequestView, err error) {
	rec, err := i.getRec(orgID, id)
	if err != nil {
		return mocapimodels.MocRequestView{}, err
	}
	return convert(*rec), nil
}

// allowContentEdit проверяет, может ли автор менять содержимое заявки.
// Заявка на рассмотрении правится только пока никто из согласующих не
// вынес решение.
func allowContentEdit(rec dbmodels.MocRequest) (hMsg string) {
	if !rec.Status.AllowEdit() {
		return fmt.Sprintf("Изменение заявки недоступно в статусе «%v»", rec.Status.ToHuman())
	}
	for _, approver := range rec.Approvers {
		if approver.State.IsDecided() {
			return "Изменение заявки недоступно, по заявке уже есть решения согласующих"
		}
	}
	return ""
}

func (i impl) Update(orgID, id, userID string, data mocapimodels.MocRequestEditData) (hMsg string, err error) {
	logger := i.getLogger(orgID, id)
	rec, err := i.getRec(orgID, id)
	if err != nil {
		return "", err
	}
	if rec.AuthorID != userID {
		return "Изменение заявки доступно только автору", nil
	}
	if hMsg = allowContentEdit(*rec); hMsg != "" {
		return hMsg, nil
	}
	err = i.checkDependency(orgID, data.MocRequestData)
	if err != nil {
		return "", err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := mocreqstore.NewInstance(tx)
		chainHandler := approvalhandler.NewHandlerWithTx(tx)
		updMap := map[string]interface{}{
			"Title":           data.Title,
			"ChangeType":      data.ChangeType,
			"Priority":        data.Priority,
			"Description":     data.Description,
			"Justification":   data.Justification,
			"RiskProbability": data.RiskProbability,
			"RiskSeverity":    data.RiskSeverity,
			"RiskCategory":    data.RiskCategory,
			"IsTemporary":     data.IsTemporary,
			"AffectedAreas":   data.AffectedAreas,
			"TargetDate":      data.TargetDate,
			"ReviewDeadline":  data.ReviewDeadline,
		}
		if data.FacilityID != "" {
			updMap["FacilityID"] = data.FacilityID
		}
		err := store.Update(orgID, id, updMap)
		if err != nil {
			return err
		}
		hMsg, err = chainHandler.Save(orgID, id, data.Approvers.Approvers)
		if err != nil {
			return err
		}
		if hMsg != "" {
			// откат правок вместе с цепочкой
			return models.NewValidationError(hMsg)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.Info("обновлена заявка")
	return "", nil
}

func (i impl) Delete(orgID, id, userID string) (hMsg string, err error) {
	logger := i.getLogger(orgID, id)
	rec, err := i.getRec(orgID, id)
	if err != nil {
		return "", err
	}
	if rec.AuthorID != userID {
		return "Удаление заявки доступно только автору", nil
	}
	if rec.Status != models.MocStatusDraft {
		return "Удалить можно только черновик заявки", nil
	}
	err = i.store.Delete(orgID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка удаления заявки")
		return "", err
	}
	logger.Info("удалена заявка")
	return "", nil
}

func (i impl) List(orgID string, filter mocapimodels.MocFilter) (list []mocapimodels.MocRequestView, rowCount int64, err error) {
	logger := log.WithField("org_id", orgID)
	rowCount, err = i.store.ListCount(orgID, filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []mocapimodels.MocRequestView{}, rowCount, nil
	}

	recList, err := i.store.List(orgID, filter)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка получения списка заявок")
		return nil, 0, err
	}
	result := make([]mocapimodels.MocRequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, convert(rec))
	}
	return result, rowCount, nil
}

// Submit подает черновик на согласование: проверяет полноту данных,
// присваивает номер и однократно фиксирует submitted_at
func (i impl) Submit(ctx context.Context, orgID, id, userID string) (hMsg string, err error) {
	logger := i.getLogger(orgID, id)
	rec, err := i.getRec(orgID, id)
	if err != nil {
		return "", err
	}
	if rec.AuthorID != userID {
		return "Подать заявку на согласование может только автор", nil
	}
	if !rec.Status.IsAllowChange(models.MocStatusSubmitted) {
		return "", models.NewInvalidTransition(rec.Status, models.MocStatusSubmitted)
	}
	err = toData(*rec).ValidateForSubmit()
	if err != nil {
		return "", err
	}
	if len(rec.Approvers) == 0 {
		return "", models.NewValidationError("не назначены согласующие")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := mocreqstore.NewInstance(tx)
		historyHandler := mochistoryhandler.NewHandlerWithTx(tx)
		number, err := numerator.NewInstance(tx).NextRequestNumber(orgID, time.Now())
		if err != nil {
			return err
		}
		rec.RequestNumber = number
		return i.changeStatus(store, historyHandler, rec, models.MocStatusSubmitted, userID, map[string]interface{}{
			"request_number": number,
		})
	})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка подачи заявки на согласование")
		return "", err
	}
	logger.
		WithField("request_number", rec.RequestNumber).
		Info("заявка подана на согласование")
	i.notifyHandler.Notify(notifyhandler.OnSubmitted(*rec, approverIDs(rec.Approvers)))
	return "", nil
}

func (i impl) Approve(ctx context.Context, orgID, id, userID string, data mocapimodels.ApprovalDecision) (hMsg string, err error) {
	if err := data.ValidateForApprove(); err != nil {
		return "", err
	}
	return i.decide(ctx, orgID, id, userID, models.AStateApproved, data.Comment)
}

func (i impl) Reject(ctx context.Context, orgID, id, userID string, data mocapimodels.ApprovalDecision) (hMsg string, err error) {
	if err := data.ValidateForReject(); err != nil {
		return "", err
	}
	return i.decide(ctx, orgID, id, userID, models.AStateRejected, data.Comment)
}

func (i impl) RequestChanges(ctx context.Context, orgID, id, userID string, data mocapimodels.ApprovalDecision) (hMsg string, err error) {
	if err := data.ValidateForReject(); err != nil {
		return "", err
	}
	return i.decide(ctx, orgID, id, userID, models.AStateChangesRequested, data.Comment)
}

// decide фиксирует решение согласующего и пересчитывает итог голосования.
// Решения по одной заявке сериализуются блокировкой по ее идентификатору,
// запись заявки дополнительно защищена проверкой версии.
func (i impl) decide(ctx context.Context, orgID, id, userID string, newState models.ApprovalState, comment string) (hMsg string, err error) {
	logger := i.getLogger(orgID, id).
		WithField("user_id", userID).
		WithField("decision", newState)
	var targets []notifyhandler.Target
	success, err := lock.WithDelay(ctx, "moc-req-"+id, decisionLockWait, func() error {
		rec, err := i.getRec(orgID, id)
		if err != nil {
			return err
		}
		if !rec.Status.AllowDecision() {
			return errors.Wrapf(models.ErrInvalidTransition, "решение недоступно в статусе «%v»", rec.Status.ToHuman())
		}
		var approver *dbmodels.Approver
		for idx := range rec.Approvers {
			if rec.Approvers[idx].UserID == userID {
				approver = &rec.Approvers[idx]
				break
			}
		}
		if approver == nil {
			hMsg = "Вы не входите в цепочку согласования заявки"
			return nil
		}
		if approver.State.IsDecided() {
			hMsg = "Решение по заявке уже принято"
			return nil
		}
		wasSubmitted := rec.Status == models.MocStatusSubmitted

		err = db.DB.Transaction(func(tx *gorm.DB) error {
			store := mocreqstore.NewInstance(tx)
			chainStore := approvalstore.NewInstance(tx)
			historyHandler := mochistoryhandler.NewHandlerWithTx(tx)

			// первое решение переводит заявку на рассмотрение
			if rec.Status == models.MocStatusSubmitted {
				err := i.changeStatus(store, historyHandler, rec, models.MocStatusUnderReview, userID, nil)
				if err != nil {
					return err
				}
			}
			now := time.Now()
			err := chainStore.Update(orgID, approver.ID, map[string]interface{}{
				"state":        newState,
				"comment":      comment,
				"responded_at": now,
			})
			if err != nil {
				return err
			}
			err = historyHandler.AppendStrict(orgID, id, userID, decisionEvent(newState), dbmodels.EntityChanges{
				Description: comment,
			})
			if err != nil {
				return err
			}

			chain, err := chainStore.List(orgID, id)
			if err != nil {
				return err
			}
			outcome := approvalhandler.Consensus(chain)
			switch outcome {
			case models.AStateRejected:
				return i.changeStatus(store, historyHandler, rec, models.MocStatusRejected, userID, nil)
			case models.AStateApproved:
				return i.changeStatus(store, historyHandler, rec, models.MocStatusApproved, userID, nil)
			case models.AStateChangesRequested:
				// заявка остается на рассмотрении, решения сбрасываются,
				// автор дорабатывает заявку и согласование идет заново
				err := chainStore.ResetToPending(orgID, id)
				if err != nil {
					return err
				}
				return historyHandler.AppendStrict(orgID, id, userID, models.HistoryEventApproversReset, dbmodels.EntityChanges{
					Description: "Запрошены изменения, решения согласующих сброшены",
				})
			}
			return nil
		})
		if err != nil {
			return err
		}

		if wasSubmitted {
			// первое решение перевело заявку на рассмотрение
			targets = notifyhandler.OnStatusChanged(*rec, models.MocStatusUnderReview)
		}
		userName := userID
		if approver.User != nil {
			userName = approver.User.GetFullName()
		}
		switch newState {
		case models.AStateRejected:
			targets = append(targets, notifyhandler.OnRejected(*rec, userName)...)
		case models.AStateChangesRequested:
			targets = append(targets, notifyhandler.OnChangesRequested(*rec, userName)...)
		case models.AStateApproved:
			if rec.Status == models.MocStatusApproved {
				targets = append(targets, notifyhandler.OnApproved(*rec)...)
			}
		}
		return nil
	})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обработки решения по заявке")
		return "", err
	}
	if !success {
		return "", models.ErrConcurrentModification
	}
	if hMsg != "" {
		return hMsg, nil
	}
	i.notifyHandler.Notify(targets)
	logger.Info("решение по заявке принято")
	return "", nil
}

// Implement отмечает согласованное изменение как внедренное.
// Повторный вызов для уже внедренной заявки не является ошибкой.
func (i impl) Implement(orgID, id, userID string) (hMsg string, err error) {
	logger := i.getLogger(orgID, id)
	rec, err := i.getRec(orgID, id)
	if err != nil {
		return "", err
	}
	if rec.Status == models.MocStatusImplemented {
		return "", nil
	}
	if !rec.Status.IsAllowChange(models.MocStatusImplemented) {
		return "", models.NewInvalidTransition(rec.Status, models.MocStatusImplemented)
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := mocreqstore.NewInstance(tx)
		historyHandler := mochistoryhandler.NewHandlerWithTx(tx)
		return i.changeStatus(store, historyHandler, rec, models.MocStatusImplemented, userID, nil)
	})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка перевода заявки во внедренные")
		return "", err
	}
	logger.Info("изменение внедрено")
	i.notifyHandler.Notify(notifyhandler.OnImplemented(*rec, approverIDs(rec.Approvers)))
	return "", nil
}

func (i impl) AddComment(orgID, id, userID string, data mocapimodels.CommentData) (hMsg string, err error) {
	rec, err := i.getRec(orgID, id)
	if err != nil {
		return "", err
	}
	err = i.historyHandler.AppendStrict(orgID, id, userID, models.HistoryEventCommentAdded, dbmodels.EntityChanges{
		Description: data.Comment,
	})
	if err != nil {
		return "", err
	}
	userName := userID
	for _, approver := range rec.Approvers {
		if approver.UserID == userID && approver.User != nil {
			userName = approver.User.GetFullName()
		}
	}
	if rec.AuthorID == userID && rec.Author != nil {
		userName = rec.Author.GetFullName()
	}
	i.notifyHandler.Notify(notifyhandler.OnCommentAdded(*rec, userName, userID, approverIDs(rec.Approvers)))
	return "", nil
}

// changeStatus выполняет переход по таблице допустимых статусов,
// однократно проставляет submitted_at/completed_at и пишет запись журнала
// в той же транзакции, что и сам переход
func (i impl) changeStatus(store mocreqstore.Provider, historyHandler mochistoryhandler.Provider, rec *dbmodels.MocRequest, newStatus models.MocStatus, actorID string, extra map[string]interface{}) error {
	if !rec.Status.IsAllowChange(newStatus) {
		return models.NewInvalidTransition(rec.Status, newStatus)
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status": newStatus,
	}
	for key, value := range extra {
		updMap[key] = value
	}
	if newStatus == models.MocStatusSubmitted && rec.SubmittedAt == nil {
		updMap["submitted_at"] = now
		rec.SubmittedAt = &now
	}
	if newStatus.IsFinished() && rec.CompletedAt == nil {
		updMap["completed_at"] = now
		rec.CompletedAt = &now
	}
	err := store.UpdateWithVersion(rec.OrgID, rec.ID, rec.Version, updMap)
	if err != nil {
		return err
	}
	err = historyHandler.AppendStrict(rec.OrgID, rec.ID, actorID, models.HistoryEventStatusChanged, dbmodels.EntityChanges{
		Description: fmt.Sprintf("Статус изменен: %v → %v", rec.Status.ToHuman(), newStatus.ToHuman()),
		Data: []dbmodels.FieldChanges{
			{Field: "status", OldValue: string(rec.Status), NewValue: string(newStatus)},
		},
	})
	if err != nil {
		return err
	}
	rec.Status = newStatus
	rec.Version++
	return nil
}

func (i impl) getRec(orgID, id string) (item *dbmodels.MocRequest, err error) {
	logger := i.getLogger(orgID, id)
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка получения заявки")
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrNotFound
	}
	return rec, nil
}

func decisionEvent(state models.ApprovalState) models.HistoryEventType {
	switch state {
	case models.AStateRejected:
		return models.HistoryEventRejected
	case models.AStateChangesRequested:
		return models.HistoryEventChangesRequested
	default:
		return models.HistoryEventApproved
	}
}

func approverIDs(approvers []dbmodels.Approver) []string {
	result := make([]string, 0, len(approvers))
	for _, approver := range approvers {
		result = append(result, approver.UserID)
	}
	return result
}

func convert(rec dbmodels.MocRequest) mocapimodels.MocRequestView {
	score := risk.Score(rec.RiskProbability, rec.RiskSeverity)
	tier := risk.GetTier(score)
	return mocapimodels.MocRequestConvert(rec, score, tier.ToHuman())
}

func (i impl) ExportRegister(orgID string, filter mocapimodels.MocFilter) (*bytes.Buffer, error) {
	filter.Page = 1
	filter.Limit = exportLimit
	recList, err := i.store.List(orgID, filter)
	if err != nil {
		log.WithField("org_id", orgID).
			WithError(err).
			Error("ошибка получения списка заявок для выгрузки")
		return nil, err
	}
	return xlsexport.Instance.ExportMocRegister(recList)
}

func (i impl) ExportCard(orgID, id string) (pdfFile []byte, number string, err error) {
	rec, err := i.getRec(orgID, id)
	if err != nil {
		return nil, "", err
	}
	pdfFile, err = pdfexport.GenerateRequestCard(*rec)
	if err != nil {
		return nil, "", err
	}
	number = rec.RequestNumber
	if number == "" {
		number = rec.ID
	}
	return pdfFile, number, nil
}

func toData(rec dbmodels.MocRequest) mocapimodels.MocRequestData {
	data := mocapimodels.MocRequestData{
		Title:           rec.Title,
		ChangeType:      rec.ChangeType,
		Priority:        rec.Priority,
		Description:     rec.Description,
		Justification:   rec.Justification,
		RiskProbability: rec.RiskProbability,
		RiskSeverity:    rec.RiskSeverity,
		RiskCategory:    rec.RiskCategory,
		IsTemporary:     rec.IsTemporary,
		AffectedAreas:   rec.AffectedAreas,
		TargetDate:      rec.TargetDate,
		ReviewDeadline:  rec.ReviewDeadline,
	}
	if rec.FacilityID != nil {
		data.FacilityID = *rec.FacilityID
	}
	return data
}
