package aihandler

import (
	"fmt"

	"moc-tools-backend/config"
	"moc-tools-backend/db"
	yagptclient "moc-tools-backend/lib/gpt/yagpt-client"
	mocreqstore "moc-tools-backend/lib/moc-req/store"
	"moc-tools-backend/models"

	log "github.com/sirupsen/logrus"
)

const riskPromt = "Ты инженер по управлению изменениями на промышленном объекте. " +
	"По описанию изменения предложи оценку риска: вероятность и тяжесть последствий по шкале от 1 до 5, " +
	"категорию риска и краткое обоснование. Отвечай на русском языке."

type Provider interface {
	SuggestRiskAssessment(orgID, requestID string) (suggestion string, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	var client yagptclient.Provider
	if config.Conf.YandexGPT.ApiKey != "" {
		client = yagptclient.NewClient(config.Conf.YandexGPT.ApiKey, config.Conf.YandexGPT.CatalogID)
	}
	Instance = impl{
		client: client,
		store:  mocreqstore.NewInstance(db.DB),
	}
}

type impl struct {
	client yagptclient.Provider
	store  mocreqstore.Provider
}

// SuggestRiskAssessment предлагает оценку риска по тексту заявки.
// Подсказка носит рекомендательный характер, решение за автором.
func (i impl) SuggestRiskAssessment(orgID, requestID string) (suggestion string, hMsg string, err error) {
	if i.client == nil {
		return "", "Генерация подсказок не настроена", nil
	}
	rec, err := i.store.GetByID(orgID, requestID)
	if err != nil {
		return "", "", err
	}
	if rec == nil {
		return "", "", models.ErrNotFound
	}
	text := fmt.Sprintf("Название: %v\nТип изменения: %v\nОписание: %v\nОбоснование: %v",
		rec.Title, rec.ChangeType, rec.Description, rec.Justification)
	suggestion, err = i.client.GenerateByPromtAndText(riskPromt, text)
	if err != nil {
		log.
			WithField("org_id", orgID).
			WithField("rec_id", requestID).
			WithError(err).
			Error("ошибка генерации подсказки по риску")
		return "", "", err
	}
	return suggestion, "", nil
}
