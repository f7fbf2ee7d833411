package analyticshandler

import (
	"time"

	"moc-tools-backend/db"
	analyticsstore "moc-tools-backend/lib/analytics/store"
	mocapimodels "moc-tools-backend/models/api/moc"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetDashboard(orgID string, filter mocapimodels.AnalyticsFilter) (mocapimodels.DashboardView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: analyticsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store analyticsstore.Provider
}

func (i impl) GetDashboard(orgID string, filter mocapimodels.AnalyticsFilter) (mocapimodels.DashboardView, error) {
	list, err := i.store.ListRequests(orgID, filter)
	if err != nil {
		log.
			WithField("org_id", orgID).
			WithError(err).
			Error("ошибка получения заявок для аналитики")
		return mocapimodels.DashboardView{}, err
	}
	return Dashboard(list, filter, time.Now()), nil
}
