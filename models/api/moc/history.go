package mocapimodels

import (
	"fmt"
	"strings"
	"time"

	"moc-tools-backend/models"
	dbmodels "moc-tools-backend/models/db"
)

type HistoryEventView struct {
	ID             string                  `json:"id"`
	RequestID      string                  `json:"request_id"`
	ActorID        string                  `json:"actor_id"`
	ActorName      string                  `json:"actor_name"`
	EventType      models.HistoryEventType `json:"event_type"`
	EventTypeHuman string                  `json:"event_type_human"`
	Details        dbmodels.EntityChanges  `json:"details"`
	CreatedAt      time.Time               `json:"created_at"`
}

func HistoryEventConvert(rec dbmodels.HistoryEvent) HistoryEventView {
	actorName := models.SystemUser
	if rec.Actor != nil {
		actorName = strings.TrimSpace(fmt.Sprintf("%v %v", rec.Actor.FirstName, rec.Actor.LastName))
	}
	return HistoryEventView{
		ID:             rec.ID,
		RequestID:      rec.RequestID,
		ActorID:        rec.ActorID,
		ActorName:      actorName,
		EventType:      rec.EventType,
		EventTypeHuman: rec.EventType.ToHuman(),
		Details:        rec.Details,
		CreatedAt:      rec.CreatedAt,
	}
}
