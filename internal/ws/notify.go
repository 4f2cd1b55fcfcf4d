package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

const eventShortlisted = "applications_shortlisted"

type shortlistEvent struct {
	Event          string      `json:"event"`
	JobID          uuid.UUID   `json:"job_id"`
	ApplicationIDs []uuid.UUID `json:"application_ids"`
	At             time.Time   `json:"at"`
}

// ShortlistNotifier pushes shortlist updates to every connected client.
// Delivery is fire and forget.
type ShortlistNotifier struct {
	hub    *Hub
	logger *log.Logger
}

func NewShortlistNotifier(hub *Hub, logger *log.Logger) *ShortlistNotifier {
	return &ShortlistNotifier{hub: hub, logger: logger}
}

func (n *ShortlistNotifier) ShortlistUpdated(jobID uuid.UUID, applicationIDs []uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(shortlistEvent{
		Event:          eventShortlisted,
		JobID:          jobID,
		ApplicationIDs: applicationIDs,
		At:             time.Now().UTC(),
	})
	if err != nil {
		if n.logger != nil {
			n.logger.Printf("WS shortlist event marshal error | error=%v", err)
		}
		return
	}

	n.hub.Broadcast(b)
}
