package application

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusNew         = "new"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusInterviewed = "interviewed"
	StatusHired       = "hired"
	StatusRejected    = "rejected"
)

// Application links one applicant to one job posting. The matching core reads
// it everywhere and writes it in exactly one place: the auto-shortlist
// transition to StatusShortlisted.
type Application struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	UserID    uuid.UUID
	Status    string
	AppliedAt time.Time
	UpdatedAt time.Time
}
