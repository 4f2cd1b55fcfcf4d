package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Posting is the read-only view of a job posting the matching core consumes.
// Skills may be empty; scorers degrade to a zero skill contribution.
type Posting struct {
	ID              uuid.UUID
	Title           string
	Department      string
	Location        string
	EmploymentType  string
	ExperienceLevel string
	Skills          []string
	Description     string
	Requirements    string
	SalaryMin       *int64
	SalaryMax       *int64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p Posting) IsOpen() bool {
	return p.Status != StatusClosed
}
