package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	ProfileCompleted bool
	Profile          *Profile
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Profile is the applicant side of every match. All fields are optional;
// missing data degrades scores toward neutral, it never errors.
type Profile struct {
	Designation  string
	Sectors      []string
	City         string
	Skills       []string
	Education    []Education
	Experience   []Experience
	Projects     []Project
	Certificates []Certificate
}

type Education struct {
	Degree      string
	Institution string
	StartDate   *time.Time
	EndDate     *time.Time
}

// Experience dates may be nil when the source record was missing or
// unparsable; such entries contribute zero duration.
type Experience struct {
	Title       string
	Company     string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     bool
	Description string
}

type Project struct {
	Title       string
	Description string
}

type Certificate struct {
	Title  string
	Issuer string
}
