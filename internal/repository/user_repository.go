package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// The list sections of a profile live in JSONB columns; dates inside them are
// strings in whatever format the profile editor saved. Unparsable dates come
// through as nil and count as zero duration downstream.
type educationRow struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type experienceRow struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type projectRow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type certificateRow struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, userID uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(email, ''), COALESCE(name, ''), profile_completed,
			COALESCE(designation, ''), COALESCE(sectors, '{}'), COALESCE(city, ''), COALESCE(skills, '{}'),
			COALESCE(education, '[]'), COALESCE(experience, '[]'),
			COALESCE(projects, '[]'), COALESCE(certificates, '[]'),
			created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	)

	var u user.User
	p := &user.Profile{}
	var education, experience, projects, certificates []byte
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.ProfileCompleted,
		&p.Designation, &p.Sectors, &p.City, &p.Skills,
		&education, &experience, &projects, &certificates,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}

	var eduRows []educationRow
	if err := json.Unmarshal(education, &eduRows); err == nil {
		for _, e := range eduRows {
			p.Education = append(p.Education, user.Education{
				Degree:      e.Degree,
				Institution: e.Institution,
				StartDate:   parseProfileDate(e.StartDate),
				EndDate:     parseProfileDate(e.EndDate),
			})
		}
	}

	var expRows []experienceRow
	if err := json.Unmarshal(experience, &expRows); err == nil {
		for _, e := range expRows {
			p.Experience = append(p.Experience, user.Experience{
				Title:       e.Title,
				Company:     e.Company,
				StartDate:   parseProfileDate(e.StartDate),
				EndDate:     parseProfileDate(e.EndDate),
				Current:     e.Current,
				Description: e.Description,
			})
		}
	}

	var projRows []projectRow
	if err := json.Unmarshal(projects, &projRows); err == nil {
		for _, pr := range projRows {
			p.Projects = append(p.Projects, user.Project{Title: pr.Title, Description: pr.Description})
		}
	}

	var certRows []certificateRow
	if err := json.Unmarshal(certificates, &certRows); err == nil {
		for _, c := range certRows {
			p.Certificates = append(p.Certificates, user.Certificate{Title: c.Title, Issuer: c.Issuer})
		}
	}

	u.Profile = p
	return u, nil
}

var profileDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"01/2006",
	"January 2006",
}

func parseProfileDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range profileDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
