package repository

import (
	"context"
	"encoding/json"

	"talent-match/internal/database"
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
)

// Applicant is one application joined with the applicant's user record and
// profile, as the ranking pass consumes it. Profile is nil when the user has
// never filled one in.
type Applicant struct {
	Application application.Application
	Name        string
	Email       string
	Profile     *user.Profile
}

type ApplicationRepository interface {
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Applicant, error)
	AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// Shortlist transitions the given applications to the shortlisted status
	// and reports how many rows actually changed. Already-shortlisted rows are
	// untouched, which keeps the operation idempotent.
	Shortlist(ctx context.Context, applicationIDs []uuid.UUID) (int64, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]Applicant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.user_id, COALESCE(a.status, 'new'), a.applied_at, a.updated_at,
			COALESCE(u.name, ''), COALESCE(u.email, ''),
			COALESCE(u.designation, ''), COALESCE(u.sectors, '{}'), COALESCE(u.city, ''), COALESCE(u.skills, '{}'),
			COALESCE(u.education, '[]'), COALESCE(u.experience, '[]'),
			COALESCE(u.projects, '[]'), COALESCE(u.certificates, '[]')
		 FROM applications a
		 JOIN users u ON u.id = a.user_id
		 WHERE a.job_id = $1
		 ORDER BY a.applied_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Applicant, 0)
	for rows.Next() {
		var it Applicant
		p := &user.Profile{}
		var education, experience, projects, certificates []byte

		err := rows.Scan(
			&it.Application.ID, &it.Application.JobID, &it.Application.UserID,
			&it.Application.Status, &it.Application.AppliedAt, &it.Application.UpdatedAt,
			&it.Name, &it.Email,
			&p.Designation, &p.Sectors, &p.City, &p.Skills,
			&education, &experience, &projects, &certificates,
		)
		if err != nil {
			return nil, err
		}

		decodeProfileSections(p, education, experience, projects, certificates)
		if hasProfileContent(p) {
			it.Profile = p
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT job_id FROM applications WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Shortlist(ctx context.Context, applicationIDs []uuid.UUID) (int64, error) {
	if len(applicationIDs) == 0 {
		return 0, nil
	}
	return r.db.Exec(ctx,
		`UPDATE applications
		 SET status = 'shortlisted', updated_at = now()
		 WHERE id = ANY($1) AND status <> 'shortlisted'`,
		applicationIDs,
	)
}

func decodeProfileSections(p *user.Profile, education, experience, projects, certificates []byte) {
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
}

func hasProfileContent(p *user.Profile) bool {
	if p == nil {
		return false
	}
	return p.Designation != "" || p.City != "" ||
		len(p.Sectors) > 0 || len(p.Skills) > 0 ||
		len(p.Education) > 0 || len(p.Experience) > 0 ||
		len(p.Projects) > 0 || len(p.Certificates) > 0
}
