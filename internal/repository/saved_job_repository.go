package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/domain/recommend"

	"github.com/google/uuid"
)

type SavedJobRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]recommend.SavedJob, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]recommend.SavedJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(j.title, ''), COALESCE(j.department, '')
		 FROM saved_jobs s
		 JOIN jobs j ON j.id = s.job_id
		 WHERE s.user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommend.SavedJob, 0)
	for rows.Next() {
		var sj recommend.SavedJob
		if err := rows.Scan(&sj.Title, &sj.Department); err != nil {
			return nil, err
		}
		out = append(out, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
