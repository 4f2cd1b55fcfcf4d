package usecase

import (
	"context"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/recommend"
	"talent-match/internal/domain/user"
	"talent-match/internal/embedding"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs map[uuid.UUID]job.Posting
	open []job.Posting
	err  error
}

func (m mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	j, ok := m.jobs[id]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m mockJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.jobs[id]
	return ok, nil
}

func (m mockJobRepo) ListOpen(context.Context) ([]job.Posting, error) {
	return m.open, m.err
}

type mockApplicationRepo struct {
	applicants  []repository.Applicant
	applied     []uuid.UUID
	shortlisted [][]uuid.UUID
	changed     int64
	err         error
}

func (m *mockApplicationRepo) ListByJob(context.Context, uuid.UUID) ([]repository.Applicant, error) {
	return m.applicants, m.err
}

func (m *mockApplicationRepo) AppliedJobIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return m.applied, m.err
}

func (m *mockApplicationRepo) Shortlist(_ context.Context, ids []uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.shortlisted = append(m.shortlisted, ids)
	return m.changed, nil
}

type mockUserRepo struct {
	user user.User
	err  error
}

func (m mockUserRepo) FindByID(context.Context, uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	return m.user, nil
}

type mockSavedJobRepo struct {
	saved []recommend.SavedJob
	err   error
}

func (m mockSavedJobRepo) ListByUser(context.Context, uuid.UUID) ([]recommend.SavedJob, error) {
	return m.saved, m.err
}

type mockNotifier struct {
	calls int
	jobID uuid.UUID
	ids   []uuid.UUID
}

func (m *mockNotifier) ShortlistUpdated(jobID uuid.UUID, ids []uuid.UUID) {
	m.calls++
	m.jobID = jobID
	m.ids = ids
}

// stubEmbedder answers from a fixed text-to-vector table and fails for any
// text listed in failFor.
type stubEmbedder struct {
	vectors map[string][]float64
	failFor map[string]error
}

func (s stubEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if err, ok := s.failFor[text]; ok {
		return nil, err
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float64{0, 0, 0}, nil
}

type stubProvider struct {
	embedder embedding.Embedder
	err      error
	calls    int
}

func (s *stubProvider) Embedder(context.Context) (embedding.Embedder, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.embedder, nil
}

type stubCache struct {
	entries map[string][]float64
	sets    int
}

func (s *stubCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	v, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	dst, ok := out.(*[]float64)
	if !ok {
		return false, nil
	}
	*dst = v
	return true, nil
}

func (s *stubCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if s.entries == nil {
		s.entries = map[string][]float64{}
	}
	if v, ok := value.([]float64); ok {
		s.entries[key] = v
	}
	s.sets++
	return nil
}
