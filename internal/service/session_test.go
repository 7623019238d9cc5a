package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/repo"
	"github.com/DavidJulianGit/BJJTracker/internal/service"
)

// mockSessionRepo is a hand-written test double for repo.SessionRepo.
// Set only the method fields your test needs.
type mockSessionRepo struct {
	create  func(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error)
	getByID func(ctx context.Context, userID, sessionID uuid.UUID) (domain.TrainingSession, error)
	list    func(ctx context.Context, userID uuid.UUID) ([]domain.TrainingSession, error)
	update  func(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error)
	delete  func(ctx context.Context, userID, sessionID uuid.UUID) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error) {
	return m.create(ctx, session)
}
func (m *mockSessionRepo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (domain.TrainingSession, error) {
	return m.getByID(ctx, userID, sessionID)
}
func (m *mockSessionRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.TrainingSession, error) {
	return m.list(ctx, userID)
}
func (m *mockSessionRepo) Update(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error) {
	return m.update(ctx, session)
}
func (m *mockSessionRepo) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	return m.delete(ctx, userID, sessionID)
}

// compile-time check: mockSessionRepo must satisfy repo.SessionRepo.
var _ repo.SessionRepo = (*mockSessionRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validSession(userID uuid.UUID) domain.TrainingSession {
	return domain.TrainingSession{
		UserID:        userID,
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:          "19:30",
		TotalDuration: 90,
		Techniques: []domain.SessionTechnique{
			{TechniqueID: uuid.New(), Duration: 20, Repetitions: 10},
		},
		TagIDs: []uuid.UUID{uuid.New()},
	}
}

func echoSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		create: func(_ context.Context, s domain.TrainingSession) (domain.TrainingSession, error) {
			s.ID = uuid.New()
			return s, nil
		},
		update: func(_ context.Context, s domain.TrainingSession) (domain.TrainingSession, error) {
			return s, nil
		},
	}
}

// ---- Create ----------------------------------------------------------------

func TestSessionService_Create_Valid(t *testing.T) {
	svc := service.NewSessionService(echoSessionRepo())
	userID := uuid.New()

	got, err := svc.Create(context.Background(), validSession(userID))

	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestSessionService_Create_MissingDate(t *testing.T) {
	svc := service.NewSessionService(echoSessionRepo())

	session := validSession(uuid.New())
	session.Date = time.Time{}

	_, err := svc.Create(context.Background(), session)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_Create_MissingTime(t *testing.T) {
	svc := service.NewSessionService(echoSessionRepo())

	session := validSession(uuid.New())
	session.Time = "  "

	_, err := svc.Create(context.Background(), session)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_Create_NegativeDuration(t *testing.T) {
	svc := service.NewSessionService(echoSessionRepo())

	session := validSession(uuid.New())
	session.TotalDuration = -5

	_, err := svc.Create(context.Background(), session)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_Create_ZeroDurationAllowed(t *testing.T) {
	svc := service.NewSessionService(echoSessionRepo())

	session := validSession(uuid.New())
	session.TotalDuration = 0

	_, err := svc.Create(context.Background(), session)

	assert.NoError(t, err)
}

// ---- Update ----------------------------------------------------------------

func TestSessionService_Update_ValidatesLikeCreate(t *testing.T) {
	svc := service.NewSessionService(echoSessionRepo())

	session := validSession(uuid.New())
	session.ID = uuid.New()
	session.Time = ""

	_, err := svc.Update(context.Background(), session)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- List ------------------------------------------------------------------

func TestSessionService_List_NilBecomesEmptySlice(t *testing.T) {
	svc := service.NewSessionService(&mockSessionRepo{
		list: func(_ context.Context, _ uuid.UUID) ([]domain.TrainingSession, error) { return nil, nil },
	})

	got, err := svc.List(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Delete ----------------------------------------------------------------

func TestSessionService_Delete_PropagatesNotFound(t *testing.T) {
	svc := service.NewSessionService(&mockSessionRepo{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return domain.ErrNotFound },
	})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
