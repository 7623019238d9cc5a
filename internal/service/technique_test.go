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

// mockTechniqueRepo is a hand-written test double for repo.TechniqueRepo.
// Set only the method fields your test needs.
type mockTechniqueRepo struct {
	create             func(ctx context.Context, technique domain.Technique) (domain.Technique, error)
	getByID            func(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error)
	getByName          func(ctx context.Context, userID uuid.UUID, name string) (domain.Technique, error)
	getByNameExcluding func(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (domain.Technique, error)
	list               func(ctx context.Context, userID uuid.UUID) ([]domain.Technique, error)
	update             func(ctx context.Context, technique domain.Technique) (domain.Technique, error)
	restore            func(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error)
	replace            func(ctx context.Context, userID, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error)
	softDelete         func(ctx context.Context, userID, techniqueID uuid.UUID) error
}

func (m *mockTechniqueRepo) Create(ctx context.Context, technique domain.Technique) (domain.Technique, error) {
	return m.create(ctx, technique)
}
func (m *mockTechniqueRepo) GetByID(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error) {
	return m.getByID(ctx, userID, techniqueID)
}
func (m *mockTechniqueRepo) GetByName(ctx context.Context, userID uuid.UUID, name string) (domain.Technique, error) {
	return m.getByName(ctx, userID, name)
}
func (m *mockTechniqueRepo) GetByNameExcluding(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (domain.Technique, error) {
	return m.getByNameExcluding(ctx, userID, name, excludeID)
}
func (m *mockTechniqueRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Technique, error) {
	return m.list(ctx, userID)
}
func (m *mockTechniqueRepo) Update(ctx context.Context, technique domain.Technique) (domain.Technique, error) {
	return m.update(ctx, technique)
}
func (m *mockTechniqueRepo) Restore(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error) {
	return m.restore(ctx, userID, techniqueID)
}
func (m *mockTechniqueRepo) Replace(ctx context.Context, userID, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
	return m.replace(ctx, userID, techniqueID, draft)
}
func (m *mockTechniqueRepo) SoftDelete(ctx context.Context, userID, techniqueID uuid.UUID) error {
	return m.softDelete(ctx, userID, techniqueID)
}

// compile-time check: mockTechniqueRepo must satisfy repo.TechniqueRepo.
var _ repo.TechniqueRepo = (*mockTechniqueRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func techniqueFixture(userID uuid.UUID, name string) domain.Technique {
	return domain.Technique{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		TagIDs:    []uuid.UUID{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func noTechniqueByName(_ context.Context, _ uuid.UUID, _ string) (domain.Technique, error) {
	return domain.Technique{}, domain.ErrNotFound
}

// ---- Create ----------------------------------------------------------------

func TestTechniqueService_Create_NameAbsent(t *testing.T) {
	userID := uuid.New()
	svc := service.NewTechniqueService(&mockTechniqueRepo{
		getByName: noTechniqueByName,
		create: func(_ context.Context, tech domain.Technique) (domain.Technique, error) {
			tech.ID = uuid.New()
			return tech, nil
		},
	})

	got, err := svc.Create(context.Background(), userID, domain.TechniqueDraft{
		Name:        "armbar",
		Description: "From closed guard.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Armbar", got.Name)
	assert.Equal(t, "From closed guard.", got.Description)
}

func TestTechniqueService_Create_NameHeldByActive(t *testing.T) {
	userID := uuid.New()
	existing := techniqueFixture(userID, "Armbar")

	createCalled := false
	svc := service.NewTechniqueService(&mockTechniqueRepo{
		getByName: func(_ context.Context, _ uuid.UUID, _ string) (domain.Technique, error) {
			return existing, nil
		},
		create: func(_ context.Context, tech domain.Technique) (domain.Technique, error) {
			createCalled = true
			return tech, nil
		},
	})

	_, err := svc.Create(context.Background(), userID, domain.TechniqueDraft{Name: "armbar"})

	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	assert.False(t, createCalled)
}

func TestTechniqueService_Create_NameHeldBySoftDeleted(t *testing.T) {
	userID := uuid.New()
	deleted := techniqueFixture(userID, "Armbar")
	deleted.IsDeleted = true

	createCalled := false
	svc := service.NewTechniqueService(&mockTechniqueRepo{
		getByName: func(_ context.Context, _ uuid.UUID, _ string) (domain.Technique, error) {
			return deleted, nil
		},
		create: func(_ context.Context, tech domain.Technique) (domain.Technique, error) {
			createCalled = true
			return tech, nil
		},
	})

	_, err := svc.Create(context.Background(), userID, domain.TechniqueDraft{Name: "armbar"})

	conflict, ok := domain.AsSoftDeletedConflict(err)
	require.True(t, ok, "expected a soft-deleted conflict, got %v", err)
	assert.Equal(t, deleted.ID, conflict.ExistingID)
	assert.False(t, createCalled, "the losing draft must not be persisted")
}

func TestTechniqueService_Create_BlankName(t *testing.T) {
	svc := service.NewTechniqueService(&mockTechniqueRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), domain.TechniqueDraft{Name: " "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Update ----------------------------------------------------------------

func TestTechniqueService_Update_OK(t *testing.T) {
	userID := uuid.New()
	existing := techniqueFixture(userID, "Armbar")

	svc := service.NewTechniqueService(&mockTechniqueRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Technique, error) {
			return existing, nil
		},
		getByNameExcluding: func(_ context.Context, _ uuid.UUID, _ string, excludeID uuid.UUID) (domain.Technique, error) {
			assert.Equal(t, existing.ID, excludeID, "a no-op rename must not collide with itself")
			return domain.Technique{}, domain.ErrNotFound
		},
		update: func(_ context.Context, tech domain.Technique) (domain.Technique, error) {
			return tech, nil
		},
	})

	got, err := svc.Update(context.Background(), userID, existing.ID, domain.TechniqueDraft{
		Name:        "armbar",
		Description: "Updated description.",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Updated description.", got.Description)
}

func TestTechniqueService_Update_UnknownTechnique(t *testing.T) {
	svc := service.NewTechniqueService(&mockTechniqueRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Technique, error) {
			return domain.Technique{}, domain.ErrNotFound
		},
	})

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), domain.TechniqueDraft{Name: "Armbar"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTechniqueService_Update_RenameOntoSoftDeleted(t *testing.T) {
	userID := uuid.New()
	editing := techniqueFixture(userID, "Juji gatame")
	holder := techniqueFixture(userID, "Armbar")
	holder.IsDeleted = true

	updateCalled := false
	svc := service.NewTechniqueService(&mockTechniqueRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Technique, error) {
			return editing, nil
		},
		getByNameExcluding: func(_ context.Context, _ uuid.UUID, _ string, _ uuid.UUID) (domain.Technique, error) {
			return holder, nil
		},
		update: func(_ context.Context, tech domain.Technique) (domain.Technique, error) {
			updateCalled = true
			return tech, nil
		},
	})

	_, err := svc.Update(context.Background(), userID, editing.ID, domain.TechniqueDraft{Name: "armbar"})

	conflict, ok := domain.AsSoftDeletedConflict(err)
	require.True(t, ok, "expected a soft-deleted conflict, got %v", err)
	assert.Equal(t, holder.ID, conflict.ExistingID)
	assert.False(t, updateCalled, "the edit must not be written while unresolved")
}

func TestTechniqueService_Update_RenameOntoActive(t *testing.T) {
	userID := uuid.New()
	editing := techniqueFixture(userID, "Juji gatame")
	holder := techniqueFixture(userID, "Armbar")

	svc := service.NewTechniqueService(&mockTechniqueRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Technique, error) {
			return editing, nil
		},
		getByNameExcluding: func(_ context.Context, _ uuid.UUID, _ string, _ uuid.UUID) (domain.Technique, error) {
			return holder, nil
		},
	})

	_, err := svc.Update(context.Background(), userID, editing.ID, domain.TechniqueDraft{Name: "armbar"})

	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

// ---- Restore / Replace -----------------------------------------------------

func TestTechniqueService_Restore_OK(t *testing.T) {
	userID := uuid.New()
	target := techniqueFixture(userID, "Armbar")

	svc := service.NewTechniqueService(&mockTechniqueRepo{
		restore: func(_ context.Context, _, techniqueID uuid.UUID) (domain.Technique, error) {
			require.Equal(t, target.ID, techniqueID)
			return target, nil
		},
	})

	got, err := svc.Restore(context.Background(), userID, target.ID)

	require.NoError(t, err)
	assert.Equal(t, target.ID, got.ID)
}

func TestTechniqueService_Restore_NotSoftDeleted(t *testing.T) {
	// The repo reports ErrNotFound for targets that are active or missing.
	svc := service.NewTechniqueService(&mockTechniqueRepo{
		restore: func(_ context.Context, _, _ uuid.UUID) (domain.Technique, error) {
			return domain.Technique{}, domain.ErrNotFound
		},
	})

	_, err := svc.Restore(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTechniqueService_Replace_NormalizesDraftName(t *testing.T) {
	userID := uuid.New()
	target := techniqueFixture(userID, "Armbar")

	svc := service.NewTechniqueService(&mockTechniqueRepo{
		replace: func(_ context.Context, _, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
			assert.Equal(t, target.ID, techniqueID, "the target's identity must be kept")
			assert.Equal(t, "Armbar", draft.Name)
			replaced := target
			replaced.Description = draft.Description
			return replaced, nil
		},
	})

	got, err := svc.Replace(context.Background(), userID, target.ID, domain.TechniqueDraft{
		Name:        "armbar",
		Description: "The new content.",
	})

	require.NoError(t, err)
	assert.Equal(t, target.ID, got.ID)
	assert.Equal(t, "The new content.", got.Description)
}

func TestTechniqueService_Replace_BlankName(t *testing.T) {
	svc := service.NewTechniqueService(&mockTechniqueRepo{})

	_, err := svc.Replace(context.Background(), uuid.New(), uuid.New(), domain.TechniqueDraft{Name: ""})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- SoftDelete ------------------------------------------------------------

func TestTechniqueService_SoftDelete_PropagatesNotFound(t *testing.T) {
	svc := service.NewTechniqueService(&mockTechniqueRepo{
		softDelete: func(_ context.Context, _, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	})

	err := svc.SoftDelete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
