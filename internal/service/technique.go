package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/repo"
)

// TechniqueService implements the technique catalog and its conflict
// resolution. Per (user, normalized name) a technique is Absent, Active, or
// SoftDeleted; create and update refuse to silently duplicate or resurrect a
// name — a collision with a soft-deleted record is surfaced as a
// domain.SoftDeletedConflictError so the caller can choose restore or
// replace, and the draft that lost the conflict is never persisted.
type TechniqueService struct {
	techniques repo.TechniqueRepo
}

// NewTechniqueService constructs a TechniqueService.
func NewTechniqueService(techniques repo.TechniqueRepo) *TechniqueService {
	return &TechniqueService{techniques: techniques}
}

// List returns the user's techniques, active and soft-deleted.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TechniqueService) List(ctx context.Context, userID uuid.UUID) ([]domain.Technique, error) {
	techniques, err := s.techniques.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TechniqueService.List: %w", err)
	}
	if techniques == nil {
		return []domain.Technique{}, nil
	}
	return techniques, nil
}

// Get returns a single owned technique, active or soft-deleted.
func (s *TechniqueService) Get(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error) {
	technique, err := s.techniques.GetByID(ctx, userID, techniqueID)
	if err != nil {
		return domain.Technique{}, fmt.Errorf("service.TechniqueService.Get: %w", err)
	}
	return technique, nil
}

// Create persists a new technique from the draft.
//
// Name collisions: an active same-name technique fails with
// domain.ErrDuplicateName; a soft-deleted one fails with
// domain.SoftDeletedConflictError carrying its id, and nothing is written.
func (s *TechniqueService) Create(ctx context.Context, userID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
	normalized, err := normalizeName(draft.Name)
	if err != nil {
		return domain.Technique{}, err
	}

	if err := s.checkNameConflict(ctx, userID, normalized, uuid.Nil); err != nil {
		return domain.Technique{}, fmt.Errorf("service.TechniqueService.Create: %w", err)
	}

	created, err := s.techniques.Create(ctx, domain.Technique{
		UserID:      userID,
		Name:        normalized,
		Description: draft.Description,
		TagIDs:      draft.TagIDs,
	})
	if err != nil {
		return domain.Technique{}, fmt.Errorf("service.TechniqueService.Create: %w", err)
	}
	return created, nil
}

// Update overwrites an owned technique's name, description, and tags.
//
// A rename onto another technique's name fails exactly like Create: active →
// domain.ErrDuplicateName, soft-deleted → domain.SoftDeletedConflictError
// with the other record's id. The edit itself is lost in neither case.
func (s *TechniqueService) Update(ctx context.Context, userID, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
	normalized, err := normalizeName(draft.Name)
	if err != nil {
		return domain.Technique{}, err
	}

	if _, err := s.techniques.GetByID(ctx, userID, techniqueID); err != nil {
		return domain.Technique{}, fmt.Errorf("service.TechniqueService.Update: %w", err)
	}

	if err := s.checkNameConflict(ctx, userID, normalized, techniqueID); err != nil {
		return domain.Technique{}, fmt.Errorf("service.TechniqueService.Update: %w", err)
	}

	updated, err := s.techniques.Update(ctx, domain.Technique{
		ID:          techniqueID,
		UserID:      userID,
		Name:        normalized,
		Description: draft.Description,
		TagIDs:      draft.TagIDs,
	})
	if err != nil {
		return domain.Technique{}, fmt.Errorf("service.TechniqueService.Update: %w", err)
	}
	return updated, nil
}

// Restore reactivates a soft-deleted technique as-is, discarding nothing.
// Fails with domain.ErrNotFound unless the technique is owned and currently
// soft-deleted.
func (s *TechniqueService) Restore(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error) {
	restored, err := s.techniques.Restore(ctx, userID, techniqueID)
	if err != nil {
		return domain.Technique{}, fmt.Errorf("service.TechniqueService.Restore: %w", err)
	}
	return restored, nil
}

// Replace overwrites the soft-deleted target with the caller's draft and
// reactivates it, keeping the target's identity so existing session
// references keep resolving. The draft's own id — if the conflict arose from
// an update — is left untouched.
func (s *TechniqueService) Replace(ctx context.Context, userID, targetID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
	normalized, err := normalizeName(draft.Name)
	if err != nil {
		return domain.Technique{}, err
	}
	draft.Name = normalized

	replaced, err := s.techniques.Replace(ctx, userID, targetID, draft)
	if err != nil {
		return domain.Technique{}, fmt.Errorf("service.TechniqueService.Replace: %w", err)
	}
	return replaced, nil
}

// SoftDelete marks an active technique deleted. Sessions referencing it are
// untouched.
func (s *TechniqueService) SoftDelete(ctx context.Context, userID, techniqueID uuid.UUID) error {
	if err := s.techniques.SoftDelete(ctx, userID, techniqueID); err != nil {
		return fmt.Errorf("service.TechniqueService.SoftDelete: %w", err)
	}
	return nil
}

// checkNameConflict reports how name collides for this user, ignoring
// excludeID (uuid.Nil for creates). No collision returns nil.
func (s *TechniqueService) checkNameConflict(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) error {
	var (
		existing domain.Technique
		err      error
	)
	if excludeID == uuid.Nil {
		existing, err = s.techniques.GetByName(ctx, userID, name)
	} else {
		existing, err = s.techniques.GetByNameExcluding(ctx, userID, name, excludeID)
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.IsDeleted:
		return &domain.SoftDeletedConflictError{ExistingID: existing.ID, Name: name}
	default:
		return domain.ErrDuplicateName
	}
}
