package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/repo"
)

// TagService implements the tag catalog. Its invariant: per user, at most one
// active tag per normalized name. Create reactivates a soft-deleted same-name
// tag in place; rename never does.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns the user's tags, active and soft-deleted.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TagService) List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	if tags == nil {
		return []domain.Tag{}, nil
	}
	return tags, nil
}

// Create inserts a new active tag under the normalized name.
//
// If the user already has a tag with that name: an active one fails with
// domain.ErrDuplicateName, a soft-deleted one is reactivated in place and
// returned — no new record is created.
func (s *TagService) Create(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error) {
	normalized, err := normalizeName(name)
	if err != nil {
		return domain.Tag{}, err
	}

	existing, err := s.tags.GetByName(ctx, userID, normalized)
	switch {
	case err == nil && !existing.IsDeleted:
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", domain.ErrDuplicateName)
	case err == nil:
		reactivated, err := s.tags.Reactivate(ctx, userID, existing.ID)
		if err != nil {
			return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
		}
		return reactivated, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
	}

	created, err := s.tags.Create(ctx, domain.Tag{UserID: userID, Name: normalized})
	if err != nil {
		// A concurrent create of the same name loses the race here and the
		// partial unique index reports it as a duplicate, same as the
		// check above would have.
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
	}
	return created, nil
}

// Rename changes a tag's name. Unlike Create it never reactivates: a
// collision with any other same-name tag, deleted or not, fails with
// domain.ErrDuplicateName.
func (s *TagService) Rename(ctx context.Context, userID, tagID uuid.UUID, name string) (domain.Tag, error) {
	normalized, err := normalizeName(name)
	if err != nil {
		return domain.Tag{}, err
	}

	if _, err := s.tags.GetByID(ctx, userID, tagID); err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Rename: %w", err)
	}

	_, err = s.tags.GetByNameExcluding(ctx, userID, normalized, tagID)
	switch {
	case err == nil:
		return domain.Tag{}, fmt.Errorf("service.TagService.Rename: %w", domain.ErrDuplicateName)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Tag{}, fmt.Errorf("service.TagService.Rename: %w", err)
	}

	renamed, err := s.tags.Rename(ctx, userID, tagID, normalized)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Rename: %w", err)
	}
	return renamed, nil
}

// SoftDelete marks a tag deleted. Sessions and techniques referencing it are
// untouched — their stored ids keep resolving to the (now soft-deleted) row.
func (s *TagService) SoftDelete(ctx context.Context, userID, tagID uuid.UUID) error {
	if err := s.tags.SoftDelete(ctx, userID, tagID); err != nil {
		return fmt.Errorf("service.TagService.SoftDelete: %w", err)
	}
	return nil
}

// normalizeName rejects blank names and applies the catalog's first-character
// capitalization.
func normalizeName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return domain.CapitalizeName(name), nil
}
