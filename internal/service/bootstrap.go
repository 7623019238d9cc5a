package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/repo"
)

// TagTemplate is one starter tag name.
type TagTemplate struct {
	Name string
}

// TechniqueTemplate is one starter technique. Tags lists tag *names*, which
// the bootstrap resolves against the tags it just created; names with no
// matching created tag are dropped.
type TechniqueTemplate struct {
	Name        string
	Description string
	Tags        []string
}

// BootstrapService copies the starter templates into a new user's namespace.
// It is gated on the user having zero tags, so under normal operation it runs
// at most once per account. Concurrent first requests from the same new user
// can race the gate; the loser fails on the active-name unique index and the
// client's retry sails through.
type BootstrapService struct {
	tags       repo.TagRepo
	techniques repo.TechniqueRepo

	tagTemplates       []TagTemplate
	techniqueTemplates []TechniqueTemplate
}

// NewBootstrapService constructs a BootstrapService over the built-in
// templates.
func NewBootstrapService(tags repo.TagRepo, techniques repo.TechniqueRepo) *BootstrapService {
	return &BootstrapService{
		tags:               tags,
		techniques:         techniques,
		tagTemplates:       DefaultTags,
		techniqueTemplates: DefaultTechniques,
	}
}

// NewBootstrapServiceWithTemplates is NewBootstrapService with caller-chosen
// templates, for tests.
func NewBootstrapServiceWithTemplates(tags repo.TagRepo, techniques repo.TechniqueRepo, tagTemplates []TagTemplate, techniqueTemplates []TechniqueTemplate) *BootstrapService {
	return &BootstrapService{
		tags:               tags,
		techniques:         techniques,
		tagTemplates:       tagTemplates,
		techniqueTemplates: techniqueTemplates,
	}
}

// EnsureUserData seeds the user's catalogs from the templates if — and only
// if — the user owns zero tags. Every created record is active and marked
// isDefault.
func (s *BootstrapService) EnsureUserData(ctx context.Context, userID uuid.UUID) error {
	count, err := s.tags.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("service.BootstrapService.EnsureUserData: %w", err)
	}
	if count > 0 {
		return nil
	}

	tagIDByName := make(map[string]uuid.UUID, len(s.tagTemplates))
	for _, tmpl := range s.tagTemplates {
		tag, err := s.tags.Create(ctx, domain.Tag{
			UserID:    userID,
			Name:      domain.CapitalizeName(tmpl.Name),
			IsDefault: true,
		})
		if err != nil {
			return fmt.Errorf("service.BootstrapService.EnsureUserData: tag %q: %w", tmpl.Name, err)
		}
		tagIDByName[tag.Name] = tag.ID
	}

	for _, tmpl := range s.techniqueTemplates {
		// Tag names with no created tag are dropped; the template unit test
		// keeps the data honest so this never fires for the built-in set.
		tagIDs := []uuid.UUID{}
		for _, name := range tmpl.Tags {
			if id, ok := tagIDByName[domain.CapitalizeName(name)]; ok {
				tagIDs = append(tagIDs, id)
			}
		}

		_, err := s.techniques.Create(ctx, domain.Technique{
			UserID:      userID,
			Name:        domain.CapitalizeName(tmpl.Name),
			Description: tmpl.Description,
			IsDefault:   true,
			TagIDs:      tagIDs,
		})
		if err != nil {
			return fmt.Errorf("service.BootstrapService.EnsureUserData: technique %q: %w", tmpl.Name, err)
		}
	}

	return nil
}
