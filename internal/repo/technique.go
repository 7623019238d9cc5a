package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
)

// TechniqueRepo defines the persistence operations for Techniques.
// Like tags, every operation is user-scoped and soft deletes keep the row.
type TechniqueRepo interface {
	// Create inserts an active technique. Returns domain.ErrDuplicateName if
	// the user already has an active technique with that name.
	Create(ctx context.Context, technique domain.Technique) (domain.Technique, error)

	// GetByID retrieves a technique owned by userID, active or soft-deleted.
	GetByID(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error)

	// GetByName retrieves the user's technique with the exact (normalized)
	// name, preferring the active row over soft-deleted ones.
	GetByName(ctx context.Context, userID uuid.UUID, name string) (domain.Technique, error)

	// GetByNameExcluding is GetByName skipping the given technique id — used
	// by update to detect collisions with a *different* record.
	GetByNameExcluding(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (domain.Technique, error)

	// List returns all of the user's techniques, active and soft-deleted,
	// ordered by name. Presentation-layer filtering of soft-deleted entries
	// is the client's concern.
	List(ctx context.Context, userID uuid.UUID) ([]domain.Technique, error)

	// Update overwrites name, description, and tag ids of an owned technique
	// and returns the updated record.
	Update(ctx context.Context, technique domain.Technique) (domain.Technique, error)

	// Restore clears is_deleted on a currently soft-deleted technique.
	// Returns domain.ErrNotFound if the technique is missing, not owned, or
	// not soft-deleted.
	Restore(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error)

	// Replace overwrites a currently soft-deleted technique with the draft
	// content and reactivates it in one statement, keeping its identity so
	// sessions referencing the id keep resolving. Returns domain.ErrNotFound
	// if the target is missing, not owned, or not soft-deleted.
	Replace(ctx context.Context, userID, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error)

	// SoftDelete marks an active technique deleted. Returns
	// domain.ErrNotFound if missing, not owned, or already soft-deleted.
	SoftDelete(ctx context.Context, userID, techniqueID uuid.UUID) error
}

// pgTechniqueRepo is the Postgres implementation of TechniqueRepo.
type pgTechniqueRepo struct {
	db db
}

// NewTechniqueRepo constructs a TechniqueRepo backed by the provided db connection.
func NewTechniqueRepo(db db) TechniqueRepo {
	return &pgTechniqueRepo{db: db}
}

const techniqueColumns = `id, user_id, name, description, is_default, is_deleted, tag_ids, created_at, updated_at`

func (r *pgTechniqueRepo) Create(ctx context.Context, technique domain.Technique) (domain.Technique, error) {
	const q = `
		INSERT INTO techniques (user_id, name, description, is_default, tag_ids)
		VALUES (@user_id, @name, @description, @is_default, @tag_ids)
		RETURNING ` + techniqueColumns

	args := pgx.NamedArgs{
		"user_id":     technique.UserID,
		"name":        technique.Name,
		"description": technique.Description,
		"is_default":  technique.IsDefault,
		"tag_ids":     tagIDsArg(technique.TagIDs),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTechnique(row)
	if err != nil {
		if isUniqueViolation(err, "techniques_user_active_name_idx") {
			return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.Create: %w", domain.ErrDuplicateName)
		}
		return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTechniqueRepo) GetByID(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error) {
	const q = `
		SELECT ` + techniqueColumns + `
		FROM techniques
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": techniqueID, "user_id": userID})
	result, err := scanTechnique(row)
	if err != nil {
		return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTechniqueRepo) GetByName(ctx context.Context, userID uuid.UUID, name string) (domain.Technique, error) {
	const q = `
		SELECT ` + techniqueColumns + `
		FROM techniques
		WHERE user_id = @user_id AND name = @name
		ORDER BY is_deleted ASC
		LIMIT 1`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "name": name})
	result, err := scanTechnique(row)
	if err != nil {
		return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.GetByName: %w", err)
	}
	return result, nil
}

func (r *pgTechniqueRepo) GetByNameExcluding(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (domain.Technique, error) {
	const q = `
		SELECT ` + techniqueColumns + `
		FROM techniques
		WHERE user_id = @user_id AND name = @name AND id <> @exclude_id
		ORDER BY is_deleted ASC
		LIMIT 1`

	args := pgx.NamedArgs{"user_id": userID, "name": name, "exclude_id": excludeID}
	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTechnique(row)
	if err != nil {
		return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.GetByNameExcluding: %w", err)
	}
	return result, nil
}

func (r *pgTechniqueRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Technique, error) {
	const q = `
		SELECT ` + techniqueColumns + `
		FROM techniques
		WHERE user_id = @user_id
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TechniqueRepo.List: %w", err)
	}
	defer rows.Close()

	techniques := []domain.Technique{}
	for rows.Next() {
		t, err := scanTechnique(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TechniqueRepo.List: scan: %w", err)
		}
		techniques = append(techniques, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TechniqueRepo.List: rows: %w", err)
	}
	return techniques, nil
}

func (r *pgTechniqueRepo) Update(ctx context.Context, technique domain.Technique) (domain.Technique, error) {
	const q = `
		UPDATE techniques
		SET name        = @name,
		    description = @description,
		    tag_ids     = @tag_ids,
		    updated_at  = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + techniqueColumns

	args := pgx.NamedArgs{
		"id":          technique.ID,
		"user_id":     technique.UserID,
		"name":        technique.Name,
		"description": technique.Description,
		"tag_ids":     tagIDsArg(technique.TagIDs),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTechnique(row)
	if err != nil {
		if isUniqueViolation(err, "techniques_user_active_name_idx") {
			return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.Update: %w", domain.ErrDuplicateName)
		}
		return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTechniqueRepo) Restore(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error) {
	const q = `
		UPDATE techniques
		SET is_deleted = false,
		    updated_at = now()
		WHERE id = @id AND user_id = @user_id AND is_deleted
		RETURNING ` + techniqueColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": techniqueID, "user_id": userID})
	result, err := scanTechnique(row)
	if err != nil {
		if isUniqueViolation(err, "techniques_user_active_name_idx") {
			return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.Restore: %w", domain.ErrDuplicateName)
		}
		return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.Restore: %w", err)
	}
	return result, nil
}

func (r *pgTechniqueRepo) Replace(ctx context.Context, userID, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
	const q = `
		UPDATE techniques
		SET name        = @name,
		    description = @description,
		    tag_ids     = @tag_ids,
		    is_deleted  = false,
		    updated_at  = now()
		WHERE id = @id AND user_id = @user_id AND is_deleted
		RETURNING ` + techniqueColumns

	args := pgx.NamedArgs{
		"id":          techniqueID,
		"user_id":     userID,
		"name":        draft.Name,
		"description": draft.Description,
		"tag_ids":     tagIDsArg(draft.TagIDs),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTechnique(row)
	if err != nil {
		if isUniqueViolation(err, "techniques_user_active_name_idx") {
			return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.Replace: %w", domain.ErrDuplicateName)
		}
		return domain.Technique{}, fmt.Errorf("repo.TechniqueRepo.Replace: %w", err)
	}
	return result, nil
}

func (r *pgTechniqueRepo) SoftDelete(ctx context.Context, userID, techniqueID uuid.UUID) error {
	const q = `
		UPDATE techniques
		SET is_deleted = true,
		    updated_at = now()
		WHERE id = @id AND user_id = @user_id AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": techniqueID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TechniqueRepo.SoftDelete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TechniqueRepo.SoftDelete: %w", domain.ErrNotFound)
	}
	return nil
}

// tagIDsArg normalizes a nil tag slice to an empty array so the uuid[]
// column never stores NULL.
func tagIDsArg(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

// scanTechnique maps a single database row into a domain.Technique.
func scanTechnique(s scanner) (domain.Technique, error) {
	var (
		t      domain.Technique
		id     pgtype.UUID
		userID pgtype.UUID
		tagIDs []uuid.UUID
	)
	err := s.Scan(&id, &userID, &t.Name, &t.Description, &t.IsDefault, &t.IsDeleted, &tagIDs, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Technique{}, domain.ErrNotFound
		}
		return domain.Technique{}, err
	}
	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	t.TagIDs = tagIDs
	if t.TagIDs == nil {
		t.TagIDs = []uuid.UUID{}
	}
	return t, nil
}
