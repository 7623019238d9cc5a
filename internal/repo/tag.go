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

// TagRepo defines the persistence operations for Tags.
// Every operation is scoped to the owning user; a tag belonging to another
// user is indistinguishable from a missing one.
type TagRepo interface {
	// Create inserts an active tag. Returns domain.ErrDuplicateName if the
	// user already has an active tag with that name.
	Create(ctx context.Context, tag domain.Tag) (domain.Tag, error)

	// GetByID retrieves a tag owned by userID, active or soft-deleted.
	// Returns domain.ErrNotFound if missing or not owned.
	GetByID(ctx context.Context, userID, tagID uuid.UUID) (domain.Tag, error)

	// GetByName retrieves the user's tag with the exact (normalized) name.
	// When both an active and soft-deleted rows share the name, the active
	// one wins. Returns domain.ErrNotFound if the user has no such tag.
	GetByName(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error)

	// GetByNameExcluding is GetByName skipping the given tag id — used by
	// rename to detect a collision with a *different* tag, deleted or not.
	GetByNameExcluding(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (domain.Tag, error)

	// List returns all of the user's tags, active and soft-deleted, by name.
	List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)

	// CountByUser returns the number of tags (any state) the user owns.
	// The default-data bootstrap gates on this being zero.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Reactivate clears is_deleted on a tag and returns the updated record.
	Reactivate(ctx context.Context, userID, tagID uuid.UUID) (domain.Tag, error)

	// Rename overwrites the tag's name and returns the updated record.
	// Returns domain.ErrNotFound if missing or not owned, and
	// domain.ErrDuplicateName on an active-name collision.
	Rename(ctx context.Context, userID, tagID uuid.UUID, name string) (domain.Tag, error)

	// SoftDelete marks an active tag deleted. Returns domain.ErrNotFound if
	// the tag is missing, not owned, or already soft-deleted.
	SoftDelete(ctx context.Context, userID, tagID uuid.UUID) error
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

func (r *pgTagRepo) Create(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	const q = `
		INSERT INTO tags (user_id, name, is_default)
		VALUES (@user_id, @name, @is_default)
		RETURNING id, user_id, name, is_default, is_deleted, created_at, updated_at`

	args := pgx.NamedArgs{
		"user_id":    tag.UserID,
		"name":       tag.Name,
		"is_default": tag.IsDefault,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTag(row)
	if err != nil {
		if isUniqueViolation(err, "tags_user_active_name_idx") {
			return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", domain.ErrDuplicateName)
		}
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTagRepo) GetByID(ctx context.Context, userID, tagID uuid.UUID) (domain.Tag, error) {
	const q = `
		SELECT id, user_id, name, is_default, is_deleted, created_at, updated_at
		FROM tags
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tagID, "user_id": userID})
	result, err := scanTag(row)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetByName prefers the active row: the partial unique index allows one
// active plus any number of soft-deleted rows with the same name, and the
// create flow must collide with the active one when it exists.
func (r *pgTagRepo) GetByName(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error) {
	const q = `
		SELECT id, user_id, name, is_default, is_deleted, created_at, updated_at
		FROM tags
		WHERE user_id = @user_id AND name = @name
		ORDER BY is_deleted ASC
		LIMIT 1`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "name": name})
	result, err := scanTag(row)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByName: %w", err)
	}
	return result, nil
}

func (r *pgTagRepo) GetByNameExcluding(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (domain.Tag, error) {
	const q = `
		SELECT id, user_id, name, is_default, is_deleted, created_at, updated_at
		FROM tags
		WHERE user_id = @user_id AND name = @name AND id <> @exclude_id
		ORDER BY is_deleted ASC
		LIMIT 1`

	args := pgx.NamedArgs{"user_id": userID, "name": name, "exclude_id": excludeID}
	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTag(row)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByNameExcluding: %w", err)
	}
	return result, nil
}

func (r *pgTagRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	const q = `
		SELECT id, user_id, name, is_default, is_deleted, created_at, updated_at
		FROM tags
		WHERE user_id = @user_id
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TagRepo.List: scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: rows: %w", err)
	}
	return tags, nil
}

func (r *pgTagRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const q = `SELECT count(*) FROM tags WHERE user_id = @user_id`

	var count int64
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}).Scan(&count); err != nil {
		return 0, fmt.Errorf("repo.TagRepo.CountByUser: %w", err)
	}
	return count, nil
}

func (r *pgTagRepo) Reactivate(ctx context.Context, userID, tagID uuid.UUID) (domain.Tag, error) {
	const q = `
		UPDATE tags
		SET is_deleted = false,
		    updated_at = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING id, user_id, name, is_default, is_deleted, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tagID, "user_id": userID})
	result, err := scanTag(row)
	if err != nil {
		if isUniqueViolation(err, "tags_user_active_name_idx") {
			return domain.Tag{}, fmt.Errorf("repo.TagRepo.Reactivate: %w", domain.ErrDuplicateName)
		}
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Reactivate: %w", err)
	}
	return result, nil
}

func (r *pgTagRepo) Rename(ctx context.Context, userID, tagID uuid.UUID, name string) (domain.Tag, error) {
	const q = `
		UPDATE tags
		SET name       = @name,
		    updated_at = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING id, user_id, name, is_default, is_deleted, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tagID, "user_id": userID, "name": name})
	result, err := scanTag(row)
	if err != nil {
		if isUniqueViolation(err, "tags_user_active_name_idx") {
			return domain.Tag{}, fmt.Errorf("repo.TagRepo.Rename: %w", domain.ErrDuplicateName)
		}
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Rename: %w", err)
	}
	return result, nil
}

func (r *pgTagRepo) SoftDelete(ctx context.Context, userID, tagID uuid.UUID) error {
	const q = `
		UPDATE tags
		SET is_deleted = true,
		    updated_at = now()
		WHERE id = @id AND user_id = @user_id AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": tagID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TagRepo.SoftDelete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TagRepo.SoftDelete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTag maps a single database row into a domain.Tag.
func scanTag(s scanner) (domain.Tag, error) {
	var (
		t      domain.Tag
		id     pgtype.UUID
		userID pgtype.UUID
	)
	err := s.Scan(&id, &userID, &t.Name, &t.IsDefault, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, err
	}
	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	return t, nil
}
