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

// SessionRepo defines the persistence operations for TrainingSessions.
// Sessions are hard-deleted (they are leaves — nothing references them) and
// their technique/tag ids are stored opaque, never validated against the
// catalogs.
type SessionRepo interface {
	// Create inserts a new session and returns the persisted record.
	Create(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error)

	// GetByID retrieves a session owned by userID.
	// Returns domain.ErrNotFound if missing or not owned.
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (domain.TrainingSession, error)

	// List returns all of the user's sessions, most recent date first.
	List(ctx context.Context, userID uuid.UUID) ([]domain.TrainingSession, error)

	// Update overwrites the mutable fields of an owned session and returns
	// the updated record. Returns domain.ErrNotFound if missing or not owned.
	Update(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error)

	// Delete removes an owned session.
	// Returns domain.ErrNotFound if missing or not owned.
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
}

// pgSessionRepo is the Postgres implementation of SessionRepo.
type pgSessionRepo struct {
	db db
}

// NewSessionRepo constructs a SessionRepo backed by the provided db connection.
func NewSessionRepo(db db) SessionRepo {
	return &pgSessionRepo{db: db}
}

const sessionColumns = `id, user_id, date, time, total_duration, techniques, note, tag_ids, created_at, updated_at`

func (r *pgSessionRepo) Create(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error) {
	const q = `
		INSERT INTO training_sessions (user_id, date, time, total_duration, techniques, note, tag_ids)
		VALUES (@user_id, @date, @time, @total_duration, @techniques, @note, @tag_ids)
		RETURNING ` + sessionColumns

	row := r.db.QueryRow(ctx, q, sessionArgs(session))
	result, err := scanSession(row)
	if err != nil {
		return domain.TrainingSession{}, fmt.Errorf("repo.SessionRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgSessionRepo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (domain.TrainingSession, error) {
	const q = `
		SELECT ` + sessionColumns + `
		FROM training_sessions
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": sessionID, "user_id": userID})
	result, err := scanSession(row)
	if err != nil {
		return domain.TrainingSession{}, fmt.Errorf("repo.SessionRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgSessionRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.TrainingSession, error) {
	const q = `
		SELECT ` + sessionColumns + `
		FROM training_sessions
		WHERE user_id = @user_id
		ORDER BY date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.SessionRepo.List: %w", err)
	}
	defer rows.Close()

	sessions := []domain.TrainingSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SessionRepo.List: scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SessionRepo.List: rows: %w", err)
	}
	return sessions, nil
}

func (r *pgSessionRepo) Update(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error) {
	const q = `
		UPDATE training_sessions
		SET date           = @date,
		    time           = @time,
		    total_duration = @total_duration,
		    techniques     = @techniques,
		    note           = @note,
		    tag_ids        = @tag_ids,
		    updated_at     = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + sessionColumns

	args := sessionArgs(session)
	args["id"] = session.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSession(row)
	if err != nil {
		return domain.TrainingSession{}, fmt.Errorf("repo.SessionRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgSessionRepo) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	const q = `DELETE FROM training_sessions WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": sessionID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// sessionArgs builds the shared named args for Create and Update.
// The techniques slice rides in a jsonb column; pgx marshals it via
// encoding/json.
func sessionArgs(s domain.TrainingSession) pgx.NamedArgs {
	techniques := s.Techniques
	if techniques == nil {
		techniques = []domain.SessionTechnique{}
	}
	return pgx.NamedArgs{
		"user_id":        s.UserID,
		"date":           s.Date,
		"time":           s.Time,
		"total_duration": s.TotalDuration,
		"techniques":     techniques,
		"note":           s.Note,
		"tag_ids":        tagIDsArg(s.TagIDs),
	}
}

// scanSession maps a single database row into a domain.TrainingSession.
func scanSession(s scanner) (domain.TrainingSession, error) {
	var (
		sess   domain.TrainingSession
		id     pgtype.UUID
		userID pgtype.UUID
		date   pgtype.Date
		tagIDs []uuid.UUID
	)
	err := s.Scan(&id, &userID, &date, &sess.Time, &sess.TotalDuration, &sess.Techniques, &sess.Note, &tagIDs, &sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TrainingSession{}, domain.ErrNotFound
		}
		return domain.TrainingSession{}, err
	}
	sess.ID = uuid.UUID(id.Bytes)
	sess.UserID = uuid.UUID(userID.Bytes)
	sess.Date = date.Time
	sess.TagIDs = tagIDs
	if sess.TagIDs == nil {
		sess.TagIDs = []uuid.UUID{}
	}
	if sess.Techniques == nil {
		sess.Techniques = []domain.SessionTechnique{}
	}
	return sess, nil
}
