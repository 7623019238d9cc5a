package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionTechnique is one technique drilled during a training session.
// TechniqueID is a weak reference; the session survives the technique being
// soft-deleted and the consuming layer resolves (or skips) broken ids.
type SessionTechnique struct {
	TechniqueID uuid.UUID `json:"techniqueId"`
	Duration    int       `json:"duration"`    // minutes
	Repetitions int       `json:"repetitions"`
}

// TrainingSession is one logged practice. Date, Time, and TotalDuration are
// required; Techniques and TagIDs are ordered as submitted and stored as
// opaque references.
type TrainingSession struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"userId"`
	Date          time.Time          `json:"date"`
	Time          string             `json:"time"` // wall-clock, e.g. "19:30"
	TotalDuration int                `json:"totalDuration"` // minutes
	Techniques    []SessionTechnique `json:"techniques"`
	Note          string             `json:"note"`
	TagIDs        []uuid.UUID        `json:"tags"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}
