package domain

import (
	"time"

	"github.com/google/uuid"
)

// Technique is a user-owned catalog entry with a rich-text description and a
// set of tag references. TagIDs are weak references: they point at tags of
// the same user but are never FK-validated, so a soft-deleted tag stays
// referenced. Techniques share the tag catalog's per-user unique-active-name
// invariant and are soft-deleted, never removed, because training sessions
// reference them by id.
type Technique struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	IsDefault   bool        `json:"isDefault"`
	IsDeleted   bool        `json:"isDeleted"`
	TagIDs      []uuid.UUID `json:"tags"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TechniqueDraft is the caller-supplied content of a technique create,
// update, or replace. A draft that loses a naming conflict is never
// persisted — only a replace writes draft content, and it writes it onto the
// pre-existing record's id.
type TechniqueDraft struct {
	Name        string
	Description string
	TagIDs      []uuid.UUID
}
