package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag is a user-owned label applied to techniques and training sessions.
// Tags are soft-deleted, never removed: sessions keep referencing a deleted
// tag's id, so the row must survive. At most one active tag per user may
// carry a given normalized name.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"isDefault"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CapitalizeName normalizes a tag or technique name: the first byte is
// upper-cased, the rest is kept as typed. This is deliberately not
// Unicode-aware — it reproduces the exact normalization existing clients
// were built against ("armbar" → "Armbar", "de la Riva" → "De la Riva").
func CapitalizeName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
