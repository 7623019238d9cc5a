// Package domain contains the core data types for the BJJTracker API.
// This package has zero dependencies on the other internal packages and is
// imported by every one of them (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rank is a Brazilian Jiu-Jitsu adult belt rank.
type Rank string

const (
	RankWhite  Rank = "white"
	RankBlue   Rank = "blue"
	RankPurple Rank = "purple"
	RankBrown  Rank = "brown"
	RankBlack  Rank = "black"
)

// Valid reports whether r is one of the five adult belt ranks.
func (r Rank) Valid() bool {
	switch r {
	case RankWhite, RankBlue, RankPurple, RankBrown, RankBlack:
		return true
	}
	return false
}

// MaxStripes is the most stripes a belt can carry.
const MaxStripes = 4

// User is an account. Email is stored lower-cased and is unique
// case-insensitively. PasswordHash is a bcrypt hash and must never be
// serialized to a client.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Username     string    `json:"username"`
	Rank         Rank      `json:"rank"`
	Stripes      int       `json:"stripes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
