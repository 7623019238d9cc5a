package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// WindowUnit is the unit of a statistics time window.
type WindowUnit string

const (
	UnitDays   WindowUnit = "days"
	UnitWeeks  WindowUnit = "weeks"
	UnitMonths WindowUnit = "months"
	UnitYears  WindowUnit = "years"
)

// StatsWindow selects sessions from the last Value Units before now.
type StatsWindow struct {
	Value int
	Unit  WindowUnit
}

// NewStatsWindow validates and builds a StatsWindow.
func NewStatsWindow(value int, unit string) (StatsWindow, error) {
	if value < 1 {
		return StatsWindow{}, fmt.Errorf("%w: window value must be at least 1", ErrValidation)
	}
	u := WindowUnit(unit)
	switch u {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return StatsWindow{Value: value, Unit: u}, nil
	}
	return StatsWindow{}, fmt.Errorf("%w: unknown window unit %q", ErrValidation, unit)
}

// Start returns the inclusive lower bound of the window relative to now.
func (w StatsWindow) Start(now time.Time) time.Time {
	switch w.Unit {
	case UnitDays:
		return now.AddDate(0, 0, -w.Value)
	case UnitWeeks:
		return now.AddDate(0, 0, -7*w.Value)
	case UnitMonths:
		return now.AddDate(0, -w.Value, 0)
	case UnitYears:
		return now.AddDate(-w.Value, 0, 0)
	}
	return now
}

// TechniqueStat is the rollup for one technique across the filtered sessions.
type TechniqueStat struct {
	TechniqueID uuid.UUID `json:"techniqueId"`
	Count       int       `json:"count"`       // sessions containing the technique
	Duration    int       `json:"duration"`    // summed minutes
	Repetitions int       `json:"repetitions"` // summed reps
}

// TagStat is the rollup for one tag across the filtered sessions.
type TagStat struct {
	TagID uuid.UUID `json:"tagId"`
	Count int       `json:"count"` // sessions carrying the tag
}

// StatsSummary is the derived, read-only view over a user's sessions within
// a time window. It is recomputed on every request and never persisted.
type StatsSummary struct {
	SessionCount  int             `json:"sessionCount"`
	TotalDuration int             `json:"totalDuration"`
	Techniques    []TechniqueStat `json:"techniques"`
	Tags          []TagStat       `json:"tags"`
}

// Summarize rolls up sessions dated after since.
//
// Techniques appear in first-encountered order and, when topTechniques > 0,
// the list is truncated to that many entries. Tags are sorted by count
// descending; ties keep first-encountered order.
func Summarize(sessions []TrainingSession, since time.Time, topTechniques int) StatsSummary {
	sum := StatsSummary{
		Techniques: []TechniqueStat{},
		Tags:       []TagStat{},
	}

	techIndex := map[uuid.UUID]int{}
	tagIndex := map[uuid.UUID]int{}

	for _, s := range sessions {
		if !s.Date.After(since) {
			continue
		}
		sum.SessionCount++
		sum.TotalDuration += s.TotalDuration

		for _, st := range s.Techniques {
			i, ok := techIndex[st.TechniqueID]
			if !ok {
				i = len(sum.Techniques)
				techIndex[st.TechniqueID] = i
				sum.Techniques = append(sum.Techniques, TechniqueStat{TechniqueID: st.TechniqueID})
			}
			sum.Techniques[i].Count++
			sum.Techniques[i].Duration += st.Duration
			sum.Techniques[i].Repetitions += st.Repetitions
		}

		for _, tagID := range s.TagIDs {
			i, ok := tagIndex[tagID]
			if !ok {
				i = len(sum.Tags)
				tagIndex[tagID] = i
				sum.Tags = append(sum.Tags, TagStat{TagID: tagID})
			}
			sum.Tags[i].Count++
		}
	}

	sort.SliceStable(sum.Tags, func(i, j int) bool {
		return sum.Tags[i].Count > sum.Tags[j].Count
	})

	if topTechniques > 0 && len(sum.Techniques) > topTechniques {
		sum.Techniques = sum.Techniques[:topTechniques]
	}

	return sum
}
