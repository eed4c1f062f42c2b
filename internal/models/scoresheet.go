package models

import (
	"time"
)

// ScoreEntry is the recorded outcome of scoring one category for one player
type ScoreEntry struct {
	// CategoryID is the catalog identifier of the scored category
	CategoryID string

	// Score is the recorded point value, which may be zero
	Score int

	// ScoredAt is when the entry was committed
	ScoredAt time.Time
}

// Scoresheet is the per-player ledger of category scores.
//
// It holds at most one entry per category plus a count of bonus Yahtzees.
// Totals are always derived from the entries, never stored. A scoresheet
// assumes a single writer; embedders in concurrent servers must serialize
// access per sheet.
type Scoresheet struct {
	// ID is the unique identifier for the scoresheet
	ID string

	// PlayerID identifies the owning player; ownership is established by
	// the caller, the engine does not model players
	PlayerID string

	// Entries maps category ID to the recorded score entry
	Entries map[string]*ScoreEntry

	// BonusYahtzees is the number of bonus Yahtzees credited after the
	// yahtzee category was filled with a positive score
	BonusYahtzees int

	// CreatedAt is when the scoresheet was created
	CreatedAt time.Time

	// UpdatedAt is when the scoresheet last changed
	UpdatedAt time.Time
}

// NewScoresheet creates an empty scoresheet for a player
func NewScoresheet(id, playerID string, now time.Time) *Scoresheet {
	return &Scoresheet{
		ID:        id,
		PlayerID:  playerID,
		Entries:   make(map[string]*ScoreEntry),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Entry returns the recorded entry for a category, if present
func (s *Scoresheet) Entry(categoryID string) (*ScoreEntry, bool) {
	entry, ok := s.Entries[categoryID]
	return entry, ok
}

// Filled reports whether a category already has a recorded entry
func (s *Scoresheet) Filled(categoryID string) bool {
	_, ok := s.Entries[categoryID]
	return ok
}

// Record writes an entry for a category. It does not check legality;
// callers validate first.
func (s *Scoresheet) Record(entry *ScoreEntry) {
	if s.Entries == nil {
		s.Entries = make(map[string]*ScoreEntry)
	}
	s.Entries[entry.CategoryID] = entry
}
