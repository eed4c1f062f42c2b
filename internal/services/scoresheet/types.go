package scoresheet

import (
	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/models"
	sheetRepo "github.com/KirkDiggler/yahtzee/internal/repositories/scoresheet"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// RejectionReason classifies why a score attempt was not legal
type RejectionReason string

const (
	// ReasonRollInvalid indicates the dice input was malformed
	ReasonRollInvalid RejectionReason = "roll_invalid"

	// ReasonUnknownCategory indicates the category ID is not in the catalog
	ReasonUnknownCategory RejectionReason = "unknown_category"

	// ReasonAlreadyFilled indicates the category already has an entry
	ReasonAlreadyFilled RejectionReason = "already_filled"

	// ReasonJokerRestricted indicates the joker rule forces a different category
	ReasonJokerRestricted RejectionReason = "joker_restricted"
)

// Config holds configuration for the scoresheet service
type Config struct {
	// Catalog is the rule catalog in play
	Catalog *scoring.Catalog

	// Repository dependencies
	ScoresheetRepo sheetRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateScoresheetInput contains parameters for creating a scoresheet
type CreateScoresheetInput struct {
	// PlayerID identifies the owning player
	PlayerID string
}

// CreateScoresheetOutput contains the result of creating a scoresheet
type CreateScoresheetOutput struct {
	// Scoresheet is the newly created empty scoresheet
	Scoresheet *models.Scoresheet
}

// GetScoresheetInput contains parameters for retrieving a scoresheet
type GetScoresheetInput struct {
	// ScoresheetID is the unique identifier for the scoresheet
	ScoresheetID string
}

// GetScoresheetOutput contains the result of retrieving a scoresheet
type GetScoresheetOutput struct {
	Scoresheet *models.Scoresheet
}

// ListCategoriesInput contains parameters for listing the catalog
type ListCategoriesInput struct {
	// ScoresheetID optionally marks each category with its recorded state
	ScoresheetID string
}

// CategoryInfo describes one catalog category, with scoresheet state when
// a scoresheet was supplied
type CategoryInfo struct {
	// ID is the stable catalog identifier
	ID string

	// Section is the scoresheet grouping
	Section scoring.Section

	// Filled indicates the category already has an entry
	Filled bool

	// Score is the recorded score when Filled
	Score int
}

// ListCategoriesOutput contains the catalog in scoresheet order
type ListCategoriesOutput struct {
	Categories []CategoryInfo
}

// ValidateScoreInput contains parameters for checking score legality
type ValidateScoreInput struct {
	// ScoresheetID is the unique identifier for the scoresheet
	ScoresheetID string

	// Faces are the five die faces of the finalized roll
	Faces []int

	// CategoryID is the category the player wants to score
	CategoryID string
}

// ValidateScoreOutput contains the legality verdict
type ValidateScoreOutput struct {
	// Legal indicates the category may be scored now
	Legal bool

	// Reason classifies the rejection when not legal
	Reason RejectionReason
}

// ScoreRollInput contains parameters for computing a score
type ScoreRollInput struct {
	// Faces are the five die faces of the finalized roll
	Faces []int

	// CategoryID is the category to compute
	CategoryID string
}

// ScoreRollOutput contains a computed score
type ScoreRollOutput struct {
	// Score is the category's value for the roll
	Score int
}

// CommitScoreInput contains parameters for recording a score
type CommitScoreInput struct {
	// ScoresheetID is the unique identifier for the scoresheet
	ScoresheetID string

	// Faces are the five die faces of the finalized roll
	Faces []int

	// CategoryID is the category to record
	CategoryID string
}

// CommitScoreOutput contains the result of recording a score
type CommitScoreOutput struct {
	// Entry is the recorded score entry
	Entry *models.ScoreEntry

	// BonusAwarded indicates a bonus Yahtzee was credited by this commit
	BonusAwarded bool

	// Totals is the breakdown after the commit
	Totals scoring.Totals

	// Scoresheet is the updated scoresheet
	Scoresheet *models.Scoresheet
}

// GetTotalsInput contains parameters for computing totals
type GetTotalsInput struct {
	// ScoresheetID is the unique identifier for the scoresheet
	ScoresheetID string
}

// GetTotalsOutput contains the derived score breakdown
type GetTotalsOutput struct {
	Totals scoring.Totals
}

// DeleteScoresheetInput contains parameters for deleting a scoresheet
type DeleteScoresheetInput struct {
	// ScoresheetID is the unique identifier for the scoresheet
	ScoresheetID string
}

// DeleteScoresheetOutput contains the result of deleting a scoresheet
type DeleteScoresheetOutput struct {
	// Success indicates the scoresheet was removed
	Success bool
}
