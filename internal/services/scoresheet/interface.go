package scoresheet

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/yahtzee/internal/services/scoresheet Service

// Service defines the interface for scoresheet operations
type Service interface {
	// CreateScoresheet creates an empty scoresheet for a player
	CreateScoresheet(ctx context.Context, input *CreateScoresheetInput) (*CreateScoresheetOutput, error)

	// GetScoresheet retrieves a scoresheet by ID
	GetScoresheet(ctx context.Context, input *GetScoresheetInput) (*GetScoresheetOutput, error)

	// ListCategories returns the rule catalog in scoresheet order
	ListCategories(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error)

	// ValidateScore checks whether a category may be scored for a roll
	ValidateScore(ctx context.Context, input *ValidateScoreInput) (*ValidateScoreOutput, error)

	// ScoreRoll computes a category's score for a roll, independent of any scoresheet
	ScoreRoll(ctx context.Context, input *ScoreRollInput) (*ScoreRollOutput, error)

	// CommitScore validates and records a score on a scoresheet
	CommitScore(ctx context.Context, input *CommitScoreInput) (*CommitScoreOutput, error)

	// GetTotals returns the derived score breakdown for a scoresheet
	GetTotals(ctx context.Context, input *GetTotalsInput) (*GetTotalsOutput, error)

	// DeleteScoresheet removes a scoresheet
	DeleteScoresheet(ctx context.Context, input *DeleteScoresheetInput) (*DeleteScoresheetOutput, error)
}
