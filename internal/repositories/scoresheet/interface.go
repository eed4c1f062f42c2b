package scoresheet

import (
	"context"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yahtzee/internal/repositories/scoresheet Repository

// Repository defines the interface for scoresheet data access
type Repository interface {
	// SaveScoresheet persists a scoresheet
	SaveScoresheet(ctx context.Context, input *SaveScoresheetInput) error

	// GetScoresheet retrieves a scoresheet by ID
	GetScoresheet(ctx context.Context, input *GetScoresheetInput) (*models.Scoresheet, error)

	// GetScoresheetsByPlayer retrieves all scoresheets recorded for a player
	GetScoresheetsByPlayer(ctx context.Context, input *GetScoresheetsByPlayerInput) (*GetScoresheetsByPlayerOutput, error)

	// DeleteScoresheet removes a scoresheet
	DeleteScoresheet(ctx context.Context, input *DeleteScoresheetInput) error
}
