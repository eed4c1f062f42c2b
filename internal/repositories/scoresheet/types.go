package scoresheet

import "github.com/KirkDiggler/yahtzee/internal/models"

// SaveScoresheetInput contains parameters for saving a scoresheet
type SaveScoresheetInput struct {
	Scoresheet *models.Scoresheet
}

// GetScoresheetInput contains parameters for retrieving a scoresheet
type GetScoresheetInput struct {
	ScoresheetID string
}

// GetScoresheetsByPlayerInput contains parameters for retrieving a player's scoresheets
type GetScoresheetsByPlayerInput struct {
	PlayerID string
}

// GetScoresheetsByPlayerOutput contains the result of retrieving a player's scoresheets
type GetScoresheetsByPlayerOutput struct {
	Scoresheets []*models.Scoresheet
}

// DeleteScoresheetInput contains parameters for deleting a scoresheet
type DeleteScoresheetInput struct {
	ScoresheetID string
}
