package scoresheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/models"
	sheetRepo "github.com/KirkDiggler/yahtzee/internal/repositories/scoresheet"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// service implements the Service interface
type service struct {
	catalog        *scoring.Catalog
	scoresheetRepo sheetRepo.Repository
	clock          clock.Clock
	uuidGenerator  uuid.UUID
}

// NewService creates a new scoresheet service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.ScoresheetRepo == nil {
		return nil, ErrNilScoresheetRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		catalog:        cfg.Catalog,
		scoresheetRepo: cfg.ScoresheetRepo,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
	}, nil
}

// CreateScoresheet creates an empty scoresheet for a player
func (s *service) CreateScoresheet(ctx context.Context, input *CreateScoresheetInput) (*CreateScoresheetOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrMissingPlayerID
	}

	sheet := models.NewScoresheet(s.uuidGenerator.NewUUID(), input.PlayerID, s.clock.Now())

	err := s.scoresheetRepo.SaveScoresheet(ctx, &sheetRepo.SaveScoresheetInput{
		Scoresheet: sheet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save scoresheet: %w", err)
	}

	return &CreateScoresheetOutput{
		Scoresheet: sheet,
	}, nil
}

// GetScoresheet retrieves a scoresheet by ID
func (s *service) GetScoresheet(ctx context.Context, input *GetScoresheetInput) (*GetScoresheetOutput, error) {
	sheet, err := s.getSheet(ctx, input.ScoresheetID)
	if err != nil {
		return nil, err
	}

	return &GetScoresheetOutput{
		Scoresheet: sheet,
	}, nil
}

// ListCategories returns the rule catalog in scoresheet order. When a
// scoresheet ID is supplied, each category carries its recorded state.
func (s *service) ListCategories(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	var sheet *models.Scoresheet
	if input != nil && input.ScoresheetID != "" {
		var err error
		sheet, err = s.getSheet(ctx, input.ScoresheetID)
		if err != nil {
			return nil, err
		}
	}

	categories := s.catalog.Categories()
	infos := make([]CategoryInfo, 0, len(categories))
	for _, category := range categories {
		info := CategoryInfo{
			ID:      category.ID,
			Section: category.Section,
		}
		if sheet != nil {
			if entry, ok := sheet.Entry(category.ID); ok {
				info.Filled = true
				info.Score = entry.Score
			}
		}
		infos = append(infos, info)
	}

	return &ListCategoriesOutput{
		Categories: infos,
	}, nil
}

// ValidateScore checks whether a category may be scored for a roll.
// Rejections are an expected outcome, so they come back as a verdict with
// a reason rather than an error.
func (s *service) ValidateScore(ctx context.Context, input *ValidateScoreInput) (*ValidateScoreOutput, error) {
	sheet, err := s.getSheet(ctx, input.ScoresheetID)
	if err != nil {
		return nil, err
	}

	roll, err := models.NewRoll(input.Faces...)
	if err != nil {
		return &ValidateScoreOutput{
			Reason: ReasonRollInvalid,
		}, nil
	}

	if err := s.catalog.Validate(sheet, roll, input.CategoryID); err != nil {
		return &ValidateScoreOutput{
			Reason: rejectionReason(err),
		}, nil
	}

	return &ValidateScoreOutput{
		Legal: true,
	}, nil
}

// ScoreRoll computes a category's score for a roll, independent of any
// scoresheet state
func (s *service) ScoreRoll(ctx context.Context, input *ScoreRollInput) (*ScoreRollOutput, error) {
	roll, err := models.NewRoll(input.Faces...)
	if err != nil {
		return nil, err
	}

	score, err := s.catalog.Score(roll, input.CategoryID)
	if err != nil {
		return nil, err
	}

	return &ScoreRollOutput{
		Score: score,
	}, nil
}

// CommitScore validates and records a score on a scoresheet. The sheet is
// re-validated before mutating and persisted only after a successful
// commit; rejections surface as the engine's sentinel errors.
func (s *service) CommitScore(ctx context.Context, input *CommitScoreInput) (*CommitScoreOutput, error) {
	sheet, err := s.getSheet(ctx, input.ScoresheetID)
	if err != nil {
		return nil, err
	}

	roll, err := models.NewRoll(input.Faces...)
	if err != nil {
		return nil, err
	}

	entry, bonusAwarded, err := s.catalog.CommitScore(sheet, roll, input.CategoryID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	entry.ScoredAt = now
	sheet.UpdatedAt = now

	err = s.scoresheetRepo.SaveScoresheet(ctx, &sheetRepo.SaveScoresheetInput{
		Scoresheet: sheet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save scoresheet: %w", err)
	}

	return &CommitScoreOutput{
		Entry:        entry,
		BonusAwarded: bonusAwarded,
		Totals:       s.catalog.Totals(sheet),
		Scoresheet:   sheet,
	}, nil
}

// GetTotals returns the derived score breakdown for a scoresheet
func (s *service) GetTotals(ctx context.Context, input *GetTotalsInput) (*GetTotalsOutput, error) {
	sheet, err := s.getSheet(ctx, input.ScoresheetID)
	if err != nil {
		return nil, err
	}

	return &GetTotalsOutput{
		Totals: s.catalog.Totals(sheet),
	}, nil
}

// DeleteScoresheet removes a scoresheet
func (s *service) DeleteScoresheet(ctx context.Context, input *DeleteScoresheetInput) (*DeleteScoresheetOutput, error) {
	err := s.scoresheetRepo.DeleteScoresheet(ctx, &sheetRepo.DeleteScoresheetInput{
		ScoresheetID: input.ScoresheetID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteScoresheetOutput{
		Success: true,
	}, nil
}

// getSheet loads a scoresheet, propagating the repository's not-found sentinel
func (s *service) getSheet(ctx context.Context, scoresheetID string) (*models.Scoresheet, error) {
	sheet, err := s.scoresheetRepo.GetScoresheet(ctx, &sheetRepo.GetScoresheetInput{
		ScoresheetID: scoresheetID,
	})
	if err != nil {
		if errors.Is(err, sheetRepo.ErrScoresheetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get scoresheet: %w", err)
	}

	return sheet, nil
}

// rejectionReason maps the engine's sentinel errors onto the service's
// rejection taxonomy
func rejectionReason(err error) RejectionReason {
	switch {
	case errors.Is(err, scoring.ErrInvalidRoll):
		return ReasonRollInvalid
	case errors.Is(err, scoring.ErrUnknownCategory):
		return ReasonUnknownCategory
	case errors.Is(err, scoring.ErrAlreadyFilled):
		return ReasonAlreadyFilled
	case errors.Is(err, scoring.ErrJokerRestricted):
		return ReasonJokerRestricted
	default:
		return ""
	}
}
