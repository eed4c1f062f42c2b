package scoring

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
)

// faceCategoryIDs maps a die face to its upper-section category, used by
// the forced joker to steer an extra Yahtzee to the matching category
var faceCategoryIDs = [models.MaxFace + 1]string{
	1: CategoryOnes,
	2: CategoryTwos,
	3: CategoryThrees,
	4: CategoryFours,
	5: CategoryFives,
	6: CategorySixes,
}

// Validate decides whether scoring a category now is legal for the sheet
// and roll. A nil return means legal; otherwise the error is one of
// ErrUnknownCategory, ErrInvalidRoll, ErrAlreadyFilled or
// ErrJokerRestricted. Validate never mutates state and is re-evaluated on
// every attempt.
func (c *Catalog) Validate(sheet *models.Scoresheet, roll models.Roll, categoryID string) error {
	category, ok := c.byID[categoryID]
	if !ok {
		return ErrUnknownCategory
	}

	if !roll.Valid() {
		return ErrInvalidRoll
	}

	if sheet.Filled(categoryID) {
		return ErrAlreadyFilled
	}

	if c.JokerApplies(sheet, roll) && c.config.JokerVariant == JokerVariantForced {
		return c.validateForcedJoker(sheet, category, roll)
	}

	return nil
}

// validateForcedJoker enforces the forced-joker steering order: the
// matching upper category first, then any open lower category, and only
// then a zero in a remaining upper category.
func (c *Catalog) validateForcedJoker(sheet *models.Scoresheet, category *Category, roll models.Roll) error {
	faceID := faceCategoryIDs[roll.Faces()[0]]

	if !sheet.Filled(faceID) {
		if category.ID != faceID {
			return ErrJokerRestricted
		}
		return nil
	}

	if category.Section == SectionUpper && c.anyLowerOpen(sheet) {
		return ErrJokerRestricted
	}

	return nil
}

// anyLowerOpen reports whether any lower-section category is still open
func (c *Catalog) anyLowerOpen(sheet *models.Scoresheet) bool {
	for _, category := range c.categories {
		if category.Section == SectionLower && !sheet.Filled(category.ID) {
			return true
		}
	}
	return false
}

// JokerApplies reports whether the roll is played under the joker rule:
// an all-identical roll after the yahtzee category was already filled,
// with any recorded value. Substitution is disabled under
// JokerVariantNone.
func (c *Catalog) JokerApplies(sheet *models.Scoresheet, roll models.Roll) bool {
	if c.config.JokerVariant == JokerVariantNone {
		return false
	}
	return roll.AllSame() && sheet.Filled(CategoryYahtzee)
}

// BonusEligible reports whether the roll earns a bonus Yahtzee credit: an
// all-identical roll after the yahtzee category was filled with a strictly
// positive score. A yahtzee box taken at zero never earns the bonus.
func (c *Catalog) BonusEligible(sheet *models.Scoresheet, roll models.Roll) bool {
	if !roll.AllSame() {
		return false
	}
	entry, ok := sheet.Entry(CategoryYahtzee)
	return ok && entry.Score > 0
}

// jokerScore computes a category's value when filled under the joker rule:
// fixed-pattern categories award their constant even without the pattern,
// counting categories and chance take the dice sum, and upper categories
// score normally, which is zero for a face the roll does not show.
func jokerScore(category *Category, roll models.Roll) int {
	switch category.Kind {
	case KindNOfKind, KindChance:
		return roll.Sum()
	case KindPattern:
		return category.value
	default:
		return category.Score(roll)
	}
}

// CommitScore validates and records a score for a category, returning the
// written entry and whether a bonus Yahtzee was credited. The sheet is
// mutated only on a nil error; there is no partial commit. The caller
// stamps ScoredAt and UpdatedAt, the engine does not read the clock.
func (c *Catalog) CommitScore(sheet *models.Scoresheet, roll models.Roll, categoryID string) (*models.ScoreEntry, bool, error) {
	if err := c.Validate(sheet, roll, categoryID); err != nil {
		return nil, false, err
	}

	category := c.byID[categoryID]

	// Bonus eligibility is read before the entry lands so committing the
	// yahtzee category itself cannot satisfy its own prior-entry condition.
	bonus := c.BonusEligible(sheet, roll)

	score := category.Score(roll)
	if c.JokerApplies(sheet, roll) {
		score = jokerScore(category, roll)
	}

	entry := &models.ScoreEntry{
		CategoryID: categoryID,
		Score:      score,
	}
	sheet.Record(entry)

	if bonus {
		sheet.BonusYahtzees++
	}

	return entry, bonus, nil
}
