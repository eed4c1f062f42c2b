package scoring

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
)

// Totals is the derived score breakdown for a scoresheet
type Totals struct {
	// UpperSubtotal is the sum of the Ones-Sixes entries
	UpperSubtotal int

	// UpperBonus is the upper-section bonus, awarded when the upper
	// subtotal reaches the catalog threshold
	UpperBonus int

	// LowerSubtotal is the sum of the lower-section entries
	LowerSubtotal int

	// YahtzeeBonusTotal is the flat bonus per recorded bonus Yahtzee
	YahtzeeBonusTotal int

	// GrandTotal is the sum of the other fields
	GrandTotal int
}

// Totals recomputes the score breakdown from the sheet's entries. Nothing
// is cached; entries are few and recomputation is cheap.
func (c *Catalog) Totals(sheet *models.Scoresheet) Totals {
	var t Totals

	for _, category := range c.categories {
		entry, ok := sheet.Entry(category.ID)
		if !ok {
			continue
		}
		switch category.Section {
		case SectionUpper:
			t.UpperSubtotal += entry.Score
		case SectionLower:
			t.LowerSubtotal += entry.Score
		}
	}

	if t.UpperSubtotal >= c.config.UpperBonusThreshold {
		t.UpperBonus = c.config.UpperBonusScore
	}

	t.YahtzeeBonusTotal = sheet.BonusYahtzees * c.config.YahtzeeBonusScore

	t.GrandTotal = t.UpperSubtotal + t.UpperBonus + t.LowerSubtotal + t.YahtzeeBonusTotal

	return t
}
