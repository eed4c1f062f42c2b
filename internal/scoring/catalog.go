package scoring

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
)

// Default point values for the standard rule set
const (
	// DefaultFullHouseScore is the constant award for a full house
	DefaultFullHouseScore = 25

	// DefaultSmallStraightScore is the constant award for a small straight
	DefaultSmallStraightScore = 30

	// DefaultLargeStraightScore is the constant award for a large straight
	DefaultLargeStraightScore = 40

	// DefaultYahtzeeScore is the constant award for a Yahtzee
	DefaultYahtzeeScore = 50

	// DefaultUpperBonusScore is the bonus for reaching the upper threshold
	DefaultUpperBonusScore = 35

	// DefaultUpperBonusThreshold is the upper subtotal needed for the bonus
	DefaultUpperBonusThreshold = 63

	// DefaultYahtzeeBonusScore is the flat award per bonus Yahtzee
	DefaultYahtzeeBonusScore = 100
)

// JokerVariant selects how extra Yahtzees may substitute into other
// categories. Editions of the game differ here, so the variant is a named
// catalog option rather than a hard-coded interpretation.
type JokerVariant string

const (
	// JokerVariantForced steers the roll to the matching upper category if
	// open, then to any open lower category at its joker value, and finally
	// to a zero in any open upper category
	JokerVariantForced JokerVariant = "forced"

	// JokerVariantFree allows any open category at its joker value
	JokerVariantFree JokerVariant = "free"

	// JokerVariantNone disables substitution entirely; categories score by
	// their normal rule only. The bonus Yahtzee credit still accrues.
	JokerVariantNone JokerVariant = "none"
)

// Config holds configuration for a rule catalog
type Config struct {
	// FullHouseScore is the constant award for a full house
	FullHouseScore int

	// SmallStraightScore is the constant award for a small straight
	SmallStraightScore int

	// LargeStraightScore is the constant award for a large straight
	LargeStraightScore int

	// YahtzeeScore is the constant award for a Yahtzee
	YahtzeeScore int

	// UpperBonusScore is the bonus for reaching the upper threshold
	UpperBonusScore int

	// UpperBonusThreshold is the upper subtotal needed for the bonus
	UpperBonusThreshold int

	// YahtzeeBonusScore is the flat award per bonus Yahtzee
	YahtzeeBonusScore int

	// FullHouseAllowsFiveOfAKind relaxes the strict full house check so a
	// five-of-a-kind also qualifies, a documented house-rule divergence
	FullHouseAllowsFiveOfAKind bool

	// JokerVariant selects the extra-Yahtzee substitution behavior
	JokerVariant JokerVariant
}

// Catalog is the immutable set of categories and bonus values in play.
// Construct one at process start and pass it explicitly; there is no
// package-level registry.
type Catalog struct {
	config     *Config
	categories []*Category
	byID       map[string]*Category
}

// NewCatalog creates the default rule catalog, the thirteen standard
// categories in scoresheet order. A nil config selects standard scoring.
func NewCatalog(cfg *Config) *Catalog {
	// Set default values if not provided
	if cfg == nil {
		cfg = &Config{}
	}
	resolved := *cfg
	if resolved.FullHouseScore == 0 {
		resolved.FullHouseScore = DefaultFullHouseScore
	}
	if resolved.SmallStraightScore == 0 {
		resolved.SmallStraightScore = DefaultSmallStraightScore
	}
	if resolved.LargeStraightScore == 0 {
		resolved.LargeStraightScore = DefaultLargeStraightScore
	}
	if resolved.YahtzeeScore == 0 {
		resolved.YahtzeeScore = DefaultYahtzeeScore
	}
	if resolved.UpperBonusScore == 0 {
		resolved.UpperBonusScore = DefaultUpperBonusScore
	}
	if resolved.UpperBonusThreshold == 0 {
		resolved.UpperBonusThreshold = DefaultUpperBonusThreshold
	}
	if resolved.YahtzeeBonusScore == 0 {
		resolved.YahtzeeBonusScore = DefaultYahtzeeBonusScore
	}
	if resolved.JokerVariant == "" {
		resolved.JokerVariant = JokerVariantForced
	}

	c := &Catalog{
		config: &resolved,
	}

	c.categories = []*Category{
		faceCategory(CategoryOnes, 1),
		faceCategory(CategoryTwos, 2),
		faceCategory(CategoryThrees, 3),
		faceCategory(CategoryFours, 4),
		faceCategory(CategoryFives, 5),
		faceCategory(CategorySixes, 6),
		nOfAKindCategory(CategoryThreeOfAKind, 3),
		nOfAKindCategory(CategoryFourOfAKind, 4),
		patternCategory(CategoryFullHouse, resolved.FullHouseScore, func(roll models.Roll) bool {
			return isFullHouse(roll, resolved.FullHouseAllowsFiveOfAKind)
		}),
		patternCategory(CategorySmallStraight, resolved.SmallStraightScore, isSmallStraight),
		patternCategory(CategoryLargeStraight, resolved.LargeStraightScore, isLargeStraight),
		patternCategory(CategoryYahtzee, resolved.YahtzeeScore, models.Roll.AllSame),
		chanceCategory(CategoryChance),
	}

	c.byID = make(map[string]*Category, len(c.categories))
	for _, category := range c.categories {
		c.byID[category.ID] = category
	}

	return c
}

// Categories returns the catalog's categories in scoresheet order
func (c *Catalog) Categories() []*Category {
	out := make([]*Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category looks up a category by ID
func (c *Catalog) Category(id string) (*Category, bool) {
	category, ok := c.byID[id]
	return category, ok
}

// Score computes the normal score of a category for a roll, independent of
// any scoresheet state
func (c *Catalog) Score(roll models.Roll, categoryID string) (int, error) {
	category, ok := c.byID[categoryID]
	if !ok {
		return 0, ErrUnknownCategory
	}

	if !roll.Valid() {
		return 0, ErrInvalidRoll
	}

	return category.Score(roll), nil
}

// faceCategory builds an upper-section category scoring the sum of dice
// matching a single face value
func faceCategory(id string, face int) *Category {
	return &Category{
		ID:      id,
		Section: SectionUpper,
		Kind:    KindFace,
		score: func(roll models.Roll) int {
			return roll.SumOf(face)
		},
		eligible: func(models.Roll) bool {
			return true
		},
	}
}

// nOfAKindCategory builds a lower-section category scoring the sum of all
// dice when some face appears at least n times
func nOfAKindCategory(id string, n int) *Category {
	return &Category{
		ID:      id,
		Section: SectionLower,
		Kind:    KindNOfKind,
		score: func(roll models.Roll) int {
			if !hasNOfAKind(roll, n) {
				return 0
			}
			return roll.Sum()
		},
		eligible: func(roll models.Roll) bool {
			return hasNOfAKind(roll, n)
		},
	}
}

// patternCategory builds a lower-section category awarding a constant when
// the face pattern holds
func patternCategory(id string, value int, pattern func(models.Roll) bool) *Category {
	return &Category{
		ID:      id,
		Section: SectionLower,
		Kind:    KindPattern,
		value:   value,
		score: func(roll models.Roll) int {
			if !pattern(roll) {
				return 0
			}
			return value
		},
		eligible: pattern,
	}
}

// chanceCategory builds the unconditional sum-of-dice category
func chanceCategory(id string) *Category {
	return &Category{
		ID:      id,
		Section: SectionLower,
		Kind:    KindChance,
		score:   models.Roll.Sum,
		eligible: func(models.Roll) bool {
			return true
		},
	}
}
