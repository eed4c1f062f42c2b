package scoring

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
)

// Section identifies the scoresheet grouping a category belongs to
type Section string

const (
	// SectionUpper holds the fixed-face categories counted toward the upper bonus
	SectionUpper Section = "upper"

	// SectionLower holds the combination categories
	SectionLower Section = "lower"
)

// Kind identifies the scoring behavior of a category.
// The set is closed; Yahtzee's categories are fixed by the rules of the game.
type Kind string

const (
	// KindFace scores the sum of dice matching a single face value (Ones-Sixes)
	KindFace Kind = "face"

	// KindNOfKind scores the sum of all dice when a minimum repeat count is present
	KindNOfKind Kind = "n_of_a_kind"

	// KindPattern awards a constant value when a face pattern is present
	// (Full House, the straights, Yahtzee)
	KindPattern Kind = "pattern"

	// KindChance scores the sum of all dice unconditionally
	KindChance Kind = "chance"
)

// Category IDs for the default rule set
const (
	CategoryOnes          = "ones"
	CategoryTwos          = "twos"
	CategoryThrees        = "threes"
	CategoryFours         = "fours"
	CategoryFives         = "fives"
	CategorySixes         = "sixes"
	CategoryThreeOfAKind  = "three_of_a_kind"
	CategoryFourOfAKind   = "four_of_a_kind"
	CategoryFullHouse     = "full_house"
	CategorySmallStraight = "small_straight"
	CategoryLargeStraight = "large_straight"
	CategoryYahtzee       = "yahtzee"
	CategoryChance        = "chance"
)

// Category is a named scoring rule. Categories are immutable value-like
// definitions shared across players and games; per-game state lives on the
// Scoresheet. A Category never observes a Scoresheet.
type Category struct {
	// ID is the stable catalog identifier
	ID string

	// Section is the scoresheet grouping
	Section Section

	// Kind tags the scoring behavior
	Kind Kind

	// value is the constant award for KindPattern categories
	value int

	score    func(models.Roll) int
	eligible func(models.Roll) bool
}

// Score computes the point value of this category for a roll.
// It is deterministic and returns zero, not an error, when the roll does
// not satisfy the category's pattern; the joker rule can legally force a
// category to be scored at zero.
func (c *Category) Score(roll models.Roll) int {
	return c.score(roll)
}

// Eligible reports whether the roll satisfies the category's face-pattern
// prerequisite. Categories without a prerequisite are eligible for any roll.
// Eligibility never decides legality; picking an open category the roll is
// not eligible for simply scores zero.
func (c *Category) Eligible(roll models.Roll) bool {
	return c.eligible(roll)
}
