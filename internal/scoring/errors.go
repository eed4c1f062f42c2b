package scoring

// ScoringError is a custom error type for scoring rejections
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidRoll mirrors models.ErrInvalidRoll for defensive re-checks
	// of rolls that did not come through models.NewRoll
	ErrInvalidRoll ScoringError = "invalid roll"

	// ErrUnknownCategory is returned when a category ID is not in the catalog
	ErrUnknownCategory ScoringError = "unknown category"

	// ErrAlreadyFilled is returned when a category already has an entry
	ErrAlreadyFilled ScoringError = "category already filled"

	// ErrJokerRestricted is returned when the joker rule forces a different
	// category choice for an extra Yahtzee
	ErrJokerRestricted ScoringError = "category choice restricted by joker rule"
)
