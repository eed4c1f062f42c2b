package scoresheet

// ServiceError is a custom error type for scoresheet service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         ServiceError = "config cannot be nil"
	ErrNilCatalog        ServiceError = "catalog cannot be nil"
	ErrNilScoresheetRepo ServiceError = "scoresheet repository cannot be nil"
	ErrNilClock          ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator  ServiceError = "UUID generator cannot be nil"
	ErrMissingPlayerID   ServiceError = "player ID cannot be empty"
)
