package errs

import "errors"

// Cross-layer sentinel errors for CQRS usecase layers
var (
	// Not found
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")
	ErrNoBookings      = errors.New("no bookings found for user")

	// Conflicts
	ErrEmailTaken = errors.New("email already in use")

	// Access (surfaced as not found)
	ErrNotItemOwner          = errors.New("user is not the owner of the item")
	ErrNotBookingParticipant = errors.New("user is neither the booker nor the item owner")

	// Parameters
	ErrInvalidPage = errors.New("invalid pagination parameters")
)
