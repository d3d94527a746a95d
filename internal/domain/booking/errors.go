package booking

import "errors"

var (
	ErrMissingDates     = errors.New("booking start and end are required")
	ErrEndNotAfterStart = errors.New("booking end must be after start")
	ErrStartInPast      = errors.New("booking start cannot be in the past")
	ErrEndInPast        = errors.New("booking end cannot be in the past")

	ErrItemNotAvailable = errors.New("item is not available for booking")
	ErrOwnerCannotBook  = errors.New("owner cannot book own item")
	ErrWrongStatus      = errors.New("booking is not waiting for approval")
	ErrUnknownState     = errors.New("unknown booking state")
)
