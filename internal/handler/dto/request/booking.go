package request

import (
	dombooking "shareit/internal/domain/booking"
	"shareit/internal/pkg/datetime"
	"shareit/internal/usecase/commands"
)

// CreateBookingRequest takes dates as text so both the local layout and RFC 3339 are accepted
type CreateBookingRequest struct {
	ItemID int64  `json:"itemId" binding:"required,gt=0"`
	Start  string `json:"start" binding:"required"`
	End    string `json:"end" binding:"required"`
}

// ToCommand performs the syntactic checks; rules relative to now stay in the domain
func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	start, err := datetime.Parse(r.Start)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	end, err := datetime.Parse(r.End)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	if !end.After(start) {
		return commands.CreateBookingRequest{}, dombooking.ErrEndNotAfterStart
	}
	return commands.CreateBookingRequest{ItemID: r.ItemID, Start: start, End: end}, nil
}
