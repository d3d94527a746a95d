package api

import (
	"net/http"

	dombooking "shareit/internal/domain/booking"
	domcomment "shareit/internal/domain/comment"
	domitem "shareit/internal/domain/item"
	domrequest "shareit/internal/domain/itemrequest"
	domuser "shareit/internal/domain/user"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/datetime"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	title  string
}

// Ownership and participation failures answer 404 so that other users' bookings stay invisible
var errorTable = []errorMapping{
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrRequestNotFound, http.StatusNotFound, "Request not found"},
	{errs.ErrNoBookings, http.StatusNotFound, "Bookings not found"},
	{errs.ErrNotItemOwner, http.StatusNotFound, "Item not found"},
	{errs.ErrNotBookingParticipant, http.StatusNotFound, "Booking not found"},
	{dombooking.ErrOwnerCannotBook, http.StatusNotFound, "Item not found"},

	{errs.ErrEmailTaken, http.StatusConflict, "Email already in use"},

	{dombooking.ErrItemNotAvailable, http.StatusBadRequest, "Item not available"},
	{dombooking.ErrWrongStatus, http.StatusBadRequest, "Wrong booking status"},
	{dombooking.ErrMissingDates, http.StatusBadRequest, "Invalid booking dates"},
	{dombooking.ErrEndNotAfterStart, http.StatusBadRequest, "Invalid booking dates"},
	{dombooking.ErrStartInPast, http.StatusBadRequest, "Invalid booking dates"},
	{dombooking.ErrEndInPast, http.StatusBadRequest, "Invalid booking dates"},
	{datetime.ErrInvalidFormat, http.StatusBadRequest, "Invalid booking dates"},
	{domcomment.ErrNotAvailable, http.StatusBadRequest, "Comment not available"},

	{errs.ErrInvalidPage, http.StatusBadRequest, "Invalid request"},
	{domuser.ErrInvalidEmail, http.StatusBadRequest, "Invalid request"},
	{domuser.ErrEmptyName, http.StatusBadRequest, "Invalid request"},
	{domuser.ErrNameTooLong, http.StatusBadRequest, "Invalid request"},
	{domitem.ErrEmptyName, http.StatusBadRequest, "Invalid request"},
	{domitem.ErrNameTooLong, http.StatusBadRequest, "Invalid request"},
	{domitem.ErrEmptyDescription, http.StatusBadRequest, "Invalid request"},
	{domitem.ErrDescriptionTooLong, http.StatusBadRequest, "Invalid request"},
	{domcomment.ErrEmptyText, http.StatusBadRequest, "Invalid request"},
	{domcomment.ErrTextTooLong, http.StatusBadRequest, "Invalid request"},
	{domrequest.ErrEmptyDescription, http.StatusBadRequest, "Invalid request"},
	{domrequest.ErrDescriptionTooLong, http.StatusBadRequest, "Invalid request"},
}

// respondError maps use case errors onto status codes. The description is the sentinel's
// own message so that wrapped store details never reach the client.
func respondError(c *gin.Context, err error) {
	var unknownState *dombooking.UnknownStateError
	if errs.As(err, &unknownState) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, unknownState.Error(), unknownState.Error())
		return
	}

	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.title, m.target.Error())
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "unexpected error")
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
