package api

import (
	"net/http"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request an available item for a period; the booking starts in WAITING
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actorID, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), actorID, result.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Item owner decides once on a WAITING booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param id path int true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	approved, ok := boolQuery(c, "approved")
	if !ok {
		return
	}
	if err := h.cmds.Decide(c.Request.Context(), actorID, bookingID, approved); err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), actorID, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), actorID, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings made by the caller
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED (default ALL)"
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, dombooking.RoleBooker)
}

// @Summary List bookings of the caller's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED (default ALL)"
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, dombooking.RoleOwner)
}

func (h *BookingHandler) list(c *gin.Context, role dombooking.Role) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	state, err := dombooking.ParseState(c.Query("state"))
	if err != nil {
		respondError(c, err)
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), actorID, role, state, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
