package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Description Ask for an item that is not in the catalog yet
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param request body reqdto.CreateItemRequestRequest true "Create request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actorID, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), actorID, result.RequestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own requests
// @Description Newest first, each with the items created in answer
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Success 200 {array} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List other users' requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *RequestHandler) ListOthers(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	views, err := h.q.ListOthers(c.Request.Context(), actorID, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param id path int true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), actorID, requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
