package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actorID, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), actorID, result.ItemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(&view.ItemView))
}

// @Summary Update item
// @Description Owner-only partial update; absent fields stay unchanged
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param id path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actorID, itemID, req.ToCommand()); err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), actorID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(&view.ItemView))
}

// @Summary Get item
// @Description Last and next approved bookings are included only for the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.ItemDetailsResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), actorID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailsView(view))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.ItemDetailsResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), actorID, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailsViews(views))
}

// @Summary Search items
// @Description Case-insensitive match on name or description among available items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param text query string false "Search text"
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	p, ok := page(c)
	if !ok {
		return
	}
	views, err := h.q.Search(c.Request.Context(), c.Query("text"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Comment on item
// @Description Allowed once the caller's approved booking of the item has ended
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param id path int true "Item ID"
// @Param request body reqdto.AddCommentRequest true "Comment"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	actorID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	result, err := h.cmds.AddComment(c.Request.Context(), actorID, itemID, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetComment(c.Request.Context(), result.CommentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}
