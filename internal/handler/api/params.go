package api

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID      = errs.New("invalid id")
	errMissingSharer  = errs.New("sharer id not set")
	errInvalidBoolArg = errs.New("invalid boolean parameter")
)

// pathID aborts the request with 400 when the path parameter is not a positive integer
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// sharerID must run behind middleware.RequireSharerID
func sharerID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSharer, "Internal server error", "unexpected error")
		return 0, false
	}
	return id, true
}

// page reads from/size with defaults 0/10
func page(c *gin.Context) (queries.Page, bool) {
	from, err := intQuery(c, "from", queries.DefaultFrom)
	if err != nil {
		respondError(c, errs.ErrInvalidPage)
		return queries.Page{}, false
	}
	size, err := intQuery(c, "size", queries.DefaultSize)
	if err != nil {
		respondError(c, errs.ErrInvalidPage)
		return queries.Page{}, false
	}
	p, err := queries.NewPage(from, size)
	if err != nil {
		respondError(c, err)
		return queries.Page{}, false
	}
	return p, true
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func boolQuery(c *gin.Context, name string) (bool, bool) {
	v, err := strconv.ParseBool(c.Query(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidBoolArg, "Invalid request", name+" must be true or false")
		return false, false
	}
	return v, true
}
