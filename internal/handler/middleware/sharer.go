package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerUserIDHeader carries the trusted identity of the calling user
const SharerUserIDHeader = "X-Sharer-User-Id"

const ctxSharerIDKey = "sharer_user_id"

var (
	errMissingSharerID = errs.New("missing " + SharerUserIDHeader + " header")
	errInvalidSharerID = errs.New("invalid " + SharerUserIDHeader + " header")
)

// RequireSharerID rejects requests without a positive numeric X-Sharer-User-Id
func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(SharerUserIDHeader))
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharerID,
				"Missing request header", "Required request header '"+SharerUserIDHeader+"' is not present")
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidSharerID,
				"Invalid request header", SharerUserIDHeader+" must be a positive integer")
			return
		}

		c.Set(ctxSharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxSharerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
