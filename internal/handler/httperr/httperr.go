package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status      int    `json:"-"`
	Error       string `json:"error"`
	Description string `json:"description"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, description string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status:      status,
		Error:       msg,
		Description: description,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
