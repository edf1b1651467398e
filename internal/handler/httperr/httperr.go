package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error shape every endpoint emits.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError renders the flat error body and records the cause on the
// context so the request log carries it.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
