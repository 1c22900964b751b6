package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// NewErrorResp returns a failure envelope carrying err's message.
func NewErrorResp(err error) Resp {
	msg := DefaultErrorMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Resp{
		Success: false,
		Error:   msg,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a failure envelope with the given status code.
func Error(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, NewErrorResp(err))
}

// InternalError sends 500 with the raw error message.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err)
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Success: false,
		Error:   MessageRateLimited,
	})
}
