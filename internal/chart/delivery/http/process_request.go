package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errEmptyBody = errors.New("request body must be a JSON object")

// processChartReq binds and validates the chart request body.
func (h *handler) processChartReq(c *gin.Context) (chartReq, error) {
	var req chartReq
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, errEmptyBody
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
