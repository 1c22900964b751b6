package http

import (
	"github.com/gin-gonic/gin"

	"astro-chart-api/pkg/response"
)

// Generate godoc
// @Summary     Generate a natal chart reading
// @Description Casts the natal chart for a birth record, compares it with current transits and returns the placements with a narrative analysis.
// @Tags        Chart
// @Accept      json
// @Produce     json
// @Param       body body     chartReq true "Birth record"
// @Success     200  {object} chartResp
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/chart [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChartReq(c)
	if err != nil {
		h.l.Errorf(ctx, "chart.http.Generate processChartReq: %+v", err)
		response.InternalError(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %+v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChartResp(output))
}
