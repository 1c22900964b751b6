package http

import (
	"github.com/gin-gonic/gin"

	"astro-chart-api/internal/chart"
	"astro-chart-api/pkg/log"
)

// Handler is the public interface for the chart HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chart.UseCase
}

// New creates a new HTTP handler for the chart domain.
func New(l log.Logger, uc chart.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
