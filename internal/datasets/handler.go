package datasets

import (
	"github.com/gin-gonic/gin"

	"circularmetals-backend/internal/shared/server/respond"
)

// Handler exposes the fixed dashboard datasets.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches dataset routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/environmental-impact", h.environmentalImpact)
	rg.GET("/circularity-indicators", h.circularityIndicators)
	rg.GET("/flow-data", h.flowData)
	rg.GET("/pie-data", h.pieData)
}

func (h *Handler) environmentalImpact(c *gin.Context) {
	respond.OK(c, EnvironmentalImpacts())
}

func (h *Handler) circularityIndicators(c *gin.Context) {
	respond.OK(c, CircularityIndicators())
}

func (h *Handler) flowData(c *gin.Context) {
	respond.OK(c, FlowStages())
}

func (h *Handler) pieData(c *gin.Context) {
	respond.OK(c, PieSlices())
}
