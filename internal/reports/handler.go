package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"circularmetals-backend/internal/shared/metrics"
	"circularmetals-backend/internal/shared/server/respond"
)

// Handler exposes the report export endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports/export", h.export)
}

func (h *Handler) export(c *gin.Context) {
	data, err := BuildCSV()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to build report")
		return
	}

	metrics.IncReportExport()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(time.Now())))
	c.Data(http.StatusOK, "text/csv", data)
}
