package assessment

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"circularmetals-backend/internal/shared/metrics"
	"circularmetals-backend/internal/shared/server/respond"
)

// Handler exposes the assessment endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessment", h.run)
}

type assessmentRequest struct {
	ProcessData map[string]any `json:"processData"`
}

func (h *Handler) run(c *gin.Context) {
	var req assessmentRequest
	if err := decodeOptionalJSON(c.Request.Body, &req); err != nil {
		// A missing or malformed body scores as an empty mapping.
		req.ProcessData = nil
	}
	if req.ProcessData == nil {
		req.ProcessData = map[string]any{}
	}

	result, err := Score(Input(req.ProcessData))
	if err != nil {
		if errors.Is(err, ErrInvalidNumber) {
			metrics.IncAssessmentInvalid()
			respond.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "assessment failed")
		return
	}

	metrics.IncAssessmentRun()
	respond.OK(c, result)
}

// decodeOptionalJSON decodes a JSON body, treating an absent body as empty.
func decodeOptionalJSON(body io.ReadCloser, out any) error {
	if body == nil {
		return nil
	}
	if err := json.NewDecoder(body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
