package reports

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewHandler().RegisterRoutes(api)
	return router
}

func TestExportReturnsCSVAttachment(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/reports/export", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", ct)
	}

	disposition := resp.Header().Get("Content-Disposition")
	pattern := regexp.MustCompile(`^attachment; filename="circularmetals_report_\d{8}T\d{6}Z\.csv"$`)
	if !pattern.MatchString(disposition) {
		t.Fatalf("unexpected content disposition: %q", disposition)
	}

	lines := strings.Split(strings.TrimRight(resp.Body.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 CSV lines, got %d: %q", len(lines), resp.Body.String())
	}
	if lines[0] != "Metric,Conventional,Circular" {
		t.Fatalf("unexpected header row: %q", lines[0])
	}
	for _, line := range lines {
		if got := len(strings.Split(line, ",")); got != 3 {
			t.Fatalf("expected 3 fields in %q, got %d", line, got)
		}
	}
}
