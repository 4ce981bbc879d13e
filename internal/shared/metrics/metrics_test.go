package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllMetrics(t *testing.T) {
	IncAssessmentRun()
	IncAssessmentInvalid()
	IncReportExport()
	ObserveRequestDurationMs(12.5)

	out := Render()
	for _, want := range []string{
		"# TYPE assessment_runs_total counter",
		"# TYPE assessment_invalid_total counter",
		"# TYPE report_exports_total counter",
		"# TYPE http_request_duration_ms histogram",
		"http_request_duration_ms_bucket{le=\"+Inf\"}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered metrics:\n%s", want, out)
		}
	}
}

func TestObserveNegativeDurationClamped(t *testing.T) {
	before := requestDuration.snapshot()
	ObserveRequestDurationMs(-5)
	after := requestDuration.snapshot()

	if after.count != before.count+1 {
		t.Fatalf("expected observation recorded")
	}
	if after.sum != before.sum {
		t.Fatalf("expected negative value clamped to zero, sum moved from %v to %v", before.sum, after.sum)
	}
}
