package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestToolCallCounter(t *testing.T) {
	m := New(func() int { return 0 })

	m.ToolCall("add_room", OutcomeSuccess)
	m.ToolCall("add_room", OutcomeSuccess)
	m.ToolCall("room_finder", OutcomeInvalidParameter)

	if got := testutil.ToFloat64(m.toolCalls.WithLabelValues("add_room", OutcomeSuccess)); got != 2 {
		t.Errorf("add_room success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.toolCalls.WithLabelValues("room_finder", OutcomeInvalidParameter)); got != 1 {
		t.Errorf("room_finder invalid_parameter count = %v, want 1", got)
	}
}

func TestHandlerExposesListingsGauge(t *testing.T) {
	m := New(func() int { return 7 })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "roomiematch_active_listings 7") {
		t.Errorf("metrics output missing active listings gauge:\n%s", body)
	}
}
