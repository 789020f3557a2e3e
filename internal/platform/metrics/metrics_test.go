package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()

	a.Projection("ok")
	a.Projection("ok")
	b.Projection("route_not_found")

	if got := testutil.ToFloat64(a.ProjectionsTotal.WithLabelValues("ok")); got != 2 {
		t.Fatalf("a ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(b.ProjectionsTotal.WithLabelValues("ok")); got != 0 {
		t.Fatalf("b ok = %v, want 0", got)
	}
}

func TestNilRegistryIsSafe(t *testing.T) {
	var r *Registry
	r.LookupCache("hit")
	r.Projection("ok")
	r.Resolution("shipment")
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := New()
	r.LookupCache("miss")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `tracking_lookup_cache_total{result="miss"} 1`) {
		t.Fatalf("metrics output missing cache counter:\n%s", body)
	}
}
