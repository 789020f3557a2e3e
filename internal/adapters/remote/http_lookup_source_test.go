package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHTTPLookupSourceFetchesTables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/inspection-statuses":
			_, _ = w.Write([]byte(`[{"value":"approved","order":11,"is_optional":false}]`))
		case "/api/shipment-statuses":
			_, _ = w.Write([]byte(`[{"value":"in_transit","tracking_point":14,"label":"En tránsito"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src, err := NewHTTPLookupSource(srv.URL+"/api/", "secret")
	if err != nil {
		t.Fatalf("NewHTTPLookupSource: %v", err)
	}

	insp, err := src.InspectionStatuses(context.Background())
	if err != nil {
		t.Fatalf("InspectionStatuses: %v", err)
	}
	if len(insp) != 1 || insp[0].Value != "approved" || insp[0].Order != 11 {
		t.Fatalf("inspection statuses = %+v", insp)
	}

	ship, err := src.ShipmentStatuses(context.Background())
	if err != nil {
		t.Fatalf("ShipmentStatuses: %v", err)
	}
	if len(ship) != 1 || ship[0].TrackingPoint != 14 {
		t.Fatalf("shipment statuses = %+v", ship)
	}
}

func TestHTTPLookupSourceRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	src, _ := NewHTTPLookupSource(srv.URL, "", WithRetry(4, time.Millisecond))

	if _, err := src.ShipmentStatuses(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("calls = %d, want 3", n)
	}
}

func TestHTTPLookupSourceDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	src, _ := NewHTTPLookupSource(srv.URL, "", WithRetry(4, time.Millisecond))

	_, err := src.InspectionStatuses(context.Background())
	var he *httpStatusError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("err = %v, want 403 status error", err)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("calls = %d, want 1", n)
	}
}

func TestHTTPLookupSourceGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src, _ := NewHTTPLookupSource(srv.URL, "", WithRetry(3, time.Millisecond))
	if _, err := src.InspectionStatuses(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("calls = %d, want 3", n)
	}
}

func TestNewHTTPLookupSourceRequiresURL(t *testing.T) {
	if _, err := NewHTTPLookupSource("  ", ""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}
