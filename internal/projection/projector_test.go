package projection

import (
	"math"
	"reflect"
	"testing"

	"shipment-tracking-service/internal/catalog"
	"shipment-tracking-service/internal/domain"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return c
}

func aerialGeneral(t *testing.T) domain.RouteDefinition {
	t.Helper()
	r, ok := defaultCatalog(t).Route(domain.ServiceAerial, domain.CargoGeneral)
	if !ok {
		t.Fatal("aerial_general missing")
	}
	return r
}

func TestProjectLosAngelesScenario(t *testing.T) {
	view := Project(aerialGeneral(t), 21, Options{})

	if view.Status != domain.ViewOK {
		t.Fatalf("status = %s", view.Status)
	}
	if view.TotalPoints != 45 {
		t.Fatalf("total = %d, want 45", view.TotalPoints)
	}
	if view.ProgressPercent != 47 {
		t.Fatalf("progress = %d, want 47", view.ProgressPercent)
	}
	if view.Current == nil {
		t.Fatal("current is nil")
	}
	if view.Current.Order != 21 || view.Current.Place != "PUNTO 8 / LOS ANGELES" {
		t.Fatalf("current = %d %q", view.Current.Order, view.Current.Place)
	}
	if len(view.Completed) != 20 {
		t.Fatalf("completed = %d, want 20", len(view.Completed))
	}
	if len(view.Pending) != 24 {
		t.Fatalf("pending = %d, want 24", len(view.Pending))
	}
	if len(view.Traced) != 21 {
		t.Fatalf("traced = %d, want 21", len(view.Traced))
	}
	if view.Remaining != nil {
		t.Fatalf("remaining should be omitted without ShowPending, got %d", len(view.Remaining))
	}
}

func TestProjectPartitionCompleteness(t *testing.T) {
	for _, route := range defaultCatalog(t).Routes() {
		for p := 1; p <= route.TotalPoints; p++ {
			view := Project(route, p, Options{ShowPending: true})

			seen := make(map[int]domain.MarkerState, route.TotalPoints)
			add := func(cp domain.ProjectedCheckpoint, want domain.MarkerState) {
				if cp.State != want {
					t.Errorf("%s p=%d order %d state %s, want %s", route.ID, p, cp.Order, cp.State, want)
				}
				if _, dup := seen[cp.Order]; dup {
					t.Errorf("%s p=%d order %d in two partitions", route.ID, p, cp.Order)
				}
				seen[cp.Order] = cp.State
			}

			for _, cp := range view.Completed {
				add(cp, domain.MarkerCompleted)
				if cp.Order >= p {
					t.Errorf("%s p=%d completed has order %d", route.ID, p, cp.Order)
				}
			}
			if view.Current != nil {
				add(*view.Current, domain.MarkerCurrent)
			}
			for _, cp := range view.Pending {
				add(cp, domain.MarkerPending)
				if cp.Order <= p {
					t.Errorf("%s p=%d pending has order %d", route.ID, p, cp.Order)
				}
			}

			if len(seen) != route.TotalPoints {
				t.Fatalf("%s p=%d partitions cover %d of %d", route.ID, p, len(seen), route.TotalPoints)
			}
		}
	}
}

func TestProgressMonotonic(t *testing.T) {
	for _, route := range defaultCatalog(t).Routes() {
		prev := -1
		for p := 1; p <= route.TotalPoints; p++ {
			got := Project(route, p, Options{}).ProgressPercent
			if got < prev {
				t.Fatalf("%s progress decreased at %d: %d < %d", route.ID, p, got, prev)
			}
			if got < 0 || got > 100 {
				t.Fatalf("%s progress out of range at %d: %d", route.ID, p, got)
			}
			prev = got
		}
		if prev != 100 {
			t.Fatalf("%s progress at last point = %d, want 100", route.ID, prev)
		}
	}
}

func TestProjectClampIdempotence(t *testing.T) {
	route := aerialGeneral(t)

	for _, p := range []int{-10, 0, 46, 1000, math.MaxInt32} {
		for _, opts := range []Options{{}, {ShowPending: true}} {
			got := Project(route, p, opts)
			want := Project(route, domain.ClampPoint(p, route.TotalPoints), opts)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Project(%d) differs from Project(clamp(%d))", p, p)
			}
		}
	}

	if v := Project(route, -3, Options{}); v.CurrentPosition != 1 || len(v.Completed) != 0 {
		t.Fatalf("low clamp: position=%d completed=%d", v.CurrentPosition, len(v.Completed))
	}
	if v := Project(route, 99, Options{}); v.CurrentPosition != 45 || len(v.Pending) != 0 || v.ProgressPercent != 100 {
		t.Fatalf("high clamp: position=%d pending=%d progress=%d", v.CurrentPosition, len(v.Pending), v.ProgressPercent)
	}
}

func TestProjectShowPending(t *testing.T) {
	view := Project(aerialGeneral(t), 21, Options{ShowPending: true})

	if len(view.Remaining) != 25 {
		t.Fatalf("remaining = %d, want 25 (current + pending)", len(view.Remaining))
	}
	if view.Remaining[0].Order != 21 {
		t.Fatalf("remaining starts at %d, want 21", view.Remaining[0].Order)
	}
	// The remaining line picks up where the traced line stops.
	if view.Remaining[0].Corrected != view.Current.Corrected {
		t.Fatalf("remaining starts at %+v, current drawn at %+v", view.Remaining[0].Corrected, view.Current.Corrected)
	}
	for _, cp := range view.Pending {
		if cp.Corrected.Lon <= 180 {
			t.Errorf("pending order %d corrected lon = %v, want > 180", cp.Order, cp.Corrected.Lon)
		}
	}
}

func TestProjectDrawnCoordinatesInsideViewport(t *testing.T) {
	const eps = 1e-9
	inside := func(v domain.Viewport, c domain.Coordinates) bool {
		if v.Bounds == nil {
			return c == v.Center
		}
		b := v.Bounds
		return c.Lat >= b.MinLat-eps && c.Lat <= b.MaxLat+eps &&
			c.Lon >= b.MinLon-eps && c.Lon <= b.MaxLon+eps
	}

	for _, route := range defaultCatalog(t).Routes() {
		for p := 1; p <= route.TotalPoints; p++ {
			view := Project(route, p, Options{ShowPending: true})

			drawn := append([]domain.ProjectedCheckpoint{}, view.Traced...)
			drawn = append(drawn, view.Remaining...)
			drawn = append(drawn, view.Pending...)
			for _, cp := range drawn {
				if !inside(view.Viewport, cp.Corrected) {
					t.Errorf("%s p=%d order %d at %+v outside viewport %+v",
						route.ID, p, cp.Order, cp.Corrected, view.Viewport)
				}
			}

			if n := len(view.Remaining); n > 0 {
				first := view.Remaining[0].Corrected
				last := view.Traced[len(view.Traced)-1].Corrected
				if first != last {
					t.Errorf("%s p=%d remaining starts at %+v, traced ends at %+v", route.ID, p, first, last)
				}
			}
		}
	}
}

func TestProjectCarriesCorrectedCoordinates(t *testing.T) {
	view := Project(aerialGeneral(t), 21, Options{})

	// Orders 19..21 lie east of the date line; the traced line reached them
	// from Asia, so they are drawn beyond +180.
	for _, cp := range view.Traced {
		if cp.Order >= 19 && cp.Corrected.Lon <= 180 {
			t.Errorf("order %d corrected lon = %v, want > 180", cp.Order, cp.Corrected.Lon)
		}
		if cp.Order >= 19 && math.Abs(cp.Corrected.Lon-360-cp.Coords.Lon) > 1e-9 {
			t.Errorf("order %d corrected lon %v is not raw+360", cp.Order, cp.Corrected.Lon)
		}
	}
	if view.Current.Corrected != view.Traced[len(view.Traced)-1].Corrected {
		t.Fatal("current marker does not share the traced correction")
	}
}

func TestProjectEmptyRoute(t *testing.T) {
	route := domain.RouteDefinition{ID: "aerial_ghost", ServiceType: domain.ServiceAerial, CargoType: "ghost"}

	view := Project(route, 5, Options{ShowPending: true})
	if view.Status != domain.ViewEmptyRoute {
		t.Fatalf("status = %s, want empty_route", view.Status)
	}
	if view.Current != nil || len(view.Completed) != 0 || len(view.Pending) != 0 {
		t.Fatalf("empty route produced checkpoints: %+v", view)
	}
	if !view.Viewport.Empty {
		t.Fatal("viewport should be empty")
	}
}

func TestProjectorRouteNotFound(t *testing.T) {
	p := NewProjector(defaultCatalog(t))

	view := p.ProjectKey(domain.ServiceAerial, domain.CargoType("frozen"), 3, Options{})
	if view.Status != domain.ViewRouteNotFound {
		t.Fatalf("status = %s, want route_not_found", view.Status)
	}
	if view.RouteID != "aerial_frozen" {
		t.Fatalf("route id = %q", view.RouteID)
	}
	if view.Message == "" {
		t.Fatal("expected a message with the requested parameters")
	}

	ok := p.ProjectKey(domain.ServiceMaritime, domain.CargoGeneral, 20, Options{})
	if ok.Status != domain.ViewOK || ok.TotalPoints != 50 {
		t.Fatalf("maritime_general: status=%s total=%d", ok.Status, ok.TotalPoints)
	}
}

func TestMarkerStateFor(t *testing.T) {
	tests := []struct {
		order, current int
		want           domain.MarkerState
	}{
		{1, 5, domain.MarkerCompleted},
		{5, 5, domain.MarkerCurrent},
		{6, 5, domain.MarkerPending},
	}
	for _, tt := range tests {
		if got := MarkerStateFor(tt.order, tt.current); got != tt.want {
			t.Errorf("MarkerStateFor(%d, %d) = %s, want %s", tt.order, tt.current, got, tt.want)
		}
	}
}
