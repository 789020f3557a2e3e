package projection

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"shipment-tracking-service/internal/catalog"
	"shipment-tracking-service/internal/domain"
)

// Feature kinds written to the "kind" property.
const (
	KindMarker    = "marker"
	KindTraced    = "traced"
	KindRemaining = "remaining"
)

// FeatureCollection renders a view for a map client: one Point per
// visible marker plus the traced and remaining polylines, all using
// corrected longitudes. Non-ok views produce an empty collection.
func FeatureCollection(view domain.ProjectedRouteView) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if view.Status != domain.ViewOK {
		return fc
	}

	markers := make([]domain.ProjectedCheckpoint, 0, len(view.Traced)+len(view.Pending))
	markers = append(markers, view.Traced...)
	if view.Remaining != nil {
		markers = append(markers, view.Pending...)
	}
	for _, m := range markers {
		fc.Append(markerFeature(m))
	}

	if len(view.Traced) > 1 {
		fc.Append(lineFeature(KindTraced, view.Traced))
	}
	if len(view.Remaining) > 1 {
		fc.Append(lineFeature(KindRemaining, view.Remaining))
	}

	if b := view.Viewport.Bounds; b != nil {
		fc.BBox = geojson.NewBBox(orb.Bound{
			Min: orb.Point{b.MinLon, b.MinLat},
			Max: orb.Point{b.MaxLon, b.MaxLat},
		})
	}

	return fc
}

func markerFeature(cp domain.ProjectedCheckpoint) *geojson.Feature {
	f := geojson.NewFeature(toPoint(cp.Corrected))
	f.Properties["kind"] = KindMarker
	f.Properties["order"] = cp.Order
	f.Properties["place"] = cp.Place
	f.Properties["status"] = cp.Status
	f.Properties["phase"] = string(cp.Phase)
	f.Properties["phase_label"] = catalog.PhaseLabel(cp.Phase)
	f.Properties["state"] = string(cp.State)
	f.Properties["optional"] = cp.IsOptional
	return f
}

func lineFeature(kind string, cps []domain.ProjectedCheckpoint) *geojson.Feature {
	ls := make(orb.LineString, 0, len(cps))
	for _, cp := range cps {
		ls = append(ls, toPoint(cp.Corrected))
	}
	f := geojson.NewFeature(ls)
	f.Properties["kind"] = kind
	f.Properties["from_order"] = cps[0].Order
	f.Properties["to_order"] = cps[len(cps)-1].Order
	return f
}

func toPoint(c domain.Coordinates) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}
