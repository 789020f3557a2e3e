package projection

import "shipment-tracking-service/internal/domain"

const (
	// SingleZoom frames a view that collapses to one location.
	SingleZoom = 10
	// FitPadding is the margin, in pixels, around a fitted bounding box.
	FitPadding = 50
)

// FitViewport frames the given (already corrected) coordinates.
// Repeated locations are collapsed first so that several status steps at
// one warehouse do not count as a spread of points.
func FitViewport(coords []domain.Coordinates) domain.Viewport {
	unique := dedupe(coords)

	switch len(unique) {
	case 0:
		return domain.Viewport{Empty: true}
	case 1:
		return domain.Viewport{Center: unique[0], Zoom: SingleZoom}
	}

	b := domain.Bounds{
		MinLat: unique[0].Lat, MaxLat: unique[0].Lat,
		MinLon: unique[0].Lon, MaxLon: unique[0].Lon,
	}
	for _, c := range unique[1:] {
		b.MinLat = min(b.MinLat, c.Lat)
		b.MaxLat = max(b.MaxLat, c.Lat)
		b.MinLon = min(b.MinLon, c.Lon)
		b.MaxLon = max(b.MaxLon, c.Lon)
	}

	return domain.Viewport{
		Center: domain.Coordinates{
			Lat: (b.MinLat + b.MaxLat) / 2,
			Lon: (b.MinLon + b.MaxLon) / 2,
		},
		Bounds:  &b,
		Padding: FitPadding,
	}
}

func dedupe(coords []domain.Coordinates) []domain.Coordinates {
	seen := make(map[domain.Coordinates]struct{}, len(coords))
	out := make([]domain.Coordinates, 0, len(coords))
	for _, c := range coords {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
