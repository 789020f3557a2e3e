package projection

import (
	"math"

	"shipment-tracking-service/internal/domain"
)

// CorrectLongitudes shifts each longitude by 0 or ±360 so that it lands
// as close as possible to the previous corrected longitude. A polyline
// drawn through the result crosses the date line on the short side
// instead of wrapping around the globe.
//
// The first point is kept as is; the input is not modified.
func CorrectLongitudes(coords []domain.Coordinates) []domain.Coordinates {
	out := make([]domain.Coordinates, len(coords))
	for i, c := range coords {
		if i == 0 {
			out[i] = c
			continue
		}
		prev := out[i-1].Lon
		best := c.Lon
		for _, candidate := range [...]float64{c.Lon + 360, c.Lon - 360} {
			if math.Abs(candidate-prev) < math.Abs(best-prev) {
				best = candidate
			}
		}
		out[i] = domain.Coordinates{Lat: c.Lat, Lon: best}
	}
	return out
}

// correctCheckpoints applies CorrectLongitudes to a checkpoint sequence,
// storing each result next to the checkpoint it belongs to.
func correctCheckpoints(cps []domain.ProjectedCheckpoint) []domain.ProjectedCheckpoint {
	raw := make([]domain.Coordinates, len(cps))
	for i, cp := range cps {
		raw[i] = cp.Coords
	}

	corrected := CorrectLongitudes(raw)
	out := make([]domain.ProjectedCheckpoint, len(cps))
	for i, cp := range cps {
		cp.Corrected = corrected[i]
		out[i] = cp
	}
	return out
}

// alignTo shifts a corrected sequence by the multiple of 360 that brings
// its first longitude closest to anchor. The relative shape is kept, so the
// sequence continues where the line ending at anchor stops.
func alignTo(cps []domain.ProjectedCheckpoint, anchor float64) []domain.ProjectedCheckpoint {
	if len(cps) == 0 {
		return cps
	}
	shift := 360 * math.Round((anchor-cps[0].Corrected.Lon)/360)
	if shift == 0 {
		return cps
	}
	for i := range cps {
		cps[i].Corrected.Lon += shift
	}
	return cps
}
