package status

import (
	"math"
	"strings"

	"shipment-tracking-service/internal/domain"
)

// StatusLookup maps a status code to a tracking point.
type StatusLookup interface {
	Name() string
	Lookup(code string) (int, bool)
}

// table is the shared exact-then-case-insensitive index behind every lookup.
type table struct {
	exact  map[string]int
	folded map[string]int
}

func newTable(size int) table {
	return table{
		exact:  make(map[string]int, size),
		folded: make(map[string]int, size),
	}
}

func (t table) put(code string, point int) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}
	t.exact[code] = point
	// First writer wins for folded keys, so an exact entry is never shadowed
	// by a differently-cased sibling.
	key := strings.ToLower(code)
	if _, ok := t.folded[key]; !ok {
		t.folded[key] = point
	}
}

func (t table) get(code string) (int, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, false
	}
	if p, ok := t.exact[code]; ok {
		return p, true
	}
	p, ok := t.folded[strings.ToLower(code)]
	return p, ok
}

// InspectionStatusLookup resolves codes from the inspection-status table
// (conventionally orders 1–13).
type InspectionStatusLookup struct {
	t table
}

func NewInspectionStatusLookup(entries []domain.InspectionStatus) *InspectionStatusLookup {
	t := newTable(len(entries))
	for _, e := range entries {
		t.put(e.Value, e.Order)
	}
	return &InspectionStatusLookup{t: t}
}

func (l *InspectionStatusLookup) Name() string { return "inspection" }

func (l *InspectionStatusLookup) Lookup(code string) (int, bool) {
	if l == nil {
		return 0, false
	}
	return l.t.get(code)
}

// ShipmentStatusLookup resolves codes from the shipment-status table
// (conventionally tracking points 14–45).
type ShipmentStatusLookup struct {
	t         table
	threshold int
}

func NewShipmentStatusLookup(entries []domain.ShipmentStatus) *ShipmentStatusLookup {
	t := newTable(len(entries))
	threshold := 0
	for _, e := range entries {
		t.put(e.Value, e.TrackingPoint)
		if e.TrackingPoint > 0 && (threshold == 0 || e.TrackingPoint < threshold) {
			threshold = e.TrackingPoint
		}
	}
	return &ShipmentStatusLookup{t: t, threshold: threshold}
}

func (l *ShipmentStatusLookup) Name() string { return "shipment" }

func (l *ShipmentStatusLookup) Lookup(code string) (int, bool) {
	if l == nil {
		return 0, false
	}
	return l.t.get(code)
}

// Threshold is the smallest tracking point in the table, i.e. where the
// shipment phase begins. Zero when the table is empty.
func (l *ShipmentStatusLookup) Threshold() int {
	if l == nil {
		return 0
	}
	return l.threshold
}

// FinalPoint resolves to the last checkpoint of any route once clamped.
const FinalPoint = math.MaxInt32

// LegacyStatusMap holds hard-coded codes found on records created before
// the structured lookup tables existed.
type LegacyStatusMap struct {
	t table
}

func NewLegacyStatusMap(m map[string]int) *LegacyStatusMap {
	t := newTable(len(m))
	for code, point := range m {
		t.put(code, point)
	}
	return &LegacyStatusMap{t: t}
}

// DefaultLegacyMap returns the codes written by the first release of the
// inspection module.
func DefaultLegacyMap() *LegacyStatusMap {
	return NewLegacyStatusMap(map[string]int{
		"pending":             1,
		"documents_received":  1,
		"in_warehouse":        2,
		"in_transit_to_port":  3,
		"at_origin_port":      7,
		"in_inspection":       8,
		"awaiting_inspection": 9,
		"inspection_delayed":  10,
		"approved":            11,
		"awaiting_boarding":   12,
		"boarded":             13,
		"in_transit":          14,
		"delivered":           FinalPoint,
	})
}

func (l *LegacyStatusMap) Name() string { return "legacy" }

func (l *LegacyStatusMap) Lookup(code string) (int, bool) {
	if l == nil {
		return 0, false
	}
	return l.t.get(code)
}
