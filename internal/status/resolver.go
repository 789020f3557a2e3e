package status

import "shipment-tracking-service/internal/domain"

// DefaultPoint is used when a status matches nothing.
const DefaultPoint = 1

// DefaultShipmentThreshold applies when the shipment-status table is empty
// and no threshold was configured.
const DefaultShipmentThreshold = 14

// Source names the rule that decided a resolution.
type Source string

const (
	SourceDefault   Source = "default"
	SourceLineItems Source = "line_items"
	SourceHint      Source = "hint"
	SourceShipment  Source = "shipment"
)

type Resolution struct {
	Point  int    `json:"point"`
	Source Source `json:"source"`
	// Lookup is the table that matched the winning status, if any.
	Lookup string `json:"lookup,omitempty"`
}

type Lookups struct {
	Inspection *InspectionStatusLookup
	Shipment   *ShipmentStatusLookup
	Legacy     *LegacyStatusMap
}

type Option func(*Resolver)

// WithShipmentThreshold sets the fallback threshold used when the shipment
// table does not provide one.
func WithShipmentThreshold(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.fallbackThreshold = n
		}
	}
}

// Resolver turns status codes from both external vocabularies into one
// tracking point. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	chain             []StatusLookup
	shipment          *ShipmentStatusLookup
	fallbackThreshold int
}

// NewResolver builds a resolver trying, in order: the shipment table, the
// inspection table, then the legacy map. Structured tables always win over
// legacy codes, and shipment statuses win over inspection statuses because
// they describe later progress.
func NewResolver(l Lookups, opts ...Option) *Resolver {
	r := &Resolver{
		shipment:          l.Shipment,
		fallbackThreshold: DefaultShipmentThreshold,
	}
	if l.Shipment != nil {
		r.chain = append(r.chain, l.Shipment)
	}
	if l.Inspection != nil {
		r.chain = append(r.chain, l.Inspection)
	}
	if l.Legacy != nil {
		r.chain = append(r.chain, l.Legacy)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewResolverFromTables is a convenience for callers holding raw tables.
func NewResolverFromTables(tables domain.StatusTables, legacy *LegacyStatusMap, opts ...Option) *Resolver {
	return NewResolver(Lookups{
		Inspection: NewInspectionStatusLookup(tables.Inspection),
		Shipment:   NewShipmentStatusLookup(tables.Shipment),
		Legacy:     legacy,
	}, opts...)
}

// Resolve never fails: unknown codes resolve to DefaultPoint.
func (r *Resolver) Resolve(code string) int {
	p, _ := r.lookup(code)
	return p
}

func (r *Resolver) lookup(code string) (int, string) {
	for _, l := range r.chain {
		if p, ok := l.Lookup(code); ok && p > 0 {
			return p, l.Name()
		}
	}
	return DefaultPoint, ""
}

// Threshold is the tracking point from which a shipment's own value is
// authoritative.
func (r *Resolver) Threshold() int {
	if t := r.shipment.Threshold(); t > 0 {
		return t
	}
	return r.fallbackThreshold
}

// ResolveLineItems returns the furthest-advanced point across items.
func (r *Resolver) ResolveLineItems(items []domain.LineItem) Resolution {
	best := Resolution{Point: DefaultPoint, Source: SourceDefault}
	for _, item := range items {
		p, lookup := r.lookup(item.Status)
		if lookup == "" {
			continue
		}
		if best.Source == SourceDefault || p > best.Point {
			best = Resolution{Point: p, Source: SourceLineItems, Lookup: lookup}
		}
	}
	return best
}

// ResolveInspection computes the displayed tracking point of an inspection.
//
// The furthest line item (or the record's hint, if further) decides, unless
// a linked shipment has reached the shipment phase: then the shipment wins
// even when line items claim more progress, since their statuses go stale
// once the goods leave customs. The result is not clamped.
func (r *Resolver) ResolveInspection(insp domain.Inspection, shipment *domain.Shipment) Resolution {
	res := r.ResolveLineItems(insp.LineItems)

	if insp.TrackingPointHint != nil && *insp.TrackingPointHint > res.Point {
		res = Resolution{Point: *insp.TrackingPointHint, Source: SourceHint}
	}

	if shipment != nil {
		point, lookup := shipment.TrackingPoint, ""
		if point <= 0 {
			point, lookup = r.lookup(shipment.Status)
		}
		if point >= r.Threshold() {
			return Resolution{Point: point, Source: SourceShipment, Lookup: lookup}
		}
	}

	return res
}
