package catalog

import (
	"errors"
	"fmt"
	"slices"

	"shipment-tracking-service/internal/domain"
)

var ErrDuplicateRoute = errors.New("duplicate route id")

// Catalog owns the fixed checkpoint tables. It is built once at startup,
// never mutated afterwards, and safe for concurrent reads.
type Catalog struct {
	routes map[string]domain.RouteDefinition
}

// New validates and indexes the given routes. Inputs are copied so later
// changes to the caller's slices cannot leak into the catalog.
func New(routes ...domain.RouteDefinition) (*Catalog, error) {
	c := &Catalog{routes: make(map[string]domain.RouteDefinition, len(routes))}
	for _, r := range routes {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("new catalog: %w", err)
		}
		if _, ok := c.routes[r.ID]; ok {
			return nil, fmt.Errorf("new catalog: %w: %s", ErrDuplicateRoute, r.ID)
		}
		c.routes[r.ID] = cloneRoute(r)
	}
	return c, nil
}

// Default returns the compiled-in route tables.
func Default() (*Catalog, error) {
	return New(builtinRoutes()...)
}

// WithOverlay returns a new catalog holding base's routes with the given
// routes added or replacing entries that share an ID. base is unchanged.
func WithOverlay(base *Catalog, overlay ...domain.RouteDefinition) (*Catalog, error) {
	merged := make(map[string]domain.RouteDefinition)
	if base != nil {
		for id, r := range base.routes {
			merged[id] = r
		}
	}

	seen := make(map[string]struct{}, len(overlay))
	for _, r := range overlay {
		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("overlay catalog: %w: %s", ErrDuplicateRoute, r.ID)
		}
		seen[r.ID] = struct{}{}
		merged[r.ID] = r
	}

	all := make([]domain.RouteDefinition, 0, len(merged))
	for _, r := range merged {
		all = append(all, r)
	}
	return New(all...)
}

// Route looks up a route by the literal key serviceType_cargoType.
// A missing route is a configuration gap, reported through ok=false.
func (c *Catalog) Route(serviceType domain.ServiceType, cargoType domain.CargoType) (domain.RouteDefinition, bool) {
	return c.RouteByID(domain.RouteKey(serviceType, cargoType))
}

func (c *Catalog) RouteByID(id string) (domain.RouteDefinition, bool) {
	if c == nil {
		return domain.RouteDefinition{}, false
	}
	r, ok := c.routes[id]
	if !ok {
		return domain.RouteDefinition{}, false
	}
	return cloneRoute(r), true
}

// Routes returns every route sorted by ID.
func (c *Catalog) Routes() []domain.RouteDefinition {
	if c == nil {
		return nil
	}
	out := make([]domain.RouteDefinition, 0, len(c.routes))
	for _, id := range c.Keys() {
		out = append(out, cloneRoute(c.routes[id]))
	}
	return out
}

func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.routes))
	for id := range c.routes {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.routes)
}

func cloneRoute(r domain.RouteDefinition) domain.RouteDefinition {
	r.Checkpoints = slices.Clone(r.Checkpoints)
	return r
}
