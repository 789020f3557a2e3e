package catalog

import "shipment-tracking-service/internal/domain"

func builtinRoutes() []domain.RouteDefinition {
	return []domain.RouteDefinition{
		aerialGeneral(),
		aerialIMOMixta(),
		maritimeGeneral(),
		maritimeIMOMixta(),
	}
}
