package domain

// Phase groups checkpoints for display. It plays no part in ordering.
type Phase string

const (
	PhaseFirstMile          Phase = "first_mile"
	PhaseCustomsOrigin      Phase = "customs_origin"
	PhaseTransit            Phase = "transit"
	PhaseCustomsDestination Phase = "customs_destination"
	PhaseLastMile           Phase = "last_mile"
)

// Phases lists every phase in journey order.
var Phases = []Phase{
	PhaseFirstMile,
	PhaseCustomsOrigin,
	PhaseTransit,
	PhaseCustomsDestination,
	PhaseLastMile,
}

func (p Phase) Valid() bool {
	for _, known := range Phases {
		if p == known {
			return true
		}
	}
	return false
}

// Represents one fixed waypoint of a shipment route.
// Place labels may repeat across orders (several status steps at the same
// warehouse). IsOptional marks steps such as delays that may never happen;
// it is display metadata only.
type Checkpoint struct {
	Order      int         `json:"order"`
	Place      string      `json:"place"`
	Status     string      `json:"status"`
	Coords     Coordinates `json:"coords"`
	Phase      Phase       `json:"phase"`
	IsOptional bool        `json:"is_optional"`
}
