package catalog

import "shipment-tracking-service/internal/domain"

var phaseLabels = map[domain.Phase]string{
	domain.PhaseFirstMile:          "Primera milla",
	domain.PhaseCustomsOrigin:      "Aduana de origen",
	domain.PhaseTransit:            "Tránsito internacional",
	domain.PhaseCustomsDestination: "Aduana de destino",
	domain.PhaseLastMile:           "Última milla",
}

// PhaseLabel returns the display label for a phase, or the raw code when
// the phase is unknown.
func PhaseLabel(phase domain.Phase) string {
	if label, ok := phaseLabels[phase]; ok {
		return label
	}
	return string(phase)
}
