package catalog

import (
	"strings"
	"testing"

	"shipment-tracking-service/internal/domain"
)

const frozenRoutes = `
version: 2
routes:
  - service_type: aerial
    cargo_type: frozen
    origin: Shenzhen
    destination: Guayaquil
    checkpoints:
      - place: BODEGA ORIGEN / SHENZHEN
        status: Documentos recibidos
        phase: first_mile
        lat: 22.555
        lon: 113.883
      - place: PUNTO 1 / PACIFICO
        status: Vuelo en curso
        phase: transit
        lat: 51.8
        lon: 179.5
      - place: CLIENTE / GUAYAQUIL
        status: Entregado
        phase: last_mile
        lat: -2.13
        lon: -79.87
  - service_type: maritime
    cargo_type: empty
    origin: Nowhere
    destination: Nowhere
`

func TestLoadYAMLAssignsOrders(t *testing.T) {
	routes, err := LoadYAML(strings.NewReader(frozenRoutes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}

	frozen := routes[0]
	if frozen.ID != "aerial_frozen" {
		t.Fatalf("id = %q", frozen.ID)
	}
	for i, cp := range frozen.Checkpoints {
		if cp.Order != i+1 {
			t.Errorf("checkpoint %d order = %d", i, cp.Order)
		}
	}

	if routes[1].TotalPoints != 0 {
		t.Fatalf("empty route total = %d", routes[1].TotalPoints)
	}
}

func TestLoadYAMLRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown phase": `
version: 1
routes:
  - service_type: aerial
    cargo_type: x
    origin: a
    destination: b
    checkpoints:
      - {place: p, status: s, phase: warehouse, lat: 0, lon: 0}
`,
		"bad longitude": `
version: 1
routes:
  - service_type: aerial
    cargo_type: x
    origin: a
    destination: b
    checkpoints:
      - {place: p, status: s, phase: transit, lat: 0, lon: 200}
`,
		"out of order": `
version: 1
routes:
  - service_type: aerial
    cargo_type: x
    origin: a
    destination: b
    checkpoints:
      - {order: 2, place: p, status: s, phase: transit, lat: 0, lon: 0}
`,
		"unknown service": `
version: 1
routes:
  - service_type: rail
    cargo_type: x
    origin: a
    destination: b
`,
		"unknown field": `
version: 1
routes:
  - service_type: aerial
    cargo_type: x
    origin: a
    destination: b
    colour: red
`,
		"no routes": `version: 1`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadYAML(strings.NewReader(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestWithOverlay(t *testing.T) {
	base := mustDefault(t)
	routes, err := LoadYAML(strings.NewReader(frozenRoutes))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	merged, err := WithOverlay(base, routes...)
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}

	if _, ok := merged.Route(domain.ServiceAerial, "frozen"); !ok {
		t.Fatal("overlay route missing")
	}
	if _, ok := merged.Route(domain.ServiceAerial, domain.CargoGeneral); !ok {
		t.Fatal("base route lost")
	}
	if _, ok := base.Route(domain.ServiceAerial, "frozen"); ok {
		t.Fatal("overlay mutated the base catalog")
	}

	replacement := routes[0]
	replacement.ID = "aerial_general"
	replacement.CargoType = domain.CargoGeneral
	replaced, err := WithOverlay(base, replacement)
	if err != nil {
		t.Fatalf("overlay replace: %v", err)
	}
	r, _ := replaced.Route(domain.ServiceAerial, domain.CargoGeneral)
	if r.TotalPoints != 3 {
		t.Fatalf("replacement total = %d, want 3", r.TotalPoints)
	}
}
