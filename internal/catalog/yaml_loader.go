package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"shipment-tracking-service/internal/domain"
)

// routeFile is the on-disk format of a versioned route table.
type routeFile struct {
	Version int         `yaml:"version" validate:"gte=1"`
	Routes  []routeSpec `yaml:"routes" validate:"required,min=1,dive"`
}

type routeSpec struct {
	ServiceType string           `yaml:"service_type" validate:"required,oneof=aerial maritime"`
	CargoType   string           `yaml:"cargo_type" validate:"required"`
	Origin      string           `yaml:"origin" validate:"required"`
	Destination string           `yaml:"destination" validate:"required"`
	Checkpoints []checkpointSpec `yaml:"checkpoints" validate:"dive"`
}

type checkpointSpec struct {
	// Order may be omitted; it is then assigned by position.
	Order    int     `yaml:"order" validate:"gte=0"`
	Place    string  `yaml:"place" validate:"required"`
	Status   string  `yaml:"status" validate:"required"`
	Phase    string  `yaml:"phase" validate:"required,oneof=first_mile customs_origin transit customs_destination last_mile"`
	Lat      float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon      float64 `yaml:"lon" validate:"gte=-180,lte=180"`
	Optional bool    `yaml:"optional"`
}

// LoadYAML decodes and validates a versioned route table.
func LoadYAML(r io.Reader) ([]domain.RouteDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load routes: read: %w", err)
	}

	var file routeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("load routes: parse yaml: %w", err)
	}

	v := validator.New()
	if err := v.Struct(file); err != nil {
		return nil, fmt.Errorf("load routes: validate: %w", err)
	}

	routes := make([]domain.RouteDefinition, 0, len(file.Routes))
	for i, rf := range file.Routes {
		route := rf.toDomain()
		if err := route.Validate(); err != nil {
			return nil, fmt.Errorf("load routes: route #%d: %w", i+1, err)
		}
		routes = append(routes, route)
	}

	return routes, nil
}

// LoadFile reads a route table from disk.
func LoadFile(path string) ([]domain.RouteDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load routes: open %q: %w", path, err)
	}
	defer f.Close()

	return LoadYAML(f)
}

func (s routeSpec) toDomain() domain.RouteDefinition {
	serviceType := domain.ServiceType(s.ServiceType)
	cargoType := domain.CargoType(s.CargoType)

	checkpoints := make([]domain.Checkpoint, 0, len(s.Checkpoints))
	for i, c := range s.Checkpoints {
		order := c.Order
		if order == 0 {
			order = i + 1
		}
		checkpoints = append(checkpoints, domain.Checkpoint{
			Order:      order,
			Place:      c.Place,
			Status:     c.Status,
			Coords:     domain.Coordinates{Lat: c.Lat, Lon: c.Lon},
			Phase:      domain.Phase(c.Phase),
			IsOptional: c.Optional,
		})
	}

	return domain.RouteDefinition{
		ID:          domain.RouteKey(serviceType, cargoType),
		ServiceType: serviceType,
		CargoType:   cargoType,
		Origin:      s.Origin,
		Destination: s.Destination,
		TotalPoints: len(checkpoints),
		Checkpoints: checkpoints,
	}
}
