package dto

import "shipment-tracking-service/internal/domain"

// PhaseSpan is the contiguous order range one phase covers on a route.
type PhaseSpan struct {
	Phase      domain.Phase `json:"phase"`
	Label      string       `json:"label"`
	FirstOrder int          `json:"first_order"`
	LastOrder  int          `json:"last_order"`
}

type RouteSummary struct {
	ID          string             `json:"id"`
	ServiceType domain.ServiceType `json:"service_type"`
	CargoType   domain.CargoType   `json:"cargo_type"`
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	TotalPoints int                `json:"total_points"`
	Phases      []PhaseSpan        `json:"phases"`
}

type ListRoutesResponse struct {
	Routes []RouteSummary `json:"routes"`
}

type CheckpointResponse struct {
	Order      int                `json:"order"`
	Place      string             `json:"place"`
	Status     string             `json:"status"`
	Coords     domain.Coordinates `json:"coords"`
	Phase      domain.Phase       `json:"phase"`
	PhaseLabel string             `json:"phase_label"`
	IsOptional bool               `json:"is_optional"`
}

type RouteResponse struct {
	RouteSummary
	Checkpoints []CheckpointResponse `json:"checkpoints"`
}

type RouteNotFoundResponse struct {
	Error       string `json:"error"`
	ServiceType string `json:"service_type"`
	CargoType   string `json:"cargo_type"`
}
