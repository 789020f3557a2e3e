package domain

// MarkerState is the display state of a checkpoint relative to the
// current tracking point.
type MarkerState string

const (
	MarkerCompleted MarkerState = "completed"
	MarkerCurrent   MarkerState = "current"
	MarkerPending   MarkerState = "pending"
)

// ViewStatus distinguishes renderable outcomes of a projection. None of
// them is an error: the UI shows a fallback panel for the non-ok values.
type ViewStatus string

const (
	ViewOK            ViewStatus = "ok"
	ViewRouteNotFound ViewStatus = "route_not_found"
	ViewEmptyRoute    ViewStatus = "empty_route"
)

// ProjectedCheckpoint pairs a checkpoint with its marker state and the
// anti-meridian corrected coordinate used to draw it.
type ProjectedCheckpoint struct {
	Checkpoint
	State     MarkerState `json:"state"`
	Corrected Coordinates `json:"corrected"`
}

type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Viewport tells the renderer how to frame the map. Bounds is nil when the
// view collapses to a single point, in which case Center and Zoom apply.
type Viewport struct {
	Center  Coordinates `json:"center"`
	Zoom    int         `json:"zoom,omitempty"`
	Bounds  *Bounds     `json:"bounds,omitempty"`
	Padding int         `json:"padding,omitempty"`
	Empty   bool        `json:"empty,omitempty"`
}

// ProjectedRouteView is derived per query and never stored.
type ProjectedRouteView struct {
	Status          ViewStatus            `json:"status"`
	Message         string                `json:"message,omitempty"`
	RouteID         string                `json:"route_id"`
	ServiceType     ServiceType           `json:"service_type"`
	CargoType       CargoType             `json:"cargo_type"`
	Origin          string                `json:"origin,omitempty"`
	Destination     string                `json:"destination,omitempty"`
	CurrentPosition int                   `json:"current_position"`
	TotalPoints     int                   `json:"total_points"`
	ProgressPercent int                   `json:"progress_percent"`
	Completed       []ProjectedCheckpoint `json:"completed"`
	Current         *ProjectedCheckpoint  `json:"current,omitempty"`
	Pending         []ProjectedCheckpoint `json:"pending"`
	// Traced is completed + current, corrected as one polyline.
	Traced []ProjectedCheckpoint `json:"traced"`
	// Remaining is current + pending, corrected independently. Only
	// populated when pending points were requested.
	Remaining []ProjectedCheckpoint `json:"remaining,omitempty"`
	Viewport  Viewport              `json:"viewport"`
}
