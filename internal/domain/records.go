package domain

// Inspection is a batch of line items under customs/logistics review,
// supplied by the quotation/inspection subsystem.
type Inspection struct {
	ID                  string      `json:"id"`
	ShippingServiceType ServiceType `json:"shipping_service_type"`
	CargoType           CargoType   `json:"cargo_type"`
	LineItems           []LineItem  `json:"line_items"`
	TrackingPointHint   *int        `json:"tracking_point_hint,omitempty"`
	ShipmentID          *string     `json:"shipment_id,omitempty"`
}

// LineItem is one product of an inspection, progressing independently.
type LineItem struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Shipment is the physical transport leg linked to an inspection.
// Once transit begins its tracking point is authoritative.
type Shipment struct {
	ID            string `json:"id"`
	InspectionID  string `json:"inspection_id"`
	TrackingPoint int    `json:"tracking_point"`
	Status        string `json:"status"`
}

// Entry of the inspection-status lookup table.
type InspectionStatus struct {
	Value      string `json:"value"`
	Order      int    `json:"order"`
	IsOptional bool   `json:"is_optional"`
}

// Entry of the shipment-status lookup table.
type ShipmentStatus struct {
	Value         string `json:"value"`
	TrackingPoint int    `json:"tracking_point"`
	Label         string `json:"label"`
	IsOptional    bool   `json:"is_optional"`
}

// StatusTables bundles both lookup tables as fetched from their sources.
type StatusTables struct {
	Inspection []InspectionStatus `json:"inspection_statuses"`
	Shipment   []ShipmentStatus   `json:"shipment_statuses"`
}
