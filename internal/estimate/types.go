package estimate

// BidRequest is the JSON body for POST /bids/estimate and /bids/document.
type BidRequest struct {
	SquareFeet int    `json:"square_feet"`
	Scope      string `json:"scope"`      // one of Scopes()
	PrepLevel  string `json:"prep_level"` // one of PrepLevels()
	CrewSize   int    `json:"crew_size"`
}

// Estimate holds every derived figure for one bid.
type Estimate struct {
	SquareFeet int    `json:"square_feet"`
	Scope      string `json:"scope"`
	PrepLevel  string `json:"prep_level"`
	CrewSize   int    `json:"crew_size"`

	TotalHours      float64 `json:"total_hours"`
	HoursPerPainter float64 `json:"hours_per_painter"`
	LaborCost       float64 `json:"labor_cost"`
	MaterialCost    float64 `json:"material_cost"`
	Subtotal        float64 `json:"subtotal"`
	Markup          float64 `json:"markup"`
	TotalCost       float64 `json:"total_cost"`

	// FitsInWeek reports whether HoursPerPainter stays within MaxWeekHours.
	FitsInWeek bool `json:"fits_in_week"`
}

// EstimateResponse is the JSON response for POST /bids/estimate.
type EstimateResponse struct {
	Estimate
	Note      string `json:"note"`
	RequestID string `json:"request_id"`
}
