package estimate

// Painting scope categories.
const (
	ScopeInterior = "Interior Only"
	ScopeExterior = "Exterior Only"
	ScopeBoth     = "Both Interior and Exterior"
)

// Prep work complexity tiers.
const (
	PrepLow    = "Low"
	PrepMedium = "Medium"
	PrepHigh   = "High"
)

// Input bounds enforced on every request.
const (
	MinSquareFeet = 1000
	MaxSquareFeet = 4000
	MinCrewSize   = 1
	MaxCrewSize   = 4
)

// Pricing constants, calibrated for residential work in Mankato, MN (56001).
const (
	painterWage             = 20.0  // $/hour, average of $18-$22
	paintCostPerGallon      = 40.0  // quality paint
	gallonsPer100SqFt       = 0.025 // two coats
	suppliesCostPer1000SqFt = 50.0  // brushes, tape, drop cloths
	markupPercent           = 0.45  // 20% profit + 25% overhead

	// MaxWeekHours is the most one painter can work in a week (5 days x 10 hours).
	MaxWeekHours = 50.0
)

// timeEstimates maps (scope, prep level) to base hours per 1,000 sq ft.
var timeEstimates = map[string]map[string]float64{
	ScopeInterior: {PrepLow: 10, PrepMedium: 12, PrepHigh: 15},
	ScopeExterior: {PrepLow: 12, PrepMedium: 15, PrepHigh: 20},
	ScopeBoth:     {PrepLow: 22, PrepMedium: 27, PrepHigh: 35},
}

// Scopes lists the valid painting scope values in display order.
func Scopes() []string {
	return []string{ScopeInterior, ScopeExterior, ScopeBoth}
}

// PrepLevels lists the valid prep complexity values in display order.
func PrepLevels() []string {
	return []string{PrepLow, PrepMedium, PrepHigh}
}
