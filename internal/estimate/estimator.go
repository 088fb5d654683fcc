package estimate

import (
	"fmt"
	"math"
)

// Validate checks a request against the fixed input bounds and enumerations.
func Validate(req BidRequest) error {
	if req.SquareFeet < MinSquareFeet || req.SquareFeet > MaxSquareFeet {
		return &RangeError{Field: "square_feet", Value: req.SquareFeet, Min: MinSquareFeet, Max: MaxSquareFeet}
	}
	if req.CrewSize < MinCrewSize || req.CrewSize > MaxCrewSize {
		return &RangeError{Field: "crew_size", Value: req.CrewSize, Min: MinCrewSize, Max: MaxCrewSize}
	}

	prepTable, ok := timeEstimates[req.Scope]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScope, req.Scope)
	}
	if _, ok := prepTable[req.PrepLevel]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPrepLevel, req.PrepLevel)
	}

	return nil
}

// Hours returns total labor hours for the request, rounded to one decimal.
// Hours scale linearly with square footage at the table's base rate.
func Hours(req BidRequest) (float64, error) {
	if err := Validate(req); err != nil {
		return 0, err
	}

	base := timeEstimates[req.Scope][req.PrepLevel]
	total := float64(req.SquareFeet) / 1000 * base

	return math.Round(total*10) / 10, nil
}

// Compute derives the full estimate for a bid request.
//
// Labor cost uses the rounded hour total. Painted area doubles when the scope
// covers both interior and exterior, since both surfaces get paint while
// supplies track floor area.
func Compute(req BidRequest) (Estimate, error) {
	totalHours, err := Hours(req)
	if err != nil {
		return Estimate{}, err
	}

	hoursPerPainter := totalHours / float64(req.CrewSize)
	laborCost := totalHours * painterWage

	paintArea := float64(req.SquareFeet)
	if req.Scope == ScopeBoth {
		paintArea *= 2
	}
	gallons := paintArea / 100 * gallonsPer100SqFt
	paintCost := gallons * paintCostPerGallon
	suppliesCost := float64(req.SquareFeet) / 1000 * suppliesCostPer1000SqFt
	materialCost := paintCost + suppliesCost

	subtotal := laborCost + materialCost
	markup := subtotal * markupPercent

	return Estimate{
		SquareFeet: req.SquareFeet,
		Scope:      req.Scope,
		PrepLevel:  req.PrepLevel,
		CrewSize:   req.CrewSize,

		TotalHours:      totalHours,
		HoursPerPainter: hoursPerPainter,
		LaborCost:       laborCost,
		MaterialCost:    materialCost,
		Subtotal:        subtotal,
		Markup:          markup,
		TotalCost:       subtotal + markup,

		FitsInWeek: hoursPerPainter <= MaxWeekHours,
	}, nil
}

// Note returns the advisory line shown alongside an estimate.
func Note(e Estimate) string {
	if e.FitsInWeek {
		return fmt.Sprintf("Job can be completed in one week with %d painters.", e.CrewSize)
	}
	return fmt.Sprintf("Job requires %.1f hours per painter, exceeding the one-week limit of %.0f hours. Increase crew size or reduce scope.",
		e.HoursPerPainter, MaxWeekHours)
}
