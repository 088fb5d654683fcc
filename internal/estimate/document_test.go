package estimate_test

import (
	"strings"
	"testing"
	"time"

	"paintbid/internal/estimate"

	"github.com/stretchr/testify/require"
)

func TestRenderDocumentLayout(t *testing.T) {
	est, err := estimate.Compute(estimate.BidRequest{
		SquareFeet: 2000,
		Scope:      estimate.ScopeInterior,
		PrepLevel:  estimate.PrepLow,
		CrewSize:   2,
	})
	require.NoError(t, err)

	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	doc := estimate.RenderDocument(est, now)

	lines := strings.Split(doc, "\n")
	require.Equal(t, "Painting Bid - Mankato, MN (56001)", lines[0])
	require.Equal(t, strings.Repeat("=", len(lines[0])), lines[1])

	require.Contains(t, doc, "Date:          2026-08-30")
	require.Contains(t, doc, "House Size:    2000 sq ft")
	require.Contains(t, doc, "Scope:         Interior Only")
	require.Contains(t, doc, "Prep Work:     Low")
	require.Contains(t, doc, "Crew Size:     2 painters")
	require.Contains(t, doc, "Total Hours:   20.0")
	require.Contains(t, doc, "Labor Cost:    $400.00")
	require.Contains(t, doc, "Material Cost: $120.00")
	require.Contains(t, doc, "Total Cost:    $754.00")
	require.Contains(t, doc, "Note: Bid assumes completion within one week.")
}

func TestRenderDocumentLabelsAlign(t *testing.T) {
	est, err := estimate.Compute(estimate.BidRequest{
		SquareFeet: 3500,
		Scope:      estimate.ScopeBoth,
		PrepLevel:  estimate.PrepHigh,
		CrewSize:   4,
	})
	require.NoError(t, err)

	doc := estimate.RenderDocument(est, time.Now())

	for _, line := range strings.Split(doc, "\n") {
		if !strings.Contains(line, ":") || strings.HasPrefix(line, "Note:") {
			continue
		}
		// Every value starts in the same column.
		require.GreaterOrEqual(t, len(line), 16, "line %q", line)
		require.NotEqual(t, byte(' '), line[15], "line %q", line)
		require.Equal(t, byte(' '), line[14], "line %q", line)
	}
}
