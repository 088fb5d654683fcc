package estimate

import (
	"fmt"
	"strings"
	"time"
)

// DocumentFilename is the download name for the rendered bid.
const DocumentFilename = "painting_bid.txt"

const documentTitle = "Painting Bid - Mankato, MN (56001)"

// RenderDocument writes the estimate into the one-page bid layout.
// Labels occupy a fixed 15-character column so values line up.
func RenderDocument(e Estimate, now time.Time) string {
	var b strings.Builder

	b.WriteString(documentTitle + "\n")
	b.WriteString(strings.Repeat("=", len(documentTitle)) + "\n\n")

	line := func(label, format string, args ...any) {
		fmt.Fprintf(&b, "%-15s"+format+"\n", append([]any{label + ":"}, args...)...)
	}

	line("Date", "%s", now.Format("2006-01-02"))
	line("House Size", "%d sq ft", e.SquareFeet)
	line("Scope", "%s", e.Scope)
	line("Prep Work", "%s", e.PrepLevel)
	line("Crew Size", "%d painters", e.CrewSize)
	b.WriteString("\n")
	line("Total Hours", "%.1f", e.TotalHours)
	line("Labor Cost", "$%.2f", e.LaborCost)
	line("Material Cost", "$%.2f", e.MaterialCost)
	line("Total Cost", "$%.2f", e.TotalCost)
	b.WriteString("\n")
	b.WriteString("Note: Bid assumes completion within one week.\n")

	return b.String()
}
