package estimate

import (
	_ "embed"
	"html/template"
	"net/http"

	"paintbid/internal/observability"

	"go.uber.org/zap"
)

//go:embed form.html
var formHTML string

var formTemplate = template.Must(template.New("form").Parse(formHTML))

type prepOption struct {
	Value string
	Label string
}

// prepLabels decorates the canonical prep values for display only;
// the form submits the bare value.
var prepLabels = map[string]string{
	PrepLow:    "Low (minimal prep)",
	PrepMedium: "Medium (some scraping/patching)",
	PrepHigh:   "High (extensive prep)",
}

// NewBidForm handles GET /bids/new — the interactive project-details page.
func NewBidForm(w http.ResponseWriter, r *http.Request) {
	opts := make([]prepOption, 0, len(PrepLevels()))
	for _, p := range PrepLevels() {
		opts = append(opts, prepOption{Value: p, Label: prepLabels[p]})
	}

	data := struct {
		Scopes        []string
		PrepLevels    []prepOption
		MinSquareFeet int
		MaxSquareFeet int
		MinCrewSize   int
		MaxCrewSize   int
	}{
		Scopes:        Scopes(),
		PrepLevels:    opts,
		MinSquareFeet: MinSquareFeet,
		MaxSquareFeet: MaxSquareFeet,
		MinCrewSize:   MinCrewSize,
		MaxCrewSize:   MaxCrewSize,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(w, data); err != nil {
		observability.LoggerWithTrace(r.Context()).Error("rendering bid form", zap.Error(err))
	}
}
