package estimate

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all bid endpoints onto the given router
// under the /bids prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/bids", func(r chi.Router) {
		r.Get("/new", NewBidForm)
		r.Post("/estimate", EstimateBid)
		r.Post("/document", BidDocument)
	})
}
