package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/add", HandleAdd)
		r.Post("/subtract", HandleSubtract)
		r.Post("/multiply", HandleMultiply)
		r.Post("/divide", HandleDivide)
		r.Post("/chain", HandleChain)
		r.Post("/evaluate", HandleEvaluate)
	})
}
