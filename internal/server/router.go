package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CORSMiddleware allows the browser front end to talk to the daemon from
// any origin and short-circuits preflight requests.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter builds the base router with shared middleware.
func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(CORSMiddleware)
	return r
}
