package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JiriTill/lekarprolidi/internal/pipeline"
)

// SessionRouter resets the volatile session ("Vymazat vše").
func SessionRouter(ctrl *pipeline.Controller) chi.Router {
	r := chi.NewRouter()

	r.Post("/reset", func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.Reset(); errors.Is(err, pipeline.ErrBusy) {
			writeError(w, http.StatusConflict, "busy",
				"Jiný dokument se právě zpracovává.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status": pipeline.StatusIdle.String(),
		})
	})

	return r
}
