package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JiriTill/lekarprolidi/internal/gate"
	"github.com/JiriTill/lekarprolidi/internal/pipeline"
	"github.com/JiriTill/lekarprolidi/internal/summarize"
)

type translateRequest struct {
	Category      string `json:"category"`
	ConsentAdvice bool   `json:"consent_advice"`
	ConsentGDPR   bool   `json:"consent_gdpr"`
}

// TranslateRouter runs the submission gate over the session text and, when
// it passes, forwards one request to the summarization API. A gate failure
// never makes a network call; an API failure surfaces once with a generic
// message and the session text stays resubmittable.
func TranslateRouter(ctrl *pipeline.Controller, tr *summarize.Translator) chi.Router {
	r := chi.NewRouter()

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request",
				"Neplatný požadavek.")
			return
		}

		state := gate.State{
			Category:      gate.ParseCategory(req.Category),
			ConsentAdvice: req.ConsentAdvice,
			ConsentGDPR:   req.ConsentGDPR,
			Text:          ctrl.Text(),
		}
		if reason := state.Check(); reason != gate.ReasonNone {
			writeError(w, http.StatusUnprocessableEntity,
				reason.String(), reason.Message())
			return
		}

		result, err := tr.Translate(r.Context(), state.Category, state.Text)
		switch {
		case errors.Is(err, summarize.ErrInputTooLong):
			writeError(w, http.StatusUnprocessableEntity, "text_too_long",
				"Text je příliš dlouhý na jedno zpracování.")
			return
		case err != nil:
			slog.Error("translation failed", "error", err)
			writeError(w, http.StatusBadGateway, "summarization_api_failure",
				"Došlo k chybě při komunikaci se serverem. Zkuste to prosím znovu.")
			return
		}

		ctrl.SetOutput(result.Raw)
		writeJSON(w, http.StatusOK, result)
	})

	return r
}
