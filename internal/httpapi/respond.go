package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"showgram/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError translates a service error into the API error envelope.
func writeError(w http.ResponseWriter, err error) {
	var verr *validationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"message": "The given data was invalid.",
			"errors":  verr.Fields,
		})
		return
	}

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		errorResponse(w, status, "internal server error")
		return
	}
	errorResponse(w, status, err.Error())
}

type pagedResponse struct {
	Data any             `json:"data"`
	Meta models.PageMeta `json:"meta"`
}

func writePage(w http.ResponseWriter, data any, page models.PageParams, total int) {
	writeJSON(w, http.StatusOK, pagedResponse{
		Data: data,
		Meta: models.PageMeta{Page: page.Page, PerPage: page.PerPage, Total: total},
	})
}
