package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopdemo/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers already sent; nothing useful can reach the client.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// respondError maps a service error onto the HTTP taxonomy: validation
// errors are 400, an unavailable store is 503, missing documents are 404,
// everything else is 500 with its raw message.
func respondError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message, logger)
	case errors.Is(err, model.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, model.ErrStoreUnavailable.Message, logger)
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, model.ErrNotFound.Message, logger)
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), logger)
	}
}
