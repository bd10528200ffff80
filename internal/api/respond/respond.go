package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/devlink/devlink/internal/model"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// WriteMsg writes a {"msg": ...} body. Used for single-message rejections
// whose wording existing clients depend on.
func WriteMsg(w http.ResponseWriter, statusCode int, msg string) {
	WriteJSON(w, statusCode, map[string]string{"msg": msg})
}

// WriteFieldErrors writes the {"errors":[{"msg":...}]} body used by
// validation and credential rejections.
func WriteFieldErrors(w http.ResponseWriter, statusCode int, fields []model.FieldError) {
	WriteJSON(w, statusCode, map[string]interface{}{"errors": fields})
}

// WriteServerError logs the cause and writes the generic failure body.
// Internal detail never reaches the caller.
func WriteServerError(w http.ResponseWriter, err error) {
	log.Error().Stack().Err(err).Msg("request failed")
	WriteMsg(w, http.StatusInternalServerError, "Server Error")
}
