package http

import (
	"encoding/json"
	"net/http"

	"github.com/riftbook/rift-social/internal/pkg/errors"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		// Encoding failures past the status line have no recovery path.
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(errors.CodeOf(err))
	body.Error.Message = errors.MessageOf(err)
	writeJSON(w, statusForError(err), body)
}

// statusForError maps an error's kind to its HTTP status.
func statusForError(err error) int {
	switch errors.KindOf(err) {
	case errors.KindValidation:
		return http.StatusBadRequest
	case errors.KindUnauthorized:
		return http.StatusUnauthorized
	case errors.KindForbidden:
		return http.StatusForbidden
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindConflict, errors.KindDomain:
		return http.StatusConflict
	case errors.KindThrottled:
		return http.StatusTooManyRequests
	case errors.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
