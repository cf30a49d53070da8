package http

import (
	"net/http"
	"time"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

// writeData wraps data in the uniform response envelope and writes it with
// the given status. The request id is the trace id assigned by withTraceID.
func writeData(w http.ResponseWriter, r *http.Request, data any, status int) {
	utils.WriteJSON(w, models.Envelope{
		Success:   true,
		Data:      data,
		RequestID: utils.GetTraceIDFromContext(r.Context()),
		Timestamp: time.Now().UTC(),
	}, status)
}

// writeError maps err to an HTTP status and writes an error envelope.
// Internal errors are logged server-side and masked with a generic message
// so storage details never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed with internal error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.Envelope{
		Success:   false,
		Error:     &models.APIError{Code: codeFromStatus(status), Message: message},
		RequestID: utils.GetTraceIDFromContext(r.Context()),
		Timestamp: time.Now().UTC(),
	}, status)
}

// writeBadRequest reports a malformed payload without going through the
// service error taxonomy.
func writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	utils.WriteJSON(w, models.Envelope{
		Success:   false,
		Error:     &models.APIError{Code: "validation_error", Message: message},
		RequestID: utils.GetTraceIDFromContext(r.Context()),
		Timestamp: time.Now().UTC(),
	}, http.StatusBadRequest)
}

// writeUnauthorized writes a 401 error envelope with the given message.
func writeUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	utils.WriteJSON(w, models.Envelope{
		Success:   false,
		Error:     &models.APIError{Code: "unauthorized", Message: message},
		RequestID: utils.GetTraceIDFromContext(r.Context()),
		Timestamp: time.Now().UTC(),
	}, http.StatusUnauthorized)
}
