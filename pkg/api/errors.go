package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/cubetex/pkg/errors"
	"github.com/matzehuels/cubetex/pkg/observability"
)

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps err to an HTTP status and error code.
func statusFor(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE"
	case errors.IsInvalid(err):
		return http.StatusBadRequest, string(errors.GetCode(err))
	case errors.GetCode(err) != "":
		return http.StatusInternalServerError, string(errors.GetCode(err))
	default:
		return http.StatusInternalServerError, string(errors.ErrCodeInternal)
	}
}

// fail writes err as a JSON error response.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeError(w, r, status, code, msg)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, status, errorResponse{
		Code:      code,
		Message:   msg,
		RequestID: RequestIDFrom(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
