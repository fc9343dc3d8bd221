package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"keyword-dashboard/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type adGroupsResponse struct {
	AdGroups []string `json:"adGroups"`
}

type successResponse struct {
	Success   bool   `json:"success"`
	KeywordID string `json:"keywordId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code. Validation failures are the
// caller's fault; everything else, unknown keywords included, is reported
// as a server error with the error message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), op+" failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeJSON reads a single JSON object from the body, rejecting unknown
// fields. Failures are returned as *domain.ValidationError.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &domain.ValidationError{Err: err}
	}
	if dec.More() {
		return &domain.ValidationError{Err: errors.New("request body must contain a single JSON object")}
	}
	return nil
}
