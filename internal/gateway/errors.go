package gateway

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"conduitclient/internal/apierr"
)

// errorEnvelope matches the backend's unprocessable-entity body shape,
// e.g. {"errors":{"email":["has already been taken"]}}.
type errorEnvelope struct {
	Errors map[string]json.RawMessage `json:"errors"`
}

// normalizeFailure maps an HTTP failure onto the error taxonomy. An errors
// object under an unprocessable status becomes a validation error carrying
// the offending field names; everything else is a transport error.
func normalizeFailure(op apierr.Op, status int, body []byte) *apierr.Error {
	if validationStatus(op, status) {
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
			fields := make([]string, 0, len(envelope.Errors))
			for key := range envelope.Errors {
				fields = append(fields, key)
			}
			return apierr.Validation(op, status, fields)
		}
	}
	return apierr.Transport(op, status, fmt.Sprintf("request failed with status code %d", status))
}

// validationStatus reports whether the backend signals field validation
// failures under this status. Bad credentials on login arrive as 403 with
// the same errors body; everything else uses 422.
func validationStatus(op apierr.Op, status int) bool {
	if status == http.StatusUnprocessableEntity {
		return true
	}
	return op == apierr.OpLoginUser && status == http.StatusForbidden
}
