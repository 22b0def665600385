package handlers

import (
	"net/http"

	"github.com/roomiematch/roomiematch/internal/domain"
	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
	"github.com/roomiematch/roomiematch/internal/httpserver/respond"
	"github.com/roomiematch/roomiematch/internal/logger"
	"github.com/roomiematch/roomiematch/internal/render"
)

// statusFor maps operation error codes onto HTTP status codes
func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	case domain.ErrCodePermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// writeOpError renders an operation failure into the error envelope.
// Anything that is not a domain error becomes an opaque 500.
func writeOpError(w http.ResponseWriter, d deps.Deps, tool string, err error) {
	opErr, ok := domain.AsError(err)
	if !ok {
		d.Logger.Error("tool call failed",
			logger.String("tool", tool),
			logger.Error(err))
		recordTool(d, tool, "internal_error")
		respond.Error(w, http.StatusInternalServerError, "", respond.ErrorDetail{
			Code:    "internal_error",
			Message: "unexpected failure",
		})
		return
	}

	recordTool(d, tool, string(opErr.Code))
	respond.Error(w, statusFor(opErr.Code), render.ErrorText(opErr), respond.ErrorDetail{
		Code:    string(opErr.Code),
		Message: opErr.Message,
	})
}

// writeBadRequest covers malformed bodies and transport-level validation
func writeBadRequest(w http.ResponseWriter, d deps.Deps, tool, message string) {
	recordTool(d, tool, string(domain.ErrCodeInvalidParameter))
	respond.Error(w, http.StatusBadRequest, "", respond.ErrorDetail{
		Code:    string(domain.ErrCodeInvalidParameter),
		Message: message,
	})
}

func recordTool(d deps.Deps, tool, outcome string) {
	if d.Metrics != nil {
		d.Metrics.ToolCall(tool, outcome)
	}
}
