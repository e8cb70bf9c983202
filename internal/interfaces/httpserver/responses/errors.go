// Package responses carries the shared HTTP response envelopes and the error
// translation from platform errors to status codes.
package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"titan-server/internal/infrastructure/logger"
	"titan-server/internal/utils/platformerrors"
)

// ErrorResponse is the error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError maps an error onto an HTTP status and writes the envelope.
// Internal errors keep their detail out of the response body.
func HandleError(reqCtx *gin.Context, err error, message string) {
	log := logger.GetLogger()
	platformerrors.LogError(log, err, message)

	var platformErr *platformerrors.PlatformError
	if !errors.As(err, &platformErr) {
		reqCtx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{
				Message:   message,
				Type:      string(platformerrors.ErrorTypeInternal),
				RequestID: requestIDFromGin(reqCtx),
			},
		})
		return
	}

	status := platformerrors.ErrorTypeToHTTPStatus(platformErr.Type)
	body := ErrorDetail{
		Code:      platformErr.Code,
		Message:   platformErr.Message,
		Type:      string(platformErr.Type),
		RequestID: platformErr.RequestID,
	}
	if body.RequestID == "" {
		body.RequestID = requestIDFromGin(reqCtx)
	}
	if status >= http.StatusInternalServerError {
		body.Message = message
	}

	reqCtx.JSON(status, ErrorResponse{Error: body})
}

// HandleNewError writes an error envelope for a failure originating in the
// route layer itself, such as a body that does not bind.
func HandleNewError(reqCtx *gin.Context, errType platformerrors.ErrorType, message string, code string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, errType, message, nil, code)
	HandleError(reqCtx, err, message)
}

func requestIDFromGin(reqCtx *gin.Context) string {
	return reqCtx.GetString("request_id")
}
