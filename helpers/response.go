package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RalfNorthman/form-and-plot/errors"
)

// ErrorResponse sends a JSON error response to the client and aborts the
// remaining handler chain.
func ErrorResponse(ctx *gin.Context, appErr *errors.AppError) {
	production := gin.Mode() == gin.ReleaseMode

	// - Should not happen.
	if appErr == nil {
		zap.L().Warn("ErrorResponse called with nil error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
		ctx.Abort()
		return
	}

	logFields := []zap.Field{
		zap.Int("statusCode", appErr.Code),
		zap.String("clientMessage", appErr.Message),
	}

	if appErr.Err != nil {
		logFields = append(logFields, zap.Error(appErr.Err))
	}

	// - Attempt to marshal details for logging if it's complex
	if appErr.Details != nil {
		detailBytes, _ := json.Marshal(appErr.Details)
		logFields = append(logFields, zap.String("details", string(detailBytes)))
	}

	zap.L().Debug("Application error occurred", logFields...)

	ctx.JSON(appErr.Code, appErr.ToJSONResponse(production))
	ctx.Abort()
}

// SuccessResponse sends a JSON success response with the given status
// code and optional headers. A nil body becomes 204 No Content.
func SuccessResponse(ctx *gin.Context, status int, data interface{}, headers map[string]string) {
	for key, value := range headers {
		ctx.Header(key, value)
	}

	if data == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	if status == 0 {
		status = http.StatusOK
	}

	ctx.JSON(status, data)
}
