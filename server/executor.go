package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RalfNorthman/form-and-plot/errors"
	"github.com/RalfNorthman/form-and-plot/helpers"
)

// RouteConfig carries per-route settings for the execution pipeline.
type RouteConfig struct {
	// SuccessStatus is the HTTP status for a successful response;
	// defaults to 200 OK.
	SuccessStatus int

	// ManualResponse indicates the handler writes the response itself
	// and the pipeline should not touch the output. Defaults to false.
	ManualResponse bool
}

// ExecuteRoute orchestrates the request lifecycle: input binding and
// struct validation, handler execution, output validation, and response
// writing. Handlers receive the validated input and the raw gin context
// (for request-scoped data such as the context deadline).
func ExecuteRoute[InputType any, OutputType any](
	ctx *gin.Context,
	config *RouteConfig,
	handlerFunc func(input *InputType, ctx *gin.Context) (*OutputType, *errors.AppError),
) {
	if config == nil {
		config = &RouteConfig{}
	}

	// - Stage 1: Bind and validate input
	input, appErr := InputData[InputType](ctx)
	if appErr != nil {
		zap.L().Debug("Error validating input data", zap.Error(appErr))
		helpers.ErrorResponse(ctx, appErr)
		return
	}

	// - Stage 2: Call the business logic handler
	output, handlerAppErr := handlerFunc(input, ctx)
	if handlerAppErr != nil {
		zap.L().Debug("Error returned from route handler", zap.Error(handlerAppErr), zap.Any("input", input))
		helpers.ErrorResponse(ctx, handlerAppErr)
		return
	}

	// - Processing stops here, handler is responsible for the response
	if config.ManualResponse {
		return
	}

	// - Stage 3: Validate output and send the response
	responseHeaders, responseBody, outputValErr := OutputData(output)
	if outputValErr != nil {
		zap.L().Debug("Error validating output data", zap.Error(outputValErr), zap.Any("raw_output_from_handler", output))
		helpers.ErrorResponse(ctx, outputValErr)
		return
	}

	status := config.SuccessStatus
	if status == 0 {
		status = http.StatusOK
	}

	helpers.SuccessResponse(ctx, status, responseBody, responseHeaders)
}
