package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RalfNorthman/form-and-plot/errors"
)

// BindInput binds the request data from the gin context to the provided
// struct: URI parameters, headers, query parameters, and (for
// body-carrying methods) the JSON body.
func BindInput[T any](ctx *gin.Context) (*T, *errors.AppError) {
	var input T

	// - Bind URI parameters (e.g. /measurements/:id)
	if len(ctx.Params) > 0 {
		if err := ctx.ShouldBindUri(&input); err != nil {
			return nil, errors.NewValidationFailed("Failed to bind URI parameters", err)
		}
	}

	// - Bind Headers (Universal between all requests)
	if err := ctx.ShouldBindHeader(&input); err != nil {
		return nil, errors.NewValidationFailed("Failed to bind headers", err)
	}

	// - Bind Query Parameters (Universal between all requests)
	if err := ctx.ShouldBindQuery(&input); err != nil {
		return nil, errors.NewValidationFailed("Failed to bind query parameters", err)
	}

	// - Bind JSON Body (Only for POST/PUT/PATCH requests)
	if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodDelete {

		// - Check if the request has a body and Content-Type is set
		if ctx.Request.ContentLength > 0 || ctx.GetHeader("Content-Type") != "" {
			if err := ctx.ShouldBindJSON(&input); err != nil {
				if err != io.EOF || ctx.Request.ContentLength != 0 {
					return nil, errors.NewValidationFailed("Failed to bind JSON body", err)
				}
			}
		}
	}

	return &input, nil
}

// InputData binds and struct-validates the request data. Domain-level
// validation (the measurement rules) happens later, inside the handler;
// this layer only guards the transport shape.
func InputData[T any](ctx *gin.Context) (*T, *errors.AppError) {
	if InputValidator == nil {
		zap.L().Debug("InputValidator is nil, initializing default validator")
		initDefaultValidator()
	}

	input, err := BindInput[T](ctx)
	if err != nil {
		return nil, err
	}

	if err := InputValidator.Struct(*input); err != nil {
		return nil, errors.NewValidationFailed("Input validation failed", err)
	}

	return input, nil
}
