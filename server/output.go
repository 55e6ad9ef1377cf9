package server

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/RalfNorthman/form-and-plot/errors"
)

// OutputData validates the handler's output struct and splits it into
// response headers and body. Header values come from string fields tagged
// with `header:"X-Header-Name"`; everything else is serialized as JSON by
// the response helper.
func OutputData[Output any](output *Output) (map[string]string, *Output, *errors.AppError) {
	headers := make(map[string]string)

	if output == nil {
		return headers, nil, errors.NewInternalServerError("Output data is nil, cannot validate", nil, "nil_output_validation")
	}

	if InputValidator == nil {
		zap.L().Debug("InputValidator is nil, initializing default validator")
		initDefaultValidator()
	}

	// - Validate the output structure
	if err := InputValidator.Struct(*output); err != nil {
		return headers, nil, errors.NewValidationFailed("Output data validation failed", err)
	}

	// - Extract headers from the struct fields tagged with `header:"..."`
	val := reflect.ValueOf(*output)
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if headerTag, ok := field.Tag.Lookup("header"); ok {
			if field.Type.Kind() != reflect.String {
				zap.L().Warn("Header field is not of type string, skipping", zap.String("field", field.Name))
				continue
			}
			headers[headerTag] = val.Field(i).String()
		}
	}

	return headers, output, nil
}
