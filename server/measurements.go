package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RalfNorthman/form-and-plot/errors"
	"github.com/RalfNorthman/form-and-plot/form"
	"github.com/RalfNorthman/form-and-plot/helpers"
	"github.com/RalfNorthman/form-and-plot/store"
)

// API bundles the measurement routes and their dependencies.
type API struct {
	Store *store.Store
}

// NewAPI builds the measurement API on top of the given store.
func NewAPI(s *store.Store) *API {
	return &API{Store: s}
}

// RegisterRoutes attaches the measurement endpoints under /api.
func (a *API) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	POST(api, "/measurements", &RouteConfig{SuccessStatus: http.StatusCreated}, a.SubmitMeasurement)
	GET(api, "/measurements", nil, a.ListMeasurements)
	GET(api, "/measurements/:id", nil, a.GetMeasurement)
}

// SubmitMeasurementInput is the raw form submission: field values exactly
// as typed, plus the warning acknowledgement. Numeric fields arrive as
// strings because parse failures are violations to report, not binding
// errors.
type SubmitMeasurementInput struct {
	Temperature    string `json:"temperature" validate:"max=64"`
	Humidity       string `json:"humidity" validate:"max=64"`
	Pressure       string `json:"pressure" validate:"max=64"`
	Comment        string `json:"comment" validate:"max=1000"`
	IgnoreWarnings bool   `json:"ignore_warnings"`
}

// SubmitMeasurementOutput echoes the accepted record. Warnings are
// included when the submission went through with acknowledged warnings.
type SubmitMeasurementOutput struct {
	ID          string              `json:"id" validate:"required"`
	Temperature float64             `json:"temperature"`
	Humidity    float64             `json:"humidity"`
	Pressure    float64             `json:"pressure"`
	Comment     string              `json:"comment,omitempty"`
	RecordedAt  time.Time           `json:"recorded_at"`
	Warnings    []map[string]string `json:"warnings,omitempty"`
	Location    string              `header:"Location" json:"-" validate:"required"`
}

// SubmitMeasurement validates a submitted measurement and stores it when
// the submit policy allows: errors always reject, warnings reject unless
// the client set ignore_warnings.
func (a *API) SubmitMeasurement(input *SubmitMeasurementInput, ctx *gin.Context) (*SubmitMeasurementOutput, *errors.AppError) {
	measurement := form.Measurement{
		Temperature: input.Temperature,
		Humidity:    input.Humidity,
		Pressure:    input.Pressure,
		Comment:     input.Comment,
	}

	result := form.Check(measurement)

	if result.HasErrors() {
		return nil, errors.NewValidationFailed("Measurement validation failed", nil, gin.H{
			"errors":   errors.FormatViolations(result.Errors),
			"warnings": errors.FormatViolations(result.Warnings),
		})
	}

	if !result.CanSubmit(input.IgnoreWarnings) {
		return nil, errors.NewValidationFailed(
			"Measurement has warnings; set ignore_warnings to submit anyway", nil, gin.H{
				"warnings": errors.FormatViolations(result.Warnings),
			})
	}

	id, err := helpers.NewMeasurementID()
	if err != nil {
		return nil, errors.NewInternalServerError("Failed to generate measurement id", err)
	}

	values := form.ParsedValues(measurement)
	record := store.Record{
		ID:          id,
		Temperature: values.Temperature,
		Humidity:    values.Humidity,
		Pressure:    values.Pressure,
		Comment:     values.Comment,
		RecordedAt:  time.Now().UTC(),
	}

	if err := a.Store.Save(ctx, record); err != nil {
		return nil, errors.NewInternalServerError("Failed to store measurement", err)
	}

	zap.L().Info("Measurement recorded",
		zap.String("id", record.ID),
		zap.Int("warnings", len(result.Warnings)),
	)

	return &SubmitMeasurementOutput{
		ID:          record.ID,
		Temperature: record.Temperature,
		Humidity:    record.Humidity,
		Pressure:    record.Pressure,
		Comment:     record.Comment,
		RecordedAt:  record.RecordedAt,
		Warnings:    errors.FormatViolations(result.Warnings),
		Location:    "/api/measurements/" + record.ID,
	}, nil
}

// GetMeasurementInput identifies a stored measurement by its id.
type GetMeasurementInput struct {
	ID string `uri:"id" validate:"required,alphanum,max=64"`
}

// GetMeasurementOutput is a single stored measurement.
type GetMeasurementOutput struct {
	ID          string    `json:"id" validate:"required"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Pressure    float64   `json:"pressure"`
	Comment     string    `json:"comment,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// GetMeasurement returns a stored measurement by id.
func (a *API) GetMeasurement(input *GetMeasurementInput, ctx *gin.Context) (*GetMeasurementOutput, *errors.AppError) {
	record, err := a.Store.Get(ctx, input.ID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.NewNotFound("No measurement with that id", err)
		}
		return nil, errors.NewInternalServerError("Failed to load measurement", err)
	}

	return &GetMeasurementOutput{
		ID:          record.ID,
		Temperature: record.Temperature,
		Humidity:    record.Humidity,
		Pressure:    record.Pressure,
		Comment:     record.Comment,
		RecordedAt:  record.RecordedAt,
	}, nil
}

// ListMeasurementsInput is empty; listing takes no parameters.
type ListMeasurementsInput struct{}

// ListMeasurementsOutput is the full set of stored measurements in
// insertion order.
type ListMeasurementsOutput struct {
	Measurements []GetMeasurementOutput `json:"measurements"`
	Count        int                    `json:"count"`
}

// ListMeasurements returns every measurement still present in the store.
func (a *API) ListMeasurements(input *ListMeasurementsInput, ctx *gin.Context) (*ListMeasurementsOutput, *errors.AppError) {
	records, err := a.Store.List(ctx)
	if err != nil {
		return nil, errors.NewInternalServerError("Failed to list measurements", err)
	}

	measurements := make([]GetMeasurementOutput, 0, len(records))
	for _, record := range records {
		measurements = append(measurements, GetMeasurementOutput{
			ID:          record.ID,
			Temperature: record.Temperature,
			Humidity:    record.Humidity,
			Pressure:    record.Pressure,
			Comment:     record.Comment,
			RecordedAt:  record.RecordedAt,
		})
	}

	return &ListMeasurementsOutput{
		Measurements: measurements,
		Count:        len(measurements),
	}, nil
}
