package form

import (
	"unicode/utf8"

	"github.com/RalfNorthman/form-and-plot/validation"
)

// Field thresholds. Error bounds mark values that cannot be recorded at
// all; warning bounds mark values that can, but rarely are.
const (
	AbsoluteZeroCelsius = -273.15

	// Lowest and highest surface air temperatures ever recorded are
	// around -89 °C and 57 °C; readings beyond that are worth a second look.
	TemperatureUnusualMin = -90.0
	TemperatureUnusualMax = 57.0

	HumidityMin = 0.0
	HumidityMax = 100.0

	// Sea-level pressure extremes ever observed span roughly 870-1085 hPa.
	PressureMin = 870.0
	PressureMax = 1085.0

	PressureUnusualMin = 950.0
	PressureUnusualMax = 1050.0

	CommentMaxLength = 200
)

// Field-level validators. Error validators are built with Required, so a
// blank or unparseable entry blocks submission; warning validators are
// built with Optionally, so absence is fine and a present value merely
// gets the advisory checks.
var (
	temperatureErrors = validation.Required(
		KindNotANumber,
		validation.MinBound(KindBelowAbsoluteZero, AbsoluteZeroCelsius),
	)

	temperatureWarnings = validation.Optionally(validation.Concat(
		validation.MinBound(KindUnusuallyLow, TemperatureUnusualMin),
		validation.MaxBound(KindUnusuallyHigh, TemperatureUnusualMax),
	))

	humidityErrors = validation.Required(
		KindNotANumber,
		validation.Concat(
			validation.MinBound(KindOutOfBound, HumidityMin),
			validation.MaxBound(KindOutOfBound, HumidityMax),
		),
	)

	humidityWarnings = validation.Succeed[validation.Optional[float64], Kind]()

	pressureErrors = validation.Required(
		KindNotANumber,
		validation.Concat(
			validation.MinBound(KindOutOfBound, PressureMin),
			validation.MaxBound(KindOutOfBound, PressureMax),
		),
	)

	pressureWarnings = validation.Optionally(validation.Concat(
		validation.MinBound(KindUnusuallyLow, PressureUnusualMin),
		validation.MaxBound(KindUnusuallyHigh, PressureUnusualMax),
	))

	commentErrors = validation.New(func(comment string) []Kind {
		if utf8.RuneCountInString(comment) > CommentMaxLength {
			return []Kind{KindTooLong}
		}
		return nil
	})
)

// Whole-form validators: every field validator lifted over the parsed
// snapshot and concatenated in form display order.
var (
	errorValidator = validation.Concat(
		validation.LiftMap(tagged(FieldTemperature), getTemperature, temperatureErrors),
		validation.LiftMap(tagged(FieldHumidity), getHumidity, humidityErrors),
		validation.LiftMap(tagged(FieldPressure), getPressure, pressureErrors),
		validation.LiftMap(tagged(FieldComment), getComment, commentErrors),
	)

	warningValidator = validation.Concat(
		validation.LiftMap(tagged(FieldTemperature), getTemperature, temperatureWarnings),
		validation.LiftMap(tagged(FieldHumidity), getHumidity, humidityWarnings),
		validation.LiftMap(tagged(FieldPressure), getPressure, pressureWarnings),
	)
)

func getTemperature(p parsedMeasurement) validation.Optional[float64] { return p.temperature }

func getHumidity(p parsedMeasurement) validation.Optional[float64] { return p.humidity }

func getPressure(p parsedMeasurement) validation.Optional[float64] { return p.pressure }

func getComment(p parsedMeasurement) string { return p.comment }

// Result is the outcome of validating a measurement: every error and
// every warning found, in form display order.
type Result struct {
	Errors   []Violation `json:"errors,omitempty"`
	Warnings []Violation `json:"warnings,omitempty"`
}

// Check validates a raw measurement against both severity levels. All
// checks always run; the result carries the complete set of problems, not
// just the first one.
func Check(m Measurement) Result {
	parsed := parseMeasurement(m)
	return Result{
		Errors:   errorValidator.Run(parsed),
		Warnings: warningValidator.Run(parsed),
	}
}

// HasErrors reports whether any blocking violation was found.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether any advisory violation was found.
func (r Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// CanSubmit decides the submit policy: errors always block, warnings
// block unless the user has explicitly acknowledged them.
func (r Result) CanSubmit(ignoreWarnings bool) bool {
	if r.HasErrors() {
		return false
	}
	if r.HasWarnings() && !ignoreWarnings {
		return false
	}
	return true
}
