package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/RalfNorthman/form-and-plot/validation"
)

// Measurement is the raw state of the entry form: exactly what the user
// typed, before any parsing. Numeric fields stay strings here so that an
// unparseable entry can be reported as a violation instead of being
// silently coerced.
type Measurement struct {
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	Pressure    string `json:"pressure"`
	Comment     string `json:"comment"`
}

// ParseNumber converts raw field text into an optional float. A comma is
// accepted as the decimal separator (common in locales the form targets),
// surrounding whitespace is ignored, and anything that does not parse to
// a finite number is absent.
func ParseNumber(raw string) validation.Optional[float64] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return validation.None[float64]()
	}

	normalized := strings.ReplaceAll(trimmed, ",", ".")

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return validation.None[float64]()
	}

	// - ParseFloat accepts "NaN" and "Inf" spellings; neither is a measurement.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return validation.None[float64]()
	}

	return validation.Some(value)
}

// parsedMeasurement is the snapshot the form validators run against. It
// is derived once per Check call so that both the error and the warning
// validator see the same values.
type parsedMeasurement struct {
	temperature validation.Optional[float64]
	humidity    validation.Optional[float64]
	pressure    validation.Optional[float64]
	comment     string
}

func parseMeasurement(m Measurement) parsedMeasurement {
	return parsedMeasurement{
		temperature: ParseNumber(m.Temperature),
		humidity:    ParseNumber(m.Humidity),
		pressure:    ParseNumber(m.Pressure),
		comment:     m.Comment,
	}
}

// Values holds the parsed numeric readings of a measurement that passed
// validation, ready for storage or plotting.
type Values struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	Comment     string  `json:"comment"`
}

// ParsedValues extracts the numeric readings of a measurement. It must
// only be called after Check reported no errors; absent fields fall back
// to zero.
func ParsedValues(m Measurement) Values {
	p := parseMeasurement(m)
	return Values{
		Temperature: p.temperature.OrElse(0),
		Humidity:    p.humidity.OrElse(0),
		Pressure:    p.pressure.OrElse(0),
		Comment:     strings.TrimSpace(p.comment),
	}
}
