package form

import "fmt"

// Field identifies which input a violation belongs to.
type Field string

const (
	FieldTemperature Field = "temperature"
	FieldHumidity    Field = "humidity"
	FieldPressure    Field = "pressure"
	FieldComment     Field = "comment"
)

// Kind is the field-level violation tag produced by the validators. The
// same kind can appear under different fields; the pairing with a Field
// happens when the field validator is lifted into the form validator.
type Kind string

const (
	// KindNotANumber - the field is required but empty or unparseable.
	KindNotANumber Kind = "not_a_number"

	// KindBelowAbsoluteZero - a temperature below -273.15 °C.
	KindBelowAbsoluteZero Kind = "below_absolute_zero"

	// KindOutOfBound - a value outside the physically recordable range.
	KindOutOfBound Kind = "out_of_bound"

	// KindTooLong - free text exceeding the comment length limit.
	KindTooLong Kind = "too_long"

	// KindUnusuallyLow / KindUnusuallyHigh - advisory only: the value is
	// plausible but far outside what surface measurements normally show.
	KindUnusuallyLow  Kind = "unusually_low"
	KindUnusuallyHigh Kind = "unusually_high"
)

// Violation is a form-level violation: a field-level Kind tagged with the
// field it came from. Severity (error vs warning) is not encoded here; it
// is determined by which validator produced the violation.
type Violation struct {
	Field Field `json:"field"`
	Kind  Kind  `json:"kind"`
}

// tagged returns the injection function that wraps a field-level Kind
// into a form-level Violation for the given field.
func tagged(field Field) func(Kind) Violation {
	return func(kind Kind) Violation {
		return Violation{Field: field, Kind: kind}
	}
}

// Message renders the violation as user-facing text.
func (v Violation) Message() string {
	switch v.Kind {
	case KindNotANumber:
		return fmt.Sprintf("%s must be a number", v.Field)
	case KindBelowAbsoluteZero:
		return fmt.Sprintf("%s cannot be below absolute zero (%.2f °C)", v.Field, AbsoluteZeroCelsius)
	case KindOutOfBound:
		switch v.Field {
		case FieldHumidity:
			return fmt.Sprintf("humidity must be between %.0f and %.0f %%", HumidityMin, HumidityMax)
		case FieldPressure:
			return fmt.Sprintf("pressure must be between %.0f and %.0f hPa", PressureMin, PressureMax)
		}
		return fmt.Sprintf("%s is out of bounds", v.Field)
	case KindTooLong:
		return fmt.Sprintf("comment must be at most %d characters", CommentMaxLength)
	case KindUnusuallyLow:
		return fmt.Sprintf("%s is unusually low, please double-check the reading", v.Field)
	case KindUnusuallyHigh:
		return fmt.Sprintf("%s is unusually high, please double-check the reading", v.Field)
	}
	return fmt.Sprintf("%s is invalid", v.Field)
}
