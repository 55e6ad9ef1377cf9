package form

// Form tracks the UI-facing state around a measurement being entered:
// the raw field values, the "ignore warnings" acknowledgement, and
// whether the user recently attempted to submit. The attempt flag drives
// violation highlighting: it is set on submit and cleared again by any
// field edit, so stale highlights disappear as soon as the user starts
// fixing the input.
type Form struct {
	Measurement    Measurement
	IgnoreWarnings bool

	attempted bool
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{}
}

// SetField updates a single field with newly typed text and clears the
// recent-attempt highlight. Unknown fields are ignored.
func (f *Form) SetField(field Field, raw string) {
	switch field {
	case FieldTemperature:
		f.Measurement.Temperature = raw
	case FieldHumidity:
		f.Measurement.Humidity = raw
	case FieldPressure:
		f.Measurement.Pressure = raw
	case FieldComment:
		f.Measurement.Comment = raw
	default:
		return
	}

	f.attempted = false
}

// SetIgnoreWarnings records the acknowledgement checkbox. Toggling it is
// not a field edit, so the recent-attempt highlight stays as it is.
func (f *Form) SetIgnoreWarnings(ignore bool) {
	f.IgnoreWarnings = ignore
}

// Submit validates the current measurement and marks the attempt. It
// returns the full validation result and whether the submission may
// proceed under the policy of Result.CanSubmit.
func (f *Form) Submit() (Result, bool) {
	f.attempted = true
	result := Check(f.Measurement)
	return result, result.CanSubmit(f.IgnoreWarnings)
}

// AttemptedSubmit reports whether violations should currently be
// highlighted, i.e. a submit happened and no field was edited since.
func (f *Form) AttemptedSubmit() bool {
	return f.attempted
}
