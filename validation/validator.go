package validation

// Validator is an immutable check over a value of type I, producing zero
// or more violations of type E. A validator is a pure function of its
// input: running it twice on equal inputs yields equal violation lists,
// and it never panics for any well-typed input. Composition (Concat,
// LiftMap, Required, ...) always produces a new validator value, never
// mutates an existing one, so a single instance may be shared and run
// concurrently without synchronization.
type Validator[I, E any] struct {
	run func(I) []E
}

// New wraps a plain evaluation function into a Validator. The function
// must be pure and must return violations rather than panic.
// Note: This is the escape hatch for checks the bound/presence primitives
// below don't cover (e.g. string length checks).
func New[I, E any](run func(I) []E) Validator[I, E] {
	return Validator[I, E]{run: run}
}

// Run evaluates the validator against input and returns every violation
// found, in declaration order of the composed sub-validators. An empty
// list means the input is valid. The zero Validator is valid for all
// inputs.
func (v Validator[I, E]) Run(input I) []E {
	if v.run == nil {
		return nil
	}
	return v.run(input)
}

// IsValid reports whether input produces no violations. It is defined
// strictly in terms of Run so the two can never disagree.
func IsValid[I, E any](v Validator[I, E], input I) bool {
	return len(v.Run(input)) == 0
}

// MinBound reports the given violation when the input is strictly below
// threshold. The boundary is inclusive: an input exactly equal to
// threshold is not a violation.
func MinBound[E any](report E, threshold float64) Validator[float64, E] {
	return New(func(value float64) []E {
		if value < threshold {
			return []E{report}
		}
		return nil
	})
}

// MaxBound reports the given violation when the input is strictly above
// threshold. The boundary is inclusive, mirroring MinBound.
func MaxBound[E any](report E, threshold float64) Validator[float64, E] {
	return New(func(value float64) []E {
		if value > threshold {
			return []E{report}
		}
		return nil
	})
}

// Required lifts a validator over T into a validator over Optional[T]
// where absence is itself a violation. An absent input yields exactly
// [missing] and the inner validator is never run; a present input yields
// exactly the inner validator's violations.
func Required[T, E any](missing E, inner Validator[T, E]) Validator[Optional[T], E] {
	return New(func(input Optional[T]) []E {
		value, ok := input.Get()
		if !ok {
			return []E{missing}
		}
		return inner.Run(value)
	})
}

// Optionally lifts a validator over T into a validator over Optional[T]
// where absence is acceptable: an absent input yields no violations, a
// present input yields the inner validator's violations. This is the
// shape of advisory (warning) checks on fields the user may leave blank.
func Optionally[T, E any](inner Validator[T, E]) Validator[Optional[T], E] {
	return New(func(input Optional[T]) []E {
		value, ok := input.Get()
		if !ok {
			return nil
		}
		return inner.Run(value)
	})
}

// Succeed is the identity validator: it accepts every input. It is the
// neutral element of Concat and the natural stand-in when a field has no
// checks of a given severity.
func Succeed[I, E any]() Validator[I, E] {
	return Validator[I, E]{}
}

// Concat combines validators over the same input into one whose
// violation list is the ordered concatenation of each part's violations
// on that same input. Every part is always evaluated; nothing is
// deduplicated or interleaved. Concat of nothing is Succeed.
func Concat[I, E any](validators ...Validator[I, E]) Validator[I, E] {
	return New(func(input I) []E {
		var violations []E
		for _, v := range validators {
			violations = append(violations, v.Run(input)...)
		}
		return violations
	})
}

// LiftMap promotes a validator over a field F into a validator over a
// record R. The accessor extracts the field from the record, the inner
// validator is run on it, and every resulting violation is passed
// through wrap to re-tag it into the record-level violation type,
// preserving order. This is how per-field checks compose into
// whole-record checks without the field validator knowing about the
// record.
func LiftMap[R, F, ES, EF any](
	wrap func(EF) ES,
	accessor func(R) F,
	inner Validator[F, EF],
) Validator[R, ES] {
	return New(func(record R) []ES {
		raw := inner.Run(accessor(record))
		if len(raw) == 0 {
			return nil
		}
		violations := make([]ES, len(raw))
		for i, violation := range raw {
			violations[i] = wrap(violation)
		}
		return violations
	})
}
