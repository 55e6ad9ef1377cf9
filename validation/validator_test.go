package validation

import (
	"reflect"
	"testing"
)

// kind is a minimal violation type for the tests below.
type kind string

const (
	tooLow  kind = "too_low"
	tooHigh kind = "too_high"
	missing kind = "missing"
)

func TestMinBound(t *testing.T) {
	v := MinBound(tooLow, -273.15)

	t.Run("Value below threshold is a violation", func(t *testing.T) {
		got := v.Run(-300)
		if !reflect.DeepEqual(got, []kind{tooLow}) {
			t.Errorf("Expected [%v], got %v", tooLow, got)
		}
	})

	t.Run("Value exactly at threshold is not a violation", func(t *testing.T) {
		if got := v.Run(-273.15); len(got) != 0 {
			t.Errorf("Expected no violations at the boundary, got %v", got)
		}
	})

	t.Run("Value just below threshold is a violation", func(t *testing.T) {
		if got := v.Run(-273.150001); len(got) != 1 {
			t.Errorf("Expected one violation just below the boundary, got %v", got)
		}
	})

	t.Run("Value above threshold is not a violation", func(t *testing.T) {
		if got := v.Run(20); len(got) != 0 {
			t.Errorf("Expected no violations, got %v", got)
		}
	})
}

func TestMaxBound(t *testing.T) {
	v := MaxBound(tooHigh, 100)

	t.Run("Value above threshold is a violation", func(t *testing.T) {
		got := v.Run(150)
		if !reflect.DeepEqual(got, []kind{tooHigh}) {
			t.Errorf("Expected [%v], got %v", tooHigh, got)
		}
	})

	t.Run("Value exactly at threshold is not a violation", func(t *testing.T) {
		if got := v.Run(100); len(got) != 0 {
			t.Errorf("Expected no violations at the boundary, got %v", got)
		}
	})

	t.Run("Value below threshold is not a violation", func(t *testing.T) {
		if got := v.Run(50); len(got) != 0 {
			t.Errorf("Expected no violations, got %v", got)
		}
	})
}

func TestRequired(t *testing.T) {
	inner := MinBound(tooLow, 0)
	v := Required(missing, inner)

	t.Run("Absent value yields exactly the missing violation", func(t *testing.T) {
		got := v.Run(None[float64]())
		if !reflect.DeepEqual(got, []kind{missing}) {
			t.Errorf("Expected [%v], got %v", missing, got)
		}
	})

	t.Run("Absent value never reaches the inner validator", func(t *testing.T) {
		// The inner validator would flag -5, but absence must shadow it.
		got := Required(missing, MinBound(tooLow, 1000)).Run(None[float64]())
		if !reflect.DeepEqual(got, []kind{missing}) {
			t.Errorf("Expected only [%v], got %v", missing, got)
		}
	})

	t.Run("Present value is checked by the inner validator", func(t *testing.T) {
		got := v.Run(Some(-5.0))
		if !reflect.DeepEqual(got, []kind{tooLow}) {
			t.Errorf("Expected [%v], got %v", tooLow, got)
		}
	})

	t.Run("Present valid value yields no violations", func(t *testing.T) {
		if got := v.Run(Some(5.0)); len(got) != 0 {
			t.Errorf("Expected no violations, got %v", got)
		}
	})
}

func TestOptionally(t *testing.T) {
	v := Optionally(MinBound(tooLow, 0))

	t.Run("Absence is not a violation", func(t *testing.T) {
		if got := v.Run(None[float64]()); len(got) != 0 {
			t.Errorf("Expected no violations for an absent value, got %v", got)
		}
	})

	t.Run("Present value is checked by the inner validator", func(t *testing.T) {
		got := v.Run(Some(-1.0))
		if !reflect.DeepEqual(got, []kind{tooLow}) {
			t.Errorf("Expected [%v], got %v", tooLow, got)
		}
	})
}

func TestSucceed(t *testing.T) {
	v := Succeed[Optional[float64], kind]()

	t.Run("Absent value yields no violations", func(t *testing.T) {
		if got := v.Run(None[float64]()); len(got) != 0 {
			t.Errorf("Expected no violations, got %v", got)
		}
	})

	t.Run("Any present value yields no violations", func(t *testing.T) {
		for _, value := range []float64{-1e9, 0, 42, 1e9} {
			if got := v.Run(Some(value)); len(got) != 0 {
				t.Errorf("Expected no violations for %v, got %v", value, got)
			}
		}
	})
}

func TestConcat(t *testing.T) {
	low := MinBound(tooLow, 0)
	high := MaxBound(tooHigh, 100)

	t.Run("Violations are concatenated in declaration order", func(t *testing.T) {
		// A single input cannot trip both bounds, so use two validators
		// that both fire on the same value.
		v := Concat(MinBound(tooLow, 10), MinBound(missing, 20))
		got := v.Run(5)
		if !reflect.DeepEqual(got, []kind{tooLow, missing}) {
			t.Errorf("Expected ordered [%v %v], got %v", tooLow, missing, got)
		}
	})

	t.Run("Equals concatenation of part results", func(t *testing.T) {
		v := Concat(low, high)
		for _, input := range []float64{-5, 0, 50, 100, 150} {
			want := append(append([]kind{}, low.Run(input)...), high.Run(input)...)
			got := v.Run(input)
			if len(got) != len(want) {
				t.Errorf("Input %v: expected %v, got %v", input, want, got)
				continue
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("Input %v: expected %v, got %v", input, want, got)
				}
			}
		}
	})

	t.Run("Duplicates are preserved", func(t *testing.T) {
		v := Concat(low, low)
		if got := v.Run(-1); len(got) != 2 {
			t.Errorf("Expected duplicated violations, got %v", got)
		}
	})

	t.Run("Empty concat accepts everything", func(t *testing.T) {
		v := Concat[float64, kind]()
		if got := v.Run(-1e18); len(got) != 0 {
			t.Errorf("Expected no violations from empty concat, got %v", got)
		}
	})

	t.Run("Succeed is an identity element", func(t *testing.T) {
		v := Concat(Succeed[float64, kind](), low, Succeed[float64, kind]())
		for _, input := range []float64{-5, 5} {
			if !reflect.DeepEqual(v.Run(input), low.Run(input)) {
				t.Errorf("Input %v: Succeed changed the result", input)
			}
		}
	})
}

func TestLiftMap(t *testing.T) {
	type record struct {
		temperature Optional[float64]
	}

	type tagged struct {
		field string
		kind  kind
	}

	wrap := func(k kind) tagged { return tagged{field: "temperature", kind: k} }
	accessor := func(r record) Optional[float64] { return r.temperature }
	inner := Required(missing, MinBound(tooLow, -273.15))

	v := LiftMap(wrap, accessor, inner)

	t.Run("Violations are re-tagged through wrap", func(t *testing.T) {
		got := v.Run(record{temperature: Some(-300.0)})
		want := []tagged{{field: "temperature", kind: tooLow}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("Result equals mapping the inner result", func(t *testing.T) {
		for _, r := range []record{
			{temperature: None[float64]()},
			{temperature: Some(-300.0)},
			{temperature: Some(20.0)},
		} {
			raw := inner.Run(accessor(r))
			want := make([]tagged, 0, len(raw))
			for _, k := range raw {
				want = append(want, wrap(k))
			}
			got := v.Run(r)
			if len(got) != len(want) {
				t.Errorf("Record %+v: expected %v, got %v", r, want, got)
				continue
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("Record %+v: expected %v, got %v", r, want, got)
				}
			}
		}
	})

	t.Run("Valid record yields no violations", func(t *testing.T) {
		if got := v.Run(record{temperature: Some(20.0)}); len(got) != 0 {
			t.Errorf("Expected no violations, got %v", got)
		}
	})
}

func TestIsValid(t *testing.T) {
	v := Required(missing, Concat(MinBound(tooLow, 0), MaxBound(tooHigh, 100)))

	t.Run("Agrees with Run for every input", func(t *testing.T) {
		inputs := []Optional[float64]{
			None[float64](),
			Some(-5.0),
			Some(0.0),
			Some(50.0),
			Some(100.0),
			Some(150.0),
		}
		for _, input := range inputs {
			want := len(v.Run(input)) == 0
			if got := IsValid(v, input); got != want {
				t.Errorf("Input %+v: IsValid=%v but Run reported %v violations", input, got, len(v.Run(input)))
			}
		}
	})
}

func TestPurity(t *testing.T) {
	v := Required(missing, Concat(MinBound(tooLow, 0), MaxBound(tooHigh, 100)))

	t.Run("Repeated runs on equal input yield equal results", func(t *testing.T) {
		inputs := []Optional[float64]{None[float64](), Some(-5.0), Some(50.0), Some(150.0)}
		for _, input := range inputs {
			first := v.Run(input)
			second := v.Run(input)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("Input %+v: first run %v differs from second run %v", input, first, second)
			}
		}
	})
}

func TestZeroValidator(t *testing.T) {
	var v Validator[float64, kind]

	if got := v.Run(123); got != nil {
		t.Errorf("Expected nil violations from zero validator, got %v", got)
	}
	if !IsValid(v, 123) {
		t.Error("Expected zero validator to report valid")
	}
}
