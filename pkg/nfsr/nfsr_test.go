package nfsr

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("NamedFunction", func(t *testing.T) {
		calc, err := New(DefaultConfig().WithRegisterLength(5).WithFeedbackName("grain"))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if calc.Length() != 5 {
			t.Errorf("Length() = %d, want 5", calc.Length())
		}
		if calc.FeedbackDescription() != "grain" {
			t.Errorf("FeedbackDescription() = %q, want grain", calc.FeedbackDescription())
		}
	})

	t.Run("Expression", func(t *testing.T) {
		calc, err := New(DefaultConfig().WithRegisterLength(3).WithFeedbackExpr("x[0] ^ x[1] & x[2]"))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		// State 0b011 has x = (1,1,0): feedback 1 ^ (1&0) = 1, so the
		// successor is 0b001 | 1<<2 = 0b101.
		next, err := calc.Successor(0b011)
		if err != nil {
			t.Fatal(err)
		}
		if next != 0b101 {
			t.Errorf("Successor(011) = %03b, want 101", next)
		}
	})

	t.Run("NilConfig", func(t *testing.T) {
		if _, err := New(nil); err == nil {
			t.Error("New(nil) should fail")
		}
	})

	t.Run("UnknownFunction", func(t *testing.T) {
		_, err := New(DefaultConfig().WithRegisterLength(4).WithFeedbackName("chacha"))
		if !errors.Is(err, &Error{Code: ErrUnknownFunction}) {
			t.Errorf("want ErrUnknownFunction, got %v", err)
		}
	})

	t.Run("BadExpression", func(t *testing.T) {
		_, err := New(DefaultConfig().WithRegisterLength(4).WithFeedbackExpr("x[0] ^"))
		if !errors.Is(err, &Error{Code: ErrExpression}) {
			t.Errorf("want ErrExpression, got %v", err)
		}
	})

	t.Run("ExpressionBeyondRegister", func(t *testing.T) {
		_, err := New(DefaultConfig().WithRegisterLength(3).WithFeedbackExpr("x[5]"))
		if !errors.Is(err, &Error{Code: ErrExpression}) {
			t.Errorf("want ErrExpression, got %v", err)
		}
	})

	t.Run("FunctionTooShort", func(t *testing.T) {
		_, err := New(DefaultConfig().WithRegisterLength(3).WithFeedbackName("grain"))
		if !errors.Is(err, &Error{Code: ErrInvalidLength}) {
			t.Errorf("want ErrInvalidLength, got %v", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		if cfg.MaxRegisterLength != DefaultMaxRegisterLength {
			t.Errorf("MaxRegisterLength = %d, want %d", cfg.MaxRegisterLength, DefaultMaxRegisterLength)
		}
	})

	t.Run("ZeroLength", func(t *testing.T) {
		err := DefaultConfig().WithFeedbackName("parity").Validate()
		if !errors.Is(err, &Error{Code: ErrInvalidLength}) {
			t.Errorf("want ErrInvalidLength, got %v", err)
		}
	})

	t.Run("NegativeLength", func(t *testing.T) {
		err := DefaultConfig().WithRegisterLength(-2).WithFeedbackName("parity").Validate()
		if !errors.Is(err, &Error{Code: ErrInvalidLength}) {
			t.Errorf("want ErrInvalidLength, got %v", err)
		}
	})

	t.Run("AboveCeiling", func(t *testing.T) {
		err := DefaultConfig().WithRegisterLength(25).WithFeedbackName("parity").Validate()
		if !errors.Is(err, &Error{Code: ErrInvalidLength}) {
			t.Errorf("want ErrInvalidLength, got %v", err)
		}
		// Raising the ceiling admits the same length.
		cfg := DefaultConfig().WithRegisterLength(25).WithFeedbackName("parity").WithMaxRegisterLength(26)
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate with raised ceiling failed: %v", err)
		}
	})

	t.Run("NoFeedbackSource", func(t *testing.T) {
		err := DefaultConfig().WithRegisterLength(4).Validate()
		if !errors.Is(err, &Error{Code: ErrInvalidConfig}) {
			t.Errorf("want ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("BothFeedbackSources", func(t *testing.T) {
		err := DefaultConfig().
			WithRegisterLength(4).
			WithFeedbackName("parity").
			WithFeedbackExpr("x[0]").
			Validate()
		if !errors.Is(err, &Error{Code: ErrInvalidConfig}) {
			t.Errorf("want ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		cfg := DefaultConfig().WithRegisterLength(4).WithFeedbackName("parity")
		clone := cfg.Clone()
		clone.RegisterLength = 9
		if cfg.RegisterLength != 4 {
			t.Error("Clone() shares state with the original")
		}
	})
}

func TestFindCycles(t *testing.T) {
	t.Run("FibonacciBijective", func(t *testing.T) {
		calc, err := New(DefaultConfig().WithRegisterLength(2).WithFeedbackName("fibonacci"))
		if err != nil {
			t.Fatal(err)
		}
		set, err := calc.FindCycles()
		if err != nil {
			t.Fatal(err)
		}
		if set.CyclicStates != set.TotalStates {
			t.Errorf("bijective rule left tails: %d cyclic of %d", set.CyclicStates, set.TotalStates)
		}
	})

	t.Run("OpaqueCallable", func(t *testing.T) {
		calc, err := NewWithFeedback(1, "not", func(bits []uint8) uint8 { return 1 - bits[0] })
		if err != nil {
			t.Fatal(err)
		}
		set, err := calc.FindCycles()
		if err != nil {
			t.Fatal(err)
		}
		if set.CycleCount() != 1 || set.Cycles[0].Length() != 2 {
			t.Errorf("NOT at n=1 should yield one 2-cycle, got %v", set.Cycles)
		}
	})

	t.Run("NilFeedbackRejected", func(t *testing.T) {
		if _, err := NewWithFeedback(3, "nil", nil); err == nil {
			t.Error("NewWithFeedback(nil) should fail")
		}
	})
}

func TestFunctionNames(t *testing.T) {
	names := FunctionNames()
	if len(names) == 0 {
		t.Fatal("FunctionNames() is empty")
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}
	for _, want := range []string{"grain", "trivium", "parity", "fibonacci"} {
		if !seen[want] {
			t.Errorf("FunctionNames() missing %q", want)
		}
	}
}
