package cycles

import (
	"testing"

	"github.com/keystream/nfsr-cycles/internal/nfsr/register"
)

func mustRegister(t *testing.T, n int, fb register.Feedback) *register.Register {
	t.Helper()
	r, err := register.New(n, fb)
	if err != nil {
		t.Fatalf("register.New(%d) failed: %v", n, err)
	}
	return r
}

func mustDecompose(t *testing.T, n int, fb register.Feedback) *Result {
	t.Helper()
	res, err := Decompose(mustRegister(t, n, fb))
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	return res
}

// checkPartition verifies that the emitted cycles are disjoint and that
// cyclic plus tail states account for the whole space exactly once.
func checkPartition(t *testing.T, res *Result) {
	t.Helper()
	seen := make(map[uint64]bool)
	for _, c := range res.Cycles {
		for _, s := range c {
			if s >= res.TotalStates {
				t.Errorf("state %d out of range [0, %d)", s, res.TotalStates)
			}
			if seen[s] {
				t.Errorf("state %d appears in more than one cycle", s)
			}
			seen[s] = true
		}
	}
	if uint64(len(seen)) != res.CyclicStates {
		t.Errorf("CyclicStates = %d, but cycles cover %d states", res.CyclicStates, len(seen))
	}
	if res.CyclicStates > res.TotalStates {
		t.Errorf("CyclicStates %d exceeds state space %d", res.CyclicStates, res.TotalStates)
	}
}

// checkClosure verifies that every emitted cycle is closed under the
// transition function.
func checkClosure(t *testing.T, res *Result, fb register.Feedback) {
	t.Helper()
	reg := mustRegister(t, res.Length, fb)
	for _, c := range res.Cycles {
		if len(c) < 1 {
			t.Fatal("empty cycle emitted")
		}
		for i, s := range c {
			next, err := reg.Next(s)
			if err != nil {
				t.Fatal(err)
			}
			if want := c[(i+1)%len(c)]; next != want {
				t.Errorf("cycle not closed: Next(%d) = %d, want %d", s, next, want)
			}
		}
	}
}

func TestDecompose(t *testing.T) {
	t.Run("NonlinearThreeBit", func(t *testing.T) {
		// x[0] XOR (x[1] AND x[2]) at n=3: 000 is a fixed point; the
		// remaining seven states split into a 3-cycle {001,010,100}
		// and a 4-cycle {011,111,110,101}.
		fb := func(b []uint8) uint8 { return b[0] ^ (b[1] & b[2]) }
		res := mustDecompose(t, 3, fb)

		if res.CycleCount() != 3 {
			t.Fatalf("CycleCount = %d, want 3", res.CycleCount())
		}
		if len(res.ByLength[1]) != 1 || len(res.ByLength[3]) != 1 || len(res.ByLength[4]) != 1 {
			t.Fatalf("length groups = %v, want one cycle each of lengths 1, 3, 4", res.Lengths())
		}
		if res.ByLength[1][0][0] != 0 {
			t.Errorf("fixed point = %d, want 0", res.ByLength[1][0][0])
		}
		if res.CyclicStates != 8 {
			t.Errorf("CyclicStates = %d, want 8 (bijective rule)", res.CyclicStates)
		}

		// The walk starts at 0, then discovers the 3-cycle from
		// state 1 before anything else: 1 -> 4 -> 2 -> 1.
		three := res.ByLength[3][0]
		want := Cycle{1, 4, 2}
		for i := range want {
			if three[i] != want[i] {
				t.Fatalf("3-cycle = %v, want %v (discovery order)", three, want)
			}
		}

		checkPartition(t, res)
		checkClosure(t, res, fb)
	})

	t.Run("FibonacciTwoBitBijective", func(t *testing.T) {
		// x[0] XOR x[1] at n=2 is a bijection: every state is cyclic.
		fb := func(b []uint8) uint8 { return b[0] ^ b[1] }
		res := mustDecompose(t, 2, fb)

		if res.CyclicStates != 4 {
			t.Errorf("CyclicStates = %d, want 4 (no tails)", res.CyclicStates)
		}
		if res.TailStates() != 0 {
			t.Errorf("TailStates = %d, want 0", res.TailStates())
		}
		checkPartition(t, res)
		checkClosure(t, res, fb)
	})

	t.Run("NotGateSingleBit", func(t *testing.T) {
		// NOT x[0] at n=1: one cycle (0, 1).
		fb := func(b []uint8) uint8 { return 1 - b[0] }
		res := mustDecompose(t, 1, fb)

		if res.CycleCount() != 1 {
			t.Fatalf("CycleCount = %d, want 1", res.CycleCount())
		}
		c := res.Cycles[0]
		if c.Length() != 2 || c[0] != 0 || c[1] != 1 {
			t.Errorf("cycle = %v, want (0, 1)", c)
		}
		checkPartition(t, res)
		checkClosure(t, res, fb)
	})

	t.Run("ConstantZeroCollapses", func(t *testing.T) {
		// A constant-0 rule drains every state into the fixed point 0;
		// all other states are tails.
		fb := func(b []uint8) uint8 { return 0 }
		res := mustDecompose(t, 4, fb)

		if res.CycleCount() != 1 {
			t.Fatalf("CycleCount = %d, want 1", res.CycleCount())
		}
		if res.CyclicStates != 1 {
			t.Errorf("CyclicStates = %d, want 1", res.CyclicStates)
		}
		if res.TailStates() != 15 {
			t.Errorf("TailStates = %d, want 15", res.TailStates())
		}
		checkPartition(t, res)
	})

	t.Run("MajorityHasTails", func(t *testing.T) {
		// The majority rule is far from bijective; tails must appear
		// and never be reported as cycles.
		fb := func(b []uint8) uint8 {
			ones := 0
			for _, x := range b {
				ones += int(x)
			}
			if ones > len(b)/2 {
				return 1
			}
			return 0
		}
		res := mustDecompose(t, 5, fb)

		if res.TailStates() == 0 {
			t.Error("majority rule at n=5 should produce tail states")
		}
		checkPartition(t, res)
		checkClosure(t, res, fb)
	})

	t.Run("NoFalseCycles", func(t *testing.T) {
		// No state outside the emitted cycles may return to itself.
		fb := func(b []uint8) uint8 { return b[0] & b[len(b)-1] }
		res := mustDecompose(t, 4, fb)
		reg := mustRegister(t, 4, fb)

		cyclic := make(map[uint64]bool)
		for _, c := range res.Cycles {
			for _, s := range c {
				cyclic[s] = true
			}
		}
		for s := uint64(0); s < res.TotalStates; s++ {
			if cyclic[s] {
				continue
			}
			cur := s
			for i := uint64(0); i <= res.TotalStates; i++ {
				next, err := reg.Next(cur)
				if err != nil {
					t.Fatal(err)
				}
				cur = next
				if cur == s {
					t.Fatalf("tail state %d returns to itself", s)
				}
			}
		}
	})

	t.Run("OneEvaluationPerState", func(t *testing.T) {
		calls := 0
		fb := func(b []uint8) uint8 {
			calls++
			return b[0]
		}
		res := mustDecompose(t, 6, fb)
		if uint64(calls) != res.TotalStates {
			t.Errorf("feedback evaluated %d times, want exactly %d", calls, res.TotalStates)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		fb := func(b []uint8) uint8 { return b[0] ^ (b[1] & b[2]) ^ b[3] }
		a := mustDecompose(t, 4, fb)
		b := mustDecompose(t, 4, fb)

		if a.CycleCount() != b.CycleCount() {
			t.Fatalf("cycle counts differ: %d vs %d", a.CycleCount(), b.CycleCount())
		}
		for i := range a.Cycles {
			if len(a.Cycles[i]) != len(b.Cycles[i]) {
				t.Fatalf("cycle %d lengths differ", i)
			}
			for j := range a.Cycles[i] {
				if a.Cycles[i][j] != b.Cycles[i][j] {
					t.Fatalf("cycle %d differs at position %d", i, j)
				}
			}
		}
	})

	t.Run("DiscoveryOrderAscendingStart", func(t *testing.T) {
		// Cycles are discovered from ascending starting states, so the
		// first-encountered state of each successive cycle ascends too.
		fb := func(b []uint8) uint8 { return b[0] }
		res := mustDecompose(t, 5, fb)

		prev := uint64(0)
		for i, c := range res.Cycles {
			min := c[0]
			for _, s := range c {
				if s < min {
					min = s
				}
			}
			if i > 0 && min <= prev {
				t.Errorf("cycle %d smallest state %d not above previous %d", i, min, prev)
			}
			prev = min
		}
	})

	t.Run("LengthAboveLimit", func(t *testing.T) {
		reg := mustRegister(t, MaxLength+1, func(b []uint8) uint8 { return 0 })
		if _, err := Decompose(reg); err == nil {
			t.Error("Decompose should reject lengths above MaxLength")
		}
	})
}

func TestCycle(t *testing.T) {
	t.Run("Canonical", func(t *testing.T) {
		c := Cycle{5, 1, 3}
		canon := c.Canonical()
		want := Cycle{1, 3, 5}
		for i := range want {
			if canon[i] != want[i] {
				t.Fatalf("Canonical() = %v, want %v", canon, want)
			}
		}
		// Original is untouched.
		if c[0] != 5 {
			t.Error("Canonical() mutated the receiver")
		}
	})

	t.Run("Contains", func(t *testing.T) {
		c := Cycle{2, 7, 4}
		if !c.Contains(7) {
			t.Error("Contains(7) = false, want true")
		}
		if c.Contains(3) {
			t.Error("Contains(3) = true, want false")
		}
	})
}
