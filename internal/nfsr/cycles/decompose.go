// Package cycles partitions the full state space of a feedback shift
// register into the disjoint cycles induced by its transition function.
//
// Because the transition function need not be a bijection, the state space
// forms a functional graph: every state has exactly one successor but any
// number of predecessors. Each connected component is a set of trees whose
// roots lie on a single cycle; the non-cycle states are transient "tails"
// that feed into it. Decompose reports the cycles and accounts for the
// tails without ever emitting them.
package cycles

import (
	"fmt"
	"time"

	"github.com/keystream/nfsr-cycles/internal/nfsr/register"
)

// MaxLength is the largest register length Decompose accepts. The
// classification tables are slices indexed by state, so 2^n values must be
// materialized in memory; 2^30 is already a multi-gigabyte run.
const MaxLength = 30

// Cycle is an ordered sequence of distinct states closed under the
// transition function: the successor of each state is the next entry, and
// the successor of the last is the first. The first entry is the first
// state of the cycle encountered during the discovering walk, not a
// canonical rotation.
type Cycle []uint64

// Length returns the number of states on the cycle.
func (c Cycle) Length() int {
	return len(c)
}

// Contains reports whether state lies on the cycle.
func (c Cycle) Contains(state uint64) bool {
	for _, s := range c {
		if s == state {
			return true
		}
	}
	return false
}

// Canonical returns the cycle rotated to start at its numerically smallest
// state. Emitted cycles start at the first state discovered; Canonical gives
// a rotation-independent form for comparing cycles across runs.
func (c Cycle) Canonical() Cycle {
	if len(c) == 0 {
		return c
	}
	min := 0
	for i, s := range c {
		if s < c[min] {
			min = i
		}
	}
	out := make(Cycle, 0, len(c))
	out = append(out, c[min:]...)
	out = append(out, c[:min]...)
	return out
}

// Result is the full cycle decomposition of a state space.
type Result struct {
	// Length is the register length n.
	Length int

	// Cycles holds every cycle in discovery order.
	Cycles []Cycle

	// ByLength groups the cycles by length, discovery order preserved
	// within each group.
	ByLength map[int][]Cycle

	// CyclicStates is the number of states lying on some cycle. The
	// remaining TotalStates - CyclicStates states are tails.
	CyclicStates uint64

	// TotalStates is 2^n, the size of the state space.
	TotalStates uint64

	// Elapsed is how long the decomposition took.
	Elapsed time.Duration
}

// CycleCount returns the number of distinct cycles.
func (r *Result) CycleCount() int {
	return len(r.Cycles)
}

// TailStates returns the number of transient states.
func (r *Result) TailStates() uint64 {
	return r.TotalStates - r.CyclicStates
}

// State classification for the decomposition walk.
const (
	unseen     uint8 = iota // not yet reached by any walk
	inProgress              // on the current trajectory, position recorded
	onCycle                 // resolved: lies on an emitted cycle
	onTail                  // resolved: transient, feeds into a cycle
)

// Decompose enumerates all 2^n states of the register and extracts every
// cycle of its transition function. The walk evaluates the successor of
// each state exactly once across the whole run, so total work is
// O(2^n * n) and a trajectory never re-simulates territory an earlier walk
// has classified.
func Decompose(reg *register.Register) (*Result, error) {
	n := reg.Length()
	if n > MaxLength {
		return nil, fmt.Errorf("register length %d exceeds decomposition limit %d", n, MaxLength)
	}
	total := reg.States()

	start := time.Now()

	status := make([]uint8, total)
	// Position of each in-progress state within the current trajectory.
	// Only meaningful while status[s] == inProgress.
	pos := make([]int32, total)

	res := &Result{
		Length:      n,
		ByLength:    make(map[int][]Cycle),
		TotalStates: total,
	}

	trajectory := make([]uint64, 0, 64)
	for s := uint64(0); s < total; s++ {
		if status[s] != unseen {
			continue
		}

		// Walk forward from s until we hit classified territory,
		// recording each new state's position on the trajectory.
		trajectory = trajectory[:0]
		cur := s
		for status[cur] == unseen {
			status[cur] = inProgress
			pos[cur] = int32(len(trajectory))
			trajectory = append(trajectory, cur)
			next, err := reg.Next(cur)
			if err != nil {
				return nil, fmt.Errorf("transition failed at state %d: %w", cur, err)
			}
			cur = next
		}

		switch status[cur] {
		case inProgress:
			// The walk closed on itself: everything from cur's
			// recorded position onward is a new cycle, the prefix
			// is its approach tail.
			j := pos[cur]
			cycle := make(Cycle, len(trajectory)-int(j))
			copy(cycle, trajectory[j:])
			for _, st := range cycle {
				status[st] = onCycle
			}
			for _, st := range trajectory[:j] {
				status[st] = onTail
			}
			res.Cycles = append(res.Cycles, cycle)
			res.ByLength[len(cycle)] = append(res.ByLength[len(cycle)], cycle)
			res.CyclicStates += uint64(len(cycle))
		default:
			// The walk ran into an already-resolved state: the whole
			// trajectory drains into a previously found cycle.
			for _, st := range trajectory {
				status[st] = onTail
			}
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
