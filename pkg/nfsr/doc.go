// Package nfsr enumerates the state space of a fixed-length feedback shift
// register and partitions it into the disjoint cycles its transition
// function induces.
//
// A Nonlinear Feedback Shift Register (NFSR) of length n steps by shifting
// its bits one position toward the front and inserting a feedback bit,
// computed by a boolean function of the current bits, at the vacated end.
// Because the feedback function may be nonlinear, the transition function
// need not be a bijection: the 2^n states form a functional graph in which
// some states lie on cycles and the rest are transient tails feeding into
// them. The cycle structure determines the achievable periods of the
// register, which is what makes NFSRs interesting as stream cipher
// building blocks.
//
// # Quick Start
//
// Decomposing the state space of a named feedback function:
//
//	cfg := nfsr.DefaultConfig().
//		WithRegisterLength(5).
//		WithFeedbackName("grain")
//	calc, err := nfsr.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	set, err := calc.FindCycles()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d cycles, %d of %d states cyclic\n",
//		set.CycleCount(), set.CyclicStates, set.TotalStates)
//
// Using a custom feedback expression instead:
//
//	cfg := nfsr.DefaultConfig().
//		WithRegisterLength(4).
//		WithFeedbackExpr("x[0] ^ x[1] & x[3]")
//
// Or injecting an arbitrary feedback rule programmatically:
//
//	calc, err := nfsr.NewWithFeedback(3, "x0 NOR x2", func(bits []uint8) uint8 {
//		return (bits[0] | bits[2]) ^ 1
//	})
//
// # Capacity
//
// The decomposition materializes classification tables for all 2^n states,
// so memory grows exponentially with the register length. Config applies a
// ceiling (DefaultMaxRegisterLength unless overridden) before any state is
// enumerated; there is no streaming or partial-result mode.
package nfsr
