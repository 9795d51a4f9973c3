// Package dig models a minimal discrete-time logistic environment:
// containers that hold a volume of some material, and grabbers that
// move volume from one container to another over time.
//
// The point of such a primitive is to reason about control and safety
// properties of environments abstractly, decoupled from any particular
// physical realization. Many different physical systems can simulate
// the same environment, so properties proved against the primitive
// carry over to all of them.
//
// # Internal vs External Environment
//
// This package only models the internal environment: the containers,
// the grabbers, and the transfer protocol between them. Everything
// about time progression policy, agent decisions, and terminal states
// is the external environment and lives in the driving program, which
// repeatedly calls Grab and Advance:
//
//	env := dig.NewEnvironment()
//	a := env.AddContainer(10)
//	b := env.AddContainer(0)
//	ab := env.AddGrabber(dig.Grabber{Capacity: 2, Duration: 1, Source: a, Target: b})
//
//	for env.Volume(b) < 10 {
//		env.Grab(ab) // dig.ErrBusy while a transfer is in flight
//		env.Advance(0.5)
//	}
//
// # Transfer semantics
//
// Activating a grabber immediately withdraws up to its capacity from
// the source container; if the source holds less, the grabber carries
// whatever was available. The withdrawn volume is in transit, and
// unavailable to every container, until the grabber's duration has
// elapsed, at which point the whole cargo is deposited into the target
// in a single step. A grabber carries at most one cargo at a time.
//
// # Determinism
//
// The environment is a pure, synchronous state machine: no clocks, no
// randomness, no goroutines. Identical call sequences produce
// bit-for-bit identical state, which makes runs reproducible and
// replayable (see Snapshot and Restore).
package dig
