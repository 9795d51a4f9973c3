package dig

import "fmt"

// Snapshot is a value capture of all mutable environment state:
// container volumes and grabber states, indexed by handle. Snapshots
// serialize to YAML or JSON, so an external driver can checkpoint a
// run and replay it later; since the environment is deterministic, a
// restored snapshot reproduces the original run exactly.
type Snapshot struct {
	Containers []float64      `json:"containers" yaml:"containers"`
	Grabbers   []GrabberState `json:"grabbers" yaml:"grabbers"`
}

// Snapshot captures the environment's current mutable state.
func (e *Environment) Snapshot() Snapshot {
	s := Snapshot{
		Containers: make([]float64, len(e.containers)),
		Grabbers:   make([]GrabberState, len(e.states)),
	}
	for i, c := range e.containers {
		s.Containers[i] = c.volume
	}
	copy(s.Grabbers, e.states)
	return s
}

// Restore overwrites the environment's mutable state from a snapshot.
// The snapshot must come from an environment with the same shape: the
// same number of containers and grabbers.
func (e *Environment) Restore(s Snapshot) error {
	if len(s.Containers) != len(e.containers) {
		return fmt.Errorf("snapshot has %d containers, environment has %d", len(s.Containers), len(e.containers))
	}
	if len(s.Grabbers) != len(e.states) {
		return fmt.Errorf("snapshot has %d grabbers, environment has %d", len(s.Grabbers), len(e.states))
	}
	for i, v := range s.Containers {
		e.containers[i].volume = v
	}
	copy(e.states, s.Grabbers)
	return nil
}
