package dig

import "errors"

// ContainerID is a stable handle to a container within one Environment.
// Handles are assigned sequentially from 0 and stay valid for the
// lifetime of the environment; containers are never removed.
type ContainerID int

// GrabberID is a stable handle to a grabber within one Environment.
type GrabberID int

// ErrBusy is returned by Grab when the grabber already has a transfer
// in flight. This is an expected outcome in normal operation, not a
// fault; callers check for it and retry after advancing time.
var ErrBusy = errors.New("grabber busy")

// Container stores a volume of some material.
type Container struct {
	volume float64
}

// NewContainer creates a container holding the given volume.
func NewContainer(volume float64) Container {
	return Container{volume: volume}
}

// Put adds volume to the container.
func (c *Container) Put(v float64) {
	c.volume += v
}

// Take removes up to v from the container and returns the amount
// actually removed. If the container holds v or less, it is emptied
// and the whole remaining volume is returned, so the container never
// goes below zero.
func (c *Container) Take(v float64) float64 {
	if c.volume <= v {
		v = c.volume
		c.volume = 0
		return v
	}
	c.volume -= v
	return v
}

// Volume reports the current volume.
func (c *Container) Volume() float64 {
	return c.volume
}

// Grabber is the immutable configuration of a transfer agent: how much
// it can carry, how long a transfer takes, and which containers it
// moves between. Source and Target may name the same container.
type Grabber struct {
	// Capacity is the maximum volume moved per transfer.
	Capacity float64
	// Duration is the time a transfer takes to complete.
	Duration float64
	Source   ContainerID
	Target   ContainerID
}

// GrabberState is the mutable per-grabber record. A grabber is idle
// exactly when Remaining is 0, and an idle grabber carries nothing.
type GrabberState struct {
	// Remaining is the time left until the current transfer completes.
	Remaining float64 `json:"remaining" yaml:"remaining"`
	// Carrying is the in-transit volume, unavailable to any container.
	Carrying float64 `json:"carrying" yaml:"carrying"`
}

// Environment owns every container, grabber, and grabber state, and
// implements the transfer protocol between them. All collections are
// flat slices indexed by handle; passing a handle that was not issued
// by this environment panics with an index out of range, the same as
// any other out-of-contract slice access.
//
// The zero-value Environment is ready to use, but NewEnvironment is
// the conventional entry point.
type Environment struct {
	containers []Container
	grabbers   []Grabber
	states     []GrabberState
}

// NewEnvironment creates a new empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// AddContainer appends a container with the given initial volume and
// returns its handle. The volume is not validated here; see
// EnvironmentConfig and EnvironmentBuilder for the validating layers.
func (e *Environment) AddContainer(volume float64) ContainerID {
	id := ContainerID(len(e.containers))
	e.containers = append(e.containers, Container{volume: volume})
	return id
}

// AddGrabber appends a grabber together with its idle state and
// returns its handle. Source and target handles are not range-checked
// here; a bad handle surfaces as a panic when the grabber is first
// used.
func (e *Environment) AddGrabber(g Grabber) GrabberID {
	id := GrabberID(len(e.grabbers))
	e.grabbers = append(e.grabbers, g)
	e.states = append(e.states, GrabberState{})
	return id
}

// Grab activates a grabber, starting one transfer cycle: up to
// Capacity is withdrawn from the source container immediately, and the
// withdrawn cargo is deposited into the target once Duration has
// elapsed via Advance. If the source holds less than Capacity, the
// grabber carries whatever was available.
//
// Returns ErrBusy, without mutating anything, if the grabber already
// has a transfer in flight.
func (e *Environment) Grab(id GrabberID) error {
	if e.states[id].Remaining != 0 {
		return ErrBusy
	}
	g := e.grabbers[id]
	v := e.containers[g.Source].Take(g.Capacity)
	e.states[id] = GrabberState{Remaining: g.Duration, Carrying: v}
	return nil
}

// Advance moves time forward by dt for every grabber independently.
// A grabber whose remaining time reaches or crosses zero deposits its
// whole cargo into its target container in this call; there are no
// partial deposits. Time overshooting a grabber's remaining duration
// is discarded, not credited toward a following transfer. Idle
// grabbers are unaffected.
func (e *Environment) Advance(dt float64) {
	for i := range e.states {
		s := &e.states[i]
		s.Remaining -= dt
		if s.Remaining <= 0 {
			e.containers[e.grabbers[i].Target].Put(s.Carrying)
			s.Carrying = 0
			s.Remaining = 0
		}
	}
}

// Volume reports the current volume of a container.
func (e *Environment) Volume(id ContainerID) float64 {
	return e.containers[id].volume
}

// GrabberState returns a copy of a grabber's mutable state.
func (e *Environment) GrabberState(id GrabberID) GrabberState {
	return e.states[id]
}

// GrabberAt returns a grabber's configuration.
func (e *Environment) GrabberAt(id GrabberID) Grabber {
	return e.grabbers[id]
}

// Idle reports whether a grabber is ready to be activated.
func (e *Environment) Idle(id GrabberID) bool {
	return e.states[id].Remaining == 0
}

// NumContainers reports how many containers the environment owns.
func (e *Environment) NumContainers() int {
	return len(e.containers)
}

// NumGrabbers reports how many grabbers the environment owns.
func (e *Environment) NumGrabbers() int {
	return len(e.grabbers)
}
