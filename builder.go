package dig

import (
	"errors"
	"fmt"
)

// EnvironmentBuilder provides a fluent API for constructing
// environments using string-based names instead of raw ID handles.
// Handles are assigned in declaration order, so the handle of the n-th
// declared container (or grabber) is always n. Validation is deferred
// to Build.
type EnvironmentBuilder struct {
	containerIDs map[string]ContainerID
	grabberIDs   map[string]GrabberID
	containers   []containerDef
	grabbers     []grabberDef
	errs         []error
}

type containerDef struct {
	name   string
	volume float64
}

type grabberDef struct {
	name     string
	source   string
	target   string
	capacity float64
	duration float64
}

// NewEnvironmentBuilder creates a new builder for constructing an
// environment.
func NewEnvironmentBuilder() *EnvironmentBuilder {
	return &EnvironmentBuilder{
		containerIDs: make(map[string]ContainerID),
		grabberIDs:   make(map[string]GrabberID),
	}
}

// Container declares a container with an initial volume. Declaring the
// same name twice is an error, reported by Build.
func (b *EnvironmentBuilder) Container(name string, volume float64) *EnvironmentBuilder {
	if _, exists := b.containerIDs[name]; exists {
		b.errs = append(b.errs, fmt.Errorf("duplicate container %q", name))
		return b
	}
	b.containerIDs[name] = ContainerID(len(b.containers))
	b.containers = append(b.containers, containerDef{name: name, volume: volume})
	return b
}

// Grabber declares a grabber moving volume from the source container
// to the target container. Both are referenced by name and may be
// declared later; unresolved references are reported by Build.
func (b *EnvironmentBuilder) Grabber(name, source, target string, capacity, duration float64) *EnvironmentBuilder {
	if _, exists := b.grabberIDs[name]; exists {
		b.errs = append(b.errs, fmt.Errorf("duplicate grabber %q", name))
		return b
	}
	b.grabberIDs[name] = GrabberID(len(b.grabbers))
	b.grabbers = append(b.grabbers, grabberDef{
		name:     name,
		source:   source,
		target:   target,
		capacity: capacity,
		duration: duration,
	})
	return b
}

// Build validates the declared configuration and constructs the
// environment. Returns an error on duplicate names, unknown container
// references, or negative volumes, capacities, and durations.
func (b *EnvironmentBuilder) Build() (*Environment, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	env := NewEnvironment()
	for _, c := range b.containers {
		env.AddContainer(c.volume)
	}
	for _, g := range b.grabbers {
		env.AddGrabber(Grabber{
			Capacity: g.capacity,
			Duration: g.duration,
			Source:   b.containerIDs[g.source],
			Target:   b.containerIDs[g.target],
		})
	}
	return env, nil
}

// ContainerID returns the assigned handle for a container name.
// Returns -1 if the name hasn't been declared.
func (b *EnvironmentBuilder) ContainerID(name string) ContainerID {
	if id, exists := b.containerIDs[name]; exists {
		return id
	}
	return -1
}

// GrabberID returns the assigned handle for a grabber name.
// Returns -1 if the name hasn't been declared.
func (b *EnvironmentBuilder) GrabberID(name string) GrabberID {
	if id, exists := b.grabberIDs[name]; exists {
		return id
	}
	return -1
}

// validate checks that the declared configuration is consistent.
func (b *EnvironmentBuilder) validate() error {
	if len(b.errs) > 0 {
		return errors.Join(b.errs...)
	}
	for _, c := range b.containers {
		if c.volume < 0 {
			return fmt.Errorf("container %q has negative volume %v", c.name, c.volume)
		}
	}
	for _, g := range b.grabbers {
		if _, exists := b.containerIDs[g.source]; !exists {
			return fmt.Errorf("grabber %q has unknown source container %q", g.name, g.source)
		}
		if _, exists := b.containerIDs[g.target]; !exists {
			return fmt.Errorf("grabber %q has unknown target container %q", g.name, g.target)
		}
		if g.capacity < 0 {
			return fmt.Errorf("grabber %q has negative capacity %v", g.name, g.capacity)
		}
		if g.duration < 0 {
			return fmt.Errorf("grabber %q has negative duration %v", g.name, g.duration)
		}
	}
	return nil
}
