package dig

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ContainerConfig declares one container of an environment definition.
type ContainerConfig struct {
	Name   string  `json:"name" yaml:"name"`
	Volume float64 `json:"volume" yaml:"volume"`
}

// GrabberConfig declares one grabber of an environment definition.
// Source and Target reference containers by name.
type GrabberConfig struct {
	Name     string  `json:"name" yaml:"name"`
	Source   string  `json:"source" yaml:"source"`
	Target   string  `json:"target" yaml:"target"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// EnvironmentConfig is the declarative form of an environment.
// Containers and grabbers are ordered lists so that handle assignment
// is deterministic: the handle of an entry equals its index in its
// list.
type EnvironmentConfig struct {
	Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
	Containers []ContainerConfig `json:"containers" yaml:"containers"`
	Grabbers   []GrabberConfig   `json:"grabbers,omitempty" yaml:"grabbers,omitempty"`
}

// Validate validates the entire environment configuration:
// - At least one container
// - Non-empty, unique container and grabber names
// - Grabber source/target reference declared containers
// - No negative volumes, capacities, or durations
func (c *EnvironmentConfig) Validate() error {
	if len(c.Containers) == 0 {
		return errors.New("at least one container is required")
	}

	containers := make(map[string]bool, len(c.Containers))
	for i, cc := range c.Containers {
		if cc.Name == "" {
			return fmt.Errorf("container %d has no name", i)
		}
		if containers[cc.Name] {
			return fmt.Errorf("duplicate container %q", cc.Name)
		}
		containers[cc.Name] = true
		if cc.Volume < 0 {
			return fmt.Errorf("container %q has negative volume %v", cc.Name, cc.Volume)
		}
	}

	grabbers := make(map[string]bool, len(c.Grabbers))
	for i, gc := range c.Grabbers {
		if gc.Name == "" {
			return fmt.Errorf("grabber %d has no name", i)
		}
		if grabbers[gc.Name] {
			return fmt.Errorf("duplicate grabber %q", gc.Name)
		}
		grabbers[gc.Name] = true
		if !containers[gc.Source] {
			return fmt.Errorf("grabber %q has unknown source container %q", gc.Name, gc.Source)
		}
		if !containers[gc.Target] {
			return fmt.Errorf("grabber %q has unknown target container %q", gc.Name, gc.Target)
		}
		if gc.Capacity < 0 {
			return fmt.Errorf("grabber %q has negative capacity %v", gc.Name, gc.Capacity)
		}
		if gc.Duration < 0 {
			return fmt.Errorf("grabber %q has negative duration %v", gc.Name, gc.Duration)
		}
	}

	return nil
}

// Build validates the configuration and constructs the environment.
func (c *EnvironmentConfig) Build() (*Environment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b := NewEnvironmentBuilder()
	for _, cc := range c.Containers {
		b.Container(cc.Name, cc.Volume)
	}
	for _, gc := range c.Grabbers {
		b.Grabber(gc.Name, gc.Source, gc.Target, gc.Capacity, gc.Duration)
	}
	return b.Build()
}

// LoadEnvironment decodes a YAML environment definition and builds it.
// The library never touches the filesystem; callers read the bytes
// from wherever the definition lives.
func LoadEnvironment(data []byte) (*Environment, error) {
	var cfg EnvironmentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return cfg.Build()
}
