package dig_test

import (
	"strings"
	"testing"

	. "github.com/advancedresearch/dig"
)

func TestBuilderPipeline(t *testing.T) {
	b := NewEnvironmentBuilder()
	b.Container("a", 1).
		Container("b", 0).
		Container("c", 0).
		Grabber("ab", "a", "b", 1, 1).
		Grabber("bc", "b", "c", 1, 1)

	env, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	if env.NumContainers() != 3 || env.NumGrabbers() != 2 {
		t.Fatalf("expected 3 containers and 2 grabbers, got %d and %d",
			env.NumContainers(), env.NumGrabbers())
	}

	a := b.ContainerID("a")
	c := b.ContainerID("c")
	ab := b.GrabberID("ab")
	bc := b.GrabberID("bc")

	if err := env.Grab(ab); err != nil {
		t.Fatal(err)
	}
	env.Advance(1)
	if err := env.Grab(bc); err != nil {
		t.Fatal(err)
	}
	env.Advance(1)

	if env.Volume(a) != 0 {
		t.Errorf("expected empty head, got %v", env.Volume(a))
	}
	if env.Volume(c) != 1 {
		t.Errorf("expected 1 at tail, got %v", env.Volume(c))
	}
}

func TestBuilderHandlesFollowDeclarationOrder(t *testing.T) {
	b := NewEnvironmentBuilder()
	b.Container("x", 0).Container("y", 0).Grabber("xy", "x", "y", 1, 1)

	if id := b.ContainerID("x"); id != 0 {
		t.Errorf("expected handle 0 for x, got %d", id)
	}
	if id := b.ContainerID("y"); id != 1 {
		t.Errorf("expected handle 1 for y, got %d", id)
	}
	if id := b.GrabberID("xy"); id != 0 {
		t.Errorf("expected handle 0 for xy, got %d", id)
	}
	if id := b.ContainerID("missing"); id != -1 {
		t.Errorf("expected -1 for undeclared name, got %d", id)
	}
	if id := b.GrabberID("missing"); id != -1 {
		t.Errorf("expected -1 for undeclared name, got %d", id)
	}
}

func TestBuilderForwardReference(t *testing.T) {
	// Grabbers may reference containers declared after them.
	b := NewEnvironmentBuilder()
	b.Grabber("ab", "a", "b", 1, 1).Container("a", 5).Container("b", 0)

	env, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	g := env.GrabberAt(b.GrabberID("ab"))
	if g.Source != b.ContainerID("a") || g.Target != b.ContainerID("b") {
		t.Errorf("forward references not resolved: %+v", g)
	}
}

func TestBuilderRejectsUnknownContainer(t *testing.T) {
	b := NewEnvironmentBuilder()
	b.Container("a", 1).Grabber("ab", "a", "nowhere", 1, 1)

	_, err := b.Build()
	if err == nil {
		t.Fatal("expected error for unknown target container")
	}
	if !strings.Contains(err.Error(), "nowhere") {
		t.Errorf("error should name the unknown container, got %q", err)
	}
}

func TestBuilderRejectsDuplicateNames(t *testing.T) {
	b := NewEnvironmentBuilder()
	b.Container("a", 1).Container("a", 2)

	if _, err := b.Build(); err == nil {
		t.Error("expected error for duplicate container name")
	}

	b = NewEnvironmentBuilder()
	b.Container("a", 1).Container("b", 0).
		Grabber("ab", "a", "b", 1, 1).
		Grabber("ab", "b", "a", 1, 1)

	if _, err := b.Build(); err == nil {
		t.Error("expected error for duplicate grabber name")
	}
}

func TestBuilderRejectsNegativeInputs(t *testing.T) {
	b := NewEnvironmentBuilder()
	b.Container("a", -1)
	if _, err := b.Build(); err == nil {
		t.Error("expected error for negative volume")
	}

	b = NewEnvironmentBuilder()
	b.Container("a", 1).Container("b", 0).Grabber("ab", "a", "b", -1, 1)
	if _, err := b.Build(); err == nil {
		t.Error("expected error for negative capacity")
	}

	b = NewEnvironmentBuilder()
	b.Container("a", 1).Container("b", 0).Grabber("ab", "a", "b", 1, -1)
	if _, err := b.Build(); err == nil {
		t.Error("expected error for negative duration")
	}
}
