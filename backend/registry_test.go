package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"

	view "github.com/s3bk/pathfinder-view"
)

// nullBackend satisfies view.Backend for registry tests.
type nullBackend struct {
	name string
}

func (nullBackend) Resize(gg.Point)                       {}
func (nullBackend) Present(view.Scene, gg.Matrix) error   { return nil }
func (nullBackend) ScaleFactor() float64                  { return 1 }
func (nullBackend) RequestRepaint()                       {}
func (nullBackend) SetIcon(view.Icon)                     {}
func (nullBackend) ScrollFactors() (pixel, line gg.Point) { return gg.Pt(1, 1), gg.Pt(10, -10) }
func (nullBackend) Close() error                          { return nil }

func factoryFor(name string) Factory {
	return func(view.Config) (view.Backend, error) {
		return nullBackend{name: name}, nil
	}
}

func TestRegisterAndGet(t *testing.T) {
	const name = "test-registry"
	Register(name, factoryFor(name))
	defer Unregister(name)

	if !IsRegistered(name) {
		t.Fatal("backend not registered")
	}
	b, err := Get(name, view.NewConfig())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if nb, ok := b.(nullBackend); !ok || nb.name != name {
		t.Errorf("Get returned %T %+v, want the registered factory's backend", b, b)
	}

	Unregister(name)
	if IsRegistered(name) {
		t.Error("backend still registered after Unregister")
	}
	if _, err := Get(name, view.NewConfig()); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Get after Unregister = %v, want ErrBackendNotAvailable", err)
	}
}

func TestAvailableListsRegistered(t *testing.T) {
	const name = "test-available"
	Register(name, factoryFor(name))
	defer Unregister(name)

	found := false
	for _, n := range Available() {
		if n == name {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, missing %q", Available(), name)
	}
}

func TestDefaultPrefersPriorityOrder(t *testing.T) {
	Register(Native, factoryFor(Native))
	Register(Headless, factoryFor(Headless))
	defer Unregister(Native)
	defer Unregister(Headless)

	b, err := Default(view.NewConfig())
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if nb, ok := b.(nullBackend); !ok || nb.name != Native {
		t.Errorf("Default picked %+v, want the native backend", b)
	}

	Unregister(Native)
	b, err = Default(view.NewConfig())
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if nb, ok := b.(nullBackend); !ok || nb.name != Headless {
		t.Errorf("Default picked %+v, want the headless fallback", b)
	}
}
