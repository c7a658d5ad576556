package view

import (
	"testing"

	"github.com/gogpu/gg"
)

// degenerateScene declares an empty view box but can compute bounds.
type degenerateScene struct {
	bounds gg.Rect
}

func (s *degenerateScene) ViewBox() gg.Rect       { return gg.Rect{} }
func (s *degenerateScene) Draw(*gg.Context) error { return nil }
func (s *degenerateScene) Bounds() gg.Rect        { return s.bounds }

func TestSceneBounds(t *testing.T) {
	t.Run("declared view box wins", func(t *testing.T) {
		box := gg.NewRect(gg.Pt(10, 10), gg.Pt(50, 90))
		got := SceneBounds(&boxScene{box: box})
		if got != box {
			t.Errorf("SceneBounds = %+v, want declared %+v", got, box)
		}
	})

	t.Run("degenerate box falls back to computed bounds", func(t *testing.T) {
		bounds := gg.NewRect(gg.Pt(0, 0), gg.Pt(30, 40))
		got := SceneBounds(&degenerateScene{bounds: bounds})
		if got != bounds {
			t.Errorf("SceneBounds = %+v, want computed %+v", got, bounds)
		}
	})

	t.Run("degenerate box without fallback passes through", func(t *testing.T) {
		got := SceneBounds(&boxScene{})
		if got != (gg.Rect{}) {
			t.Errorf("SceneBounds = %+v, want zero rect", got)
		}
	})
}

func TestStaticProducer(t *testing.T) {
	s := &boxScene{box: gg.NewRect(gg.Pt(0, 0), gg.Pt(10, 10))}
	item := Static(s)
	vs := newTestState()
	if got := item.Scene(vs); got != Scene(s) {
		t.Error("static producer did not return the wrapped scene")
	}
	if got := item.Scene(vs); got != Scene(s) {
		t.Error("static producer not stable across fetches")
	}
}

// namedProducer supplies a window title.
type namedProducer struct {
	countingProducer
}

func (namedProducer) Title() string { return "atlas" }

func TestTitleOf(t *testing.T) {
	if got := TitleOf(&namedProducer{}); got != "atlas" {
		t.Errorf("TitleOf = %q, want producer title", got)
	}
	if got := TitleOf(&countingProducer{}); got != "pathfinder view" {
		t.Errorf("TitleOf = %q, want default", got)
	}
}
