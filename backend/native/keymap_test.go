package native

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	view "github.com/s3bk/pathfinder-view"
)

func TestKeyFromEbiten(t *testing.T) {
	tests := []struct {
		name string
		in   ebiten.Key
		want view.Key
		ok   bool
	}{
		{"letter", ebiten.KeyA, view.KeyA, true},
		{"digit", ebiten.KeyDigit0, view.Key0, true},
		{"page down", ebiten.KeyPageDown, view.KeyPageDown, true},
		{"equal", ebiten.KeyEqual, view.KeyEquals, true},
		{"numpad add", ebiten.KeyNumpadAdd, view.KeyNumpadAdd, true},
		{"arrow", ebiten.KeyArrowLeft, view.KeyLeft, true},
		{"modifier dropped", ebiten.KeyShiftLeft, view.KeyUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyFromEbiten(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("keyFromEbiten(%v) = %v,%v, want %v,%v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
