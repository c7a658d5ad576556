package view

import (
	"image"
	"image/color"
	"testing"
)

func TestIconValid(t *testing.T) {
	tests := []struct {
		name string
		icon Icon
		want bool
	}{
		{"matching data", Icon{Data: make([]byte, 16*16*4), Width: 16, Height: 16}, true},
		{"short data", Icon{Data: make([]byte, 10), Width: 16, Height: 16}, false},
		{"zero size", Icon{}, false},
		{"negative width", Icon{Data: []byte{}, Width: -1, Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.icon.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIconFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	icons := IconFromImage(src)
	if len(icons) != 3 {
		t.Fatalf("%d icons, want 3", len(icons))
	}
	for i, size := range []int{16, 32, 48} {
		ic := icons[i]
		if ic.Width != size || ic.Height != size {
			t.Errorf("icons[%d] is %dx%d, want %dx%d", i, ic.Width, ic.Height, size, size)
		}
		if !ic.Valid() {
			t.Errorf("icons[%d] invalid", i)
		}
	}

	// A solid white source stays solid white after rescaling.
	img := icons[0].Image()
	if got := img.RGBAAt(8, 8); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("rescaled pixel = %+v, want solid white", got)
	}
}
