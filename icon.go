package view

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Icon is a window icon as raw RGBA bytes, row-major, 4 bytes per pixel.
type Icon struct {
	Data   []byte
	Width  int
	Height int
}

// Valid reports whether the pixel data matches the declared size.
func (ic Icon) Valid() bool {
	return ic.Width > 0 && ic.Height > 0 && len(ic.Data) == ic.Width*ic.Height*4
}

// Image converts the icon to an image for backends that take image.Image.
func (ic Icon) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ic.Width, ic.Height))
	copy(img.Pix, ic.Data)
	return img
}

// iconSizes is the set of sizes window systems commonly ask for.
var iconSizes = []int{16, 32, 48}

// IconFromImage rescales src to the standard icon sizes. The first entry is
// what Backend.SetIcon expects; backends that support size sets (taskbar
// vs. title bar) can use all of them.
func IconFromImage(src image.Image) []Icon {
	icons := make([]Icon, 0, len(iconSizes))
	for _, size := range iconSizes {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
		icons = append(icons, Icon{Data: dst.Pix, Width: size, Height: size})
	}
	return icons
}
