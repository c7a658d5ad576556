// Command viewdemo opens a small multi-page vector document in a window.
// Page Up / Page Down flip pages, the mouse wheel pans, ctrl+wheel zooms,
// shift+drag pans, ctrl+0 resets the zoom.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/gg"

	view "github.com/s3bk/pathfinder-view"
	"github.com/s3bk/pathfinder-view/backend/native"
)

func main() {
	var (
		pages       = flag.Int("pages", 5, "number of pages")
		transparent = flag.Bool("transparent", false, "transparent window background")
	)
	flag.Parse()

	doc := &document{pages: *pages}
	opts := []view.Option{
		view.WithPan(),
		view.WithZoom(),
	}
	if *transparent {
		opts = append(opts, view.WithTransparent())
	}
	if err := native.Show(doc, opts...); err != nil {
		log.Fatalf("viewdemo: %v", err)
	}
}

// document produces one scene per page.
type document struct {
	pages int
}

func (d *document) Title() string { return "viewdemo" }

func (d *document) Scene(ctx *view.ViewState) view.Scene {
	ctx.SetNumPages(d.pages)
	return &page{nr: ctx.PageNr(), total: d.pages}
}

// A4 page in millimeters; the default scale maps one scene unit to one
// millimeter on a 96dpi display.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 15.0
)

type page struct {
	nr    int
	total int
}

func (p *page) ViewBox() gg.Rect {
	return gg.NewRect(gg.Pt(0, 0), gg.Pt(pageWidth, pageHeight))
}

func (p *page) Draw(dc *gg.Context) error {
	// Page sheet with a frame.
	dc.SetColor(gg.White)
	dc.DrawRectangle(0, 0, pageWidth, pageHeight)
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.SetRGB(0.25, 0.25, 0.3)
	dc.SetLineWidth(0.6)
	dc.DrawRectangle(margin, margin, pageWidth-2*margin, pageHeight-2*margin)
	if err := dc.Stroke(); err != nil {
		return err
	}

	if err := p.drawRosette(dc); err != nil {
		return err
	}
	return p.drawPageMarks(dc)
}

// drawRosette fills the page with a petal pattern whose count and hue
// depend on the page number, so page flips are visible at a glance.
func (p *page) drawRosette(dc *gg.Context) error {
	cx, cy := pageWidth/2, pageHeight/2
	petals := 5 + 2*p.nr
	r := pageWidth/2 - 2*margin
	for i := 0; i < petals; i++ {
		t := float64(i) / float64(petals)
		a := t * 2 * math.Pi
		dc.SetRGBA(0.2+0.7*t, 0.3, 0.9-0.6*t, 0.75)
		dc.MoveTo(cx, cy)
		dc.QuadraticTo(
			cx+r*math.Cos(a-0.35), cy+r*math.Sin(a-0.35),
			cx+r*math.Cos(a), cy+r*math.Sin(a),
		)
		dc.QuadraticTo(
			cx+r*math.Cos(a+0.35), cy+r*math.Sin(a+0.35),
			cx, cy,
		)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	dc.SetRGB(0.1, 0.1, 0.15)
	dc.DrawCircle(cx, cy, 3)
	return dc.Fill()
}

// drawPageMarks renders the page position as tick marks along the bottom
// margin, filled up to the current page.
func (p *page) drawPageMarks(dc *gg.Context) error {
	y := pageHeight - margin/2
	step := (pageWidth - 2*margin) / float64(p.total)
	for i := 0; i < p.total; i++ {
		x := margin + (float64(i)+0.5)*step
		if i == p.nr {
			dc.SetRGB(0.85, 0.3, 0.2)
			dc.DrawCircle(x, y, 2.2)
		} else {
			dc.SetRGB(0.6, 0.6, 0.65)
			dc.DrawCircle(x, y, 1.4)
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
