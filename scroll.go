package view

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Environment variables overriding the backend's scroll sensitivity,
// parsed as "x,y" float pairs. Malformed or absent values fall back to the
// backend's (or built-in) defaults.
const (
	pixelScrollEnv = "PIXEL_SCROLL_FACTOR"
	lineScrollEnv  = "LINE_SCROLL_FACTOR"
)

var (
	defaultPixelScroll = gg.Pt(1, 1)
	defaultLineScroll  = gg.Pt(10, -10)
)

// resolveScrollFactors computes the session's scroll sensitivity once at
// start: backend values first, then environment overrides.
func resolveScrollFactors(b Backend) (pixel, line gg.Point) {
	pixel, line = defaultPixelScroll, defaultLineScroll
	if b != nil {
		pixel, line = b.ScrollFactors()
	}
	pixel = envPoint(pixelScrollEnv, pixel)
	line = envPoint(lineScrollEnv, line)
	return pixel, line
}

func envPoint(name string, fallback gg.Point) gg.Point {
	val, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	p, err := parsePoint(val)
	if err != nil {
		Logger().Warn("ignoring malformed scroll factor", "var", name, "value", val, "err", err)
		return fallback
	}
	return p
}

func parsePoint(s string) (gg.Point, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return gg.Point{}, fmt.Errorf("expected \"x,y\", got %q", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return gg.Point{}, err
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return gg.Point{}, err
	}
	return gg.Pt(px, py), nil
}
