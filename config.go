package view

import (
	"time"

	"github.com/gogpu/gg"
)

// Config is the immutable per-session configuration. Build one with
// [NewConfig]; the zero value disables panning and zooming, shows window
// decorations, and renders on a white background.
type Config struct {
	// Pan enables dragging and scrolling the view over the content.
	Pan bool
	// Zoom enables changing the zoom factor from input events.
	Zoom bool

	// Borders controls native window decorations.
	Borders bool
	// Transparent requests an alpha-blended window surface.
	Transparent bool
	// Background is the clear color behind the scene.
	Background gg.RGBA

	// Quality selects the renderer's initial rasterization quality.
	Quality gg.RasterizerMode

	// ResourceLoader is an opaque handle passed through to the external
	// renderer at backend construction. The core never examines it.
	ResourceLoader any

	// UpdateInterval, when non-zero, re-arms a periodic wake independent
	// of input, for producers that animate.
	UpdateInterval time.Duration
}

// Option configures a session during creation.
type Option func(*Config)

// NewConfig builds a Config from options.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Borders:    true,
		Background: gg.White,
		Quality:    gg.RasterizerAuto,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPan enables panning.
func WithPan() Option {
	return func(c *Config) { c.Pan = true }
}

// WithZoom enables zooming.
func WithZoom() Option {
	return func(c *Config) { c.Zoom = true }
}

// WithoutBorders hides native window decorations.
func WithoutBorders() Option {
	return func(c *Config) { c.Borders = false }
}

// WithTransparent requests an alpha-blended window surface.
func WithTransparent() Option {
	return func(c *Config) { c.Transparent = true }
}

// WithBackground sets the clear color behind the scene.
func WithBackground(col gg.RGBA) Option {
	return func(c *Config) { c.Background = col }
}

// WithQuality sets the renderer's initial rasterization quality.
func WithQuality(mode gg.RasterizerMode) Option {
	return func(c *Config) { c.Quality = mode }
}

// WithResourceLoader injects an opaque resource-loader handle for the
// external renderer.
func WithResourceLoader(loader any) Option {
	return func(c *Config) { c.ResourceLoader = loader }
}

// WithUpdateInterval arms a periodic wake so producers can animate without
// input events.
func WithUpdateInterval(d time.Duration) Option {
	return func(c *Config) { c.UpdateInterval = d }
}
