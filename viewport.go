package dragkit

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WidthProvider reports the current viewport width in pixels. Half of it
// is the normalization denominator that converts raw drag translation
// into the bounded percentage used by the rotation and scale formulas.
//
// A width of zero (or less) means "no normalization": rotation and scale
// contributions are zero rather than a division fault.
type WidthProvider interface {
	ViewportWidth() float64
}

// WindowWidth reads the Ebitengine window width. It is the default
// provider when Options.Viewport is nil.
type WindowWidth struct{}

// ViewportWidth returns the current window width in device-independent pixels.
func (WindowWidth) ViewportWidth() float64 {
	w, _ := ebiten.WindowSize()
	return float64(w)
}

// FixedWidth is a constant-width provider for tests and headless hosts.
type FixedWidth float64

// ViewportWidth returns the fixed width.
func (w FixedWidth) ViewportWidth() float64 {
	return float64(w)
}

// halfViewportWidth returns half the provider's width, or 0 when the
// provider is nil or reports a non-positive width.
func halfViewportWidth(p WidthProvider) float64 {
	if p == nil {
		return 0
	}
	w := p.ViewportWidth()
	if w <= 0 {
		return 0
	}
	return w / 2
}
