// Package parallax keeps a hero section's card and image in sync with scroll
// position: the card slides left, the image slides right and both fade out as
// the section scrolls past the top of the viewport.
package parallax

import (
	"math"

	"github.com/automoto/folio/shared/scrollmath"
)

// Rect is a viewport-relative bounding rectangle
type Rect struct {
	Top    float64
	Left   float64
	Right  float64
	Width  float64
	Height float64
}

// Target is a renderable region the engine reads geometry from and writes
// transform/opacity to. The engine never owns it. Bounds must not include the
// translateX set through SetTranslateX, so a recompute at the same scroll
// position yields the same frame.
type Target interface {
	Bounds() Rect
	SetTranslateX(x float64)
	SetOpacity(o float64)
}

// Viewport reports the current viewport size
type Viewport interface {
	Width() float64
	Height() float64
}

// FrameRequester schedules a callback before the next repaint. Each
// registration fires at most once.
type FrameRequester interface {
	RequestFrame(fn func())
}

// Config holds the tuning values of the effect
type Config struct {
	MovementFactor       float64 // fraction of full travel used
	EasingSoftenExponent float64 // softens the ease-out curve
	MinTravel            float64 // floor for dynamic travel distances
	FadeMultiplier       float64 // 1.0 = linear fade on eased progress
}

// DefaultConfig returns the standard tuning
func DefaultConfig() Config {
	return Config{
		MovementFactor:       0.5,
		EasingSoftenExponent: 0.85,
		MinTravel:            300,
		FadeMultiplier:       1.0,
	}
}

// Frame is one computed sample. Output fields are rounded to 2 decimals.
type Frame struct {
	Progress float64 // raw progress, 0..1
	Eased    float64 // eased progress, 0..1
	CardX    float64
	ImageX   float64
	Opacity  float64
}

// Progress is 0 until the section's top passes the viewport top, then grows
// linearly to 1 as the section's full height scrolls past. A section with no
// height is fully past as soon as its top is.
func Progress(top, height float64) float64 {
	if top >= 0 {
		return 0
	}
	if height <= 0 {
		return 1
	}
	return scrollmath.Clamp(math.Abs(top)/height, 0, 1)
}

// Ease applies a quarter-sine ease-out and then softens it with exponent.
func Ease(progress, exponent float64) float64 {
	e := math.Sin(progress * math.Pi / 2)
	if e <= 0 {
		return 0
	}
	if e >= 1 {
		return 1
	}
	return math.Pow(e, exponent)
}

// CardTravel is the distance that moves the card fully out to the left
func CardTravel(card Rect, minTravel float64) float64 {
	return math.Max(card.Right+card.Width, minTravel)
}

// ImageTravel is the distance that moves the image fully out to the right
func ImageTravel(image Rect, viewportWidth, minTravel float64) float64 {
	return math.Max(viewportWidth-image.Left+image.Width, minTravel)
}

// Compute derives a frame from current geometry. It is pure: the same inputs
// always produce the same frame.
func Compute(section, card, image Rect, viewportWidth float64, cfg Config) Frame {
	progress := Progress(section.Top, section.Height)
	eased := Ease(progress, cfg.EasingSoftenExponent)

	maxCard := CardTravel(card, cfg.MinTravel)
	maxImage := ImageTravel(image, viewportWidth, cfg.MinTravel)

	return Frame{
		Progress: progress,
		Eased:    eased,
		CardX:    scrollmath.Round(-maxCard*cfg.MovementFactor*eased, 2),
		ImageX:   scrollmath.Round(maxImage*cfg.MovementFactor*eased, 2),
		Opacity:  scrollmath.Round(math.Max(0, 1-eased*cfg.FadeMultiplier), 2),
	}
}
