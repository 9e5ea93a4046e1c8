package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PageData is the singleton document/viewport state
type PageData struct {
	ScrollY        float64
	DocHeight      float64
	ViewportWidth  float64
	ViewportHeight float64

	// Distance anchored sections keep from the viewport top (fixed header)
	ScrollOffset float64

	// Smooth anchor scroll in progress, nil when idle
	ScrollTween *gween.Tween

	// Set by the scene on window resize, consumed by UpdateResize
	Resized bool

	// Anchor of the last navigation ("#about"), the pushState analogue
	Anchor        string
	PendingAnchor string

	FocusIndex int // focused flip card, -1 = none
	Loaded     bool
}

var Page = donburi.NewComponentType[PageData]()
