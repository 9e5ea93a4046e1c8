package scrollmath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	// Avoid handing out -0 to renderers.
	if r == 0 {
		return 0
	}
	return r
}

// RevealTriggered reports whether an element whose top edge sits at top
// (viewport-relative) has come far enough into view to be revealed.
func RevealTriggered(top, viewportHeight, margin float64) bool {
	return top < viewportHeight-margin
}

// ScrollOffset returns the distance anchored sections keep from the viewport
// top: the nav height plus a gap, or the fallback when there is no nav bar.
func ScrollOffset(navHeight float64, hasNav bool, gap, fallback float64) float64 {
	if !hasNav {
		return fallback
	}
	return navHeight + gap
}

// AnchorScrollTarget converts a viewport-relative target top into the
// document scroll position that places it offset pixels below the viewport top.
func AnchorScrollTarget(targetTop, scrollY, offset float64) float64 {
	return math.Max(0, targetTop+scrollY-offset)
}

// ClampScroll keeps a scroll position inside the scrollable range of the document.
func ClampScroll(y, docHeight, viewportHeight float64) float64 {
	maxY := math.Max(0, docHeight-viewportHeight)
	return Clamp(y, 0, maxY)
}
