package components

import (
	"image/color"

	"github.com/automoto/folio/fonts"
	"github.com/yohamta/donburi"
)

// TextData is an element's text content
type TextData struct {
	Value string
	Font  fonts.FontName
	Color color.RGBA
	// Offset of the baseline from the element's box origin
	OffsetX, OffsetY float64
}

var Text = donburi.NewComponentType[TextData]()
