package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlipCardData tracks a two-sided card toggled by click or keyboard
type FlipCardData struct {
	Front   string
	Back    string
	Flipped bool
	Pressed bool    // accessibility pressed state, toggled only by user activation
	Turn    float32 // 0 = front facing, 1 = back facing
	Tween   *gween.Tween
	Index   int
	Object  *resolv.Object // hit-test shape in document coordinates
}

var FlipCard = donburi.NewComponentType[FlipCardData]()

// SpaceData is the hit-test space for clickable elements
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
