package components

import (
	"github.com/automoto/folio/clock"
	"github.com/automoto/folio/parallax"
	"github.com/automoto/folio/typing"
	"github.com/yohamta/donburi"
)

// RuntimeData owns the page's scheduler and the animation engines driven by it
type RuntimeData struct {
	Clock    *clock.Clock
	Parallax *parallax.Engine
	Typing   *typing.Loop
}

var Runtime = donburi.NewComponentType[RuntimeData]()
