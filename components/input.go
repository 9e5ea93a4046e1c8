package components

import (
	cfg "github.com/automoto/folio/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	WheelY      float64   // Wheel delta this frame (positive = scroll up)
	AnchorIndex int       // Section index requested by a number key, -1 = none
	Clicked     bool      // Left mouse button pressed this frame
	Cursor      math.Vec2 // Cursor position in viewport pixels
}

var Input = donburi.NewComponentType[InputData]()
