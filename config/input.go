package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical page action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionFocusNext
	ActionActivate
	ActionCycleWindowSize
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Number keys jump to the section with the same index (1 = first section)
	AnchorKeys []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionScrollUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionScrollDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionPageUp: {
				Keys: []ebiten.Key{ebiten.KeyPageUp},
			},
			ActionPageDown: {
				Keys: []ebiten.Key{ebiten.KeyPageDown},
			},
			ActionHome: {
				Keys: []ebiten.Key{ebiten.KeyHome},
			},
			ActionEnd: {
				Keys: []ebiten.Key{ebiten.KeyEnd},
			},
			ActionFocusNext: {
				Keys: []ebiten.Key{ebiten.KeyTab},
			},
			// Enter / Space toggle the focused flip card
			ActionActivate: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionCycleWindowSize: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
		AnchorKeys: []ebiten.Key{
			ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		},
	}
}
