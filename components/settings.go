package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime view settings
type SettingsData struct {
	Debug           bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
