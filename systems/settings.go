package systems

import (
	"log"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the window size and debug overlay hotkeys
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionCycleWindowSize).JustPressed {
		res := cycleResolution(settings, 1)
		ebiten.SetWindowSize(res.Width, res.Height)
		log.Printf("[settings] window size %s", res.Label)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// cycleResolution steps through the configured window sizes
func cycleResolution(s *components.SettingsData, direction int) cfg.Resolution {
	n := len(cfg.Window.Resolutions)
	if n == 0 {
		return cfg.Resolution{Width: cfg.C.Width, Height: cfg.C.Height}
	}
	s.ResolutionIndex = ((s.ResolutionIndex+direction)%n + n) % n
	return cfg.Window.Resolutions[s.ResolutionIndex]
}

func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			ResolutionIndex: cfg.Window.DefaultResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}
