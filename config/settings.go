package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// WindowConfig contains the window sizes cycled at runtime
type WindowConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Window is the global window configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 600, Label: "960 x 600"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 640, Height: 800, Label: "640 x 800"},
		},
		DefaultResolutionIndex: 0,
	}
}
