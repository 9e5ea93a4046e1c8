package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the page uses
const Default ecs.LayerID = 0

// ParallaxConfig contains the hero parallax tuning values
type ParallaxConfig struct {
	MovementFactor       float64 // Fraction of the full travel distance actually used (0.0 - 1.0)
	EasingSoftenExponent float64 // Exponent applied to the ease-out curve (< 1 softens it)
	MinTravel            float64 // Floor for the dynamic travel distance, guards degenerate first layouts
	FadeMultiplier       float64 // 1.0 = linear fade keyed to eased progress
}

// TypingConfig contains the typewriter loop timing and phrases
type TypingConfig struct {
	TypeSpeed time.Duration // Delay per revealed character
	BackSpeed time.Duration // Delay per deleted character
	Pause     time.Duration // Hold after a phrase is fully revealed
	Phrases   []string
}

// RevealConfig contains scroll reveal configuration
type RevealConfig struct {
	Margin        float64 // Section reveals once its top is this far above the viewport bottom
	InitialOffset float64 // Starting translateY of a hidden section
	Duration      float32 // Seconds
}

// NavConfig contains the fixed header configuration
type NavConfig struct {
	Height          float64 // Rendered height of the nav bar
	Gap             float64 // Space kept between the nav bar and an anchored section
	FallbackOffset  float64 // Offset used when there is no nav bar
	Enabled         bool
	BackgroundColor color.RGBA
	ButtonColor     color.RGBA
	ButtonHover     color.RGBA
	TextColor       color.RGBA
}

// ScrollConfig contains document scrolling configuration
type ScrollConfig struct {
	WheelStep            float64 // Pixels per wheel notch
	KeyStep              float64 // Pixels per arrow key frame
	SmoothScrollDuration float32 // Seconds for anchor navigation
}

// FlipCardConfig contains flip card configuration
type FlipCardConfig struct {
	FlipDuration   float32       // Seconds for a half-turn
	AutoFlipDelay  time.Duration // Delay after load before the demo flip
	AutoFlipRevert time.Duration // How long the demo flip stays flipped
	DebugLog       bool
}

// Repo is a mock repository shown in the repos section
type Repo struct {
	Name string
	Lang string
}

// FlipCardSpec is the text on both faces of a flip card
type FlipCardSpec struct {
	Front string
	Back  string
}

// SectionSpec describes one page section in document order
type SectionSpec struct {
	ID     string
	Title  string
	Height float64
	Body   []string
}

// PageConfig contains page content and colors
type PageConfig struct {
	Name       string
	Sections   []SectionSpec
	Repos      []Repo
	FlipCards  []FlipCardSpec
	Background color.RGBA
	SectionBG  color.RGBA
	CardColor  color.RGBA
	ImageColor color.RGBA
	TextColor  color.RGBA
	Primary    color.RGBA
	Margin     float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Parallax ParallaxConfig
var Typing TypingConfig
var Reveal RevealConfig
var Nav NavConfig
var Scroll ScrollConfig
var FlipCard FlipCardConfig
var Page PageConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink       = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	Slate     = color.RGBA{R: 32, G: 36, B: 50, A: 255}
	Mist      = color.RGBA{R: 200, G: 205, B: 220, A: 255}
	Teal      = color.RGBA{R: 0, G: 200, B: 180, A: 255}
	DeepTeal  = color.RGBA{R: 0, G: 120, B: 110, A: 255}
	Coral     = color.RGBA{R: 255, G: 120, B: 100, A: 255}
	NavShadow = color.RGBA{R: 10, G: 12, B: 18, A: 235}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 600,
		TPS:    60,
	}

	Parallax = ParallaxConfig{
		MovementFactor:       0.5,
		EasingSoftenExponent: 0.85,
		MinTravel:            300,
		FadeMultiplier:       1.0,
	}

	Typing = TypingConfig{
		TypeSpeed: 80 * time.Millisecond,
		BackSpeed: 40 * time.Millisecond,
		Pause:     1500 * time.Millisecond,
		Phrases: []string{
			"Full Stack Developer",
			"Creative Problem Solver",
			"Graphic Designer",
		},
	}

	Reveal = RevealConfig{
		Margin:        100,
		InitialOffset: 40,
		Duration:      0.6,
	}

	Nav = NavConfig{
		Height:          56,
		Gap:             16,
		FallbackOffset:  88,
		Enabled:         true,
		BackgroundColor: NavShadow,
		ButtonColor:     Slate,
		ButtonHover:     DeepTeal,
		TextColor:       White,
	}

	Scroll = ScrollConfig{
		WheelStep:            48,
		KeyStep:              12,
		SmoothScrollDuration: 0.5,
	}

	FlipCard = FlipCardConfig{
		FlipDuration:   0.35,
		AutoFlipDelay:  400 * time.Millisecond,
		AutoFlipRevert: 900 * time.Millisecond,
		DebugLog:       true,
	}

	Page = PageConfig{
		Name: "Alex Doe",
		Sections: []SectionSpec{
			{ID: "hero", Title: "Home", Height: 600},
			{ID: "about", Title: "About", Height: 420, Body: []string{
				"I build software that is both useful and fun.",
				"Most projects start with a simple idea and turn into a chance to learn.",
			}},
			{ID: "projects", Title: "Projects", Height: 460},
			{ID: "repos", Title: "Repositories", Height: 380},
			{ID: "contact", Title: "Contact", Height: 360, Body: []string{
				"Say hello: alex@example.com",
			}},
		},
		Repos: []Repo{
			{Name: "Awesome-App", Lang: "JavaScript"},
			{Name: "Data-Visualizer", Lang: "Python"},
			{Name: "Portfolio-Template", Lang: "HTML/CSS"},
		},
		FlipCards: []FlipCardSpec{
			{Front: "Design", Back: "Figma, Illustrator"},
			{Front: "Code", Back: "Go, TypeScript"},
			{Front: "Ship", Back: "Docker, CI/CD"},
		},
		Background: Ink,
		SectionBG:  Slate,
		CardColor:  DeepTeal,
		ImageColor: Coral,
		TextColor:  Mist,
		Primary:    Teal,
		Margin:     48,
	}
}
