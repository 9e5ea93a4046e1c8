package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SectionData describes an anchorable page section
type SectionData struct {
	ID              string
	Title           string
	Body            []string
	Index           int
	ScrollMarginTop float64
}

var Section = donburi.NewComponentType[SectionData]()

// RevealData tracks the one-way scroll reveal of a section
type RevealData struct {
	Revealed bool
	Tween    *gween.Tween // nil until triggered, dropped when finished
}

var Reveal = donburi.NewComponentType[RevealData]()

// RepoData is a mock repository rendered as a card
type RepoData struct {
	Name string
	Lang string
}

var Repo = donburi.NewComponentType[RepoData]()
