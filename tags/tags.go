package tags

import "github.com/yohamta/donburi"

var (
	Section   = donburi.NewTag().SetName("Section")
	Hero      = donburi.NewTag().SetName("Hero")
	HeroCard  = donburi.NewTag().SetName("HeroCard")
	HeroImage = donburi.NewTag().SetName("HeroImage")
	Typed     = donburi.NewTag().SetName("Typed")
	RepoCard  = donburi.NewTag().SetName("RepoCard")
	FlipCard  = donburi.NewTag().SetName("FlipCard")
	Label     = donburi.NewTag().SetName("Label")
)

// Resolv tags for hit testing
const (
	ResolvFlipCard = "flipcard"
	ResolvCursor   = "cursor"
)
