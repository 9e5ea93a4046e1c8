package systems

import (
	"log"
	"time"

	"github.com/automoto/folio/clock"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/parallax"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/typing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// InitPage runs the page-load sequence: start the typewriter, align anchors
// under the header, attach the hero parallax and schedule the flip card demo.
// Each step skips itself silently when its elements are missing.
func InitPage(e *ecs.ECS) {
	page := GetPage(e)
	if page == nil || page.Loaded {
		return
	}
	rt := getOrCreateRuntime(e)

	startTyping(e, rt)
	UpdateScrollOffset(e)
	initParallax(e, page, rt)
	scheduleAutoFlip(e, rt)

	page.Loaded = true
	log.Printf("[page] loaded: %d sections, viewport %.0fx%.0f",
		donburi.NewQuery(filter.Contains(tags.Section)).Count(e.World), page.ViewportWidth, page.ViewportHeight)
}

// GetPage returns the page singleton, nil before the page is created
func GetPage(e *ecs.ECS) *components.PageData {
	entry, ok := components.Page.First(e.World)
	if !ok {
		return nil
	}
	return components.Page.Get(entry)
}

// GetRuntime returns the page's scheduler and engines
func GetRuntime(e *ecs.ECS) *components.RuntimeData {
	return getOrCreateRuntime(e)
}

func getOrCreateRuntime(e *ecs.ECS) *components.RuntimeData {
	entry, ok := components.Runtime.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Runtime))
	}
	rt := components.Runtime.Get(entry)
	if rt.Clock == nil {
		rt.Clock = clock.New()
	}
	return rt
}

func startTyping(e *ecs.ECS, rt *components.RuntimeData) {
	entry, ok := tags.Typed.First(e.World)
	if !ok {
		return
	}
	seq, err := typing.NewSequence(cfg.Typing.Phrases...)
	if err != nil {
		log.Printf("[page] typing disabled: %v", err)
		return
	}
	rt.Typing = typing.Start(textSink{entry: entry}, seq, typing.Config{
		TypeSpeed: cfg.Typing.TypeSpeed,
		BackSpeed: cfg.Typing.BackSpeed,
		Pause:     cfg.Typing.Pause,
	}, rt.Clock)
}

func initParallax(e *ecs.ECS, page *components.PageData, rt *components.RuntimeData) {
	section, ok := tags.Hero.First(e.World)
	if !ok {
		return
	}
	// Missing elements are passed as nil interfaces so the engine stays inert
	var card, image parallax.Target
	if entry, ok := firstMemberOf(e, tags.HeroCard, section); ok {
		card = &elementTarget{entry: entry, page: page}
	}
	if entry, ok := firstMemberOf(e, tags.HeroImage, section); ok {
		image = &elementTarget{entry: entry, page: page}
	}

	rt.Parallax = parallax.Initialize(
		&elementTarget{entry: section, page: page},
		card,
		image,
		pageViewport{page: page},
		rt.Clock,
		parallax.Config{
			MovementFactor:       cfg.Parallax.MovementFactor,
			EasingSoftenExponent: cfg.Parallax.EasingSoftenExponent,
			MinTravel:            cfg.Parallax.MinTravel,
			FadeMultiplier:       cfg.Parallax.FadeMultiplier,
		},
	)
}

// firstMemberOf finds the first entity with tag whose owner is owner
func firstMemberOf(e *ecs.ECS, tag donburi.IComponentType, owner *donburi.Entry) (*donburi.Entry, bool) {
	var found *donburi.Entry
	donburi.NewQuery(filter.Contains(tag, components.Member)).Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Member.Get(entry).Owner == owner {
			found = entry
		}
	})
	return found, found != nil
}

// UpdateClock advances the page scheduler by one frame. Typing steps, flip
// card timers and coalesced parallax frames all run from here.
func UpdateClock(e *ecs.ECS) {
	rt := getOrCreateRuntime(e)
	rt.Clock.Tick(frameDuration())
}

func frameDuration() time.Duration {
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// frameSeconds is the tween step of one frame
func frameSeconds() float32 {
	return float32(frameDuration().Seconds())
}
