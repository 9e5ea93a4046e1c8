package systems

import (
	"log"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlipCards handles click and keyboard activation of flip cards and
// advances their flip animation.
func UpdateFlipCards(e *ecs.ECS) {
	page := GetPage(e)
	if page == nil {
		return
	}
	input := getOrCreateInput(e)

	syncHitShapes(e)

	// Clicks on the header belong to the nav buttons
	underNav := cfg.Nav.Enabled && input.Cursor.Y < cfg.Nav.Height
	if input.Clicked && !underNav {
		if entry, ok := flipCardAt(e, input.Cursor.X, input.Cursor.Y+page.ScrollY); ok {
			page.FocusIndex = components.FlipCard.Get(entry).Index
			ToggleFlipCard(entry)
		}
	}

	if GetAction(input, cfg.ActionFocusNext).JustPressed {
		if n := flipCardCount(e); n > 0 {
			page.FocusIndex = (page.FocusIndex + 1) % n
		}
	}
	if GetAction(input, cfg.ActionActivate).JustPressed && page.FocusIndex >= 0 {
		if entry, ok := flipCardByIndex(e, page.FocusIndex); ok {
			ToggleFlipCard(entry)
		}
	}

	components.FlipCard.Each(e.World, func(entry *donburi.Entry) {
		card := components.FlipCard.Get(entry)
		if card.Tween == nil {
			return
		}
		turn, done := card.Tween.Update(frameSeconds())
		card.Turn = turn
		if done {
			card.Tween = nil
		}
	})
}

// ToggleFlipCard flips a card and its pressed state, as a click or Enter/Space does
func ToggleFlipCard(entry *donburi.Entry) {
	card := components.FlipCard.Get(entry)
	card.Pressed = !card.Pressed
	setFlipped(card, !card.Flipped)
	if cfg.FlipCard.DebugLog {
		log.Printf("[flip] %q toggled: flipped=%t", card.Front, card.Flipped)
	}
}

// setFlipped animates a card to a side without touching its pressed state
func setFlipped(card *components.FlipCardData, flipped bool) {
	if card.Flipped == flipped && card.Tween == nil {
		return
	}
	card.Flipped = flipped
	var target float32
	if flipped {
		target = 1
	}
	card.Tween = gween.New(card.Turn, target, cfg.FlipCard.FlipDuration, ease.InOutSine)
}

// scheduleAutoFlip flips every card once shortly after load and flips them
// back, so both faces are seen.
func scheduleAutoFlip(e *ecs.ECS, rt *components.RuntimeData) {
	if flipCardCount(e) == 0 {
		return
	}
	if cfg.FlipCard.DebugLog {
		components.FlipCard.Each(e.World, func(entry *donburi.Entry) {
			card := components.FlipCard.Get(entry)
			log.Printf("[flip] card %d: front=%q back=%q", card.Index, card.Front, card.Back)
		})
	}
	rt.Clock.AfterFunc(cfg.FlipCard.AutoFlipDelay, func() {
		setAllFlipped(e, true)
		rt.Clock.AfterFunc(cfg.FlipCard.AutoFlipRevert, func() {
			setAllFlipped(e, false)
		})
	})
}

func setAllFlipped(e *ecs.ECS, flipped bool) {
	components.FlipCard.Each(e.World, func(entry *donburi.Entry) {
		setFlipped(components.FlipCard.Get(entry), flipped)
	})
}

// syncHitShapes moves every card's hit shape to its rendered position
func syncHitShapes(e *ecs.ECS) {
	components.FlipCard.Each(e.World, func(entry *donburi.Entry) {
		card := components.FlipCard.Get(entry)
		if card.Object == nil {
			return
		}
		box := components.Box.Get(entry)
		style := effectiveStyle(entry)
		card.Object.X = box.X + style.TranslateX
		card.Object.Y = box.Y + style.TranslateY
		card.Object.W = box.W
		card.Object.H = box.H
		card.Object.Update()
	})
}

// flipCardAt hit-tests a document-space point against the card shapes
func flipCardAt(e *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry).Space
	if space == nil {
		return nil, false
	}

	cursor := resolv.NewObject(x, y, 1, 1, tags.ResolvCursor)
	space.Add(cursor)
	defer space.Remove(cursor)

	check := cursor.Check(0, 0, tags.ResolvFlipCard)
	if check == nil {
		return nil, false
	}
	// Check is a cell-level broadphase; confirm containment per shape
	for _, obj := range check.ObjectsByTags(tags.ResolvFlipCard) {
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok {
			return entry, true
		}
	}
	return nil, false
}

func flipCardCount(e *ecs.ECS) int {
	n := 0
	components.FlipCard.Each(e.World, func(entry *donburi.Entry) { n++ })
	return n
}

func flipCardByIndex(e *ecs.ECS, index int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.FlipCard.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.FlipCard.Get(entry).Index == index {
			found = entry
		}
	})
	return found, found != nil
}
