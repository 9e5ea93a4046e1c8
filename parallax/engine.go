package parallax

// Engine drives one hero section. It holds non-owning references to its
// targets and a single ticking flag: at most one frame request is outstanding
// at any time, and every recomputation reads the latest geometry.
type Engine struct {
	section Target
	card    Target
	image   Target
	vp      Viewport
	frames  FrameRequester
	cfg     Config

	ticking    bool
	last       Frame
	recomputes int
}

// Initialize wires an engine to its targets and runs one recomputation
// synchronously so the visual state is correct before any scroll. If any
// collaborator is missing the returned engine is inert: every method is a
// no-op and Active reports false.
func Initialize(section, card, image Target, vp Viewport, frames FrameRequester, cfg Config) *Engine {
	e := &Engine{
		section: section,
		card:    card,
		image:   image,
		vp:      vp,
		frames:  frames,
		cfg:     cfg,
	}
	if !e.Active() {
		return e
	}
	e.Update()
	return e
}

// Active reports whether the engine has everything it needs to run
func (e *Engine) Active() bool {
	return e != nil && e.section != nil && e.card != nil && e.image != nil && e.vp != nil && e.frames != nil
}

// OnScroll marks a recomputation as pending. Events arriving while one is
// already pending are coalesced.
func (e *Engine) OnScroll() {
	if !e.Active() || e.ticking {
		return
	}
	e.ticking = true
	e.frames.RequestFrame(e.frame)
}

// OnResize is coalesced the same way as scroll
func (e *Engine) OnResize() {
	e.OnScroll()
}

func (e *Engine) frame() {
	e.Update()
	e.ticking = false
}

// Update recomputes from current geometry and writes the result to both targets
func (e *Engine) Update() Frame {
	if !e.Active() {
		return Frame{}
	}
	f := Compute(e.section.Bounds(), e.card.Bounds(), e.image.Bounds(), e.vp.Width(), e.cfg)

	e.card.SetTranslateX(f.CardX)
	e.image.SetTranslateX(f.ImageX)
	e.card.SetOpacity(f.Opacity)
	e.image.SetOpacity(f.Opacity)

	e.last = f
	e.recomputes++
	return f
}

// Pending reports whether a frame request is in flight
func (e *Engine) Pending() bool {
	return e != nil && e.ticking
}

// Last returns the most recently written frame
func (e *Engine) Last() Frame {
	if e == nil {
		return Frame{}
	}
	return e.last
}

// Recomputes counts recomputations, including the initial one
func (e *Engine) Recomputes() int {
	if e == nil {
		return 0
	}
	return e.recomputes
}
