package parallax

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/folio/clock"
)

type fakeTarget struct {
	rect       Rect
	translateX float64
	opacity    float64
	writes     int
}

func (f *fakeTarget) Bounds() Rect { return f.rect }

func (f *fakeTarget) SetTranslateX(x float64) {
	f.translateX = x
	f.writes++
}

func (f *fakeTarget) SetOpacity(o float64) { f.opacity = o }

type fakeViewport struct{ w, h float64 }

func (v fakeViewport) Width() float64  { return v.w }
func (v fakeViewport) Height() float64 { return v.h }

func TestProgressMonotonic(t *testing.T) {
	const sh = 600.0
	prev := -1.0
	for top := 0.0; top >= -900; top -= 25 {
		p := Progress(top, sh)
		if p < prev {
			t.Fatalf("progress decreased at top=%v: %v < %v", top, p, prev)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress out of range at top=%v: %v", top, p)
		}
		prev = p
	}
	if prev != 1 {
		t.Errorf("expected progress to saturate at 1, got %v", prev)
	}
}

func TestProgressBeforeScroll(t *testing.T) {
	tests := []struct {
		name        string
		top, height float64
		want        float64
	}{
		{"below viewport top", 120, 600, 0},
		{"at viewport top", 0, 600, 0},
		{"half past", -300, 600, 0.5},
		{"fully past", -600, 600, 1},
		{"beyond", -2000, 600, 1},
		{"zero height past top", -50, 0, 1},
		{"zero height at top", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.top, tt.height); got != tt.want {
				t.Errorf("Progress(%v, %v) = %v, want %v", tt.top, tt.height, got, tt.want)
			}
		})
	}
}

func TestEaseEndpoints(t *testing.T) {
	if got := Ease(0, 0.85); got != 0 {
		t.Errorf("Ease(0) = %v, want 0", got)
	}
	if got := Ease(1, 0.85); got != 1 {
		t.Errorf("Ease(1) = %v, want 1", got)
	}
	want := math.Pow(math.Sin(0.5*math.Pi/2), 0.85)
	if got := Ease(0.5, 0.85); math.Abs(got-want) > 1e-12 {
		t.Errorf("Ease(0.5) = %v, want %v", got, want)
	}
}

func TestComputeAtRest(t *testing.T) {
	section := Rect{Top: 0, Height: 600}
	card := Rect{Left: 40, Right: 440, Width: 400}
	image := Rect{Left: 560, Right: 860, Width: 300}

	f := Compute(section, card, image, 960, DefaultConfig())
	if f.Eased != 0 || f.CardX != 0 || f.ImageX != 0 || f.Opacity != 1 {
		t.Errorf("expected rest state, got %+v", f)
	}
}

func TestComputeFullyScrolled(t *testing.T) {
	section := Rect{Top: -600, Height: 600}
	card := Rect{Left: 40, Right: 440, Width: 400}
	image := Rect{Left: 560, Right: 860, Width: 300}

	f := Compute(section, card, image, 960, DefaultConfig())
	if f.Eased != 1 {
		t.Fatalf("expected eased=1, got %v", f.Eased)
	}
	if f.Opacity != 0 {
		t.Errorf("expected opacity exactly 0, got %v", f.Opacity)
	}
	// card travel = 440 + 400 = 840, half of it
	if f.CardX != -420 {
		t.Errorf("expected cardX -420, got %v", f.CardX)
	}
	// image travel = 960 - 560 + 300 = 700, half of it
	if f.ImageX != 350 {
		t.Errorf("expected imageX 350, got %v", f.ImageX)
	}
}

func TestComputeRoundsToTwoDecimals(t *testing.T) {
	section := Rect{Top: -137, Height: 600}
	card := Rect{Left: 13, Right: 333.333, Width: 320.333}
	image := Rect{Left: 511.7, Width: 287.1}

	f := Compute(section, card, image, 960, DefaultConfig())
	for name, v := range map[string]float64{"cardX": f.CardX, "imageX": f.ImageX, "opacity": f.Opacity} {
		if math.Abs(v*100-math.Round(v*100)) > 1e-9 {
			t.Errorf("%s = %v is not rounded to 2 decimals", name, v)
		}
	}
}

func TestTravelFloor(t *testing.T) {
	if got := CardTravel(Rect{Right: 50, Width: 20}, 300); got != 300 {
		t.Errorf("card travel below floor: got %v, want 300", got)
	}
	if got := CardTravel(Rect{Right: 500, Width: 200}, 300); got != 700 {
		t.Errorf("card travel above floor: got %v, want 700", got)
	}
	if got := ImageTravel(Rect{Left: 950, Width: 5}, 960, 300); got != 300 {
		t.Errorf("image travel below floor: got %v, want 300", got)
	}
	if got := ImageTravel(Rect{Left: 400, Width: 300}, 960, 300); got != 860 {
		t.Errorf("image travel above floor: got %v, want 860", got)
	}
}

func TestTravelFloorIndependent(t *testing.T) {
	section := Rect{Top: -600, Height: 600}
	tinyCard := Rect{}
	wideImage := Rect{Left: 100, Width: 400}

	f := Compute(section, tinyCard, wideImage, 960, DefaultConfig())
	if f.CardX != -150 {
		t.Errorf("degenerate card should use the floor: got %v, want -150", f.CardX)
	}
	if f.ImageX != 630 {
		t.Errorf("image should keep its own travel: got %v, want 630", f.ImageX)
	}
}

func newFixture() (*fakeTarget, *fakeTarget, *fakeTarget, fakeViewport, *clock.Clock) {
	section := &fakeTarget{rect: Rect{Top: 0, Height: 600, Width: 960, Right: 960}}
	card := &fakeTarget{rect: Rect{Left: 40, Right: 440, Width: 400}}
	image := &fakeTarget{rect: Rect{Left: 560, Right: 860, Width: 300}}
	return section, card, image, fakeViewport{w: 960, h: 600}, clock.New()
}

func TestInitializeRunsSynchronously(t *testing.T) {
	section, card, image, vp, clk := newFixture()
	section.rect.Top = -300

	e := Initialize(section, card, image, vp, clk, DefaultConfig())
	if !e.Active() {
		t.Fatal("expected active engine")
	}
	if e.Recomputes() != 1 {
		t.Errorf("expected one synchronous recompute, got %d", e.Recomputes())
	}
	if card.translateX == 0 || image.translateX == 0 {
		t.Errorf("expected targets written before any event, got card=%v image=%v", card.translateX, image.translateX)
	}
	if clk.Pending() != 0 {
		t.Errorf("initial recompute must not request a frame, pending=%d", clk.Pending())
	}
}

func TestScrollBurstCoalesces(t *testing.T) {
	section, card, image, vp, clk := newFixture()
	e := Initialize(section, card, image, vp, clk, DefaultConfig())

	for i := 0; i < 10; i++ {
		e.OnScroll()
	}
	e.OnResize()
	if !e.Pending() {
		t.Fatal("expected a pending frame")
	}
	if clk.Pending() != 1 {
		t.Fatalf("expected exactly one frame request, got %d", clk.Pending())
	}

	clk.Tick(16 * time.Millisecond)
	if e.Recomputes() != 2 {
		t.Errorf("expected 1 initial + 1 coalesced recompute, got %d", e.Recomputes())
	}
	if e.Pending() {
		t.Error("ticking flag should clear after the frame runs")
	}

	e.OnScroll()
	clk.Tick(16 * time.Millisecond)
	if e.Recomputes() != 3 {
		t.Errorf("expected a new recompute after the flag cleared, got %d", e.Recomputes())
	}
}

func TestFrameReadsLatestGeometry(t *testing.T) {
	section, card, image, vp, clk := newFixture()
	e := Initialize(section, card, image, vp, clk, DefaultConfig())

	section.rect.Top = -100
	e.OnScroll()
	section.rect.Top = -600
	e.OnScroll()
	clk.Tick(16 * time.Millisecond)

	if e.Last().Opacity != 0 {
		t.Errorf("expected frame computed from latest geometry (opacity 0), got %v", e.Last().Opacity)
	}
	if card.opacity != 0 || image.opacity != 0 {
		t.Errorf("expected both targets faded, got card=%v image=%v", card.opacity, image.opacity)
	}
}

func TestMissingTargetIsInert(t *testing.T) {
	section, card, _, vp, clk := newFixture()

	e := Initialize(section, card, nil, vp, clk, DefaultConfig())
	if e.Active() {
		t.Fatal("engine with a missing target must be inert")
	}
	e.OnScroll()
	e.OnResize()
	if clk.Pending() != 0 {
		t.Errorf("inert engine requested %d frames", clk.Pending())
	}
	if card.writes != 0 {
		t.Errorf("inert engine wrote to the card %d times", card.writes)
	}
	if f := e.Update(); f != (Frame{}) {
		t.Errorf("inert Update should return zero frame, got %+v", f)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	section := &fakeTarget{rect: Rect{Top: -600, Height: 600, Width: 960, Right: 960}}
	card := &fakeTarget{rect: Rect{Left: 48, Right: 468, Width: 420}}
	image := &fakeTarget{rect: Rect{Left: 612, Right: 912, Width: 300}}
	clk := clock.New()

	e := Initialize(section, card, image, fakeViewport{w: 960, h: 600}, clk, DefaultConfig())
	first := e.Last()
	for i := 0; i < 4; i++ {
		if f := e.Update(); f != first {
			t.Fatalf("recompute %d changed the frame: %+v, want %+v", i+2, f, first)
		}
	}

	e.OnResize()
	clk.Tick(16 * time.Millisecond)
	if e.Last() != first {
		t.Errorf("resize at the same geometry changed the frame: %+v, want %+v", e.Last(), first)
	}
	if card.translateX != first.CardX || image.translateX != first.ImageX {
		t.Errorf("targets drifted: card=%v image=%v, want %v %v", card.translateX, image.translateX, first.CardX, first.ImageX)
	}
}

func TestFrameIndependentOfScrollHistory(t *testing.T) {
	section, card, image, vp, clk := newFixture()
	section.rect.Top = -200
	e := Initialize(section, card, image, vp, clk, DefaultConfig())
	want := e.Last()

	for _, top := range []float64{-50, -550, -900, -200} {
		section.rect.Top = top
		e.OnScroll()
		clk.Tick(16 * time.Millisecond)
	}
	if e.Last() != want {
		t.Errorf("expected %+v after returning to the same scroll, got %+v", want, e.Last())
	}
}
