package game

import (
	"image"
	"math/rand"
	"time"
)

// FrameDuration is the wall time of one update at 60 TPS.
const FrameDuration = time.Second / 60

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	t time.Time
}

// NewManualClock starts a clock at a fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Harness drives a Session headlessly with a manual clock and deterministic
// seeding. It has no Ebiten dependency and is shared by tests and the
// headless report.
type Harness struct {
	Session *Session
	Clock   *ManualClock
	Cues    []Cue // cues returned by each step, in order

	seed   int64
	layout *[BoardRows][BoardCols]Species
	mode   Mode
}

// harnessOptionKind controls the pass in which an option is applied.
type harnessOptionKind int

const (
	harnessOptInfra harnessOptionKind = iota // seed; applied before the session exists
	harnessOptBoard                          // layout and start mode; applied after
)

// HarnessOption is a builder function applied to a Harness during construction.
type HarnessOption struct {
	kind harnessOptionKind
	fn   func(*Harness)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.seed = seed
	}}
}

// WithLayout replaces the initial board with a fixed species layout.
func WithLayout(layout [BoardRows][BoardCols]Species) HarnessOption {
	return HarnessOption{harnessOptBoard, func(h *Harness) {
		h.layout = &layout
		h.Session.board.Load(layout)
	}}
}

// WithMode presses the menu key that enters the given play mode.
func WithMode(m Mode) HarnessOption {
	return HarnessOption{harnessOptBoard, func(h *Harness) {
		h.mode = m
	}}
}

// NewHarness constructs a Harness in two ordered passes: infrastructure
// options, then board options against the fresh session.
func NewHarness(opts ...HarnessOption) *Harness {
	h := &Harness{
		Clock: NewManualClock(),
		seed:  1,
		mode:  ModeMenu,
	}
	for _, o := range opts {
		if o.kind == harnessOptInfra {
			o.fn(h)
		}
	}
	h.Session = NewSession(rand.New(rand.NewSource(h.seed)), h.Clock) // #nosec G404 -- test harness
	for _, o := range opts {
		if o.kind == harnessOptBoard {
			o.fn(h)
		}
	}
	switch h.mode {
	case ModeMoves:
		h.Press(KeyS)
	case ModeTime:
		h.Press(KeyE)
		if h.layout != nil {
			// Entering time mode re-checks the board; keep the fixed layout.
			h.Session.board.Load(*h.layout)
		}
	}
	return h
}

// Step advances one frame with the given input.
func (h *Harness) Step(in Input) Cue {
	h.Clock.Advance(FrameDuration)
	c := h.Session.Step(in)
	h.Cues = append(h.Cues, c)
	return c
}

// Press steps one frame with a single key.
func (h *Harness) Press(k Key) Cue {
	return h.Step(Input{Keys: []Key{k}})
}

// Click steps one frame with a left click at the centre of a cell.
func (h *Harness) Click(p Pos) Cue {
	return h.Step(Input{Clicks: []image.Point{CellCenter(p)}})
}

// Idle steps n frames without input and returns the union of their cues.
func (h *Harness) Idle(n int) Cue {
	var all Cue
	for i := 0; i < n; i++ {
		all |= h.Step(Input{})
	}
	return all
}

// Settle steps until the board is idle or play stops, up to maxFrames. It
// returns the number of frames taken and whether the board settled.
func (h *Harness) Settle(maxFrames int) (int, bool) {
	for i := 0; i < maxFrames; i++ {
		h.Step(Input{})
		if m := h.Session.Mode(); m != ModeMoves && m != ModeTime {
			return i + 1, false
		}
		if !h.Session.Busy() {
			return i + 1, true
		}
	}
	return maxFrames, false
}

// Play clicks both cells of a move on consecutive frames.
func (h *Harness) Play(m Move) Cue {
	c := h.Click(m.A)
	return c | h.Click(m.B)
}
