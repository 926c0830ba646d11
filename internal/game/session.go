package game

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// StartMoves is the swap budget of move mode.
	StartMoves = 10

	// TimeLimit is the length of a time-mode round.
	TimeLimit = 30 * time.Second
)

// Mode is the controller state.
type Mode int

const (
	ModeMenu Mode = iota
	ModeMoves
	ModeTime
	ModePaused
	ModeGameOver
	ModeResetting
	ModeTimeIntro
)

var modeNames = [...]string{"menu", "moves", "time", "paused", "gameover", "resetting", "time-intro"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Clock supplies wall time to the controller.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Stats are cumulative counters over the lifetime of a Session.
type Stats struct {
	Swaps        int // player swaps applied
	Reverts      int // swaps undone for producing no match
	MatchSettles int // settles that cleared at least one tile
	Refilled     int // tiles reseeded
	Chains       int // combo chains longer than one settle
	MovesScore   int // score when move mode ran out
	TimeScore    int // score when the clock ran out
}

// Session owns the board and every counter of one game run. It is the only
// place game rules live; the Ebiten shell feeds it Input and plays its Cues.
type Session struct {
	board  *Board
	rng    *rand.Rand
	clock  Clock
	events *EventLog

	frame    int
	mode     Mode
	prevMode Mode

	score   int
	moves   int
	started bool // a player swap happened since the last reset
	combo   Combo
	sel     Selection
	hint    *Move

	swap      Move
	swapping  bool
	animating bool
	points    int // match points seen last frame

	clockStarted bool
	timeStart    time.Time
	pauseStart   time.Time
	pausedTotal  time.Duration

	gameOverCued bool
	introCued    bool

	stats Stats
}

// NewSession builds a session in the menu with a freshly initialised board.
func NewSession(rng *rand.Rand, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{
		board:  NewBoard(),
		rng:    rng,
		clock:  clock,
		events: NewEventLog(),
		mode:   ModeMenu,
		moves:  StartMoves,
	}
	s.board.Init(rng)
	return s
}

// Board exposes the board for rendering.
func (s *Session) Board() *Board { return s.board }

// Mode is the current controller state.
func (s *Session) Mode() Mode { return s.mode }

// Score is the running score.
func (s *Session) Score() int { return s.score }

// MovesLeft is the remaining swap budget in move mode.
func (s *Session) MovesLeft() int { return s.moves }

// Combo returns the live combo counters.
func (s *Session) Combo() Combo { return s.combo }

// Selected returns pending tile picks.
func (s *Session) Selected() []Pos { return s.sel.Pending() }

// Hint returns the highlighted move, if any.
func (s *Session) Hint() *Move { return s.hint }

// Events returns the session event log.
func (s *Session) Events() *EventLog { return s.events }

// Stats returns the cumulative counters.
func (s *Session) Stats() Stats { return s.stats }

// Frame is the number of steps taken.
func (s *Session) Frame() int { return s.frame }

// Busy reports whether the board is mid-swap or still animating.
func (s *Session) Busy() bool { return s.swapping || s.animating }

// TimeLeft is the remaining time-mode countdown. Time spent paused does not
// count against it.
func (s *Session) TimeLeft() time.Duration {
	if !s.clockStarted {
		return TimeLimit
	}
	now := s.clock.Now()
	if s.mode == ModePaused {
		now = s.pauseStart
	}
	left := TimeLimit - (now.Sub(s.timeStart) - s.pausedTotal)
	if left < 0 {
		return 0
	}
	return left
}

// Summary is a one-line result for sharing.
func (s *Session) Summary() string {
	return fmt.Sprintf("MENAGERIE: scored %d in time mode (move mode %d), best combo x%d",
		s.stats.TimeScore, s.stats.MovesScore, s.combo.Max)
}

// Step runs one frame of the controller and returns the cues the shell must
// play.
func (s *Session) Step(in Input) Cue {
	s.frame++
	if in.Close {
		return CueQuit
	}
	switch s.mode {
	case ModeMenu:
		return s.stepMenu(in)
	case ModeMoves:
		return s.stepMoves(in)
	case ModeTime:
		return s.stepTime(in)
	case ModePaused:
		return s.stepPaused(in)
	case ModeGameOver:
		return s.stepGameOver(in)
	case ModeResetting:
		return s.stepResetting()
	case ModeTimeIntro:
		return s.stepTimeIntro(in)
	}
	return 0
}

func (s *Session) setMode(m Mode) {
	if s.mode == m {
		return
	}
	s.events.Add(s.frame, EventMode, fmt.Sprintf("%s -> %s", s.mode, m))
	s.mode = m
}

func (s *Session) stepMenu(in Input) Cue {
	var cues Cue
	for _, k := range in.Keys {
		switch k {
		case KeyS:
			s.setMode(ModeMoves)
			return cues | CueMatch
		case KeyE:
			s.board.ClearInitialMatches(s.rng)
			s.setMode(ModeTime)
			return cues
		}
	}
	return cues
}

// handleActiveKeys services pause, reset and hint in both play modes. It
// reports whether the mode changed.
func (s *Session) handleActiveKeys(in Input) (Cue, bool) {
	for _, k := range in.Keys {
		switch k {
		case KeyP:
			s.prevMode = s.mode
			s.pauseStart = s.clock.Now()
			s.setMode(ModePaused)
			return CueMusicPause, true
		case KeyX:
			s.requestReset()
			return 0, true
		case KeyH:
			s.hint = nil
			if moves := FindMoves(s.board); len(moves) > 0 {
				m := moves[s.rng.Intn(len(moves))]
				s.hint = &m
			}
		}
	}
	return 0, false
}

func (s *Session) stepMoves(in Input) Cue {
	if cues, changed := s.handleActiveKeys(in); changed {
		return cues
	}
	if s.moves <= 0 && !s.Busy() {
		s.stats.MovesScore = s.score
		s.introCued = false
		s.setMode(ModeTimeIntro)
		return 0
	}
	return s.play(in)
}

func (s *Session) stepTime(in Input) Cue {
	if cues, changed := s.handleActiveKeys(in); changed {
		return cues
	}
	if !s.clockStarted {
		s.timeStart = s.clock.Now()
		s.pausedTotal = 0
		s.clockStarted = true
		s.score = 0
		s.moves = StartMoves
	}
	if s.TimeLeft() <= 0 {
		s.stats.TimeScore = s.score
		s.gameOverCued = false
		s.setMode(ModeGameOver)
		return CueMusicStop
	}
	return s.play(in)
}

func (s *Session) stepPaused(in Input) Cue {
	for _, k := range in.Keys {
		if k == KeyS {
			s.pausedTotal += s.clock.Now().Sub(s.pauseStart)
			s.setMode(s.prevMode)
			return CueMusicResume
		}
	}
	return 0
}

func (s *Session) stepGameOver(in Input) Cue {
	var cues Cue
	if !s.gameOverCued {
		s.gameOverCued = true
		cues |= CueGameOver
	}
	for _, k := range in.Keys {
		switch k {
		case KeyX:
			s.requestReset()
			return cues
		case KeyC:
			cues |= CueCopyResult
		}
	}
	return cues
}

func (s *Session) stepResetting() Cue {
	s.reset()
	s.setMode(ModeMenu)
	return CueMusicStart
}

func (s *Session) stepTimeIntro(in Input) Cue {
	var cues Cue
	if !s.introCued {
		s.introCued = true
		cues |= CueGameOver
	}
	for _, k := range in.Keys {
		switch k {
		case KeyE:
			s.clockStarted = false
			s.moves = StartMoves
			s.score = 0
			s.board.ClearInitialMatches(s.rng)
			s.setMode(ModeTime)
			return cues
		case KeyX:
			s.reset()
			s.setMode(ModeMenu)
			return cues
		}
	}
	return cues
}

// requestReset enters ModeResetting; the next step performs the reset.
func (s *Session) requestReset() {
	s.setMode(ModeResetting)
}

// reset discards the run: fresh board, counters and timers.
func (s *Session) reset() {
	s.board.Init(s.rng)
	s.moves = StartMoves
	s.score = 0
	s.started = false
	s.combo.Reset()
	s.sel.Clear()
	s.hint = nil
	s.swapping = false
	s.animating = false
	s.points = 0
	s.clockStarted = false
	s.pausedTotal = 0
	s.gameOverCued = false
	s.introCued = false
}

// play runs one frame of board simulation for either play mode.
func (s *Session) play(in Input) Cue {
	var cues Cue

	// 1. Selection: clicks are only taken on a settled board.
	if !s.Busy() {
		for _, pt := range in.Clicks {
			p, ok := ScreenToCell(pt)
			if !ok {
				continue
			}
			s.sel.Add(p)
			pair := s.sel.Len() == 2
			a, b, ok := s.sel.Resolve()
			if !ok {
				if pair {
					s.events.Add(s.frame, EventSelect, fmt.Sprintf("%v not next to pick", p))
				}
				continue
			}
			s.applySwap(a, b)
			cues |= CueClick
			break
		}
	}

	// 2. Match.
	MarkMatches(s.board)

	// 3. Animate.
	moving := Animate(s.board)

	// 4. Score.
	points := MatchPoints(s.board)
	if points > 0 && s.points == 0 {
		cues |= CueMatch
	}
	s.points = points
	if s.started {
		s.score += points
	}

	// 5. Revert a settled swap that matched nothing.
	reverted := false
	if s.swapping && !moving {
		if points == 0 {
			s.board.Swap(s.swap.A, s.swap.B)
			s.stats.Reverts++
			s.events.Add(s.frame, EventRevert, fmt.Sprintf("no match %v<->%v", s.swap.A, s.swap.B))
			reverted = true
		}
		s.swapping = false
	}

	// 6+7. Gravity, refill and combo on a settled board.
	refilled := 0
	if !moving {
		Compact(s.board)
		refilled = Refill(s.board, s.rng)
		if points > 0 {
			s.stats.MatchSettles++
			s.stats.Refilled += refilled
		}
		if ended := s.combo.Settle(points); ended > 1 {
			s.stats.Chains++
			s.events.Add(s.frame, EventCombo, fmt.Sprintf("Combo x%d!", ended))
		}
	}
	s.animating = moving || reverted || refilled > 0
	return cues
}

func (s *Session) applySwap(a, b Pos) {
	s.board.Swap(a, b)
	s.swap = Move{A: a, B: b}
	s.swapping = true
	s.started = true
	s.hint = nil
	if s.mode == ModeMoves {
		s.moves--
	}
	s.stats.Swaps++
	s.events.Add(s.frame, EventSwap, fmt.Sprintf("%v<->%v", a, b))
}
