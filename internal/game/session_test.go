package game

import (
	"fmt"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countCue counts the frames whose cues include c.
func countCue(h *Harness, c Cue) int {
	n := 0
	for _, got := range h.Cues {
		if got.Has(c) {
			n++
		}
	}
	return n
}

func TestSession_MenuStartsMoveMode(t *testing.T) {
	h := NewHarness()
	require.Equal(t, ModeMenu, h.Session.Mode())

	cues := h.Press(KeyS)
	assert.Equal(t, ModeMoves, h.Session.Mode())
	assert.True(t, cues.Has(CueMatch))
	assert.Equal(t, StartMoves, h.Session.MovesLeft())
}

func TestSession_MenuStartsTimeModeWithoutRuns(t *testing.T) {
	h := NewHarness(WithMode(ModeTime))
	assert.Equal(t, ModeTime, h.Session.Mode())
	assert.False(t, HasRun(h.Session.Board()))
}

func TestSession_AdjacentSelectionSwaps(t *testing.T) {
	h := NewHarness(WithLayout(checkerLayout()), WithMode(ModeMoves))

	h.Click(Pos{2, 2})
	require.Len(t, h.Session.Selected(), 1)
	cues := h.Click(Pos{2, 3})

	assert.True(t, cues.Has(CueClick))
	assert.Empty(t, h.Session.Selected())
	assert.Equal(t, StartMoves-1, h.Session.MovesLeft())
	assert.True(t, h.Session.Busy())
}

func TestSession_NonAdjacentSelectionKeepsSecondPick(t *testing.T) {
	h := NewHarness(WithLayout(checkerLayout()), WithMode(ModeMoves))

	h.Click(Pos{2, 2})
	cues := h.Click(Pos{5, 5})

	assert.False(t, cues.Has(CueClick))
	assert.Equal(t, []Pos{{5, 5}}, h.Session.Selected())
	assert.Equal(t, StartMoves, h.Session.MovesLeft())
	assert.Len(t, h.Session.Events().Filter(EventSelect), 1)
}

func TestSession_OffBoardClickIgnored(t *testing.T) {
	h := NewHarness(WithLayout(checkerLayout()), WithMode(ModeMoves))
	h.Step(Input{Clicks: []image.Point{{X: 700, Y: 400}}})
	assert.Empty(t, h.Session.Selected())
}

func TestSession_SwapWithoutMatchReverts(t *testing.T) {
	h := NewHarness(WithLayout(checkerLayout()), WithMode(ModeMoves))
	before := h.Session.Board().Layout()

	h.Play(Move{A: Pos{1, 1}, B: Pos{2, 1}})
	_, ok := h.Settle(200)
	require.True(t, ok)

	assert.Equal(t, before, h.Session.Board().Layout())
	assert.Equal(t, 1, h.Session.Stats().Reverts)
	assert.Equal(t, 0, h.Session.Score())
	assert.Equal(t, StartMoves-1, h.Session.MovesLeft(), "a reverted swap still costs a move")
	h.Session.Board().Each(func(tl *Tile) {
		assert.True(t, tl.AtTarget(), "tile %d,%d not at rest", tl.Col, tl.Row)
	})
}

func TestSession_MatchingSwapScoresAndRefills(t *testing.T) {
	h := NewHarness(WithLayout(oneMoveLayout()), WithMode(ModeMoves))

	cues := h.Play(Move{A: Pos{3, 1}, B: Pos{3, 2}})
	assert.True(t, cues.Has(CueMatch))
	_, ok := h.Settle(1000)
	require.True(t, ok)

	s := h.Session
	assert.Greater(t, s.Score(), 0)
	assert.Zero(t, s.Stats().Reverts)
	assert.GreaterOrEqual(t, s.Stats().MatchSettles, 1)
	assert.GreaterOrEqual(t, s.Stats().Refilled, 3)
	assert.GreaterOrEqual(t, s.Combo().Max, 1)
	assert.Zero(t, s.Combo().Count, "combo resets on the first settle without matches")
	assert.False(t, HasRun(s.Board()))
	s.Board().Each(func(tl *Tile) {
		assert.Zero(t, tl.MatchCount)
		assert.Equal(t, 255, tl.Alpha)
	})
}

func TestSession_ScoreNeedsPlayerSwap(t *testing.T) {
	l := checkerLayout()
	l[0][0], l[0][1], l[0][2] = SpeciesBear, SpeciesBear, SpeciesBear
	h := NewHarness(WithLayout(l), WithMode(ModeMoves))

	_, ok := h.Settle(1000)
	require.True(t, ok)
	assert.GreaterOrEqual(t, h.Session.Stats().MatchSettles, 1, "the pre-placed run should still clear")
	assert.Zero(t, h.Session.Score())
}

func TestSession_ClicksIgnoredWhileBusy(t *testing.T) {
	h := NewHarness(WithLayout(oneMoveLayout()), WithMode(ModeMoves))
	h.Play(Move{A: Pos{3, 1}, B: Pos{3, 2}})
	require.True(t, h.Session.Busy())

	h.Click(Pos{7, 7})
	assert.Empty(t, h.Session.Selected())
}

func TestSession_MovesExhaustedGoesToTimeIntro(t *testing.T) {
	h := NewHarness(WithLayout(checkerLayout()), WithMode(ModeMoves))

	for i := 0; i < StartMoves; i++ {
		require.Equal(t, ModeMoves, h.Session.Mode())
		h.Play(Move{A: Pos{1, 1}, B: Pos{2, 1}})
		h.Settle(200)
	}
	h.Idle(5)

	assert.Equal(t, ModeTimeIntro, h.Session.Mode())
	assert.Equal(t, 1, countCue(h, CueGameOver), "intro plays its sting once")
	assert.Zero(t, countCue(h, CueMusicStop))
	for _, e := range h.Session.Events().Filter(EventMode) {
		assert.NotContains(t, e.Message, ModeGameOver.String())
	}
}

func TestSession_TimeIntroOffersTimeOrMenu(t *testing.T) {
	h := NewHarness(WithLayout(checkerLayout()), WithMode(ModeMoves))
	h.Session.moves = 0
	h.Idle(1)
	require.Equal(t, ModeTimeIntro, h.Session.Mode())

	h.Press(KeyE)
	assert.Equal(t, ModeTime, h.Session.Mode())
	assert.Equal(t, StartMoves, h.Session.MovesLeft())
	assert.Zero(t, h.Session.Score())

	h2 := NewHarness(WithMode(ModeMoves))
	h2.Session.moves = 0
	h2.Idle(1)
	h2.Press(KeyX)
	assert.Equal(t, ModeMenu, h2.Session.Mode())
	assert.Equal(t, StartMoves, h2.Session.MovesLeft())
}

func TestSession_TimeUpEndsGameAndStopsMusicOnce(t *testing.T) {
	h := NewHarness(WithMode(ModeTime))
	h.Idle(1)
	assert.Equal(t, TimeLimit, h.Session.TimeLeft(), "countdown starts on the first time-mode frame")

	h.Clock.Advance(TimeLimit)
	h.Idle(10)

	assert.Equal(t, ModeGameOver, h.Session.Mode())
	assert.Equal(t, 1, countCue(h, CueMusicStop))
	assert.Equal(t, 1, countCue(h, CueGameOver))
	assert.Zero(t, h.Session.TimeLeft())
}

func TestSession_PauseFreezesCountdown(t *testing.T) {
	h := NewHarness(WithMode(ModeTime))
	h.Idle(1)
	h.Press(KeyP)
	require.Equal(t, ModePaused, h.Session.Mode())
	assert.Equal(t, CueMusicPause, h.Cues[len(h.Cues)-1])
	frozen := h.Session.TimeLeft()

	h.Clock.Advance(20 * time.Second)
	h.Idle(30)
	assert.Equal(t, frozen, h.Session.TimeLeft(), "countdown moves while paused")

	cues := h.Press(KeyS)
	assert.True(t, cues.Has(CueMusicResume))
	assert.Equal(t, ModeTime, h.Session.Mode())
	assert.InDelta(t, float64(frozen), float64(h.Session.TimeLeft()), float64(2*FrameDuration))

	// 20s of pause must not end a 30s round after another 15s of play.
	h.Clock.Advance(15 * time.Second)
	h.Idle(1)
	assert.Equal(t, ModeTime, h.Session.Mode())
}

func TestSession_PauseResumesMoveMode(t *testing.T) {
	h := NewHarness(WithMode(ModeMoves))
	h.Press(KeyP)
	h.Idle(3)
	h.Press(KeyS)
	assert.Equal(t, ModeMoves, h.Session.Mode())
}

func TestSession_ResetReturnsToMenuWithFreshBoard(t *testing.T) {
	h := NewHarness(WithLayout(oneMoveLayout()), WithMode(ModeMoves))
	h.Play(Move{A: Pos{3, 1}, B: Pos{3, 2}})
	h.Settle(1000)
	require.Greater(t, h.Session.Score(), 0)

	h.Press(KeyX)
	assert.Equal(t, ModeResetting, h.Session.Mode())
	cues := h.Idle(1)

	s := h.Session
	assert.True(t, cues.Has(CueMusicStart))
	assert.Equal(t, ModeMenu, s.Mode())
	assert.Zero(t, s.Score())
	assert.Equal(t, StartMoves, s.MovesLeft())
	assert.Zero(t, s.Combo().Max)
	assert.False(t, HasRun(s.Board()))
	assert.False(t, s.Busy())
}

func TestSession_GameOverCopyAndReset(t *testing.T) {
	h := NewHarness(WithMode(ModeTime))
	h.Idle(1)
	h.Clock.Advance(TimeLimit)
	h.Idle(2)
	require.Equal(t, ModeGameOver, h.Session.Mode())

	assert.True(t, h.Press(KeyC).Has(CueCopyResult))
	assert.Contains(t, h.Session.Summary(), "MENAGERIE")

	h.Press(KeyX)
	h.Idle(1)
	assert.Equal(t, ModeMenu, h.Session.Mode())
	assert.Equal(t, TimeLimit, h.Session.TimeLeft())
}

func TestSession_HintIsPlayable(t *testing.T) {
	h := NewHarness(WithLayout(oneMoveLayout()), WithMode(ModeMoves))
	h.Press(KeyH)

	m := h.Session.Hint()
	require.NotNil(t, m)
	scratch := *h.Session.Board()
	scratch.Swap(m.A, m.B)
	assert.True(t, HasRun(&scratch))
}

func TestSession_CloseQuits(t *testing.T) {
	h := NewHarness(WithMode(ModeMoves))
	assert.Equal(t, CueQuit, h.Step(Input{Close: true}))
}

func TestSession_DeterministicForSeed(t *testing.T) {
	a := NewHarness(WithSeed(77))
	b := NewHarness(WithSeed(77))
	assert.Equal(t, a.Session.Board().Layout(), b.Session.Board().Layout())
}

// cascadeLayout clears a pig row on the bottom edge and drops a frog into a
// second row: swapping (3,7)<->(3,8) chains at least two settles.
func cascadeLayout() [BoardRows][BoardCols]Species {
	l := checkerLayout()
	l[7][0], l[7][1], l[7][2], l[7][3] = SpeciesPig, SpeciesPig, SpeciesFrog, SpeciesFrog
	l[6][1] = SpeciesFrog
	l[6][2] = SpeciesPig
	return l
}

func TestSession_CascadeCountsOneComboPerSettle(t *testing.T) {
	h := NewHarness(WithLayout(cascadeLayout()), WithMode(ModeMoves))

	h.Play(Move{A: Pos{3, 7}, B: Pos{3, 8}})
	_, ok := h.Settle(3000)
	require.True(t, ok)

	s := h.Session
	c := s.Combo()
	assert.GreaterOrEqual(t, c.Max, 2)
	assert.Zero(t, c.Count)
	assert.Equal(t, s.Stats().MatchSettles, c.Max, "combo advances once per settle that matched")
	assert.Equal(t, 1, s.Stats().Chains)

	combos := s.Events().Filter(EventCombo)
	require.Len(t, combos, 1)
	assert.Equal(t, fmt.Sprintf("Combo x%d!", c.Max), combos[0].Message)
}

func TestSession_ChainsOutliveEventLog(t *testing.T) {
	h := NewHarness(WithLayout(cascadeLayout()), WithMode(ModeMoves))
	h.Play(Move{A: Pos{3, 7}, B: Pos{3, 8}})
	h.Settle(3000)

	for i := 0; i < eventLogCapacity; i++ {
		h.Session.Events().Add(h.Session.Frame(), EventSystem, "filler")
	}
	assert.Empty(t, h.Session.Events().Filter(EventCombo))
	assert.Equal(t, 1, h.Session.Stats().Chains)
}

func TestSession_ResetKeyDefersToResettingStep(t *testing.T) {
	h := NewHarness(WithLayout(oneMoveLayout()), WithMode(ModeMoves))
	before := h.Session.Board().Layout()

	h.Press(KeyX)
	require.Equal(t, ModeResetting, h.Session.Mode())
	assert.Equal(t, before, h.Session.Board().Layout(), "board is rebuilt by the resetting step")

	h.Idle(1)
	assert.Equal(t, ModeMenu, h.Session.Mode())
	assert.False(t, HasRun(h.Session.Board()))
}
