package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/Garsondee/Menagerie/internal/game"
)

// settleBudget bounds the frames spent waiting for one swap to play out.
const settleBudget = 600

type runStats struct {
	runIndex int
	seed     int64
	strategy string

	frames       int
	swaps        int
	reverts      int
	matchSettles int
	refilled     int
	chains       int // combos of two or more announced
	maxCombo     int

	movesScore int
	timeScore  int
}

func main() {
	var runs int
	var maxFrames int
	var seedBase int64
	var seedStep int64
	var strategy string

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&maxFrames, "frames", 6000, "frame cap per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&strategy, "strategy", "first", "bot move choice: first, random or blind")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxFrames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if !validStrategy(strategy) {
		fmt.Printf("error: unsupported strategy %q (supported: first, random, blind)\n", strategy)
		return
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("strategy=%s runs=%d frames=%d seed_base=%d seed_step=%d\n\n", strategy, runs, maxFrames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runSession(i+1, seed, strategy, maxFrames)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

func validStrategy(s string) bool {
	switch s {
	case "first", "random", "blind":
		return true
	}
	return false
}

// runSession plays move mode to exhaustion, accepts the time-mode offer and
// plays until the clock runs out or the frame cap is hit.
func runSession(runIndex int, seed int64, strategy string, maxFrames int) runStats {
	h := game.NewHarness(game.WithSeed(seed), game.WithMode(game.ModeMoves))
	rng := rand.New(rand.NewSource(seed + 7777)) // #nosec G404 -- bot only

loop:
	for len(h.Cues) < maxFrames {
		switch h.Session.Mode() {
		case game.ModeTimeIntro:
			h.Press(game.KeyE)
		case game.ModeGameOver:
			break loop
		case game.ModeMoves, game.ModeTime:
			if _, ok := h.Settle(settleBudget); !ok {
				continue
			}
			h.Play(pickMove(h.Session.Board(), strategy, rng))
		default:
			break loop
		}
	}

	st := h.Session.Stats()
	return runStats{
		runIndex:     runIndex,
		seed:         seed,
		strategy:     strategy,
		frames:       len(h.Cues),
		swaps:        st.Swaps,
		reverts:      st.Reverts,
		matchSettles: st.MatchSettles,
		refilled:     st.Refilled,
		chains:       st.Chains,
		maxCombo:     h.Session.Combo().Max,
		movesScore:   st.MovesScore,
		timeScore:    st.TimeScore,
	}
}

// pickMove chooses the bot's next swap. When no matching swap exists, or the
// strategy is blind, it returns a random adjacent pair.
func pickMove(b *game.Board, strategy string, rng *rand.Rand) game.Move {
	if strategy != "blind" {
		moves := game.FindMoves(b)
		if len(moves) > 0 {
			if strategy == "random" {
				return moves[rng.Intn(len(moves))]
			}
			return moves[0]
		}
	}
	a := game.Pos{Col: 1 + rng.Intn(game.BoardCols-1), Row: 1 + rng.Intn(game.BoardRows-1)}
	if rng.Intn(2) == 0 {
		return game.Move{A: a, B: game.Pos{Col: a.Col + 1, Row: a.Row}}
	}
	return game.Move{A: a, B: game.Pos{Col: a.Col, Row: a.Row + 1}}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("scores: moves_mode=%d time_mode=%d\n", rs.movesScore, rs.timeScore)
	fmt.Printf("board: swaps=%d reverts=%d match_settles=%d refilled=%d\n",
		rs.swaps, rs.reverts, rs.matchSettles, rs.refilled)
	fmt.Printf("combos: chains=%d max=%d frames=%d\n\n", rs.chains, rs.maxCombo, rs.frames)
}

func printAggregate(all []runStats) {
	n := len(all)
	var movesSum, timeSum, swaps, reverts, chains, best int
	for _, rs := range all {
		movesSum += rs.movesScore
		timeSum += rs.timeScore
		swaps += rs.swaps
		reverts += rs.reverts
		chains += rs.chains
		if rs.maxCombo > best {
			best = rs.maxCombo
		}
	}
	fmt.Printf("=== Aggregate (%d runs) ===\n", n)
	fmt.Printf("avg_score: moves_mode=%.1f time_mode=%.1f\n", avg(movesSum, n), avg(timeSum, n))
	fmt.Printf("revert_rate=%.2f avg_chains=%.1f best_combo=%d\n", ratio(reverts, swaps), avg(chains, n), best)
}

func avg(sum int, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
