package game

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the Ebiten shell around a Session: it snapshots input, steps the
// controller, plays cues and draws the current mode.
type Game struct {
	cfg     Config
	session *Session
	assets  *Assets
	sound   *Sound

	// Offscreen buffer for the board; clips refills falling in from above.
	boardBuf *ebiten.Image
	keyBuf   []ebiten.Key
}

// New loads assets and audio and starts a session in the menu with the
// soundtrack playing.
func New(cfg Config) *Game {
	g := &Game{
		cfg:      cfg,
		session:  NewSession(cfg.newRand(), SystemClock{}),
		assets:   LoadAssets(cfg),
		sound:    NewSound(cfg),
		boardBuf: ebiten.NewImage(BoardCols*TileSize, BoardRows*TileSize),
	}
	g.sound.Handle(CueMusicStart)
	return g
}

func (g *Game) Update() error {
	var in Input
	in, g.keyBuf = pollInput(g.keyBuf)

	cues := g.session.Step(in)
	if cues.Has(CueQuit) {
		return ebiten.Termination
	}
	g.sound.Handle(cues)
	if cues.Has(CueCopyResult) {
		g.copyResult()
	}
	return nil
}

// copyResult puts the session summary on the system clipboard.
func (g *Game) copyResult() {
	s := g.session
	if err := clipboard.WriteAll(s.Summary()); err != nil {
		log.Printf("clipboard: %v", err)
		s.Events().Add(s.Frame(), EventSystem, "clipboard unavailable")
		return
	}
	s.Events().Add(s.Frame(), EventSystem, "result copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	switch s.Mode() {
	case ModeMenu, ModeResetting:
		g.drawScreen(screen, g.assets.start, "MENAGERIE", "S - move mode", "E - time mode")
	case ModeMoves, ModeTime:
		g.drawBackground(screen)
		g.drawBoard(screen)
		g.drawHUD(screen, s.Mode())
	case ModePaused:
		g.drawScreen(screen, g.assets.pause, "PAUSED", "S - resume")
	case ModeGameOver:
		g.drawGameOver(screen)
	case ModeTimeIntro:
		g.drawScreen(screen, g.assets.level2, "OUT OF MOVES",
			fmt.Sprintf("score %d", s.Stats().MovesScore), "E - time mode", "X - menu")
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
