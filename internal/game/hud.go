package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var hudYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// HUD column positions, matching the background art.
const (
	hudLabelX = 500
	hudValueX = 600
	hudTimeY  = 150
	hudMovesY = 160
	hudScoreY = 190
	hudLogY   = 250
	hudLogW   = 270
)

func drawText(dst *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawHUD renders the counters for the active play mode and the event log.
func (g *Game) drawHUD(screen *ebiten.Image, mode Mode) {
	s := g.session
	big := g.assets.Face(30)
	small := g.assets.Face(27)

	switch mode {
	case ModeMoves:
		drawText(screen, big, "Moves: ", hudLabelX, hudMovesY, hudYellow)
		drawText(screen, big, fmt.Sprint(s.MovesLeft()), hudValueX, hudMovesY, hudYellow)
	case ModeTime:
		secs := int(s.TimeLeft().Seconds())
		drawText(screen, small, fmt.Sprintf("Time Left: %ds", secs), hudLabelX, hudTimeY, hudYellow)
	}
	drawText(screen, small, "Score: ", hudLabelX, hudScoreY, hudYellow)
	drawText(screen, small, fmt.Sprint(s.Score()), hudValueX, hudScoreY, hudYellow)

	c := s.Combo()
	if c.Count > 1 {
		drawText(screen, g.assets.fallback, fmt.Sprintf("combo x%d", c.Count), hudLabelX, hudScoreY+34, hudYellow)
	}
	s.Events().Draw(screen, g.assets.fallback, hudLabelX, hudLogY, hudLogW)
}
