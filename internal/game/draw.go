package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backdropColor  = color.RGBA{R: 24, G: 60, B: 40, A: 255}
	boardColor     = color.RGBA{R: 30, G: 80, B: 50, A: 255}
	cellLineColor  = color.RGBA{R: 45, G: 100, B: 65, A: 255}
	selectColor    = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	hintColor      = color.RGBA{R: 255, G: 200, B: 40, A: 200}
	screenTextClr  = color.RGBA{R: 255, G: 240, B: 200, A: 255}
	screenPanelClr = color.RGBA{R: 10, G: 20, B: 14, A: 235}
)

// drawBackground paints the play-screen backdrop.
func (g *Game) drawBackground(screen *ebiten.Image) {
	if g.assets.background != nil {
		screen.DrawImage(g.assets.background, nil)
		return
	}
	screen.Fill(backdropColor)
	w := float32(BoardCols * TileSize)
	h := float32(BoardRows * TileSize)
	ox, oy := float32(BoardOffset.X), float32(BoardOffset.Y)
	vector.DrawFilledRect(screen, ox, oy, w, h, boardColor, false)
	for i := 0; i <= BoardCols; i++ {
		x := ox + float32(i*TileSize)
		vector.StrokeLine(screen, x, oy, x, oy+h, 1.0, cellLineColor, false)
	}
	for i := 0; i <= BoardRows; i++ {
		y := oy + float32(i*TileSize)
		vector.StrokeLine(screen, ox, y, ox+w, y, 1.0, cellLineColor, false)
	}
}

// drawBoard renders tiles into boardBuf, which clips the ones still falling
// in from above, then blits it at BoardOffset.
func (g *Game) drawBoard(screen *ebiten.Image) {
	g.boardBuf.Clear()
	g.session.Board().Each(func(t *Tile) {
		sprite := g.assets.sprites[t.Species]
		op := &ebiten.DrawImageOptions{}
		// Cell (1,1) rests at TileSize,TileSize in board space.
		op.GeoM.Translate(float64(t.X-TileSize), float64(t.Y-TileSize))
		op.ColorScale.ScaleAlpha(float32(t.Alpha) / 255)
		g.boardBuf.DrawImage(sprite, op)
	})

	for _, p := range g.session.Selected() {
		strokeCell(g.boardBuf, p, selectColor)
	}
	if m := g.session.Hint(); m != nil {
		strokeCell(g.boardBuf, m.A, hintColor)
		strokeCell(g.boardBuf, m.B, hintColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(BoardOffset.X), float64(BoardOffset.Y))
	screen.DrawImage(g.boardBuf, op)
}

func strokeCell(dst *ebiten.Image, p Pos, c color.RGBA) {
	x := float32((p.Col - 1) * TileSize)
	y := float32((p.Row - 1) * TileSize)
	vector.StrokeRect(dst, x+1, y+1, TileSize-2, TileSize-2, 2.0, c, false)
}

// drawScreen shows a full-window card: the image when it loaded, otherwise a
// text panel with the same instructions.
func (g *Game) drawScreen(screen, img *ebiten.Image, lines ...string) {
	if img != nil {
		screen.DrawImage(img, nil)
		return
	}
	screen.Fill(backdropColor)
	const panelW, panelH = 480, 240
	px := float32(ScreenWidth-panelW) / 2
	py := float32(ScreenHeight-panelH) / 2
	vector.DrawFilledRect(screen, px, py, panelW, panelH, screenPanelClr, false)
	vector.StrokeRect(screen, px, py, panelW, panelH, 2.0, hudYellow, false)

	face := g.assets.Face(27)
	for i, line := range lines {
		drawText(screen, face, line, float64(px)+24, float64(py)+24+float64(i*40), screenTextClr)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	s := g.session
	g.drawScreen(screen, g.assets.restart, "TIME'S UP", "X - back to menu")
	face := g.assets.fallback
	drawText(screen, face, fmt.Sprintf("Final score: %d   best combo x%d", s.Stats().TimeScore, s.Combo().Max), 20, ScreenHeight-40, screenTextClr)
	drawText(screen, face, "C - copy result", 20, ScreenHeight-22, screenTextClr)
}
