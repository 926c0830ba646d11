package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a game command key, decoupled from the windowing library.
type Key int

const (
	KeyNone Key = iota
	KeyS        // start / resume
	KeyE        // time mode
	KeyP        // pause
	KeyX        // reset
	KeyC        // copy result
	KeyH        // hint
)

var keyNames = [...]string{"none", "S", "E", "P", "X", "C", "H"}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "?"
	}
	return keyNames[k]
}

var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyS: KeyS,
	ebiten.KeyE: KeyE,
	ebiten.KeyP: KeyP,
	ebiten.KeyX: KeyX,
	ebiten.KeyC: KeyC,
	ebiten.KeyH: KeyH,
}

// Input is one frame's discrete events.
type Input struct {
	Close  bool
	Keys   []Key
	Clicks []image.Point // window pixels of left-button presses
}

// pollInput snapshots the edge-triggered events Ebiten saw since last frame.
func pollInput(buf []ebiten.Key) (Input, []ebiten.Key) {
	var in Input
	in.Close = ebiten.IsWindowBeingClosed()

	buf = inpututil.AppendJustPressedKeys(buf[:0])
	for _, k := range buf {
		if key, ok := ebitenKeys[k]; ok {
			in.Keys = append(in.Keys, key)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.Clicks = append(in.Clicks, image.Point{X: mx, Y: my})
	}
	return in, buf
}
