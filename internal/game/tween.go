package game

const (
	// MaxTweenSpeed is the largest per-axis pixel step a tile takes per frame.
	MaxTweenSpeed = 10

	// FadeStep is the alpha lost per frame by a matched tile.
	FadeStep = 10

	// FadeFloor is the alpha at which a matched tile stops fading.
	FadeFloor = 10
)

// AtTarget reports whether the tile rests on its logical cell.
func (t *Tile) AtTarget() bool {
	tx, ty := t.Target()
	return t.X == tx && t.Y == ty
}

// Fading reports whether a matched tile still has alpha above the floor.
func (t *Tile) Fading() bool {
	return t.MatchCount > 0 && t.Alpha > FadeFloor
}

// approach moves cur toward target by at most step.
func approach(cur, target, step int) int {
	d := target - cur
	switch {
	case d > step:
		return cur + step
	case d < -step:
		return cur - step
	default:
		return target
	}
}

// Tween advances every tile one frame toward its resting position and
// reports whether any tile is still short of it afterwards.
func Tween(b *Board) bool {
	moving := false
	b.Each(func(t *Tile) {
		tx, ty := t.Target()
		t.X = approach(t.X, tx, MaxTweenSpeed)
		t.Y = approach(t.Y, ty, MaxTweenSpeed)
		if !t.AtTarget() {
			moving = true
		}
	})
	return moving
}

// Fade lowers the alpha of matched tiles by one step and reports whether any
// tile faded this frame.
func Fade(b *Board) bool {
	fading := false
	b.Each(func(t *Tile) {
		if t.Fading() {
			t.Alpha -= FadeStep
			fading = true
		}
	})
	return fading
}

// Animate runs one animation frame: tiles travel first, and matched tiles
// only fade once nothing is travelling. It returns true while the board is
// not settled.
func Animate(b *Board) bool {
	if Tween(b) {
		return true
	}
	return Fade(b)
}
