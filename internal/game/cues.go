package game

import "strings"

// Cue is a set of presentation side effects requested by one frame.
type Cue uint16

const (
	CueMatch Cue = 1 << iota
	CueClick
	CueGameOver
	CueMusicStart
	CueMusicStop
	CueMusicPause
	CueMusicResume
	CueCopyResult
	CueQuit
)

var cueNames = []string{"match", "click", "gameover", "music-start", "music-stop", "music-pause", "music-resume", "copy", "quit"}

// Has reports whether every bit of x is set.
func (c Cue) Has(x Cue) bool {
	return c&x == x
}

func (c Cue) String() string {
	var parts []string
	for i, name := range cueNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
