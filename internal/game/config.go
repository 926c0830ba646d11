package game

import (
	"math/rand"
	"path/filepath"
	"time"
)

const (
	// ScreenWidth and ScreenHeight are the logical window size.
	ScreenWidth  = 790
	ScreenHeight = 475

	// musicVolume is the soundtrack level relative to effects.
	musicVolume = 0.5
)

// Config holds the run options the command line can override. Game rules
// are package constants and not configurable.
type Config struct {
	AssetDir string  // root holding sprites/, sounds/ and fonts/
	Seed     int64   // 0 picks a time-based seed
	Volume   float64 // effect volume 0..1
	Mute     bool    // skip the audio device entirely
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		AssetDir: ".",
		Volume:   1.0,
	}
}

// path joins an asset-relative path onto AssetDir.
func (c Config) path(parts ...string) string {
	return filepath.Join(append([]string{c.AssetDir}, parts...)...)
}

func (c Config) newRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
}
