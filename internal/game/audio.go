package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Sound plays the effect and music cues. Any player that failed to load is
// nil and its cues are dropped.
type Sound struct {
	ctx      *audio.Context
	match    *audio.Player
	click    *audio.Player
	gameOver *audio.Player
	music    *audio.Player
}

// NewSound opens the audio device and loads every track. With cfg.Mute no
// device is opened.
func NewSound(cfg Config) *Sound {
	s := &Sound{}
	if cfg.Mute {
		return s
	}
	s.ctx = audio.NewContext(sampleRate)
	load := func(name string) *audio.Player {
		p, err := s.loadEffect(cfg.path("sounds", name))
		if err != nil {
			log.Printf("audio: %v", err)
			return nil
		}
		p.SetVolume(cfg.Volume)
		return p
	}
	s.match = load("match.wav")
	s.click = load("click.wav")
	s.gameOver = load("gameover.wav")

	music, err := s.loadLoop(cfg.path("sounds", "Rainbows.wav"))
	if err != nil {
		log.Printf("audio: background music: %v", err)
	} else {
		music.SetVolume(musicVolume)
		s.music = music
	}
	return s
}

func (s *Sound) decode(path string) (*wav.Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return stream, nil
}

func (s *Sound) loadEffect(path string) (*audio.Player, error) {
	stream, err := s.decode(path)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read samples %s: %w", path, err)
	}
	return s.ctx.NewPlayerFromBytes(pcm), nil
}

func (s *Sound) loadLoop(path string) (*audio.Player, error) {
	stream, err := s.decode(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := s.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	return p, nil
}

// Handle plays the audio side of a frame's cues.
func (s *Sound) Handle(c Cue) {
	if c.Has(CueMatch) && s.match != nil && !s.match.IsPlaying() {
		restart(s.match)
	}
	if c.Has(CueClick) {
		restart(s.click)
	}
	if c.Has(CueGameOver) {
		restart(s.gameOver)
	}
	if s.music == nil {
		return
	}
	switch {
	case c.Has(CueMusicStop):
		s.music.Pause()
		if err := s.music.Rewind(); err != nil {
			log.Printf("audio: rewind music: %v", err)
		}
	case c.Has(CueMusicPause):
		s.music.Pause()
	case c.Has(CueMusicStart), c.Has(CueMusicResume):
		s.music.Play()
	}
}

func restart(p *audio.Player) {
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind: %v", err)
		return
	}
	p.Play()
}
