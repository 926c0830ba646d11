package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Menagerie/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	flag.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "directory holding sprites/, sounds/ and fonts/")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "board RNG seed (0 = time based)")
	flag.Float64Var(&cfg.Volume, "volume", cfg.Volume, "sound effect volume 0..1")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable audio")
	flag.Parse()

	ebiten.SetWindowTitle("MENAGERIE")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
