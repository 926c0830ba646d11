package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // sprite decoder
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// spriteSize is the edge of one animal in the sprite sheet.
const spriteSize = 49

// speciesColors tint the procedural sprites drawn when the sheet is missing.
var speciesColors = [SpeciesCount]color.RGBA{
	SpeciesBear:   {R: 150, G: 95, B: 55, A: 255},
	SpeciesBunny:  {R: 235, G: 235, B: 240, A: 255},
	SpeciesChick:  {R: 250, G: 215, B: 60, A: 255},
	SpeciesCow:    {R: 70, G: 70, B: 80, A: 255},
	SpeciesFrog:   {R: 80, G: 190, B: 80, A: 255},
	SpeciesMonkey: {R: 190, G: 130, B: 80, A: 255},
	SpeciesPig:    {R: 245, G: 150, B: 180, A: 255},
}

// Assets holds every image and font the shell draws. Missing files leave
// the corresponding field nil and the shell falls back to procedural art.
type Assets struct {
	background *ebiten.Image
	start      *ebiten.Image
	pause      *ebiten.Image
	level2     *ebiten.Image
	restart    *ebiten.Image
	sprites    [SpeciesCount]*ebiten.Image

	fontSource *text.GoTextFaceSource
	fallback   text.Face
}

// LoadAssets reads sprites and the HUD font from cfg.AssetDir. Failures are
// logged and never fatal.
func LoadAssets(cfg Config) *Assets {
	a := &Assets{fallback: text.NewGoXFace(basicfont.Face7x13)}
	load := func(name string) *ebiten.Image {
		img, err := loadImage(cfg.path("sprites", name))
		if err != nil {
			log.Printf("assets: %v", err)
			return nil
		}
		return img
	}
	a.background = load("background.png")
	a.start = load("start.png")
	a.pause = load("pause.png")
	a.level2 = load("level2.png")
	a.restart = load("restart.png")

	if sheet := load("animals.png"); sheet != nil && sheet.Bounds().Dx() >= spriteSize*SpeciesCount {
		for sp := 0; sp < SpeciesCount; sp++ {
			r := image.Rect(sp*spriteSize, 0, (sp+1)*spriteSize, spriteSize)
			a.sprites[sp] = sheet.SubImage(r).(*ebiten.Image)
		}
	} else {
		for sp := 0; sp < SpeciesCount; sp++ {
			a.sprites[sp] = proceduralSprite(Species(sp))
		}
	}

	src, err := loadFont(cfg.path("fonts", "hello.ttf"))
	if err != nil {
		log.Printf("assets: %v", err)
	}
	a.fontSource = src
	return a
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

func loadFont(path string) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return src, nil
}

// Face returns the HUD face at the given pixel size, or the bitmap fallback.
func (a *Assets) Face(size float64) text.Face {
	if a.fontSource == nil {
		return a.fallback
	}
	return &text.GoTextFace{Source: a.fontSource, Size: size}
}

// proceduralSprite draws a simple animal token: a body disc with two ears
// and eyes, tinted per species.
func proceduralSprite(sp Species) *ebiten.Image {
	img := ebiten.NewImage(spriteSize, spriteSize)
	c := speciesColors[sp]
	const mid = float32(spriteSize) / 2
	vector.DrawFilledCircle(img, mid-13, mid-13, 7, c, true)
	vector.DrawFilledCircle(img, mid+13, mid-13, 7, c, true)
	vector.DrawFilledCircle(img, mid, mid+2, 19, c, true)
	vector.StrokeCircle(img, mid, mid+2, 19, 1.5, color.RGBA{R: 20, G: 20, B: 20, A: 200}, true)
	eye := color.RGBA{R: 15, G: 15, B: 15, A: 255}
	vector.DrawFilledCircle(img, mid-7, mid-2, 3, eye, true)
	vector.DrawFilledCircle(img, mid+7, mid-2, 3, eye, true)
	return img
}
