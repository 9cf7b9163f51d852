package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hpBackColor = color.RGBA{100, 100, 100, 255}
	hpHighColor = color.RGBA{0x22, 0xc5, 0x5e, 255}
	hpMidColor  = color.RGBA{0xea, 0xb3, 0x08, 255}
	hpLowColor  = color.RGBA{0xef, 0x44, 0x44, 255}
)

// hpBarColor picks green, yellow or red by remaining health
func hpBarColor(frac float64) color.RGBA {
	switch {
	case frac < 0.2:
		return hpLowColor
	case frac < 0.5:
		return hpMidColor
	}
	return hpHighColor
}

// drawHPBar draws a bar whose filled width is proportional to frac
func drawHPBar(screen *ebiten.Image, x, y, width, height float32, frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(screen, x, y, width, height, hpBackColor, false)
	vector.DrawFilledRect(screen, x, y, width*float32(frac), height, hpBarColor(frac), false)
}

// drawCreature draws a creature as a flat square in its species colour
func drawCreature(screen *ebiten.Image, x, y, size float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, size, size, clr, true)
	vector.StrokeRect(screen, x, y, size, size, 2, color.RGBA{15, 23, 42, 255}, true)
}
