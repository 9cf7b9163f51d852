package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"creaturebattle/internal/overworld"
)

var (
	playerColor    = color.RGBA{0x1d, 0x4e, 0xd8, 0xff}
	indicatorColor = color.White
)

// readDirection polls held movement keys. Up wins over down, down over
// left, left over right.
func readDirection() overworld.Direction {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		return overworld.DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		return overworld.DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		return overworld.DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		return overworld.DirRight
	}
	return overworld.DirNone
}

// drawPlayer draws the player sprite inset in its tile with a facing marker
func drawPlayer(screen *ebiten.Image, p overworld.Player) {
	const inset = 4
	ts := float32(overworld.TileSize)
	px := float32(p.X) * ts
	py := float32(p.Y) * ts

	vector.DrawFilledRect(screen, px+inset, py+inset, ts-2*inset, ts-2*inset, playerColor, true)

	// Draw player direction indicator
	size := ts / 4
	var ix, iy float32
	switch p.Facing {
	case overworld.DirUp:
		ix, iy = px+ts/2-size/2, py+inset
	case overworld.DirDown:
		ix, iy = px+ts/2-size/2, py+ts-inset-size
	case overworld.DirLeft:
		ix, iy = px+inset, py+ts/2-size/2
	case overworld.DirRight:
		ix, iy = px+ts-inset-size, py+ts/2-size/2
	default:
		return
	}
	vector.DrawFilledRect(screen, ix, iy, size, size, indicatorColor, true)
}
