package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"creaturebattle/internal/overworld"
	"creaturebattle/internal/session"
)

var (
	gridLineColor = color.RGBA{15, 23, 42, 30}
	hudColor      = color.RGBA{0x1e, 0x29, 0x3b, 0xff}
	hudTextColor  = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
	hintColor     = color.RGBA{0x94, 0xa3, 0xb8, 0xff}
)

// tileColor returns the fill for a map tile
func tileColor(t overworld.Tile) color.RGBA {
	switch t {
	case overworld.TileWall:
		return color.RGBA{0x33, 0x41, 0x55, 0xff} // Slate
	case overworld.TileGrass:
		return color.RGBA{0x22, 0xc5, 0x5e, 0xff} // Tall grass
	case overworld.TileSand:
		return color.RGBA{0xfa, 0xcc, 0x15, 0xff} // Sand
	default:
		return color.RGBA{0x86, 0xef, 0xac, 0xff} // Path
	}
}

// drawOverworld draws the map, the player and the status bar
func (g *Game) drawOverworld(screen *ebiten.Image, snap session.Snapshot) {
	g.drawMap(screen)
	drawPlayer(screen, snap.Player)
	g.drawHUD(screen, snap)
}

// drawMap draws every tile with a faint grid outline
func (g *Game) drawMap(screen *ebiten.Image) {
	world := g.session.World()
	ts := float32(overworld.TileSize)

	for y := range world.Height() {
		for x := range world.Width() {
			px, py := float32(x)*ts, float32(y)*ts
			vector.DrawFilledRect(screen, px, py, ts, ts, tileColor(world.At(x, y)), false)
			vector.StrokeRect(screen, px, py, ts, ts, 1, gridLineColor, false)
		}
	}
}

// drawHUD draws the objective, the latest message and the active member
// below the map.
func (g *Game) drawHUD(screen *ebiten.Image, snap session.Snapshot) {
	vector.DrawFilledRect(screen, 0, mapHeight, screenWidth, hudHeight, hudColor, false)

	g.drawText(screen, snap.Objective, 10, mapHeight+6, hudTextColor)
	if snap.Message != "" {
		g.drawText(screen, snap.Message, 10, mapHeight+24, hudTextColor)
	}
	if len(snap.PartyLines) > 0 {
		g.drawText(screen, "> "+snap.PartyLines[snap.ActiveIndex], 10, mapHeight+42, hintColor)
	}
	if snap.Mode == session.ModeOverworld {
		g.drawText(screen, "Arrows/WASD move  Tab party", screenWidth-200, mapHeight+42, hintColor)
	}
}
