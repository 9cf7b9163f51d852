package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// updateMainMenu handles main menu state updates
func (g *Game) updateMainMenu() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.selectedOption = (g.selectedOption - 1 + len(g.menuOptions)) % len(g.menuOptions)
	} else if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.selectedOption = (g.selectedOption + 1) % len(g.menuOptions)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch g.selectedOption {
		case 0: // New Game
			g.session = g.newSession()
			g.selectedAction = 0
			g.gameState = StateOverworld
		case 1: // Exit
			return ebiten.Termination
		}
	}
	return nil
}

// drawMainMenu draws the main menu
func (g *Game) drawMainMenu(screen *ebiten.Image) {
	g.drawText(screen, "Creaturebattle", float64(screenWidth/2-50), float64(screenHeight/4), color.White)

	for i, option := range g.menuOptions {
		y := float64(screenHeight/2 + i*20)
		if i == g.selectedOption {
			g.drawText(screen, ">", float64(screenWidth/2-45), y, selectedColor)
			g.drawText(screen, option, float64(screenWidth/2-30), y, selectedColor)
			continue
		}
		g.drawText(screen, option, float64(screenWidth/2-30), y, color.White)
	}

	g.drawText(screen, "Arrow keys to navigate, Space/Enter to select", 10, float64(screenHeight-25), color.RGBA{200, 200, 200, 255})
}
