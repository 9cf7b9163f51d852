package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"creaturebattle/internal/session"
)

// partyMenuRequested reports whether the party menu key was just pressed
func partyMenuRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (g *Game) openCreatureMenu() {
	g.gameState = StateMenu
	g.menuSection = 0
	g.selectedOption = 0
	g.selectedCreature = g.session.Party().ActiveIndex()
}

func (g *Game) closeCreatureMenu() {
	g.gameState = StateOverworld
	g.menuSection = 0
	g.selectedOption = 0
}

// updateCreatureMenu handles updates for the party menu. The menu only
// inspects the party; the active member changes only through battle.
func (g *Game) updateCreatureMenu() {
	size := g.session.Party().Len()

	if g.menuSection == 0 {
		// In the creature list section
		if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
			g.selectedCreature = (g.selectedCreature - 1 + size) % size
		} else if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
			g.selectedCreature = (g.selectedCreature + 1) % size
		}

		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.menuSection = 1 // Go to detail view for the selected creature
		}

		if partyMenuRequested() {
			g.closeCreatureMenu()
		}
		return
	}

	// In the creature detail section
	n := len(g.creatureMenuOptions)
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.selectedOption = (g.selectedOption - 1 + n) % n
	} else if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.selectedOption = (g.selectedOption + 1) % n
	}

	back := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		back = back || g.creatureMenuOptions[g.selectedOption] == "Back"
	}
	if back {
		g.menuSection = 0 // Return to creature list
		g.selectedOption = 0
	}
}

// drawCreatureMenu draws the party menu
func (g *Game) drawCreatureMenu(screen *ebiten.Image, snap session.Snapshot) {
	vector.DrawFilledRect(screen, 10, 10, float32(screenWidth-20), float32(screenHeight-20), color.RGBA{50, 50, 100, 240}, true)
	g.drawText(screen, fmt.Sprintf("Party (%d/6)", len(snap.Party)), 20, 20, color.White)

	if g.menuSection == 0 {
		for i, line := range snap.PartyLines {
			y := float64(50 + i*20)
			clr := color.Color(color.White)
			if i == g.selectedCreature {
				clr = selectedColor
				g.drawText(screen, ">", 20, y, selectedColor)
			}
			g.drawText(screen, line, 34, y, clr)

			if i == snap.ActiveIndex {
				g.drawText(screen, "(Active)", 300, y, color.RGBA{0, 255, 0, 255})
			}
		}
		g.drawText(screen, "Arrow keys to navigate, Space to select, Tab/ESC to exit", 20, float64(screenHeight-36), hintColor)
		return
	}

	// Creature details
	v := snap.Party[g.selectedCreature]
	drawCreature(screen, 30, 50, 48, v.Color)
	g.drawText(screen, g.narrator.AllyLabel(v), 96, 52, color.White)
	g.drawText(screen, fmt.Sprintf("HP: %d/%d", v.HP, v.MaxHP), 96, 70, color.White)
	drawHPBar(screen, 96, 88, 180, 8, v.HPFraction())

	g.drawText(screen, "Moves:", 30, 120, color.White)
	for i, move := range v.Moves {
		y := float64(140 + i*18)
		g.drawText(screen, "- "+move.Name, 40, y, color.White)
		g.drawText(screen, fmt.Sprintf("Power: %d  Accuracy: %.0f%%", move.Power, move.Accuracy*100), 180, y, color.White)
	}

	for i, option := range g.creatureMenuOptions {
		y := float64(screenHeight - 90 + i*20)
		if i == g.selectedOption {
			g.drawText(screen, ">", float64(screenWidth/2-45), y, selectedColor)
			g.drawText(screen, option, float64(screenWidth/2-30), y, selectedColor)
			continue
		}
		g.drawText(screen, option, float64(screenWidth/2-30), y, color.White)
	}
}
