package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/session"
)

const battleLogLines = 3

var battleHotkeys = []struct {
	key    ebiten.Key
	action battle.Action
}{
	{ebiten.Key1, battle.ActionMove1},
	{ebiten.Key2, battle.ActionMove2},
	{ebiten.Key3, battle.ActionCapture},
	{ebiten.Key4, battle.ActionFlee},
	{ebiten.KeyC, battle.ActionCapture},
	{ebiten.KeyR, battle.ActionFlee},
}

var (
	overlayColor  = color.RGBA{15, 23, 42, 230}
	selectedColor = color.RGBA{255, 255, 0, 255}
	lockedColor   = color.RGBA{100, 116, 139, 255}
)

// readBattleAction polls the action hotkeys and the action cursor. It
// returns ActionNone outside battle.
func (g *Game) readBattleAction() battle.Action {
	if g.session.Mode() != session.ModeBattle {
		g.selectedAction = 0
		return battle.ActionNone
	}

	for _, hk := range battleHotkeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			return hk.action
		}
	}

	n := len(g.battleOptions)
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.selectedAction = (g.selectedAction - 1 + n) % n
	} else if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.selectedAction = (g.selectedAction + 1) % n
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return battle.ActionMove1 + battle.Action(g.selectedAction)
	}
	return battle.ActionNone
}

// drawBattle draws the battle overlay on top of the map
func (g *Game) drawBattle(screen *ebiten.Image, snap session.Snapshot) {
	b := snap.Battle
	vector.DrawFilledRect(screen, 32, 32, mapWidth-64, mapHeight-64, overlayColor, false)

	// Wild creature, top right
	const spriteSize = 64
	enemyX, enemyY := float32(mapWidth-64-160), float32(96)
	drawCreature(screen, enemyX, enemyY, spriteSize, b.Wild.Color)
	g.drawCombatant(screen, g.narrator.WildLabel(b.Wild), b.Wild, float64(enemyX-220), float64(enemyY))

	// Active party member, bottom left
	allyX, allyY := float32(96), float32(208)
	drawCreature(screen, allyX, allyY, spriteSize, b.Ally.Color)
	g.drawCombatant(screen, g.narrator.AllyLabel(b.Ally), b.Ally, float64(allyX+spriteSize+24), float64(allyY))

	// Battle log, newest last
	lines := snap.BattleLog
	if len(lines) > battleLogLines {
		lines = lines[len(lines)-battleLogLines:]
	}
	for i, line := range lines {
		g.drawText(screen, line, 56, float64(296+i*16), hudTextColor)
	}

	// Action menu
	g.battleOptions[0] = b.Ally.Moves[0].Name
	g.battleOptions[1] = b.Ally.Moves[1].Name
	for i, option := range g.battleOptions {
		x := float64(56 + i*132)
		y := float64(mapHeight - 72)
		clr := color.Color(hudTextColor)
		switch {
		case b.Locked:
			clr = lockedColor
		case i == g.selectedAction:
			clr = selectedColor
			g.drawText(screen, ">", x-12, y, selectedColor)
		}
		g.drawText(screen, fmt.Sprintf("%d %s", i+1, option), x, y, clr)
	}
	g.drawText(screen, "Up/Down + Space, or keys 1-4  (C capture, R run)", 56, float64(mapHeight-52), hintColor)
}

// drawCombatant draws a label, a health bar and the numeric health
func (g *Game) drawCombatant(screen *ebiten.Image, label string, v battle.MonsterView, x, y float64) {
	const barWidth, barHeight = 180, 8
	g.drawText(screen, label, x, y, hudTextColor)
	drawHPBar(screen, float32(x), float32(y+20), barWidth, barHeight, v.HPFraction())
	g.drawText(screen, fmt.Sprintf("%d / %d", v.HP, v.MaxHP), x, y+34, hudTextColor)
}
