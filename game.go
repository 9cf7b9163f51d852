package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/overworld"
	"creaturebattle/internal/session"
)

const (
	mapWidth     = 20 * overworld.TileSize
	mapHeight    = 14 * overworld.TileSize
	hudHeight    = 64
	screenWidth  = mapWidth
	screenHeight = mapHeight + hudHeight
)

// Game state constants
const (
	StateMainMenu = iota
	StateOverworld
	StateMenu
)

// Game is the main game struct. It owns no game rules itself: it polls
// input into the session and draws the session's snapshots.
type Game struct {
	session    *session.State
	newSession func() *session.State
	narrator   *battle.Narrator
	gameState  int
	fontFace   text.Face

	menuOptions    []string
	selectedOption int

	battleOptions  []string
	selectedAction int

	creatureMenuOptions []string
	selectedCreature    int
	menuSection         int
}

// NewGame creates a new game instance. newSession is called for every
// "New Game" so each run starts from the starter party.
func NewGame(newSession func() *session.State, narrator *battle.Narrator) *Game {
	return &Game{
		newSession:          newSession,
		narrator:            narrator,
		gameState:           StateMainMenu,
		fontFace:            text.NewGoXFace(basicfont.Face7x13),
		menuOptions:         []string{"New Game", "Exit"},
		battleOptions:       []string{"", "", "Capture", "Run"},
		creatureMenuOptions: []string{"View Stats", "Back"},
	}
}

// Update updates the game state
func (g *Game) Update() error {
	switch g.gameState {
	case StateMainMenu:
		return g.updateMainMenu()
	case StateOverworld:
		if g.session.Mode() == session.ModeOverworld && partyMenuRequested() {
			g.openCreatureMenu()
			return nil
		}
		g.session.Update(session.Input{
			Dir:    readDirection(),
			Action: g.readBattleAction(),
		})
	case StateMenu:
		g.updateCreatureMenu()
	}
	return nil
}

// Draw draws the game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0f, 0x17, 0x2a, 0xff})

	switch g.gameState {
	case StateMainMenu:
		g.drawMainMenu(screen)
	case StateOverworld:
		snap := g.session.Snapshot()
		g.drawOverworld(screen, snap)
		if snap.Battle != nil {
			g.drawBattle(screen, snap)
		}
	case StateMenu:
		snap := g.session.Snapshot()
		g.drawOverworld(screen, snap)
		g.drawCreatureMenu(screen, snap)
	}
}

// Layout implements ebiten.Game's Layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// drawText draws a single line with its top-left corner at (x, y)
func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.fontFace, op)
}
