package overworld

// Direction is a 4-way movement intent
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the tile offset for one step in the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// StartX and StartY are the player's spawn tile.
const (
	StartX = 2
	StartY = 2
)

// Player represents the player's character
type Player struct {
	// Current position in tiles
	X, Y int
	// Last direction pressed, kept for the facing indicator
	Facing Direction
	// Ticks left before another step is accepted
	StepTicks int
}

// NewPlayer places a player on the spawn tile facing down
func NewPlayer() Player {
	return Player{X: StartX, Y: StartY, Facing: DirDown}
}

// Step processes one tick of movement input. While the debounce counter is
// running it only counts down. A successful step re-arms the debounce with
// stepTicks and reports true.
func (p *Player) Step(m *Map, dir Direction, stepTicks int) bool {
	if p.StepTicks > 0 {
		p.StepTicks--
		return false
	}
	if dir == DirNone {
		return false
	}
	p.Facing = dir

	dx, dy := dir.Delta()
	nx, ny := p.X+dx, p.Y+dy
	if !m.Walkable(nx, ny) {
		return false
	}

	p.X, p.Y = nx, ny
	p.StepTicks = stepTicks
	return true
}
