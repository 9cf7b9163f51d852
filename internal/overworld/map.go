package overworld

// Tile is a single map cell, stored as the byte used in the map rows
type Tile byte

const (
	TileWall  Tile = 'W'
	TileGrass Tile = 'G'
	TileSand  Tile = 'T'
	TilePath  Tile = '.'
)

// TileSize is the edge length of a tile in pixels
const TileSize = 32

var defaultRows = []string{
	"WWWWWWWWWWWWWWWWWWWW",
	"WGGGGGGGGGGGGGGGGGGW",
	"WG.....G....G.....GW",
	"WG.GGGGG....GGGG..GW",
	"WG.G....GGGG....G.GW",
	"WG.G.GGG....GGG.G.GW",
	"WG...G..TTTT..G...GW",
	"WGGGGG..TTTT..GGGGGW",
	"WG...G..TTTT..G...GW",
	"WG.G.GGG....GGG.G.GW",
	"WG.G....GGGG....G.GW",
	"WG..GGGG....GGGG..GW",
	"WGGGGGGGGGGGGGGGGGGW",
	"WWWWWWWWWWWWWWWWWWWW",
}

// Map represents the game world
type Map struct {
	rows   []string
	width  int
	height int
}

// Default returns the single hardcoded world map
func Default() *Map {
	return New(defaultRows)
}

// New builds a map from equal-length rows of tile bytes.
func New(rows []string) *Map {
	m := &Map{rows: rows, height: len(rows)}
	if len(rows) > 0 {
		m.width = len(rows[0])
	}
	return m
}

// Width returns the map width in tiles
func (m *Map) Width() int {
	return m.width
}

// Height returns the map height in tiles
func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether (x, y) lies on the map
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// At returns the tile at (x, y). Out of bounds reads as wall.
func (m *Map) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return Tile(m.rows[y][x])
}

// Walkable reports whether the player may stand on (x, y)
func (m *Map) Walkable(x, y int) bool {
	return m.At(x, y) != TileWall
}

// Encounter decides whether standing on (x, y) triggers a wild battle
// for the given uniform draw.
func (m *Map) Encounter(x, y int, draw, rate float64) bool {
	return m.At(x, y) == TileGrass && draw <= rate
}
