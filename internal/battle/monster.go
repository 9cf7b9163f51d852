package battle

import (
	"image/color"

	"github.com/google/uuid"
)

const (
	hpPerLevel  = 3
	victoryHeal = 8

	minWildLevel    = 3
	wildLevelSpread = 4
)

// Monster is a living instance of a species
type Monster struct {
	ID      uuid.UUID
	Species string
	Color   color.RGBA
	Level   int
	HP      int
	MaxHP   int
	Moves   [2]Move
}

// Spawn creates a full-health monster of the given species and level
func Spawn(s Species, level int) *Monster {
	maxHP := s.BaseHP + level*hpPerLevel
	return &Monster{
		ID:      uuid.New(),
		Species: s.Name,
		Color:   s.Color,
		Level:   level,
		HP:      maxHP,
		MaxHP:   maxHP,
		Moves:   s.Moves,
	}
}

// SpawnWild picks a species uniformly from the roster at a level in 3..6.
func SpawnWild(src Source, roster []Species) *Monster {
	s := roster[intn(src, len(roster))]
	return Spawn(s, minWildLevel+intn(src, wildLevelSpread))
}

// Fainted reports whether the monster has no health left
func (m *Monster) Fainted() bool {
	return m.HP <= 0
}

// TakeDamage lowers health by n, never below zero, and returns the new value.
func (m *Monster) TakeDamage(n int) int {
	m.HP = clamp(m.HP-n, 0, m.MaxHP)
	return m.HP
}

// HealFull restores health to the maximum
func (m *Monster) HealFull() {
	m.HP = m.MaxHP
}

// LevelUp applies the reward for defeating an opponent.
func (m *Monster) LevelUp() {
	m.Level++
	m.MaxHP += hpPerLevel
	m.HP = clamp(m.HP+victoryHeal, 0, m.MaxHP)
}

// Clone returns an independent copy sharing the same ID
func (m *Monster) Clone() *Monster {
	c := *m
	return &c
}

// View returns an immutable snapshot for observers
func (m *Monster) View() MonsterView {
	return MonsterView{
		ID:      m.ID,
		Species: m.Species,
		Color:   m.Color,
		Level:   m.Level,
		HP:      m.HP,
		MaxHP:   m.MaxHP,
		Moves:   m.Moves,
	}
}

// MonsterView is a read-only copy of a monster's state
type MonsterView struct {
	ID      uuid.UUID
	Species string
	Color   color.RGBA
	Level   int
	HP      int
	MaxHP   int
	Moves   [2]Move
}

// HPFraction is the share of health left, used for health bar widths.
func (v MonsterView) HPFraction() float64 {
	if v.MaxHP <= 0 {
		return 0
	}
	return float64(v.HP) / float64(v.MaxHP)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
