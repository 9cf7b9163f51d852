package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/overworld"
)

func newTestState(src battle.Source, delay int) *State {
	return New(src, Options{
		EncounterRate:  0.028,
		StepTicks:      7,
		TurnDelayTicks: delay,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// encounterLeafairy scripts an encounter roll followed by a level 3
// Leafairy spawn.
var encounterLeafairy = []float64{0.0, 0.3, 0.0}

func TestNew(t *testing.T) {
	s := newTestState(battle.NewSequence(0.5), 0)
	snap := s.Snapshot()

	assert.Equal(t, ModeOverworld, snap.Mode)
	assert.Equal(t, overworld.StartX, snap.Player.X)
	assert.Equal(t, overworld.StartY, snap.Player.Y)
	require.Len(t, snap.Party, 1)
	assert.Equal(t, "Leafairy", snap.Party[0].Species)
	assert.Equal(t, 5, snap.Party[0].Level)
	assert.Equal(t, 63, snap.Party[0].MaxHP)
	assert.Equal(t, []string{"Leafairy Lv5 HP 63/63"}, snap.PartyLines)
	assert.Equal(t, "Walk through the tall grass to find monsters.", snap.Objective)
	assert.Nil(t, snap.Battle)
}

func TestUpdate_PathNeverRolls(t *testing.T) {
	src := battle.NewSequence(0.0)
	s := newTestState(src, 0)

	s.Update(Input{Dir: overworld.DirRight})

	assert.Equal(t, 3, s.Snapshot().Player.X)
	assert.Zero(t, src.Used())
	assert.Equal(t, ModeOverworld, s.Mode())
}

func TestUpdate_GrassRollsEveryTick(t *testing.T) {
	src := battle.NewSequence(0.5)
	s := newTestState(src, 0)

	s.Update(Input{Dir: overworld.DirUp})
	require.Equal(t, overworld.TileGrass, s.World().At(2, 1))
	assert.Equal(t, 1, src.Used())

	s.Update(Input{})
	s.Update(Input{Dir: overworld.DirUp})
	assert.Equal(t, 3, src.Used())
	assert.Equal(t, ModeOverworld, s.Mode())
}

func TestUpdate_EncounterStartsBattle(t *testing.T) {
	s := newTestState(battle.NewSequence(encounterLeafairy...), 0)

	s.Update(Input{Dir: overworld.DirUp})

	require.Equal(t, ModeBattle, s.Mode())
	snap := s.Snapshot()
	require.NotNil(t, snap.Battle)
	assert.Equal(t, "Leafairy", snap.Battle.Wild.Species)
	assert.Equal(t, 3, snap.Battle.Wild.Level)
	assert.Equal(t, "A wild Leafairy appeared!", snap.Message)
	assert.Equal(t, "Battle! Choose a move, capture, or run.", snap.Objective)
	assert.Equal(t, []string{"A wild Leafairy appeared!"}, snap.BattleLog)
}

func TestUpdate_MovementFrozenDuringBattle(t *testing.T) {
	s := newTestState(battle.NewSequence(encounterLeafairy...), 0)
	s.Update(Input{Dir: overworld.DirUp})
	require.Equal(t, ModeBattle, s.Mode())

	for range 10 {
		s.Update(Input{Dir: overworld.DirRight})
	}

	assert.Equal(t, 2, s.Snapshot().Player.X)
}

func TestUpdate_FleeReturnsToOverworld(t *testing.T) {
	draws := append(append([]float64{}, encounterLeafairy...), 0.1)
	s := newTestState(battle.NewSequence(draws...), 0)
	s.Update(Input{Dir: overworld.DirUp})

	s.Update(Input{Action: battle.ActionFlee})

	snap := s.Snapshot()
	assert.Equal(t, ModeOverworld, snap.Mode)
	assert.Nil(t, snap.Battle)
	assert.Nil(t, s.Battle())
	assert.Equal(t, "Got away safely!", snap.Message)
	assert.Equal(t, battle.ResultFled, s.LastResult())
}

func TestUpdate_CaptureGrowsParty(t *testing.T) {
	draws := append(append([]float64{}, encounterLeafairy...), 0.0)
	s := newTestState(battle.NewSequence(draws...), 0)
	s.Update(Input{Dir: overworld.DirUp})

	s.Update(Input{Action: battle.ActionCapture})

	snap := s.Snapshot()
	assert.Equal(t, ModeOverworld, snap.Mode)
	require.Len(t, snap.Party, 2)
	assert.Equal(t, "Leafairy", snap.Party[1].Species)
	assert.Equal(t, 3, snap.Party[1].Level)
	assert.Equal(t, "Captured Leafairy!", snap.Message)
}

func TestUpdate_TurnLockSpansDelay(t *testing.T) {
	// encounter, then the player hits for 9 and the enemy misses
	draws := append(append([]float64{}, encounterLeafairy...), 0.0, 0.5, 0.0, 0.99)
	src := battle.NewSequence(draws...)
	s := newTestState(src, 3)
	s.Update(Input{Dir: overworld.DirUp})

	s.Update(Input{Action: battle.ActionMove1})
	require.True(t, s.Snapshot().Battle.Locked)
	assert.Equal(t, 5, src.Used())

	s.Update(Input{Action: battle.ActionFlee})
	s.Update(Input{Action: battle.ActionFlee})
	assert.Equal(t, 7, src.Used(), "enemy acts once the delay runs out")
	assert.True(t, s.Snapshot().Battle.Locked)
	assert.Equal(t, ModeBattle, s.Mode())

	log := s.Snapshot().BattleLog
	assert.Equal(t, "Leafairy's Vine Tap missed!", log[len(log)-1])
}

func TestSnapshot_Japanese(t *testing.T) {
	s := New(battle.NewSequence(encounterLeafairy...), Options{
		EncounterRate: 0.028,
		Narrator:      battle.NewNarrator(language.Japanese),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Update(Input{Dir: overworld.DirUp})

	snap := s.Snapshot()
	assert.Equal(t, "野生の Leafairy が現れた！", snap.Message)
	assert.Equal(t, "バトル中！技、捕獲、にげる を選ぼう。", snap.Objective)
}
