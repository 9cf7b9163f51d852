package session

import (
	"log/slog"

	"golang.org/x/text/language"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/overworld"
)

// Mode is which screen the session is driving
type Mode int

const (
	ModeOverworld Mode = iota
	ModeBattle
)

const (
	starterSpecies = "Leafairy"
	starterLevel   = 5
)

// Input is everything the frontend polled for one tick
type Input struct {
	Dir    overworld.Direction
	Action battle.Action
}

// Options tunes a session
type Options struct {
	EncounterRate  float64
	StepTicks      int
	TurnDelayTicks int
	Roster         []battle.Species
	Narrator       *battle.Narrator
	Logger         *slog.Logger
}

// State is the whole game: where the player stands, the party, and the
// battle in progress if any. It is advanced only through Update.
type State struct {
	opts    Options
	src     battle.Source
	world   *overworld.Map
	player  overworld.Player
	party   *battle.Party
	battle  *battle.Battle
	mode    Mode
	message string
	last    battle.Result
	log     *slog.Logger
}

// New starts a session on the default map with the starter party.
func New(src battle.Source, opts Options) *State {
	if opts.Roster == nil {
		opts.Roster = battle.Roster
	}
	if opts.Narrator == nil {
		opts.Narrator = battle.NewNarrator(language.English)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	starter := battle.Spawn(battle.FindSpecies(opts.Roster, starterSpecies), starterLevel)
	return &State{
		opts:   opts,
		src:    src,
		world:  overworld.Default(),
		player: overworld.NewPlayer(),
		party:  battle.NewParty(starter),
		mode:   ModeOverworld,
		log:    opts.Logger,
	}
}

// Mode returns the current screen
func (s *State) Mode() Mode {
	return s.mode
}

// World returns the map being walked
func (s *State) World() *overworld.Map {
	return s.world
}

// Party returns the player's party
func (s *State) Party() *battle.Party {
	return s.party
}

// Battle returns the battle in progress, or nil in the overworld.
func (s *State) Battle() *battle.Battle {
	return s.battle
}

// LastResult is how the most recent battle ended.
func (s *State) LastResult() battle.Result {
	return s.last
}

// Update advances the session by one tick.
func (s *State) Update(in Input) {
	switch s.mode {
	case ModeOverworld:
		if s.player.Step(s.world, in.Dir, s.opts.StepTicks) {
			s.log.Debug("player moved", "x", s.player.X, "y", s.player.Y)
		}
		s.maybeEncounter()
	case ModeBattle:
		s.battle.Submit(in.Action)
		s.battle.Tick()
		if s.battle.Over() {
			s.endBattle()
		}
	}
}

// StartBattle spawns a random wild monster and switches to battle mode.
func (s *State) StartBattle() {
	wild := battle.SpawnWild(s.src, s.opts.Roster)
	s.battle = battle.New(s.src, s.party, wild, battle.Options{
		DelayTicks: s.opts.TurnDelayTicks,
		Logger:     s.log,
	})
	s.mode = ModeBattle
	s.message = s.opts.Narrator.Line(s.battle.Last())
}

func (s *State) maybeEncounter() {
	if s.world.At(s.player.X, s.player.Y) != overworld.TileGrass {
		return
	}
	if !s.world.Encounter(s.player.X, s.player.Y, s.src.Float64(), s.opts.EncounterRate) {
		return
	}
	s.StartBattle()
}

func (s *State) endBattle() {
	s.message = s.opts.Narrator.Line(s.battle.Last())
	s.last = s.battle.Result()
	s.battle = nil
	s.mode = ModeOverworld
}

// Snapshot is an immutable copy of the session for renderers
type Snapshot struct {
	Mode        Mode
	Player      overworld.Player
	Party       []battle.MonsterView
	ActiveIndex int
	PartyLines  []string
	Objective   string
	Message     string
	// Battle is nil outside battle mode.
	Battle    *battle.Snapshot
	BattleLog []string
}

// Snapshot copies the current state, with text already localized.
func (s *State) Snapshot() Snapshot {
	n := s.opts.Narrator
	snap := Snapshot{
		Mode:        s.mode,
		Player:      s.player,
		Party:       s.party.Views(),
		ActiveIndex: s.party.ActiveIndex(),
		Objective:   n.Objective(s.mode == ModeBattle),
		Message:     s.message,
	}
	snap.PartyLines = make([]string, len(snap.Party))
	for i, v := range snap.Party {
		snap.PartyLines[i] = n.PartyEntry(v)
	}
	if s.battle != nil {
		b := s.battle.Snapshot()
		snap.Battle = &b
		snap.BattleLog = n.Lines(b.Events)
		snap.Message = snap.BattleLog[len(snap.BattleLog)-1]
	}
	return snap
}
