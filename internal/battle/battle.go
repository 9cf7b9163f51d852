package battle

import (
	"log/slog"

	"github.com/google/uuid"
)

// Phase is where the battle sits in its turn cycle
type Phase int

const (
	// PhasePlayerInput waits for the player's action. It is the only
	// unlocked phase.
	PhasePlayerInput Phase = iota
	// PhasePlayerResolving shows the player's move before the enemy answers.
	PhasePlayerResolving
	// PhaseEnemyResolving shows the enemy's move before control returns.
	PhaseEnemyResolving
	// PhaseOver is terminal; see Result.
	PhaseOver
)

// Result is how a finished battle ended
type Result int

const (
	ResultNone Result = iota
	ResultVictory
	ResultCaptured
	ResultFled
	ResultPartyWiped
)

var resultNames = map[Result]string{
	ResultNone:       "none",
	ResultVictory:    "victory",
	ResultCaptured:   "captured",
	ResultFled:       "fled",
	ResultPartyWiped: "party_wiped",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return "unknown"
}

// Action is a player command in battle
type Action int

const (
	ActionNone Action = iota
	ActionMove1
	ActionMove2
	ActionCapture
	ActionFlee
)

// Options tunes a battle
type Options struct {
	// DelayTicks is how many ticks each resolved move stays on screen
	// before the next side acts.
	DelayTicks int
	Logger     *slog.Logger
}

// Battle is one encounter between the player's party and a wild monster.
// It is advanced by Submit for player actions and Tick for the clock.
type Battle struct {
	id     uuid.UUID
	src    Source
	party  *Party
	wild   *Monster
	phase  Phase
	result Result
	delay  int
	wait   int
	events []Event
	log    *slog.Logger
}

// New starts a battle against wild using party's active member.
func New(src Source, party *Party, wild *Monster, opts Options) *Battle {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	delay := opts.DelayTicks
	if delay < 0 {
		delay = 0
	}
	b := &Battle{
		id:    uuid.New(),
		src:   src,
		party: party,
		wild:  wild,
		phase: PhasePlayerInput,
		delay: delay,
	}
	b.log = logger.With("battle_id", b.id.String())
	b.record(Event{Kind: EventAppeared, Target: wild.Species})
	b.log.Info("encounter started",
		"wild", wild.Species,
		"wild_id", wild.ID.String(),
		"level", wild.Level,
	)
	return b
}

// ID identifies the battle in log records
func (b *Battle) ID() uuid.UUID {
	return b.id
}

// Phase returns the current phase
func (b *Battle) Phase() Phase {
	return b.phase
}

// Result returns how the battle ended, or ResultNone while it runs.
func (b *Battle) Result() Result {
	return b.result
}

// Over reports whether the battle reached a terminal state
func (b *Battle) Over() bool {
	return b.phase == PhaseOver
}

// Locked reports whether player input is currently ignored.
func (b *Battle) Locked() bool {
	return b.phase != PhasePlayerInput
}

// Wild returns the encountered monster
func (b *Battle) Wild() *Monster {
	return b.wild
}

// Events returns a copy of the battle log
func (b *Battle) Events() []Event {
	return append([]Event(nil), b.events...)
}

// Last returns the most recent log entry
func (b *Battle) Last() Event {
	return b.events[len(b.events)-1]
}

// Submit applies a player action. It reports false when the action was
// ignored because the turn lock is held or the action is empty.
func (b *Battle) Submit(a Action) bool {
	if b.Locked() {
		return false
	}

	switch a {
	case ActionMove1:
		return b.playerAttack(0)
	case ActionMove2:
		return b.playerAttack(1)
	case ActionCapture:
		b.tryCapture()
	case ActionFlee:
		b.tryFlee()
	default:
		return false
	}
	return true
}

// Tick advances the resolution pause by one tick. When the pause after the
// player's move runs out the enemy takes its turn; when the pause after the
// enemy's move runs out control returns to the player.
func (b *Battle) Tick() {
	if b.phase != PhasePlayerResolving && b.phase != PhaseEnemyResolving {
		return
	}
	if b.wait > 0 {
		b.wait--
	}
	if b.wait > 0 {
		return
	}

	if b.phase == PhasePlayerResolving {
		b.enemyTurn()
		return
	}
	b.phase = PhasePlayerInput
}

func (b *Battle) playerAttack(idx int) bool {
	ally := b.party.Active()
	if ally == nil || ally.Fainted() {
		return false
	}

	out := ResolveMove(b.src, ally, b.wild, ally.Moves[idx])
	b.record(moveEvent(out))
	b.log.Debug("player move",
		"move", out.Move,
		"hit", out.Hit,
		"damage", out.Damage,
		"wild_hp", b.wild.HP,
	)

	if b.wild.Fainted() {
		ally.LevelUp()
		b.record(Event{Kind: EventVictory, Actor: ally.Species, Target: b.wild.Species, Level: ally.Level})
		b.finish(ResultVictory)
		return true
	}

	b.phase = PhasePlayerResolving
	b.wait = b.delay
	return true
}

func (b *Battle) tryCapture() {
	chance := CaptureChance(b.wild)
	if AttemptCapture(b.src, b.wild, b.party) {
		b.record(Event{Kind: EventCaptured, Target: b.wild.Species})
		b.log.Debug("capture succeeded", "chance", chance, "party_size", b.party.Len())
		b.finish(ResultCaptured)
		return
	}

	b.record(Event{Kind: EventCaptureFailed, Target: b.wild.Species})
	b.log.Debug("capture failed", "chance", chance, "party_size", b.party.Len())
	b.enemyTurn()
}

func (b *Battle) tryFlee() {
	if AttemptFlee(b.src) {
		b.record(Event{Kind: EventFled})
		b.finish(ResultFled)
		return
	}

	b.record(Event{Kind: EventFleeFailed})
	b.enemyTurn()
}

func (b *Battle) enemyTurn() {
	ally := b.party.Active()
	move := b.wild.Moves[EnemyMoveIndex(b.src)]
	out := ResolveMove(b.src, b.wild, ally, move)
	b.record(moveEvent(out))
	b.log.Debug("enemy move",
		"move", out.Move,
		"hit", out.Hit,
		"damage", out.Damage,
		"ally", ally.Species,
		"ally_hp", ally.HP,
	)

	if ally.Fainted() {
		if !b.party.SwitchToNextAlive() {
			b.party.Recover()
			b.record(Event{Kind: EventPartyWiped})
			b.finish(ResultPartyWiped)
			return
		}
		next := b.party.Active()
		b.record(Event{Kind: EventSwitched, Actor: ally.Species, Target: next.Species})
		b.log.Debug("active member switched", "fainted", ally.ID.String(), "active", next.ID.String())
	}

	b.phase = PhaseEnemyResolving
	b.wait = b.delay
}

func (b *Battle) finish(r Result) {
	b.phase = PhaseOver
	b.result = r
	b.wait = 0
	b.log.Info("encounter ended", "result", r.String(), "party_size", b.party.Len())
}

func (b *Battle) record(e Event) {
	b.events = append(b.events, e)
}

// Snapshot is an immutable view of the battle for renderers
type Snapshot struct {
	ID          uuid.UUID
	Phase       Phase
	Result      Result
	Locked      bool
	Wild        MonsterView
	Ally        MonsterView
	ActiveIndex int
	Party       []MonsterView
	Events      []Event
}

// Snapshot copies the current state
func (b *Battle) Snapshot() Snapshot {
	s := Snapshot{
		ID:          b.id,
		Phase:       b.phase,
		Result:      b.result,
		Locked:      b.Locked(),
		Wild:        b.wild.View(),
		ActiveIndex: b.party.ActiveIndex(),
		Party:       b.party.Views(),
		Events:      b.Events(),
	}
	if ally := b.party.Active(); ally != nil {
		s.Ally = ally.View()
	}
	return s
}
