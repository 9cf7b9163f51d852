package battle

// EventKind identifies a line of the battle log
type EventKind int

const (
	EventAppeared EventKind = iota
	EventHit
	EventMiss
	EventSwitched
	EventVictory
	EventCaptured
	EventCaptureFailed
	EventFled
	EventFleeFailed
	EventPartyWiped
)

var eventNames = map[EventKind]string{
	EventAppeared:      "appeared",
	EventHit:           "hit",
	EventMiss:          "miss",
	EventSwitched:      "switched",
	EventVictory:       "victory",
	EventCaptured:      "captured",
	EventCaptureFailed: "capture_failed",
	EventFled:          "fled",
	EventFleeFailed:    "flee_failed",
	EventPartyWiped:    "party_wiped",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is one structured battle log entry. Actor and Target hold species
// names; which fields are set depends on Kind.
type Event struct {
	Kind   EventKind
	Actor  string
	Target string
	Move   string
	Damage int
	Level  int
}

func moveEvent(out Outcome) Event {
	if !out.Hit {
		return Event{Kind: EventMiss, Actor: out.Attacker, Move: out.Move}
	}
	return Event{Kind: EventHit, Actor: out.Attacker, Move: out.Move, Damage: out.Damage}
}
