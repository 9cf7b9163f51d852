package battle

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	msgAppeared      = "A wild %s appeared!"
	msgHit           = "%s used %s! %d damage."
	msgMiss          = "%s's %s missed!"
	msgSwitched      = "%s fainted! Go, %s!"
	msgVictory       = "Defeated %s! %s grew to Lv%d."
	msgCaptured      = "Captured %s!"
	msgCaptureFailed = "The ball wobbled... but it broke free!"
	msgFled          = "Got away safely!"
	msgFleeFailed    = "Can't escape!"
	msgPartyWiped    = "Your party was wiped out... but recovered at camp!"

	msgExplore    = "Walk through the tall grass to find monsters."
	msgInBattle   = "Battle! Choose a move, capture, or run."
	msgWildLabel  = "Wild %s Lv%d"
	msgAllyLabel  = "%s Lv%d"
	msgPartyEntry = "%s Lv%d HP %d/%d"
)

var japanese = map[string]string{
	msgAppeared:      "野生の %s が現れた！",
	msgHit:           "%[1]s の %[2]s！ %[3]d ダメージ。",
	msgMiss:          "%[1]s の %[2]s は外れた！",
	msgSwitched:      "%[1]s は倒れた！ %[2]s を繰り出した。",
	msgVictory:       "%[1]s を倒した！ %[2]s はLv%[3]dになった。",
	msgCaptured:      "%s の捕獲に成功！",
	msgCaptureFailed: "ボールが揺れた…しかし逃げられた！",
	msgFled:          "うまく逃げ切った！",
	msgFleeFailed:    "逃げられない！",
	msgPartyWiped:    "手持ちが全滅した…でもキャンプで回復した！",
	msgExplore:       "草むらを歩いてモンスターを探そう。",
	msgInBattle:      "バトル中！技、捕獲、にげる を選ぼう。",
	msgWildLabel:     "野生の %s Lv%d",
	msgAllyLabel:     "%s Lv%d",
	msgPartyEntry:    "%s Lv%d HP %d/%d",
}

var supportedLanguages = []language.Tag{
	language.English,
	language.Japanese,
}

var (
	languageMatcher = language.NewMatcher(supportedLanguages)
	messages        = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, ja := range japanese {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(language.Japanese, key, ja); err != nil {
			panic(err)
		}
	}
	return b
}

// MatchLanguage picks the closest supported language for a tag such as
// "ja-JP" or "en". Unknown input resolves to English.
func MatchLanguage(s string) language.Tag {
	_, idx := language.MatchStrings(languageMatcher, s)
	return supportedLanguages[idx]
}

// Narrator turns structured events into localized text
type Narrator struct {
	tag language.Tag
	p   *message.Printer
}

// NewNarrator returns a narrator for the given language
func NewNarrator(tag language.Tag) *Narrator {
	return &Narrator{tag: tag, p: message.NewPrinter(tag, message.Catalog(messages))}
}

// Language returns the tag the narrator prints in
func (n *Narrator) Language() language.Tag {
	return n.tag
}

// Line renders a single event
func (n *Narrator) Line(e Event) string {
	switch e.Kind {
	case EventAppeared:
		return n.p.Sprintf(msgAppeared, e.Target)
	case EventHit:
		return n.p.Sprintf(msgHit, e.Actor, e.Move, e.Damage)
	case EventMiss:
		return n.p.Sprintf(msgMiss, e.Actor, e.Move)
	case EventSwitched:
		return n.p.Sprintf(msgSwitched, e.Actor, e.Target)
	case EventVictory:
		return n.p.Sprintf(msgVictory, e.Target, e.Actor, e.Level)
	case EventCaptured:
		return n.p.Sprintf(msgCaptured, e.Target)
	case EventCaptureFailed:
		return n.p.Sprintf(msgCaptureFailed)
	case EventFled:
		return n.p.Sprintf(msgFled)
	case EventFleeFailed:
		return n.p.Sprintf(msgFleeFailed)
	case EventPartyWiped:
		return n.p.Sprintf(msgPartyWiped)
	}
	return ""
}

// Lines renders events in order
func (n *Narrator) Lines(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, n.Line(e))
	}
	return out
}

// Objective is the hint shown above the map.
func (n *Narrator) Objective(inBattle bool) string {
	if inBattle {
		return n.p.Sprintf(msgInBattle)
	}
	return n.p.Sprintf(msgExplore)
}

// WildLabel names the wild monster in the battle overlay
func (n *Narrator) WildLabel(v MonsterView) string {
	return n.p.Sprintf(msgWildLabel, v.Species, v.Level)
}

// AllyLabel names the active party member in the battle overlay
func (n *Narrator) AllyLabel(v MonsterView) string {
	return n.p.Sprintf(msgAllyLabel, v.Species, v.Level)
}

// PartyEntry renders one row of the party list
func (n *Narrator) PartyEntry(v MonsterView) string {
	return n.p.Sprintf(msgPartyEntry, v.Species, v.Level, v.HP, v.MaxHP)
}
