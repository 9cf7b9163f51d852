package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, language.Japanese, MatchLanguage("ja-JP"))
	assert.Equal(t, language.Japanese, MatchLanguage("ja"))
	assert.Equal(t, language.English, MatchLanguage("en-GB"))
	assert.Equal(t, language.English, MatchLanguage(""))
}

func TestNarrator_English(t *testing.T) {
	n := NewNarrator(language.English)

	tests := []struct {
		event Event
		want  string
	}{
		{Event{Kind: EventAppeared, Target: "Aquabub"}, "A wild Aquabub appeared!"},
		{Event{Kind: EventHit, Actor: "Leafairy", Move: "Vine Tap", Damage: 9}, "Leafairy used Vine Tap! 9 damage."},
		{Event{Kind: EventMiss, Actor: "Boltusk", Move: "Thunder Horn"}, "Boltusk's Thunder Horn missed!"},
		{Event{Kind: EventSwitched, Actor: "Leafairy", Target: "Aquabub"}, "Leafairy fainted! Go, Aquabub!"},
		{Event{Kind: EventVictory, Actor: "Leafairy", Target: "Boltusk", Level: 6}, "Defeated Boltusk! Leafairy grew to Lv6."},
		{Event{Kind: EventCaptured, Target: "Flameling"}, "Captured Flameling!"},
		{Event{Kind: EventFleeFailed}, "Can't escape!"},
	}
	for _, tt := range tests {
		t.Run(tt.event.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, n.Line(tt.event))
		})
	}
}

func TestNarrator_Japanese(t *testing.T) {
	n := NewNarrator(language.Japanese)

	assert.Equal(t, "野生の Aquabub が現れた！", n.Line(Event{Kind: EventAppeared, Target: "Aquabub"}))
	assert.Equal(t, "Leafairy の Vine Tap！ 9 ダメージ。", n.Line(Event{Kind: EventHit, Actor: "Leafairy", Move: "Vine Tap", Damage: 9}))
	assert.Equal(t, "Boltusk を倒した！ Leafairy はLv6になった。", n.Line(Event{Kind: EventVictory, Actor: "Leafairy", Target: "Boltusk", Level: 6}))
	assert.Equal(t, "うまく逃げ切った！", n.Line(Event{Kind: EventFled}))
	assert.Equal(t, "草むらを歩いてモンスターを探そう。", n.Objective(false))
}

func TestNarrator_Labels(t *testing.T) {
	n := NewNarrator(language.English)
	v := MonsterView{Species: "Aquabub", Level: 4, HP: 12, MaxHP: 57}

	assert.Equal(t, "Wild Aquabub Lv4", n.WildLabel(v))
	assert.Equal(t, "Aquabub Lv4", n.AllyLabel(v))
	assert.Equal(t, "Aquabub Lv4 HP 12/57", n.PartyEntry(v))
	assert.Equal(t, "Battle! Choose a move, capture, or run.", n.Objective(true))
	assert.Equal(t, []string{"Can't escape!"}, n.Lines([]Event{{Kind: EventFleeFailed}}))
}
