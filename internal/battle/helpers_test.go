package battle

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

var (
	sureHit   = Move{Name: "Sure Hit", Power: 10, Accuracy: 1.0}
	weakPoke  = Move{Name: "Poke", Power: 1, Accuracy: 1.0}
	coinFlick = Move{Name: "Coin Flick", Power: 10, Accuracy: 0.5}
)

func newTestMonster(name string, hp, maxHP int, moves ...Move) *Monster {
	m := &Monster{
		ID:      uuid.New(),
		Species: name,
		Level:   5,
		HP:      hp,
		MaxHP:   maxHP,
		Moves:   [2]Move{sureHit, sureHit},
	}
	copy(m.Moves[:], moves)
	return m
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBattle(src Source, party *Party, wild *Monster, delay int) *Battle {
	return New(src, party, wild, Options{DelayTicks: delay, Logger: quietLogger()})
}
