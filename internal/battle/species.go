package battle

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-playground/validator/v10"
)

// Move represents a move/attack
type Move struct {
	Name     string  `validate:"required"`
	Power    int     `validate:"gt=0"`
	Accuracy float64 `validate:"gte=0,lte=1"`
}

// Species is the static template a monster is spawned from
type Species struct {
	Name   string `validate:"required"`
	Color  color.RGBA
	BaseHP int     `validate:"gt=0"`
	Moves  [2]Move `validate:"dive"`
}

// Roster is the fixed species table. The first entry doubles as the
// fallback for unknown names.
var Roster = []Species{
	{
		Name:   "Flameling",
		Color:  color.RGBA{0xf9, 0x73, 0x16, 0xff},
		BaseHP: 42,
		Moves: [2]Move{
			{Name: "Spark", Power: 10, Accuracy: 0.95},
			{Name: "Ember Kick", Power: 13, Accuracy: 0.85},
		},
	},
	{
		Name:   "Leafairy",
		Color:  color.RGBA{0x22, 0xc5, 0x5e, 0xff},
		BaseHP: 48,
		Moves: [2]Move{
			{Name: "Vine Tap", Power: 9, Accuracy: 0.95},
			{Name: "Petal Burst", Power: 12, Accuracy: 0.88},
		},
	},
	{
		Name:   "Aquabub",
		Color:  color.RGBA{0x38, 0xbd, 0xf8, 0xff},
		BaseHP: 45,
		Moves: [2]Move{
			{Name: "Bubble Shot", Power: 10, Accuracy: 0.95},
			{Name: "Wave Crash", Power: 14, Accuracy: 0.82},
		},
	},
	{
		Name:   "Boltusk",
		Color:  color.RGBA{0xea, 0xb3, 0x08, 0xff},
		BaseHP: 40,
		Moves: [2]Move{
			{Name: "Zap Jab", Power: 11, Accuracy: 0.92},
			{Name: "Thunder Horn", Power: 15, Accuracy: 0.8},
		},
	},
}

var (
	ErrEmptyRoster   = errors.New("species roster is empty")
	ErrDuplicateName = errors.New("duplicate species name")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRoster checks every species against its field constraints and
// rejects duplicate names.
func ValidateRoster(roster []Species) error {
	if len(roster) == 0 {
		return ErrEmptyRoster
	}
	seen := make(map[string]struct{}, len(roster))
	for i, s := range roster {
		if err := validate.Struct(s); err != nil {
			return fmt.Errorf("species %d (%q): %w", i, s.Name, err)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("species %q: %w", s.Name, ErrDuplicateName)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// MustValidateRoster panics when the roster is malformed.
func MustValidateRoster(roster []Species) {
	if err := ValidateRoster(roster); err != nil {
		panic(err)
	}
}

// FindSpecies looks a species up by name, falling back to the first entry.
func FindSpecies(roster []Species, name string) Species {
	for _, s := range roster {
		if s.Name == name {
			return s
		}
	}
	return roster[0]
}
