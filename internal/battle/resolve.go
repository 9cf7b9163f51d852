package battle

import "math"

const (
	minDamage    = 2
	varianceLow  = 0.85
	varianceSpan = 0.3

	baseCaptureChance  = 0.2
	captureChanceRange = 0.6
	fleeChance         = 0.7
)

// Outcome describes what a single move did
type Outcome struct {
	Attacker string
	Move     string
	Hit      bool
	Damage   int
}

// ResolveMove rolls accuracy and, on a hit, variance-scaled damage against
// the defender. The defender's health is updated in place.
func ResolveMove(src Source, attacker, defender *Monster, move Move) Outcome {
	out := Outcome{Attacker: attacker.Species, Move: move.Name}
	if src.Float64() > move.Accuracy {
		return out
	}

	v := varianceLow + src.Float64()*varianceSpan
	damage := int(math.Floor(float64(move.Power) * v))
	if damage < minDamage {
		damage = minDamage
	}
	defender.TakeDamage(damage)

	out.Hit = true
	out.Damage = damage
	return out
}

// CaptureChance grows from 0.2 at full health towards 0.8 as health drops.
func CaptureChance(m *Monster) float64 {
	if m.MaxHP <= 0 {
		return baseCaptureChance
	}
	ratio := float64(m.HP) / float64(m.MaxHP)
	return baseCaptureChance + (1-ratio)*captureChanceRange
}

// AttemptCapture rolls against CaptureChance. On success a copy of the wild
// monster joins the party. A full party always breaks free.
func AttemptCapture(src Source, wild *Monster, party *Party) bool {
	if src.Float64() >= CaptureChance(wild) || party.Full() {
		return false
	}
	return party.Add(wild.Clone())
}

// AttemptFlee succeeds with a fixed probability.
func AttemptFlee(src Source) bool {
	return src.Float64() < fleeChance
}

// EnemyMoveIndex flips a coin between the two moves.
func EnemyMoveIndex(src Source) int {
	if src.Float64() > 0.5 {
		return 1
	}
	return 0
}
