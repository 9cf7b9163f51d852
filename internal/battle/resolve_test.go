package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMove_ForcedVariance(t *testing.T) {
	attacker := newTestMonster("Attacker", 30, 30)
	defender := newTestMonster("Defender", 20, 20)
	// accuracy roll, then a variance roll landing exactly on 1.0
	src := NewSequence(0.0, 0.5)

	out := ResolveMove(src, attacker, defender, sureHit)

	assert.True(t, out.Hit)
	assert.Equal(t, 10, out.Damage)
	assert.Equal(t, 10, defender.HP)
	assert.Equal(t, "Attacker", out.Attacker)
	assert.Equal(t, "Sure Hit", out.Move)
}

func TestResolveMove_MissLeavesHealthAlone(t *testing.T) {
	attacker := newTestMonster("Attacker", 30, 30)
	defender := newTestMonster("Defender", 20, 20)
	move := Move{Name: "Ember Kick", Power: 13, Accuracy: 0.85}
	src := NewSequence(0.9)

	out := ResolveMove(src, attacker, defender, move)

	assert.False(t, out.Hit)
	assert.Zero(t, out.Damage)
	assert.Equal(t, 20, defender.HP)
	assert.Equal(t, 1, src.Used(), "a miss must not roll variance")
}

func TestResolveMove_DrawEqualToAccuracyHits(t *testing.T) {
	defender := newTestMonster("Defender", 20, 20)
	move := Move{Name: "Petal Burst", Power: 12, Accuracy: 0.88}

	out := ResolveMove(NewSequence(0.88, 0.0), defender, defender, move)

	assert.True(t, out.Hit)
	assert.Equal(t, 10, out.Damage) // floor(12 * 0.85)
}

func TestResolveMove_MinimumDamage(t *testing.T) {
	defender := newTestMonster("Defender", 20, 20)

	out := ResolveMove(NewSequence(0.0, 0.0), defender, defender, weakPoke)

	assert.True(t, out.Hit)
	assert.Equal(t, minDamage, out.Damage)
	assert.Equal(t, 18, defender.HP)
}

func TestResolveMove_HealthStaysInRange(t *testing.T) {
	draws := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999}
	for power := 1; power <= 40; power += 3 {
		for hp := 0; hp <= 25; hp++ {
			for _, acc := range draws {
				for _, v := range draws {
					defender := newTestMonster("Defender", hp, 25)
					move := Move{Name: "Test", Power: power, Accuracy: 0.8}

					out := ResolveMove(NewSequence(acc, v), defender, defender, move)

					require.GreaterOrEqual(t, defender.HP, 0)
					require.LessOrEqual(t, defender.HP, defender.MaxHP)
					if out.Hit {
						require.GreaterOrEqual(t, out.Damage, minDamage)
					} else {
						require.Equal(t, hp, defender.HP)
					}
				}
			}
		}
	}
}

func TestCaptureChance(t *testing.T) {
	m := newTestMonster("Wild", 40, 40)
	assert.Equal(t, 0.2, CaptureChance(m))

	m.HP = 0
	assert.InDelta(t, 0.8, CaptureChance(m), 1e-9)

	m.HP = 1
	assert.Less(t, CaptureChance(m), 0.8)
	assert.Greater(t, CaptureChance(m), 0.78)
}

func TestCaptureChance_MonotonicAsHealthDrops(t *testing.T) {
	m := newTestMonster("Wild", 57, 57)
	prev := CaptureChance(m)
	for hp := 56; hp >= 0; hp-- {
		m.HP = hp
		cur := CaptureChance(m)
		assert.GreaterOrEqual(t, cur, prev, "hp=%d", hp)
		prev = cur
	}
}

func TestAttemptCapture(t *testing.T) {
	tests := []struct {
		name      string
		wildHP    int
		partySize int
		draw      float64
		want      bool
	}{
		{name: "low draw at full health", wildHP: 40, partySize: 1, draw: 0.1, want: true},
		{name: "draw equal to chance fails", wildHP: 40, partySize: 1, draw: 0.2, want: false},
		{name: "weakened target", wildHP: 4, partySize: 3, draw: 0.7, want: true},
		{name: "full party with zero draw", wildHP: 0, partySize: MaxPartySize, draw: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := make([]*Monster, tt.partySize)
			for i := range members {
				members[i] = newTestMonster("Member", 10, 10)
			}
			party := NewParty(members...)
			wild := newTestMonster("Wild", tt.wildHP, 40)

			got := AttemptCapture(NewSequence(tt.draw), wild, party)

			assert.Equal(t, tt.want, got)
			if tt.want {
				assert.Equal(t, tt.partySize+1, party.Len())
			} else {
				assert.Equal(t, tt.partySize, party.Len())
			}
		})
	}
}

func TestAttemptCapture_StoresSnapshot(t *testing.T) {
	party := NewParty(newTestMonster("Starter", 10, 10))
	wild := newTestMonster("Wild", 12, 40)

	require.True(t, AttemptCapture(NewSequence(0), wild, party))
	wild.HP = 0

	caught := party.Member(1)
	assert.Equal(t, 12, caught.HP)
	assert.Equal(t, wild.ID, caught.ID)
	assert.NotSame(t, wild, caught)
}

func TestAttemptFlee(t *testing.T) {
	assert.True(t, AttemptFlee(NewSequence(0.0)))
	assert.True(t, AttemptFlee(NewSequence(0.69)))
	assert.False(t, AttemptFlee(NewSequence(0.7)))
	assert.False(t, AttemptFlee(NewSequence(0.95)))
}

func TestEnemyMoveIndex(t *testing.T) {
	assert.Equal(t, 0, EnemyMoveIndex(NewSequence(0.0)))
	assert.Equal(t, 0, EnemyMoveIndex(NewSequence(0.5)))
	assert.Equal(t, 1, EnemyMoveIndex(NewSequence(0.51)))
	assert.Equal(t, 1, EnemyMoveIndex(NewSequence(0.99)))
}
