package battle

// MaxPartySize caps how many monsters the player can carry.
const MaxPartySize = 6

// Party is the player's ordered team with one active member
type Party struct {
	members []*Monster
	active  int
}

// NewParty builds a party from the given monsters, the first one active.
// Monsters beyond MaxPartySize are dropped.
func NewParty(members ...*Monster) *Party {
	if len(members) > MaxPartySize {
		members = members[:MaxPartySize]
	}
	return &Party{members: append([]*Monster(nil), members...)}
}

// Len returns the number of members
func (p *Party) Len() int {
	return len(p.members)
}

// Full reports whether another member can be added
func (p *Party) Full() bool {
	return len(p.members) >= MaxPartySize
}

// Member returns the monster at index i
func (p *Party) Member(i int) *Monster {
	return p.members[i]
}

// Active returns the fighting member, or nil for an empty party.
func (p *Party) Active() *Monster {
	if len(p.members) == 0 {
		return nil
	}
	return p.members[p.active]
}

// ActiveIndex returns the index of the fighting member
func (p *Party) ActiveIndex() int {
	return p.active
}

// Add appends a monster; it reports false when the party is full.
func (p *Party) Add(m *Monster) bool {
	if p.Full() {
		return false
	}
	p.members = append(p.members, m)
	return true
}

// SwitchToNextAlive makes the next living member active, scanning forward
// from the current one and wrapping around. It reports false when every
// member has fainted.
func (p *Party) SwitchToNextAlive() bool {
	n := len(p.members)
	for step := 1; step <= n; step++ {
		i := (p.active + step) % n
		if !p.members[i].Fainted() {
			p.active = i
			return true
		}
	}
	return false
}

// AllFainted reports whether no member can fight.
func (p *Party) AllFainted() bool {
	for _, m := range p.members {
		if !m.Fainted() {
			return false
		}
	}
	return true
}

// Recover heals everyone and makes the first member active again.
func (p *Party) Recover() {
	for _, m := range p.members {
		m.HealFull()
	}
	p.active = 0
}

// Views returns snapshots of every member in order
func (p *Party) Views() []MonsterView {
	out := make([]MonsterView, len(p.members))
	for i, m := range p.members {
		out[i] = m.View()
	}
	return out
}
