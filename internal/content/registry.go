// Package content holds the data-driven tables of a run: the joker
// catalogue and the blind requirement/reward schedule. The engine only
// sees it through the engine.Content interface.
package content

import (
	"fmt"

	"github.com/MeirGavish/balatro-gba/engine"
)

// anteBase is the small-blind score requirement per ante (1-based).
// The big blind asks 1.5x, the boss 2x.
var anteBase = [...]int64{
	1: 300,
	2: 800,
	3: 2000,
	4: 5000,
	5: 11000,
	6: 20000,
	7: 35000,
	8: 50000,
}

// MaxAnte is the last ante with its own requirement; later antes reuse
// it.
const MaxAnte = 8

var blindRewards = [engine.NumBlinds]int32{3, 4, 5}

// Registry is an immutable content bundle.
type Registry struct {
	jokers []engine.JokerDef
}

// New builds and validates the standard catalogue.
func New() (*Registry, error) {
	r := &Registry{jokers: defaultJokers()}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func defaultJokers() []engine.JokerDef {
	return []engine.JokerDef{
		{ID: 0, Name: "Joker", Price: 4, Effect: engine.JokerAddMult, Amount: 4},
		{ID: 1, Name: "Banner", Price: 5, Effect: engine.JokerAddChips, Amount: 30},
		{ID: 2, Name: "Greedy Joker", Price: 5, Effect: engine.JokerSuitChips, Amount: 12, Suit: engine.SuitDiamonds},
		{ID: 3, Name: "Lusty Joker", Price: 5, Effect: engine.JokerSuitChips, Amount: 12, Suit: engine.SuitHearts},
		{ID: 4, Name: "Wrathful Joker", Price: 5, Effect: engine.JokerSuitChips, Amount: 12, Suit: engine.SuitSpades},
		{ID: 5, Name: "Gluttonous Joker", Price: 5, Effect: engine.JokerSuitChips, Amount: 12, Suit: engine.SuitClubs},
		{ID: 6, Name: "Business Card", Price: 6, Effect: engine.JokerFaceMoney, Amount: 1},
		{ID: 7, Name: "Walkie Talkie", Price: 6, Effect: engine.JokerLowCardMult, Amount: 2},
		{ID: 8, Name: "Ice Cream", Price: 3, Effect: engine.JokerStackedBonus, Amount: 25},
		{ID: 9, Name: "Loan Shark", Price: 3, Effect: engine.JokerDebt, Amount: 2},
		{ID: 10, Name: "Blown Fuse", Price: 8, Effect: engine.JokerShort, Amount: 60},
	}
}

func (r *Registry) validate() error {
	if len(r.jokers) == 0 {
		return fmt.Errorf("content: empty joker catalogue")
	}
	for i, j := range r.jokers {
		if int(j.ID) != i {
			return fmt.Errorf("content: joker %q has ID %d at index %d", j.Name, j.ID, i)
		}
		if j.Name == "" {
			return fmt.Errorf("content: joker %d has no name", i)
		}
		if j.Price <= 0 {
			return fmt.Errorf("content: joker %q has price %d", j.Name, j.Price)
		}
		if j.Suit >= engine.NumSuits {
			return fmt.Errorf("content: joker %q references suit %d", j.Name, j.Suit)
		}
	}
	for a := 2; a <= MaxAnte; a++ {
		if anteBase[a] <= anteBase[a-1] {
			return fmt.Errorf("content: ante %d requirement %d not above ante %d", a, anteBase[a], a-1)
		}
	}
	return nil
}

func (r *Registry) JokerCount() int { return len(r.jokers) }

func (r *Registry) JokerDef(id uint8) engine.JokerDef {
	if int(id) >= len(r.jokers) {
		return engine.JokerDef{}
	}
	return r.jokers[id]
}

// BlindRequirement returns the score target for a blind at the given
// ante. Antes clamp into [1, MaxAnte].
func (r *Registry) BlindRequirement(blind engine.BlindID, ante uint8) int64 {
	if ante < 1 {
		ante = 1
	}
	if ante > MaxAnte {
		ante = MaxAnte
	}
	base := anteBase[ante]
	switch blind {
	case engine.BigBlind:
		return base + base/2
	case engine.BossBlind:
		return base * 2
	}
	return base
}

func (r *Registry) BlindReward(blind engine.BlindID) int32 {
	if blind >= engine.NumBlinds {
		return 0
	}
	return blindRewards[blind]
}
