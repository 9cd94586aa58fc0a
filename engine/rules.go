package engine

// DeckRules holds configurable run rule settings.
type DeckRules struct {
	HandSize       uint8 // cards held after a full draw
	MaxHands       uint8 // plays per round
	MaxDiscards    uint8 // discards per round
	MaxSelection   uint8 // cards selectable at once
	MaxJokersHeld  uint8
	ShopSlots      uint8
	RerollBase     int32 // first reroll price; +1 per use within a shop visit
	StartingMoney  int32
	DeckHeadroom   uint8 // extra stack capacity beyond the deck itself
	LowAceStraight bool  // if true, A-2-3-4-5 counts as a straight
	MaxAnte        uint8
}

// RedDeckRules returns the standard starting-deck rules.
func RedDeckRules() DeckRules {
	return DeckRules{
		HandSize:       8,
		MaxHands:       4,
		MaxDiscards:    4,
		MaxSelection:   5,
		MaxJokersHeld:  5,
		ShopSlots:      3,
		RerollBase:     5,
		StartingMoney:  4,
		DeckHeadroom:   4,
		LowAceStraight: false,
		MaxAnte:        8,
	}
}

// handSize returns the effective hand size, treating 0 as the default 8
// and clamping to what the hand stack can hold.
func (r *DeckRules) handSize() uint8 {
	if r.HandSize == 0 {
		return 8
	}
	if r.HandSize > MaxHandSize {
		return MaxHandSize
	}
	return r.HandSize
}

// maxSelection returns the effective selection cap, clamped to the
// played-row capacity.
func (r *DeckRules) maxSelection() uint8 {
	if r.MaxSelection == 0 || r.MaxSelection > MaxSelectionSize {
		return MaxSelectionSize
	}
	return r.MaxSelection
}

// MaxStackSize returns the capacity budget shared by every card stack:
// a full hand plus a full played row plus the deck plus headroom.
func (r *DeckRules) MaxStackSize() int {
	return int(r.handSize()) + int(r.maxSelection()) + DeckSize + int(r.DeckHeadroom)
}
