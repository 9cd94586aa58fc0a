package engine

// Card stacks are bounded LIFO piles. Pushing onto a full stack and
// popping from an empty one are silent no-ops; callers that care check
// the length first. This keeps every mutation total, so the tick loop
// never branches on stack errors.

func (g *GameState) deckPush(c Card) {
	if int(g.DeckLen) >= StackCap {
		return
	}
	g.Deck[g.DeckLen] = c
	g.DeckLen++
}

func (g *GameState) deckPop() Card {
	if g.DeckLen == 0 {
		return EmptyCard
	}
	g.DeckLen--
	return g.Deck[g.DeckLen]
}

func (g *GameState) discardPush(c Card) {
	if int(g.DiscardLen) >= StackCap {
		return
	}
	g.DiscardPile[g.DiscardLen] = c
	g.DiscardLen++
}

func (g *GameState) discardPop() Card {
	if g.DiscardLen == 0 {
		return EmptyCard
	}
	g.DiscardLen--
	return g.DiscardPile[g.DiscardLen]
}

func (g *GameState) playedPush(s CardSlot) {
	if g.PlayedLen >= MaxSelectionSize {
		return
	}
	g.Played[g.PlayedLen] = s
	g.PlayedLen++
}

func (g *GameState) playedPop() CardSlot {
	if g.PlayedLen == 0 {
		return CardSlot{Card: EmptyCard}
	}
	g.PlayedLen--
	return g.Played[g.PlayedLen]
}

// handInsert appends a drawn card to the hand, unselected.
func (g *GameState) handInsert(c Card) {
	if g.HandLen >= MaxHandSize {
		return
	}
	g.Hand[g.HandLen] = CardSlot{Card: c}
	g.HandLen++
}

// handRemove deletes the slot at index i, shifting the cards above it
// down. Out-of-range indices are ignored.
func (g *GameState) handRemove(i uint8) CardSlot {
	if i >= g.HandLen {
		return CardSlot{Card: EmptyCard}
	}
	s := g.Hand[i]
	for j := i; j+1 < g.HandLen; j++ {
		g.Hand[j] = g.Hand[j+1]
	}
	g.HandLen--
	return s
}

// ShuffleDeck performs a Fisher–Yates shuffle of the deck in place.
func (g *GameState) ShuffleDeck() {
	for i := int(g.DeckLen) - 1; i > 0; i-- {
		j := g.randN(uint64(i + 1))
		g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
	}
}

// cardSortKey orders cards within the hand. Suit sort groups by suit
// then rank; rank sort orders by rank with suit as tiebreaker, high
// cards first in both.
func cardSortKey(c Card, bySuit bool) int {
	if bySuit {
		return int(c.Suit())*NumRanks + int(c.Rank())
	}
	return int(c.Rank())*NumSuits + int(c.Suit())
}

// sortHand insertion-sorts the hand descending by the active sort key.
// Selection flags travel with their cards. The focus is not adjusted;
// it points at a position, not a card.
func (g *GameState) sortHand() {
	for i := uint8(1); i < g.HandLen; i++ {
		s := g.Hand[i]
		key := cardSortKey(s.Card, g.SortBySuit)
		j := i
		for j > 0 && cardSortKey(g.Hand[j-1].Card, g.SortBySuit) < key {
			g.Hand[j] = g.Hand[j-1]
			j--
		}
		g.Hand[j] = s
	}
}
