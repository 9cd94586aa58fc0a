package engine

import "testing"

// TestStackBounds verifies that stack mutations are total: overflow and
// underflow are silent no-ops.
func TestStackBounds(t *testing.T) {
	var g GameState

	if c := g.deckPop(); c != EmptyCard {
		t.Errorf("pop from empty deck = %v, want EmptyCard", c)
	}
	if c := g.discardPop(); c != EmptyCard {
		t.Errorf("pop from empty discard = %v, want EmptyCard", c)
	}
	if s := g.playedPop(); s.Card != EmptyCard {
		t.Errorf("pop from empty played row = %v, want EmptyCard", s.Card)
	}
	if s := g.handRemove(0); s.Card != EmptyCard {
		t.Errorf("remove from empty hand = %v, want EmptyCard", s.Card)
	}

	for i := 0; i < StackCap+10; i++ {
		g.deckPush(NewCard(SuitClubs, RankTwo))
	}
	if int(g.DeckLen) != StackCap {
		t.Errorf("DeckLen = %d after overflow pushes, want %d", g.DeckLen, StackCap)
	}

	for i := 0; i < MaxSelectionSize+3; i++ {
		g.playedPush(CardSlot{Card: NewCard(SuitClubs, RankTwo)})
	}
	if g.PlayedLen != MaxSelectionSize {
		t.Errorf("PlayedLen = %d after overflow pushes, want %d", g.PlayedLen, MaxSelectionSize)
	}

	for i := 0; i < MaxHandSize+3; i++ {
		g.handInsert(NewCard(SuitClubs, RankTwo))
	}
	if g.HandLen != MaxHandSize {
		t.Errorf("HandLen = %d after overflow inserts, want %d", g.HandLen, MaxHandSize)
	}
}

// TestShuffleIsPermutation verifies shuffling changes order but keeps
// exactly the same multiset of cards.
func TestShuffleIsPermutation(t *testing.T) {
	g := newTestGame(t, nil)
	before := make(map[Card]int)
	for i := uint8(0); i < g.DeckLen; i++ {
		before[g.Deck[i]]++
	}

	g.ShuffleDeck()

	if g.DeckLen != DeckSize {
		t.Fatalf("DeckLen = %d after shuffle, want %d", g.DeckLen, DeckSize)
	}
	after := make(map[Card]int)
	for i := uint8(0); i < g.DeckLen; i++ {
		after[g.Deck[i]]++
	}
	for c, n := range before {
		if after[c] != n {
			t.Errorf("card %v count changed: %d → %d", c, n, after[c])
		}
	}
	if len(after) != 52 {
		t.Errorf("unique cards after shuffle = %d, want 52", len(after))
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := newTestGame(t, nil)
	b := newTestGame(t, nil)
	a.ShuffleDeck()
	b.ShuffleDeck()
	if a.Deck != b.Deck {
		t.Error("same seed produced different shuffles")
	}
}

func TestHandRemoveShifts(t *testing.T) {
	var g GameState
	setHand(&g,
		NewCard(SuitClubs, RankTwo),
		NewCard(SuitDiamonds, RankFive),
		NewCard(SuitHearts, RankNine))

	s := g.handRemove(1)
	if s.Card != NewCard(SuitDiamonds, RankFive) {
		t.Errorf("removed %v, want 5D", s.Card)
	}
	if g.HandLen != 2 {
		t.Fatalf("HandLen = %d, want 2", g.HandLen)
	}
	if g.Hand[0].Card != NewCard(SuitClubs, RankTwo) ||
		g.Hand[1].Card != NewCard(SuitHearts, RankNine) {
		t.Errorf("hand after removal = [%v %v]", g.Hand[0].Card, g.Hand[1].Card)
	}
}

// TestSortHand verifies both sort orders and that selection flags stay
// with their cards.
func TestSortHand(t *testing.T) {
	var g GameState
	setHand(&g,
		NewCard(SuitClubs, RankFive),
		NewCard(SuitHearts, RankAce),
		NewCard(SuitClubs, RankKing),
		NewCard(SuitHearts, RankTwo))
	g.Hand[1].Selected = true // the ace

	g.SortBySuit = false
	g.sortHand()
	wantRank := []Card{
		NewCard(SuitHearts, RankAce),
		NewCard(SuitClubs, RankKing),
		NewCard(SuitClubs, RankFive),
		NewCard(SuitHearts, RankTwo),
	}
	for i, w := range wantRank {
		if g.Hand[i].Card != w {
			t.Errorf("rank sort [%d] = %v, want %v", i, g.Hand[i].Card, w)
		}
	}
	if !g.Hand[0].Selected {
		t.Error("selection flag did not follow the ace")
	}

	g.SortBySuit = true
	g.sortHand()
	wantSuit := []Card{
		NewCard(SuitHearts, RankAce),
		NewCard(SuitHearts, RankTwo),
		NewCard(SuitClubs, RankKing),
		NewCard(SuitClubs, RankFive),
	}
	for i, w := range wantSuit {
		if g.Hand[i].Card != w {
			t.Errorf("suit sort [%d] = %v, want %v", i, g.Hand[i].Card, w)
		}
	}
}

// TestMaxStackSize verifies the shared capacity budget formula.
func TestMaxStackSize(t *testing.T) {
	r := RedDeckRules()
	want := 8 + 5 + 52 + 4
	if got := r.MaxStackSize(); got != want {
		t.Errorf("MaxStackSize() = %d, want %d", got, want)
	}
	if StackCap < r.MaxStackSize() {
		t.Errorf("StackCap %d below rules budget %d", StackCap, r.MaxStackSize())
	}
}
