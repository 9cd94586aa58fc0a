package engine

import "testing"

// TestNewGameDeck verifies NewGame builds 52 unique cards and starting
// counters per the rules.
func TestNewGameDeck(t *testing.T) {
	r := RedDeckRules()
	g := NewGame(42, r, testContent())

	if g.DeckLen != DeckSize {
		t.Fatalf("DeckLen = %d, want %d", g.DeckLen, DeckSize)
	}
	seen := make(map[Card]bool)
	for i := uint8(0); i < g.DeckLen; i++ {
		c := g.Deck[i]
		if c == EmptyCard {
			t.Errorf("Deck[%d] is EmptyCard", i)
			continue
		}
		if seen[c] {
			t.Errorf("duplicate card at index %d: %v", i, c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("got %d unique cards, want 52", len(seen))
	}

	if g.Money != r.StartingMoney {
		t.Errorf("Money = %d, want %d", g.Money, r.StartingMoney)
	}
	if g.Hands != r.MaxHands || g.Discards != r.MaxDiscards {
		t.Errorf("counters = %d/%d, want %d/%d", g.Hands, g.Discards, r.MaxHands, r.MaxDiscards)
	}
	if g.Ante != 1 || g.CurrentBlind != SmallBlind {
		t.Errorf("start position = ante %d blind %v", g.Ante, g.CurrentBlind)
	}
	if g.Phase != PhaseBlindSelect {
		t.Errorf("Phase = %v, want %v", g.Phase, PhaseBlindSelect)
	}
}

// TestSeedZero verifies the RNG survives a zero seed.
func TestSeedZero(t *testing.T) {
	g := NewGame(0, RedDeckRules(), testContent())
	g.ShuffleDeck()
	if g.RNG == 0 {
		t.Error("RNG stuck at zero")
	}
}

// TestDeckMaxSize verifies the deck display capacity follows the cards
// in play plus the rule headroom.
func TestDeckMaxSize(t *testing.T) {
	g := newTestGame(t, nil)
	want := DeckSize + int(g.Rules.DeckHeadroom)
	if got := g.DeckMaxSize(); got != want {
		t.Fatalf("DeckMaxSize() = %d, want %d", got, want)
	}

	// moving cards between stacks leaves the capacity alone
	g.handInsert(g.deckPop())
	g.discardPush(g.deckPop())
	if got := g.DeckMaxSize(); got != want {
		t.Errorf("DeckMaxSize() = %d after moves, want %d", got, want)
	}

	// a card leaving play shrinks it
	g.deckPop()
	if got := g.DeckMaxSize(); got != want-1 {
		t.Errorf("DeckMaxSize() = %d after consuming a card, want %d", got, want-1)
	}
}

// TestSaveRestore verifies snapshots are exact copies.
func TestSaveRestore(t *testing.T) {
	g := newTestGame(t, nil)
	tick(&g, 200)
	snap := g.Save()

	tick(&g, 500)
	g.Restore(snap)

	g2 := GameState(snap)
	if g != g2 {
		t.Error("restored state differs from snapshot")
	}
}

// TestStateHash verifies hashes track state identity: stable across a
// save/restore cycle, changed by play.
func TestStateHash(t *testing.T) {
	g := newTestGame(t, nil)
	tick(&g, 200)

	snap := g.Save()
	before := g.StateHash()

	tick(&g, 500)
	if g.StateHash() == before {
		t.Error("hash unchanged after 500 ticks")
	}

	g.Restore(snap)
	if g.StateHash() != before {
		t.Error("hash differs after restore")
	}
}

// TestDeterminism verifies two runs with the same seed and input script
// stay identical tick for tick.
func TestDeterminism(t *testing.T) {
	a := newTestGame(t, trivialContent())
	b := newTestGame(t, trivialContent())

	for i := 0; i < 3000; i++ {
		in := autoInput(&a)
		a.Step(in)
		b.Step(in)
	}
	a.Content, b.Content = nil, nil
	if a != b {
		t.Error("same seed and inputs diverged")
	}
}

// autoInput is a scripted player: select the first five cards, play
// them, confirm every panel, never buy anything.
func autoInput(g *GameState) Input {
	switch g.Phase {
	case PhaseBlindSelect:
		if g.BlindSel.Step == BlindSelBrowse {
			return Input{Confirm: true}
		}
	case PhaseRoundEnd:
		if g.RoundEnd.Step == RoundEndCashOut && g.Tick > SettleTicks {
			return Input{Confirm: true}
		}
	case PhaseShop:
		if g.Shop.Step == ShopBrowse {
			return Input{Confirm: true} // cursor rests on the leave button
		}
	case PhasePlaying:
		if g.HandPhase != HandSelect {
			return Input{}
		}
		if g.OnButtons {
			if g.OnDiscard {
				return Input{Left: true}
			}
			return Input{Confirm: true}
		}
		if g.Selections < g.Rules.MaxSelection && g.Selections < g.HandLen {
			if !g.Hand[g.Focus].Selected {
				return Input{Confirm: true}
			}
			if g.Focus+1 < g.HandLen {
				return Input{Right: true}
			}
		}
		return Input{Down: true}
	}
	return Input{}
}

// TestAutoplayWinsRounds drives a full run against trivial blinds: the
// scripted player must clear several rounds, cross an ante, and keep
// card conservation on every tick.
func TestAutoplayWinsRounds(t *testing.T) {
	g := newTestGame(t, trivialContent())

	startMoney := g.Money
	var roundsCleared int
	lastPhase := g.Phase
	for i := 0; i < 200000 && roundsCleared < 4; i++ {
		g.Step(autoInput(&g))
		if !cardsConserved(&g) {
			t.Fatalf("tick %d: cards not conserved (%d)", i, g.CardsInPlay())
		}
		if lastPhase == PhaseRoundEnd && g.Phase == PhaseShop {
			roundsCleared++
		}
		lastPhase = g.Phase
	}
	if roundsCleared < 4 {
		t.Fatalf("cleared %d rounds, want 4 (phase=%v hand=%v)",
			roundsCleared, g.Phase, g.HandPhase)
	}
	if g.Phase == PhaseLose {
		t.Fatal("autoplay lost against trivial blinds")
	}
	if g.Money <= startMoney {
		t.Errorf("Money = %d after %d cashouts, want > %d", g.Money, roundsCleared, startMoney)
	}
	if g.Ante < 2 {
		t.Errorf("Ante = %d after clearing four blinds, want at least 2", g.Ante)
	}
}

// TestAutoplayLoses verifies an unbeatable blind ends the run: once the
// plays are spent the outer phase lands on lose and stays there.
func TestAutoplayLoses(t *testing.T) {
	c := testContent()
	c.reqs = [NumBlinds]int64{1 << 40, 1 << 40, 1 << 40}
	g := NewGame(7, RedDeckRules(), c)

	for i := 0; i < 100000 && g.Phase != PhaseLose; i++ {
		g.Step(autoInput(&g))
		if !cardsConserved(&g) {
			t.Fatalf("tick %d: cards not conserved", i)
		}
	}
	if g.Phase != PhaseLose {
		t.Fatalf("run did not end: phase=%v hand=%v hands=%d",
			g.Phase, g.HandPhase, g.Hands)
	}
	if g.Hands != 0 {
		t.Errorf("Hands = %d at loss, want 0", g.Hands)
	}
}
