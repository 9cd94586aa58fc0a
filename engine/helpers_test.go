package engine

import "testing"

// stubContent is a minimal Content implementation for tests. Flat
// requirement per blind keeps win/lose thresholds easy to force.
type stubContent struct {
	reqs    [NumBlinds]int64
	rewards [NumBlinds]int32
	jokers  []JokerDef
}

func (c *stubContent) JokerCount() int { return len(c.jokers) }

func (c *stubContent) JokerDef(id uint8) JokerDef {
	if int(id) >= len(c.jokers) {
		return JokerDef{}
	}
	return c.jokers[id]
}

func (c *stubContent) BlindRequirement(blind BlindID, ante uint8) int64 {
	return c.reqs[blind] * int64(ante)
}

func (c *stubContent) BlindReward(blind BlindID) int32 {
	return c.rewards[blind]
}

func testContent() *stubContent {
	return &stubContent{
		reqs:    [NumBlinds]int64{300, 450, 600},
		rewards: [NumBlinds]int32{3, 4, 5},
		jokers: []JokerDef{
			{ID: 0, Name: "Plus Four", Price: 4, Effect: JokerAddMult, Amount: 4},
			{ID: 1, Name: "Banner", Price: 5, Effect: JokerAddChips, Amount: 30},
			{ID: 2, Name: "Heartfelt", Price: 6, Effect: JokerSuitChips, Amount: 10, Suit: SuitHearts},
		},
	}
}

// trivialContent makes every blind beatable by a single scored card.
func trivialContent() *stubContent {
	c := testContent()
	c.reqs = [NumBlinds]int64{1, 1, 1}
	return c
}

func newTestGame(t *testing.T, content Content) GameState {
	t.Helper()
	if content == nil {
		content = testContent()
	}
	return NewGame(42, RedDeckRules(), content)
}

// tick advances n ticks with no input held.
func tick(g *GameState, n int) {
	for i := 0; i < n; i++ {
		g.Step(Input{})
	}
}

// tickUntil steps with empty input until cond holds, failing the test
// if it does not within limit ticks.
func tickUntil(t *testing.T, g *GameState, limit int, cond func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		g.Step(Input{})
	}
	t.Fatalf("condition not reached within %d ticks (phase=%v hand=%v play=%v)",
		limit, g.Phase, g.HandPhase, g.PlayPhase)
}

// press delivers a single edge-triggered input for one tick.
func press(g *GameState, in Input) { g.Step(in) }

// setHand overwrites the hand with the given cards, unselected.
func setHand(g *GameState, cards ...Card) {
	g.HandLen = 0
	for _, c := range cards {
		g.Hand[g.HandLen] = CardSlot{Card: c}
		g.HandLen++
	}
}

// selectHandCards marks the given hand indices selected and refreshes
// the classified hand type the way toggling would.
func selectHandCards(g *GameState, idx ...uint8) {
	for _, i := range idx {
		if !g.Hand[i].Selected {
			g.Hand[i].Selected = true
			g.Selections++
		}
	}
	g.HandType = g.Classify()
	g.Chips, g.Mult = g.HandType.Base()
}

func cardsConserved(g *GameState) bool {
	return g.CardsInPlay() == DeckSize
}
