package engine

// initRound prepares the hand loop when a blind begins. The counters
// are already reset at cashout; repeating them here makes a round start
// from any fixture state, not only the ones reachable in play.
func (g *GameState) initRound() {
	g.HandPhase = HandDraw
	g.PlayPhase = PlayPlaying
	g.HandType = HandNone
	g.Hands = g.Rules.MaxHands
	g.Discards = g.Rules.MaxDiscards
	g.Score = 0
	g.TempScore = 0
	g.LerpScore, g.LerpTempScore = 0, 0
	g.Chips, g.Mult = 0, 0
	g.Selections = 0
	g.CardsMoved = 0
	g.Focus = 0
	g.OnButtons = false
	g.ShuffleDeck()
	g.emit(EffectRoundBegin, 0)
}

func (g *GameState) stepPlaying(in Input) {
	// A round is lost the moment the player is back at selection with
	// no plays left; discards alone can never beat a blind.
	if g.HandPhase == HandSelect && g.Hands == 0 {
		g.setPhase(PhaseLose)
		return
	}
	switch g.HandPhase {
	case HandDraw:
		g.stepDraw()
	case HandSelect:
		g.stepSelect(in)
	case HandDiscard:
		g.stepDiscardSweep()
	case HandPlay:
		g.stepPlaySweep()
	case HandPlaying:
		g.stepPipeline()
	case HandShuffling:
		g.stepShuffle()
	}
}

// setHandPhase switches the hand loop state and restarts its timing.
func (g *GameState) setHandPhase(p HandPhase) {
	g.HandPhase = p
	g.CardsMoved = 0
	g.resetTick()
}

// stepDraw refills the hand one card per move tick until it is full or
// the deck runs dry.
func (g *GameState) stepDraw() {
	if g.HandLen == 0 && g.DeckLen == 0 && g.DiscardLen > 0 {
		// nothing to deal and nothing to select; replenish from the
		// discard pile before selection can resume
		g.setHandPhase(HandShuffling)
		return
	}
	if g.HandLen >= g.Rules.handSize() || g.DeckLen == 0 {
		g.setHandPhase(HandSelect)
		return
	}
	if g.Tick%TicksPerMove != 0 {
		return
	}
	g.handInsert(g.deckPop())
	g.sortHand()
	g.emit(EffectCardDraw, movePitch(g.CardsMoved))
	g.CardsMoved++
}

func (g *GameState) stepSelect(in Input) {
	if in.Sort {
		g.SortBySuit = !g.SortBySuit
		g.sortHand()
		g.emit(EffectCardMove, 0)
	}
	if g.OnButtons {
		g.stepSelectButtons(in)
		return
	}
	switch {
	case in.Left && g.Focus > 0:
		g.Focus--
		g.emit(EffectCardFocus, g.jitterPitch())
	case in.Right && g.Focus+1 < g.HandLen:
		g.Focus++
		g.emit(EffectCardFocus, g.jitterPitch())
	case in.Down:
		g.OnButtons = true
		// land on the button nearer the focused card
		g.OnDiscard = g.Focus >= g.HandLen/2
	case in.Confirm:
		g.toggleSelect(g.Focus)
	}
}

func (g *GameState) stepSelectButtons(in Input) {
	switch {
	case in.Up:
		g.OnButtons = false
	case in.Left:
		g.OnDiscard = false
	case in.Right:
		g.OnDiscard = true
	case in.Confirm && g.Selections > 0:
		if g.OnDiscard {
			if g.Discards == 0 {
				return
			}
			g.Discards--
			g.OnButtons = false
			g.setHandPhase(HandDiscard)
			g.HandType = g.Classify() // HandDiscard forces HandNone
			g.Chips, g.Mult = g.HandType.Base()
		} else {
			if g.Hands == 0 {
				return
			}
			g.Hands--
			g.OnButtons = false
			g.setHandPhase(HandPlay)
		}
	}
}

// toggleSelect flips the selection of the hand slot at i and refreshes
// the classified hand type shown to the player.
func (g *GameState) toggleSelect(i uint8) {
	if i >= g.HandLen {
		return
	}
	if g.Hand[i].Selected {
		g.Hand[i].Selected = false
		g.Selections--
		g.emit(EffectCardDeselect, 0)
	} else {
		if g.Selections >= g.Rules.maxSelection() {
			return
		}
		g.Hand[i].Selected = true
		g.Selections++
		g.emit(EffectCardSelect, 0)
	}
	g.HandType = g.Classify()
	g.Chips, g.Mult = g.HandType.Base()
}

// nextSelected returns the highest hand index whose slot is selected,
// or -1. Sweeps take cards from the top so the hand shifts as little
// as possible.
func (g *GameState) nextSelected() int {
	for i := int(g.HandLen) - 1; i >= 0; i-- {
		if g.Hand[i].Selected {
			return i
		}
	}
	return -1
}

// stepDiscardSweep moves selected cards to the discard pile one per
// move tick, then returns to drawing.
func (g *GameState) stepDiscardSweep() {
	if g.Tick%TicksPerMove != 0 {
		return
	}
	i := g.nextSelected()
	if i < 0 {
		g.Selections = 0
		g.setHandPhase(HandDraw)
		return
	}
	s := g.handRemove(uint8(i))
	g.discardPush(s.Card)
	g.emit(EffectCardMove, movePitch(g.CardsMoved))
	g.CardsMoved++
	if g.Focus >= g.HandLen && g.Focus > 0 {
		g.Focus--
	}
}

// stepPlaySweep moves selected cards to the played row one per move
// tick, then hands off to the scoring pipeline.
func (g *GameState) stepPlaySweep() {
	if g.Tick%TicksPerMove != 0 {
		return
	}
	i := g.nextSelected()
	if i < 0 {
		g.Selections = 0
		g.markScoringCards()
		g.setHandPhase(HandPlaying)
		g.PlayPhase = PlayPlaying
		g.ScoreCursor = g.PlayedLen
		return
	}
	s := g.handRemove(uint8(i))
	s.Selected = false
	g.playedPush(s)
	g.emit(EffectCardMove, movePitch(g.CardsMoved))
	g.CardsMoved++
	if g.Focus >= g.HandLen && g.Focus > 0 {
		g.Focus--
	}
}

// markScoringCards flags the played cards that participate in scoring.
// Hands built from every played card score every card; partial hands
// score only the cards forming the pattern, picked by rank multiplicity.
func (g *GameState) markScoringCards() {
	var h histogram
	for i := uint8(0); i < g.PlayedLen; i++ {
		h.ranks[g.Played[i].Card.Rank()]++
	}
	need := uint8(0) // minimum multiplicity that scores
	switch g.HandType {
	case HandHighCard:
		// only the single highest card scores
		best := -1
		for i := uint8(0); i < g.PlayedLen; i++ {
			if best < 0 || g.Played[i].Card.Rank() > g.Played[best].Card.Rank() {
				best = int(i)
			}
		}
		if best >= 0 {
			g.Played[best].Selected = true
		}
		return
	case HandPair, HandTwoPair:
		need = 2
	case HandThreeOfAKind:
		need = 3
	case HandFourOfAKind:
		need = 4
	default:
		// straights, flushes, full houses and above use all five
		for i := uint8(0); i < g.PlayedLen; i++ {
			g.Played[i].Selected = true
		}
		return
	}
	for i := uint8(0); i < g.PlayedLen; i++ {
		if h.ranks[g.Played[i].Card.Rank()] >= need {
			g.Played[i].Selected = true
		}
	}
}

// stepShuffle clears the table back into the deck: remaining hand cards
// sweep to the discard pile, the discard pile drains into the deck, and
// the deck is reshuffled. If the blind is beaten the round ends;
// otherwise play continues with a fresh draw from the full deck.
func (g *GameState) stepShuffle() {
	if g.HandLen > 0 {
		if g.Tick%TicksPerMove == 0 {
			s := g.handRemove(g.HandLen - 1)
			g.discardPush(s.Card)
			g.emit(EffectCardMove, movePitch(g.CardsMoved))
			g.CardsMoved++
		}
		return
	}
	if g.DiscardLen > 0 {
		if g.Tick%TicksPerReturn == 0 {
			g.deckPush(g.discardPop())
			g.emit(EffectDeckReturn, 0)
		}
		return
	}
	g.ShuffleDeck()
	if g.Score >= g.BlindRequirement() {
		g.setPhase(PhaseRoundEnd)
		return
	}
	g.Selections = 0
	g.setHandPhase(HandDraw)
}
