package engine

// JokerEffect selects a joker's behavior inside the modifier chain.
type JokerEffect uint8

const (
	// JokerAddMult adds Amount to mult on the hand-completed pass.
	JokerAddMult JokerEffect = iota
	// JokerAddChips adds Amount to chips on the hand-completed pass.
	JokerAddChips
	// JokerSuitChips adds Amount chips for each scored card of Suit.
	JokerSuitChips
	// JokerFaceMoney pays $Amount for each scored face card.
	JokerFaceMoney
	// JokerLowCardMult adds Amount mult for each scored card below Six.
	JokerLowCardMult
	// JokerStackedBonus adds Amount chips the first time a card scores
	// in a played hand; the processed flag then holds it off for the
	// rest of the pass.
	JokerStackedBonus
	// JokerDebt takes $Amount on the hand-completed pass and halts the
	// chain.
	JokerDebt
	// JokerShort adds Amount chips when a card scores, then shorts out:
	// the chain halts and the card never adds its own value.
	JokerShort
)

// JokerDef is one immutable catalogue entry.
type JokerDef struct {
	ID     uint8
	Name   string
	Price  int32
	Effect JokerEffect
	Amount int32
	Suit   uint8 // only read by JokerSuitChips
}

// Joker is an owned joker instance. Processed is scratch state for the
// scoring pipeline; it persists across one full scoring pass and is
// cleared when a pass begins and when it ends.
type Joker struct {
	Def       JokerDef
	Processed bool
}

// apply invokes one joker for one chain call. Card is the scored card,
// or EmptyCard on the hand-completed pass. It mutates chips, mult, and
// money in place and reports whether the chain must halt.
func (j *Joker) apply(card Card, chips, mult, money *int32) (halt bool) {
	completed := card == EmptyCard
	switch j.Def.Effect {
	case JokerAddMult:
		if completed {
			*mult += j.Def.Amount
		}
	case JokerAddChips:
		if completed {
			*chips += j.Def.Amount
		}
	case JokerSuitChips:
		if !completed && card.Suit() == j.Def.Suit {
			*chips += j.Def.Amount
		}
	case JokerFaceMoney:
		if !completed && card.IsFace() {
			*money += j.Def.Amount
		}
	case JokerLowCardMult:
		if !completed && card.Rank() < RankSix {
			*mult += j.Def.Amount
		}
	case JokerStackedBonus:
		if !completed && !j.Processed {
			j.Processed = true
			*chips += j.Def.Amount
		}
	case JokerDebt:
		if completed {
			*money -= j.Def.Amount
			return true
		}
	case JokerShort:
		if !completed {
			*chips += j.Def.Amount
			return true
		}
	}
	return false
}

// runJokerChain calls every held joker in slot order with the scored
// card (or EmptyCard for the hand-completed pass). A halt stops the
// chain immediately; later jokers are not consulted.
func (g *GameState) runJokerChain(card Card) (halted bool) {
	for i := uint8(0); i < g.JokerLen; i++ {
		chips, mult, money := g.Chips, g.Mult, g.Money
		halt := g.Jokers[i].apply(card, &g.Chips, &g.Mult, &g.Money)
		if g.Chips != chips || g.Mult != mult || g.Money != money {
			g.emit(EffectJokerScore, movePitch(i))
		}
		if halt {
			return true
		}
	}
	return false
}

// resetJokersProcessed clears scratch state at the boundaries of a
// scoring pass.
func (g *GameState) resetJokersProcessed() {
	for i := uint8(0); i < g.JokerLen; i++ {
		g.Jokers[i].Processed = false
	}
}

// AddJoker appends a joker to the held slots. Adding past the cap is a
// silent no-op, like pushing onto a full stack.
func (g *GameState) AddJoker(def JokerDef) {
	if g.JokerLen >= MaxJokerSlots {
		return
	}
	g.Jokers[g.JokerLen] = Joker{Def: def}
	g.JokerLen++
}
