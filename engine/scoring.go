package engine

// The scoring pipeline runs while the hand phase is HandPlaying. It is a
// four-stage machine over the played row:
//
//	PlayPlaying → cards reveal one per move tick
//	PlayScoring → one card-scoring step per score tick, then the
//	              hand-completed pass
//	PlayEnding  → the row folds back down
//	PlayEnded   → chips*mult rolls into the total score and the played
//	              cards drop to the discard pile
//
// A chain halt during PlayScoring abandons the remaining cards and the
// completed pass and jumps straight to PlayEnding with whatever chips
// and mult have accumulated.

func (g *GameState) stepPipeline() {
	switch g.PlayPhase {
	case PlayPlaying:
		g.stepReveal()
	case PlayScoring:
		g.stepScoring()
	case PlayEnding:
		g.stepFold()
	case PlayEnded:
		g.stepEnded()
	}
}

// setPlayPhase switches the pipeline stage and restarts its timing.
func (g *GameState) setPlayPhase(p PlayPhase) {
	g.PlayPhase = p
	g.resetTick()
}

// stepReveal flips the played cards face up one per move tick.
// ScoreCursor counts down the cards still to reveal.
func (g *GameState) stepReveal() {
	if g.Tick <= SettleTicks || g.Tick%TicksPerMove != 0 {
		return
	}
	if g.ScoreCursor > 0 {
		g.ScoreCursor--
		g.emit(EffectCardMove, movePitch(g.PlayedLen-g.ScoreCursor))
	}
	if g.ScoreCursor == 0 {
		g.setPlayPhase(PlayScoring)
		g.resetJokersProcessed()
	}
}

// stepScoring advances one card-scoring step per score tick.
// ScoreCursor is the next played index to examine; unselected cards are
// skipped without spending a step.
func (g *GameState) stepScoring() {
	if g.Tick <= SettleTicks || g.Tick%TicksPerScore != 0 {
		return
	}
	for g.ScoreCursor < g.PlayedLen && !g.Played[g.ScoreCursor].Selected {
		g.ScoreCursor++
	}
	if g.ScoreCursor >= g.PlayedLen {
		// hand-completed pass, card = none; a halt here has nothing
		// left to skip, the pipeline ends either way
		g.runJokerChain(EmptyCard)
		g.resetJokersProcessed()
		g.ScoreCursor = g.PlayedLen
		g.setPlayPhase(PlayEnding)
		return
	}
	card := g.Played[g.ScoreCursor].Card
	if g.runJokerChain(card) {
		// early exit: the halted card's own chips are never added and
		// the remaining cards never score
		g.resetJokersProcessed()
		g.ScoreCursor = g.PlayedLen
		g.setPlayPhase(PlayEnding)
		return
	}
	g.Chips += card.Value()
	g.emit(EffectCardScore, basePitch+int16(card.Value())*16)
	g.ScoreCursor++
}

// stepFold slides the played row back down, then arms the score roll.
func (g *GameState) stepFold() {
	if g.Tick <= SettleTicks || g.Tick%TicksPerMove != 0 {
		return
	}
	if g.ScoreCursor > 0 {
		g.ScoreCursor--
		return
	}
	if g.Mult > 0 {
		g.TempScore = int64(g.Chips) * int64(g.Mult)
	} else {
		g.TempScore = 0
	}
	g.LerpTempScore = g.TempScore << 8
	g.LerpScore = 0
	g.setPlayPhase(PlayEnded)
}

// stepEnded eases the temp score into the total while the played cards
// drop to the discard pile, then decides where the hand loop goes next.
func (g *GameState) stepEnded() {
	if g.TempScore > 0 {
		// 24.8 fixed-point linear roll; the final tick transfers the
		// exact remainder so no point is lost to rounding
		delta := (g.TempScore << 8) / ScoreRollTicks
		if delta == 0 {
			delta = 1
		}
		if delta >= g.LerpTempScore {
			g.LerpTempScore = 0
			g.LerpScore = 0
			g.Score += g.TempScore
			g.TempScore = 0
			g.emit(EffectCardScore, 0)
		} else {
			g.LerpTempScore -= delta
			g.LerpScore += delta
		}
	}

	if g.PlayedLen > 0 {
		if g.Tick > SettleTicks && g.Tick%TicksPerMove == 0 {
			s := g.playedPop()
			g.discardPush(s.Card)
			g.emit(EffectCardMove, 0)
		}
		return
	}
	if g.TempScore > 0 {
		return
	}

	g.Chips, g.Mult = 0, 0
	g.HandType = HandNone
	won := g.Score >= g.BlindRequirement()
	if won || (g.HandLen == 0 && g.DeckLen == 0) {
		g.setHandPhase(HandShuffling)
		return
	}
	g.setHandPhase(HandDraw)
}
