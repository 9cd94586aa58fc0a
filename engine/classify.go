package engine

// histogram tallies ranks and suits for a set of cards.
type histogram struct {
	ranks [NumRanks]uint8
	suits [NumSuits]uint8
}

func tally(cards []Card) histogram {
	var h histogram
	for _, c := range cards {
		if c.Rank() < NumRanks {
			h.ranks[c.Rank()]++
		}
		if c.Suit() < NumSuits {
			h.suits[c.Suit()]++
		}
	}
	return h
}

// maxOfAKind returns the largest rank multiplicity.
func (h *histogram) maxOfAKind() uint8 {
	var best uint8
	for _, n := range h.ranks {
		if n > best {
			best = n
		}
	}
	return best
}

// hasFlush reports whether any suit appears five or more times.
func (h *histogram) hasFlush() bool {
	for _, n := range h.suits {
		if n >= 5 {
			return true
		}
	}
	return false
}

// hasStraight reports whether five consecutive ranks are all present.
// With lowAce, A-2-3-4-5 also counts.
func (h *histogram) hasStraight(lowAce bool) bool {
	run := uint8(0)
	for r := 0; r < NumRanks; r++ {
		if h.ranks[r] == 0 {
			run = 0
			continue
		}
		run++
		if run >= 5 {
			return true
		}
	}
	if lowAce && h.ranks[RankAce] > 0 &&
		h.ranks[RankTwo] > 0 && h.ranks[RankThree] > 0 &&
		h.ranks[RankFour] > 0 && h.ranks[RankFive] > 0 {
		return true
	}
	return false
}

// hasFullHouse reports a triple plus a disjoint pair.
func (h *histogram) hasFullHouse() bool {
	triple := -1
	for r := NumRanks - 1; r >= 0; r-- {
		if h.ranks[r] >= 3 {
			triple = r
			break
		}
	}
	if triple < 0 {
		return false
	}
	for r := 0; r < NumRanks; r++ {
		if r != triple && h.ranks[r] >= 2 {
			return true
		}
	}
	return false
}

// hasTwoPair reports at least two distinct ranks with multiplicity ≥ 2.
func (h *histogram) hasTwoPair() bool {
	pairs := 0
	for _, n := range h.ranks {
		if n >= 2 {
			pairs++
		}
	}
	return pairs >= 2
}

// isRoyal reports whether the set covers Ten through Ace.
func (h *histogram) isRoyal() bool {
	return h.ranks[RankTen] > 0 && h.ranks[RankJack] > 0 &&
		h.ranks[RankQueen] > 0 && h.ranks[RankKing] > 0 &&
		h.ranks[RankAce] > 0
}

// ClassifyCards classifies an arbitrary multiset of cards. It is total:
// any non-empty input maps to at least HandHighCard, and an empty input
// maps to HandNone. When several patterns hold at once the strongest
// wins; in particular a hand that is both a flush and a straight is a
// straight flush, and a flush that contains a full house is a flush
// house even if it is also a straight flush.
func ClassifyCards(cards []Card, lowAce bool) HandType {
	if len(cards) == 0 {
		return HandNone
	}
	h := tally(cards)
	flush := h.hasFlush()
	straight := h.hasStraight(lowAce)
	kind := h.maxOfAKind()

	switch {
	case flush && straight && h.isRoyal():
		return HandRoyalFlush
	case flush && kind >= 5:
		return HandFlushFive
	case kind >= 5:
		return HandFiveOfAKind
	case flush && h.hasFullHouse():
		return HandFlushHouse
	case flush && straight:
		return HandStraightFlush
	case kind == 4:
		return HandFourOfAKind
	case h.hasFullHouse():
		return HandFullHouse
	case flush:
		return HandFlush
	case straight:
		return HandStraight
	case kind == 3:
		return HandThreeOfAKind
	case h.hasTwoPair():
		return HandTwoPair
	case kind == 2:
		return HandPair
	}
	return HandHighCard
}

// Classify classifies the current hand selection. During a discard sweep
// the selection is being spent, not played, so it classifies as nothing.
func (g *GameState) Classify() HandType {
	if g.HandPhase == HandDiscard || g.Selections == 0 {
		return HandNone
	}
	var buf [MaxHandSize]Card
	n := 0
	for i := uint8(0); i < g.HandLen; i++ {
		if g.Hand[i].Selected {
			buf[n] = g.Hand[i].Card
			n++
		}
	}
	return ClassifyCards(buf[:n], g.Rules.LowAceStraight)
}
