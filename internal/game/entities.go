package game

import (
	"github.com/google/uuid"

	"github.com/MeirGavish/balatro-gba/engine"
)

// entityTracker mirrors engine card positions with stable UUIDs for the
// presenter. A physical card keeps one UUID for the whole run; its
// entity exists only while the card is somewhere visible (hand, played
// row). Jokers get a UUID per slot when first seen.
type entityTracker struct {
	cards   map[engine.Card]uuid.UUID
	visible map[engine.Card]bool
	jokers  [engine.MaxJokerSlots]uuid.UUID
	jokerN  uint8

	tokens     [engine.NumBlinds]uuid.UUID
	tokensLive bool
}

func (t *entityTracker) init() {
	t.cards = make(map[engine.Card]uuid.UUID, engine.DeckSize)
	t.visible = make(map[engine.Card]bool, engine.MaxHandSize+engine.MaxSelectionSize)
}

func (t *entityTracker) id(c engine.Card) uuid.UUID {
	if id, ok := t.cards[c]; ok {
		return id
	}
	id := uuid.New()
	t.cards[c] = id
	return id
}

// Layout units. The presenter scales these however it likes; the ratios
// match a 240-wide playfield.
const (
	fieldWidth = 240
	handRowY   = 120
	playedRowY = 60
	jokerRowY  = 10
	selectedUp = 12
	focusedUp  = 4
)

// handSpacing narrows as the hand grows so wide hands still fit.
var handSpacing = [engine.MaxHandSize + 1]int{
	28, 28, 28, 28, 27, 21, 18, 15, 13, 12, 10, 9, 9, 8, 8, 7, 7,
}

func rowX(i, n int) int {
	sp := handSpacing[n]
	left := fieldWidth/2 - (n-1)*sp/2
	return left + i*sp
}

// sync reconciles presenter entities with the engine state: creates
// entities for cards that became visible, moves everything visible to
// its target, and destroys entities for cards that left the table.
func (t *entityTracker) sync(g *engine.GameState, p Presenter) {
	seen := make(map[engine.Card]bool, g.HandLen+g.PlayedLen)

	for i := uint8(0); i < g.HandLen; i++ {
		s := g.Hand[i]
		seen[s.Card] = true
		id := t.ensureCard(s.Card, p)
		y := handRowY
		if s.Selected {
			y -= selectedUp
		}
		if g.HandPhase == engine.HandSelect && !g.OnButtons && g.Focus == i {
			y -= focusedUp
		}
		p.MoveEntity(id, rowX(int(i), int(g.HandLen)), y)
	}

	for i := uint8(0); i < g.PlayedLen; i++ {
		s := g.Played[i]
		seen[s.Card] = true
		id := t.ensureCard(s.Card, p)
		y := playedRowY
		if s.Selected && g.PlayPhase == engine.PlayScoring {
			y -= focusedUp
		}
		p.MoveEntity(id, rowX(int(i), int(g.PlayedLen)), y)
	}

	for c := range t.visible {
		if !seen[c] {
			p.DestroyEntity(t.cards[c])
			delete(t.visible, c)
		}
	}

	for i := t.jokerN; i < g.JokerLen; i++ {
		id := uuid.New()
		t.jokers[i] = id
		p.CreateEntity(id, EntityJoker, g.Jokers[i].Def.Name)
		t.jokerN = i + 1
	}
	for i := uint8(0); i < t.jokerN; i++ {
		p.MoveEntity(t.jokers[i], rowX(int(i), int(t.jokerN)), jokerRowY)
	}

	t.syncBlindTokens(g, p)
}

// syncBlindTokens keeps one token entity per blind slot alive while the
// blind-select panel is up.
func (t *entityTracker) syncBlindTokens(g *engine.GameState, p Presenter) {
	if g.Phase == engine.PhaseBlindSelect {
		if !t.tokensLive {
			for i := range t.tokens {
				id := uuid.New()
				t.tokens[i] = id
				p.CreateEntity(id, EntityBlindToken, engine.BlindID(i).String())
			}
			t.tokensLive = true
		}
		for i := range t.tokens {
			y := playedRowY
			if engine.BlindID(i) == g.CurrentBlind {
				y -= selectedUp
			}
			p.MoveEntity(t.tokens[i], rowX(i, len(t.tokens)), y)
		}
		return
	}
	if t.tokensLive {
		for i := range t.tokens {
			p.DestroyEntity(t.tokens[i])
		}
		t.tokensLive = false
	}
}

// allSettled reports whether every live entity reached its target.
func (t *entityTracker) allSettled(p Presenter) bool {
	for c, live := range t.visible {
		if live && !p.ReachedTarget(t.cards[c]) {
			return false
		}
	}
	for i := uint8(0); i < t.jokerN; i++ {
		if !p.ReachedTarget(t.jokers[i]) {
			return false
		}
	}
	if t.tokensLive {
		for i := range t.tokens {
			if !p.ReachedTarget(t.tokens[i]) {
				return false
			}
		}
	}
	return true
}

func (t *entityTracker) ensureCard(c engine.Card, p Presenter) uuid.UUID {
	id := t.id(c)
	if !t.visible[c] {
		p.CreateEntity(id, EntityCard, c.String())
		t.visible[c] = true
	}
	return id
}
