package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeirGavish/balatro-gba/engine"
	"github.com/MeirGavish/balatro-gba/internal/game"
)

func TestCardText(t *testing.T) {
	plain := cardText(game.HandCard{Label: "AS", Suit: engine.SuitSpades})
	assert.Contains(t, plain, "A♠")
	assert.NotContains(t, plain, "[")

	ten := cardText(game.HandCard{Label: "10C", Suit: engine.SuitClubs})
	assert.Contains(t, ten, "10♣")

	focused := cardText(game.HandCard{Label: "KH", Suit: engine.SuitHearts, Focused: true})
	assert.Contains(t, focused, "[")
	assert.Contains(t, focused, "♥")

	selected := cardText(game.HandCard{Label: "2D", Suit: engine.SuitDiamonds, Selected: true})
	assert.Contains(t, selected, "*")
}

func TestFooterPanel(t *testing.T) {
	got := footerPanel(game.View{Money: 12, Hands: 3, Discards: 1, DeckLeft: 44, DeckMax: 56})
	assert.Contains(t, got, "$12")
	assert.Contains(t, got, "hands 3")
	assert.Contains(t, got, "discards 1")
	assert.Contains(t, got, "deck 44/56")
}

func TestPanelsRenderEveryPhase(t *testing.T) {
	v := game.View{
		Phase:       engine.PhaseBlindSelect,
		Blind:       engine.SmallBlind,
		Requirement: 300,
		Ante:        1,
	}
	assert.NotEmpty(t, blindSelectPanel(v))

	v.Phase = engine.PhaseShop
	v.Offers = []game.OfferView{{Name: "Joker", Price: 4}, {Name: "Banner", Price: 5, Sold: true}}
	v.RerollCost = 5
	assert.Contains(t, shopPanel(v), "Reroll $5")

	v.Phase = engine.PhaseRoundEnd
	v.CashOutReady = true
	assert.Contains(t, roundEndPanel(v), "Cash Out")

	v.Phase = engine.PhaseLose
	v.Score = 123
	assert.Contains(t, losePanel(v), "123")

	v.Phase = engine.PhasePlaying
	v.HandCards = []game.HandCard{{Label: "AS", Suit: engine.SuitSpades}}
	v.Jokers = []game.JokerView{{Name: "Joker"}}
	assert.Contains(t, tablePanel(v), "♠")
}
