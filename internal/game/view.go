package game

import "github.com/MeirGavish/balatro-gba/engine"

// View is a cheap per-tick snapshot of everything a renderer needs.
// Renderers poll it once per frame instead of reaching into the engine.
type View struct {
	Phase     engine.GamePhase
	HandPhase engine.HandPhase
	PlayPhase engine.PlayPhase

	Blind       engine.BlindID
	BlindStates [engine.NumBlinds]engine.BlindStatus
	Requirement int64
	Ante        uint8
	Round       uint16

	Score     int64
	TempScore int64
	Chips     int32
	Mult      int32
	HandName  string

	Money    int32
	Hands    uint8
	Discards uint8
	DeckLeft int
	DeckMax  int

	HandCards   []HandCard
	PlayedCards []HandCard
	Jokers      []JokerView

	ShopOpen   bool
	Offers     []OfferView
	RerollCost int32
	ShopCursor uint8
	OnReroll   bool

	BlindSelectOpen bool
	OnSkip          bool

	CashOutReady bool
	RoundEndOpen bool
}

// HandCard is one visible card slot.
type HandCard struct {
	Label    string
	Suit     uint8
	Selected bool
	Focused  bool
}

// JokerView is one held joker.
type JokerView struct {
	Name string
}

// OfferView is one shop slot.
type OfferView struct {
	Name  string
	Price int32
	Sold  bool
}

// View builds the current render model.
func (s *Session) View() View {
	g := &s.Engine
	v := View{
		Phase:       g.Phase,
		HandPhase:   g.HandPhase,
		PlayPhase:   g.PlayPhase,
		Blind:       g.CurrentBlind,
		BlindStates: g.Blinds,
		Requirement: g.BlindRequirement(),
		Ante:        g.Ante,
		Round:       g.Round,
		Score:       g.DisplayScore(),
		TempScore:   g.DisplayTempScore(),
		Chips:       g.Chips,
		Mult:        g.Mult,
		HandName:    g.HandType.String(),
		Money:       g.Money,
		Hands:       g.Hands,
		Discards:    g.Discards,
		DeckLeft:    int(g.DeckLen),
		DeckMax:     g.DeckMaxSize(),
	}

	for i := uint8(0); i < g.HandLen; i++ {
		slot := g.Hand[i]
		v.HandCards = append(v.HandCards, HandCard{
			Label:    slot.Card.String(),
			Suit:     slot.Card.Suit(),
			Selected: slot.Selected,
			Focused:  g.HandPhase == engine.HandSelect && !g.OnButtons && g.Focus == i,
		})
	}
	for i := uint8(0); i < g.PlayedLen; i++ {
		slot := g.Played[i]
		v.PlayedCards = append(v.PlayedCards, HandCard{
			Label:    slot.Card.String(),
			Suit:     slot.Card.Suit(),
			Selected: slot.Selected,
		})
	}
	for i := uint8(0); i < g.JokerLen; i++ {
		v.Jokers = append(v.Jokers, JokerView{Name: g.Jokers[i].Def.Name})
	}

	switch g.Phase {
	case engine.PhaseShop:
		v.ShopOpen = g.Shop.Step == engine.ShopBrowse
		v.RerollCost = g.Shop.RerollCost
		v.ShopCursor = g.Shop.Cursor
		v.OnReroll = g.Shop.OnReroll
		slots := g.Rules.ShopSlots
		if slots == 0 || slots > engine.MaxShopSlots {
			slots = engine.MaxShopSlots
		}
		for i := uint8(0); i < slots; i++ {
			v.Offers = append(v.Offers, OfferView{
				Name:  g.Shop.Offers[i].Name,
				Price: g.Shop.Offers[i].Price,
				Sold:  !g.Shop.OfferLive[i],
			})
		}
	case engine.PhaseBlindSelect:
		v.BlindSelectOpen = g.BlindSel.Step == engine.BlindSelBrowse
		v.OnSkip = g.BlindSel.OnSkip
	case engine.PhaseRoundEnd:
		v.RoundEndOpen = true
		v.CashOutReady = g.RoundEnd.Step == engine.RoundEndCashOut
	}
	return v
}
