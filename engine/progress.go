package engine

// ---------------------------------------------------------------------------
// Blind select
// ---------------------------------------------------------------------------

func (g *GameState) stepBlindSelect(in Input) {
	switch g.BlindSel.Step {
	case BlindSelIntro:
		if g.Tick >= uint32(PanelIntroTicks) {
			g.BlindSel.Step = BlindSelBrowse
			g.resetTick()
		}
	case BlindSelBrowse:
		g.stepBlindBrowse(in)
	case BlindSelOutro:
		if g.Tick >= uint32(PanelOutroTicks) {
			g.setPhase(PhasePlaying)
		}
	}
}

func (g *GameState) stepBlindBrowse(in Input) {
	// the boss blind cannot be skipped
	if g.CurrentBlind == BossBlind {
		g.BlindSel.OnSkip = false
	}
	switch {
	case in.Up:
		g.BlindSel.OnSkip = false
	case in.Down && g.CurrentBlind != BossBlind:
		g.BlindSel.OnSkip = true
	case in.Confirm:
		if g.BlindSel.OnSkip {
			g.advanceBlind(BlindSkipped)
			g.emit(EffectBlindSkip, 0)
			g.BlindSel = BlindSelectSeq{Step: BlindSelIntro}
			g.resetTick()
			return
		}
		g.Round++
		g.BlindSel.Step = BlindSelOutro
		g.resetTick()
	}
}

// advanceBlind marks the current blind with its outcome and moves the
// pointer forward. Crossing past the boss wraps to the small blind of
// the next ante; since the boss can only be defeated, the ante rises
// exactly when a boss falls.
func (g *GameState) advanceBlind(outcome BlindStatus) {
	g.Blinds[g.CurrentBlind] = outcome
	if g.CurrentBlind == BossBlind {
		g.CurrentBlind = SmallBlind
		g.Blinds = [NumBlinds]BlindStatus{BlindCurrent, BlindUpcoming, BlindUpcoming}
		if g.Rules.MaxAnte == 0 || g.Ante < g.Rules.MaxAnte {
			g.Ante++
		}
		return
	}
	g.CurrentBlind++
	g.Blinds[g.CurrentBlind] = BlindCurrent
}

// ---------------------------------------------------------------------------
// Round end
// ---------------------------------------------------------------------------

func (g *GameState) initRoundEnd() {
	g.RoundEnd = RoundEndSeq{
		Step:        RoundEndIntro,
		BlindPayout: g.Content.BlindReward(g.CurrentBlind),
		HandPayout:  g.Hands,
	}
}

func (g *GameState) stepRoundEnd(in Input) {
	switch g.RoundEnd.Step {
	case RoundEndIntro:
		if g.Tick >= uint32(PanelIntroTicks) {
			g.RoundEnd.Step = RoundEndBlindPayout
			g.resetTick()
		}
	case RoundEndBlindPayout:
		if g.Tick%TicksPerPayout != 0 {
			return
		}
		if g.RoundEnd.BlindPayout > 0 {
			g.RoundEnd.BlindPayout--
			g.emit(EffectPayout, movePitch(uint8(g.RoundEnd.BlindPayout)))
			return
		}
		g.RoundEnd.Step = RoundEndHandPayout
		g.resetTick()
	case RoundEndHandPayout:
		if g.Tick%TicksPerPayout != 0 {
			return
		}
		if g.RoundEnd.HandPayout > 0 {
			g.RoundEnd.HandPayout--
			g.emit(EffectPayout, movePitch(g.RoundEnd.HandPayout))
			return
		}
		g.RoundEnd.Step = RoundEndCashOut
		g.resetTick()
	case RoundEndCashOut:
		if g.Tick > SettleTicks && in.Confirm {
			g.cashOut()
		}
	case RoundEndOutro:
		if g.Tick >= uint32(PanelOutroTicks) {
			g.setPhase(PhaseShop)
		}
	}
}

// cashOut settles the round: one dollar per unused hand plus the blind
// reward, then the round counters reset for the next blind.
func (g *GameState) cashOut() {
	g.Money += int32(g.Hands) + g.Content.BlindReward(g.CurrentBlind)
	g.Hands = g.Rules.MaxHands
	g.Discards = g.Rules.MaxDiscards
	g.Score = 0
	g.TempScore = 0
	g.LerpScore, g.LerpTempScore = 0, 0
	g.emit(EffectCashOut, 0)
	g.RoundEnd.Step = RoundEndOutro
	g.resetTick()
}

// ---------------------------------------------------------------------------
// Shop
// ---------------------------------------------------------------------------

func (g *GameState) initShop() {
	g.Shop = ShopSeq{
		Step:       ShopIntro,
		RerollCost: g.Rules.RerollBase,
	}
	g.restockShop()
}

// restockShop fills every offer slot with a random catalogue joker.
// Duplicates across slots are allowed.
func (g *GameState) restockShop() {
	n := g.Content.JokerCount()
	if n <= 0 {
		return
	}
	slots := g.Rules.ShopSlots
	if slots == 0 || slots > MaxShopSlots {
		slots = MaxShopSlots
	}
	for i := uint8(0); i < slots; i++ {
		g.Shop.Offers[i] = g.Content.JokerDef(uint8(g.randN(uint64(n))))
		g.Shop.OfferLive[i] = true
	}
}

func (g *GameState) stepShop(in Input) {
	switch g.Shop.Step {
	case ShopIntro:
		if g.Tick >= uint32(PanelIntroTicks) {
			g.Shop.Step = ShopBrowse
			g.resetTick()
		}
	case ShopBrowse:
		g.stepShopBrowse(in)
	case ShopOutro:
		if g.Tick >= uint32(PanelOutroTicks) {
			g.advanceBlind(BlindDefeated)
			g.setPhase(PhaseBlindSelect)
		}
	}
}

func (g *GameState) stepShopBrowse(in Input) {
	slots := g.Rules.ShopSlots
	if slots == 0 || slots > MaxShopSlots {
		slots = MaxShopSlots
	}
	switch {
	case in.Up:
		g.Shop.OnReroll = false
	case in.Down:
		g.Shop.OnReroll = true
	case in.Left && !g.Shop.OnReroll && g.Shop.Cursor > 0:
		g.Shop.Cursor--
	case in.Right && !g.Shop.OnReroll && g.Shop.Cursor < slots:
		g.Shop.Cursor++
	case in.Confirm:
		g.shopConfirm()
	}
}

func (g *GameState) shopConfirm() {
	if g.Shop.OnReroll {
		if g.Money < g.Shop.RerollCost {
			return
		}
		g.Money -= g.Shop.RerollCost
		g.Shop.RerollCost++
		g.restockShop()
		g.emit(EffectReroll, 0)
		return
	}
	if g.Shop.Cursor == 0 {
		g.Shop.Step = ShopOutro
		g.resetTick()
		return
	}
	i := g.Shop.Cursor - 1
	if !g.Shop.OfferLive[i] {
		return
	}
	def := g.Shop.Offers[i]
	if g.JokerLen >= MaxJokerSlots || g.Money < def.Price {
		return
	}
	g.Money -= def.Price
	g.AddJoker(def)
	g.Shop.OfferLive[i] = false
	g.emit(EffectBuyJoker, 0)
}
