// Package engine implements the rules of a tick-driven poker roguelike run.
//
// The engine is a flat value-type state machine: one GameState holds the
// full run, Step advances it by exactly one tick, and everything that
// animates in a frontend is modeled as tick-count waits inside the
// sequencers. The package has no dependencies; frontends observe state
// through exported fields and the per-tick effect queue.
package engine

const (
	MaxHandSize      = 16
	MaxSelectionSize = 5
	MaxJokerSlots    = 5
	MaxShopSlots     = 3
	NumBlinds        = 3
	DeckSize         = 52

	// StackCap bounds every card stack: a full hand, a full played row,
	// the deck itself, and four slots of headroom.
	StackCap = MaxHandSize + MaxSelectionSize + DeckSize + 4
)

// Tick cadences. One tick is one frontend frame.
const (
	TicksPerMove    = 10 // card leaves hand / enters hand / reveals
	TicksPerScore   = 30 // one card-scoring step
	TicksPerPayout  = 20 // one payout count in the round-end panel
	TicksPerReturn  = 2  // one discard card returning to the deck
	SettleTicks     = 40 // sprites settle before scoring or discarding
	ScoreRollTicks  = 40 // ticks to ease temp score into the total
	PanelIntroTicks = 30
	PanelOutroTicks = 20
)

// GamePhase is the outer run state.
type GamePhase uint8

const (
	PhaseBlindSelect GamePhase = iota
	PhasePlaying
	PhaseRoundEnd
	PhaseShop
	PhaseLose
)

var gamePhaseNames = [...]string{
	"blind_select", "playing", "round_end", "shop", "lose",
}

func (p GamePhase) String() string {
	if int(p) >= len(gamePhaseNames) {
		return "unknown"
	}
	return gamePhaseNames[p]
}

// HandPhase is the state of the hand loop while the outer phase is
// PhasePlaying.
type HandPhase uint8

const (
	HandDraw HandPhase = iota
	HandSelect
	HandDiscard
	HandPlay
	HandPlaying
	HandShuffling
)

var handPhaseNames = [...]string{
	"draw", "select", "discard", "play", "playing", "shuffling",
}

func (p HandPhase) String() string {
	if int(p) >= len(handPhaseNames) {
		return "unknown"
	}
	return handPhaseNames[p]
}

// PlayPhase is the state of the scoring pipeline while the hand phase is
// HandPlaying.
type PlayPhase uint8

const (
	PlayPlaying PlayPhase = iota
	PlayScoring
	PlayEnding
	PlayEnded
)

var playPhaseNames = [...]string{"playing", "scoring", "ending", "ended"}

func (p PlayPhase) String() string {
	if int(p) >= len(playPhaseNames) {
		return "unknown"
	}
	return playPhaseNames[p]
}

// BlindID indexes the three blinds of an ante.
type BlindID uint8

const (
	SmallBlind BlindID = iota
	BigBlind
	BossBlind
)

var blindNames = [NumBlinds]string{"Small Blind", "Big Blind", "Boss Blind"}

func (b BlindID) String() string {
	if b >= NumBlinds {
		return "unknown"
	}
	return blindNames[b]
}

// BlindStatus is the per-ante status of one blind.
type BlindStatus uint8

const (
	BlindUpcoming BlindStatus = iota
	BlindCurrent
	BlindSkipped
	BlindDefeated
)

// Content supplies the data-driven pieces of a run: the joker catalogue
// and the blind requirement/reward tables. Implementations must be
// immutable for the lifetime of a game.
type Content interface {
	JokerCount() int
	JokerDef(id uint8) JokerDef
	// BlindRequirement returns the score needed to defeat the blind at
	// the given ante (1-based).
	BlindRequirement(blind BlindID, ante uint8) int64
	// BlindReward returns the cash-out reward for defeating the blind.
	BlindReward(blind BlindID) int32
}

// RoundEndSeq holds the round-end panel sequencer.
type RoundEndSeq struct {
	Step        RoundEndStep
	BlindPayout int32 // blind reward still to count up
	HandPayout  uint8 // hand rewards still to count up
}

// RoundEndStep sequences the cash-out panel.
type RoundEndStep uint8

const (
	RoundEndIntro RoundEndStep = iota
	RoundEndBlindPayout
	RoundEndHandPayout
	RoundEndCashOut
	RoundEndOutro
)

// ShopSeq holds the shop sequencer and its current offers.
type ShopSeq struct {
	Step       ShopStep
	Offers     [MaxShopSlots]JokerDef
	OfferLive  [MaxShopSlots]bool
	RerollCost int32
	Cursor     uint8 // 0 = leave button, 1..ShopSlots = offers
	OnReroll   bool
}

// ShopStep sequences the shop panel.
type ShopStep uint8

const (
	ShopIntro ShopStep = iota
	ShopBrowse
	ShopOutro
)

// BlindSelectSeq holds the blind-select sequencer.
type BlindSelectSeq struct {
	Step   BlindSelectStep
	OnSkip bool // cursor on the skip button instead of the select button
}

// BlindSelectStep sequences the blind-select panel.
type BlindSelectStep uint8

const (
	BlindSelIntro BlindSelectStep = iota
	BlindSelBrowse
	BlindSelOutro
)

// GameState holds the complete, self-contained state of a run. It is a
// flat value type: copying it is a snapshot, assigning it back is a
// restore. Every stack is a fixed array plus an explicit length, and all
// timing lives in Tick, which resets on phase transitions.
type GameState struct {
	RNG     uint64
	Rules   DeckRules
	Content Content

	Phase     GamePhase
	HandPhase HandPhase
	PlayPhase PlayPhase
	Tick      uint32 // ticks since the last sequencer reset

	Deck        [StackCap]Card
	DeckLen     uint8
	DiscardPile [StackCap]Card
	DiscardLen  uint8
	Hand        [MaxHandSize]CardSlot
	HandLen     uint8
	Played      [MaxSelectionSize]CardSlot
	PlayedLen   uint8

	Jokers   [MaxJokerSlots]Joker
	JokerLen uint8

	Blinds       [NumBlinds]BlindStatus
	CurrentBlind BlindID
	Ante         uint8
	Round        uint16

	Hands    uint8
	Discards uint8
	Money    int32

	Score     int64
	TempScore int64
	Chips     int32
	Mult      int32
	HandType  HandType // classified type of the current selection
	// 24.8 fixed-point display easing of the temp score into the total.
	LerpScore     int64
	LerpTempScore int64

	Focus       uint8 // focused hand index while selecting
	OnButtons   bool  // cursor on the play/discard row
	OnDiscard   bool  // cursor on the discard button
	SortBySuit  bool
	Selections  uint8
	CardsMoved  uint8 // cards moved during the current timed sweep
	ScoreCursor uint8 // progress through the played row

	RoundEnd RoundEndSeq
	Shop     ShopSeq
	BlindSel BlindSelectSeq

	Effects   [MaxEffects]Effect
	EffectLen uint8
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, inline, no interface
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame
// ---------------------------------------------------------------------------

// NewGame initializes a run with the given seed, rules, and content.
// The full 52-card deck is built unshuffled; the run opens on the
// blind-select screen of ante 1.
func NewGame(seed uint64, rules DeckRules, content Content) GameState {
	var g GameState
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	g.Rules = rules
	g.Content = content

	for suit := uint8(0); suit < NumSuits; suit++ {
		for rank := uint8(0); rank < NumRanks; rank++ {
			g.Deck[g.DeckLen] = NewCard(suit, rank)
			g.DeckLen++
		}
	}

	g.Money = rules.StartingMoney
	g.Hands = rules.MaxHands
	g.Discards = rules.MaxDiscards
	g.Ante = 1
	g.CurrentBlind = SmallBlind
	g.Blinds = [NumBlinds]BlindStatus{BlindCurrent, BlindUpcoming, BlindUpcoming}
	g.setPhase(PhaseBlindSelect)
	return g
}

// Snapshot is a saved copy of a GameState.
type Snapshot GameState

// Save returns a snapshot of the current state.
func (g *GameState) Save() Snapshot { return Snapshot(*g) }

// Restore overwrites the state with a previously saved snapshot.
func (g *GameState) Restore(s Snapshot) { *g = GameState(s) }

// StateHash returns a fast FNV-1a hash of the run state, for cheap
// divergence checks between replays. Equal states always hash equal.
func (g *GameState) StateHash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)
	mix := func(v uint64) {
		h ^= v
		h *= prime
	}

	for i := uint8(0); i < g.DeckLen; i++ {
		mix(uint64(g.Deck[i]))
	}
	for i := uint8(0); i < g.DiscardLen; i++ {
		mix(uint64(g.DiscardPile[i]))
	}
	for i := uint8(0); i < g.HandLen; i++ {
		v := uint64(g.Hand[i].Card)
		if g.Hand[i].Selected {
			v |= 1 << 8
		}
		mix(v)
	}
	for i := uint8(0); i < g.PlayedLen; i++ {
		mix(uint64(g.Played[i].Card))
	}
	for i := uint8(0); i < g.JokerLen; i++ {
		mix(uint64(g.Jokers[i].Def.ID))
	}
	mix(uint64(g.Phase) | uint64(g.HandPhase)<<8 | uint64(g.PlayPhase)<<16 | uint64(g.CurrentBlind)<<24)
	mix(uint64(g.Tick) | uint64(g.Ante)<<32 | uint64(g.Round)<<40)
	mix(uint64(g.Score))
	mix(uint64(uint32(g.Money)) | uint64(g.Hands)<<32 | uint64(g.Discards)<<40)
	mix(g.RNG)
	return h
}

// ---------------------------------------------------------------------------
// Tick dispatch
// ---------------------------------------------------------------------------

// Step advances the run by one tick. Input flags must be edge-triggered:
// a held key is reported on the tick it went down only. The effect queue
// is cleared at the start of every step; callers drain it after.
func (g *GameState) Step(in Input) {
	g.EffectLen = 0
	g.Tick++
	switch g.Phase {
	case PhaseBlindSelect:
		g.stepBlindSelect(in)
	case PhasePlaying:
		g.stepPlaying(in)
	case PhaseRoundEnd:
		g.stepRoundEnd(in)
	case PhaseShop:
		g.stepShop(in)
	case PhaseLose:
		// terminal
	}
}

// setPhase switches the outer phase and runs its entry hook. Tick resets
// so sequencers always time from zero.
func (g *GameState) setPhase(p GamePhase) {
	g.Phase = p
	g.Tick = 0
	switch p {
	case PhaseBlindSelect:
		g.BlindSel = BlindSelectSeq{Step: BlindSelIntro}
	case PhasePlaying:
		g.initRound()
	case PhaseRoundEnd:
		g.initRoundEnd()
	case PhaseShop:
		g.initShop()
	case PhaseLose:
		g.emit(EffectLose, 0)
	}
}

// resetTick restarts hand-level sequencing without leaving the outer
// phase.
func (g *GameState) resetTick() { g.Tick = 0 }

// BlindRequirement returns the score target of the current blind.
func (g *GameState) BlindRequirement() int64 {
	return g.Content.BlindRequirement(g.CurrentBlind, g.Ante)
}

// DisplayScore returns the eased score shown to the player. It rises
// monotonically toward Score+TempScore while the temp score rolls in.
func (g *GameState) DisplayScore() int64 {
	return g.Score + (g.LerpScore >> 8)
}

// DisplayTempScore returns the eased remaining temp score.
func (g *GameState) DisplayTempScore() int64 {
	v := g.LerpTempScore >> 8
	if v < 0 {
		return 0
	}
	return v
}

// CardsInPlay returns the total number of cards across all four stacks.
// It is constant for the lifetime of a run.
func (g *GameState) CardsInPlay() int {
	return int(g.DeckLen) + int(g.DiscardLen) + int(g.HandLen) + int(g.PlayedLen)
}

// DeckMaxSize returns the capacity shown on the deck display: every
// card in play plus the rule headroom. Recomputed on demand so deck
// variants that gain or lose cards stay correct.
func (g *GameState) DeckMaxSize() int {
	return g.CardsInPlay() + int(g.Rules.DeckHeadroom)
}
