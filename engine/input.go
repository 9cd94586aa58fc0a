package engine

// Input carries the edge-triggered controls for one tick. A flag is set
// only on the tick its key went down; the engine never sees key repeat.
type Input struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Confirm bool
	Sort    bool // toggles suit/rank hand sorting
}

// EffectKind tags one entry in the per-tick effect queue. Effects are
// fire-and-forget cues for the frontend (sound, screen shake); the
// engine never reads them back.
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectCardDraw
	EffectCardFocus
	EffectCardSelect
	EffectCardDeselect
	EffectCardMove
	EffectCardScore
	EffectJokerScore
	EffectDeckReturn
	EffectPayout
	EffectCashOut
	EffectBuyJoker
	EffectReroll
	EffectRoundBegin
	EffectBlindSkip
	EffectLose
)

// Effect is one queued frontend cue. Variation is a pitch hint in
// 1/1024 units; 1024 means unshifted.
type Effect struct {
	Kind      EffectKind
	Variation int16
}

// MaxEffects bounds the queue; a single tick never emits more than a
// handful of cues, and overflow drops silently like a full stack push.
const MaxEffects = 8

const basePitch = 1024

func (g *GameState) emit(kind EffectKind, variation int16) {
	if g.EffectLen >= MaxEffects {
		return
	}
	if variation == 0 {
		variation = basePitch
	}
	g.Effects[g.EffectLen] = Effect{Kind: kind, Variation: variation}
	g.EffectLen++
}

// movePitch returns the rising pitch for the nth card of a sweep.
func movePitch(n uint8) int16 {
	return basePitch + int16(n)*24
}

// jitterPitch returns a randomly detuned pitch for focus blips.
func (g *GameState) jitterPitch() int16 {
	return basePitch + int16(g.randN(512)) - 256
}
