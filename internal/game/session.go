// Package game bridges the pure engine to frontends: it owns a running
// engine.GameState, mirrors engine cards with stable entity UUIDs for
// rendering, forwards the per-tick effect queue to an audio sink, and
// logs run milestones.
package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/MeirGavish/balatro-gba/engine"
)

// AudioSink consumes the engine's per-tick effect queue. Implementations
// must not block; effects are fire-and-forget.
type AudioSink interface {
	PlayEffect(kind engine.EffectKind, variation int16)
}

// EntityKind tags presenter entities.
type EntityKind uint8

const (
	EntityCard EntityKind = iota
	EntityJoker
	EntityBlindToken
)

// Presenter receives entity lifecycle updates derived from engine state.
// Positions are targets in abstract layout units; the presenter owns the
// interpolation toward them and the meaning of a unit on its surface.
type Presenter interface {
	CreateEntity(id uuid.UUID, kind EntityKind, label string)
	MoveEntity(id uuid.UUID, x, y int)
	DestroyEntity(id uuid.UUID)
	// ReachedTarget reports whether the entity has settled at its last
	// target, by whatever threshold the presenter uses.
	ReachedTarget(id uuid.UUID) bool
}

// Session owns one run. It is not safe for concurrent use; callers
// drive it from a single tick loop.
type Session struct {
	Engine engine.GameState

	log       logrus.FieldLogger
	audio     AudioSink
	presenter Presenter
	tracker   entityTracker

	lastPhase engine.GamePhase
	lastAnte  uint8
	ticks     uint64
}

// NewSession starts a run from the given seed. Presenter and audio may
// be nil for headless use.
func NewSession(logger logrus.FieldLogger, seed uint64, rules engine.DeckRules, content engine.Content, presenter Presenter, audio AudioSink) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Session{
		Engine:    engine.NewGame(seed, rules, content),
		log:       logger.WithField("seed", seed),
		audio:     audio,
		presenter: presenter,
	}
	s.tracker.init()
	s.lastPhase = s.Engine.Phase
	s.lastAnte = s.Engine.Ante
	s.log.WithFields(logrus.Fields{
		"money": s.Engine.Money,
		"ante":  s.Engine.Ante,
	}).Info("run started")
	return s
}

// Step advances the run one tick: engine first, then effects, entity
// sync, and milestone logging.
func (s *Session) Step(in engine.Input) {
	s.Engine.Step(in)
	s.ticks++
	s.flushEffects()
	if s.presenter != nil {
		s.tracker.sync(&s.Engine, s.presenter)
	}
	s.logTransitions()
}

// Ticks returns the number of steps taken so far.
func (s *Session) Ticks() uint64 { return s.ticks }

// Over reports whether the run has ended.
func (s *Session) Over() bool { return s.Engine.Phase == engine.PhaseLose }

// Settled reports whether every live entity has reached its target.
// Headless sessions are always settled.
func (s *Session) Settled() bool {
	if s.presenter == nil {
		return true
	}
	return s.tracker.allSettled(s.presenter)
}

func (s *Session) flushEffects() {
	if s.audio == nil {
		return
	}
	for i := uint8(0); i < s.Engine.EffectLen; i++ {
		e := s.Engine.Effects[i]
		s.audio.PlayEffect(e.Kind, e.Variation)
	}
}

func (s *Session) logTransitions() {
	g := &s.Engine
	if g.Phase != s.lastPhase {
		entry := s.log.WithFields(logrus.Fields{
			"from":  s.lastPhase.String(),
			"to":    g.Phase.String(),
			"round": g.Round,
			"money": g.Money,
		})
		switch g.Phase {
		case engine.PhaseRoundEnd:
			entry.WithFields(logrus.Fields{
				"score": g.Score,
				"blind": g.CurrentBlind.String(),
			}).Info("blind defeated")
		case engine.PhaseLose:
			entry.WithField("score", g.Score).Info("run over")
		default:
			entry.Debug("phase change")
		}
		s.lastPhase = g.Phase
	}
	if g.Ante != s.lastAnte {
		s.log.WithField("ante", g.Ante).Info("ante up")
		s.lastAnte = g.Ante
	}
}
