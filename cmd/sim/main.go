// Command sim runs headless scripted games. It is the quickest way to
// soak the engine for a few million ticks or to check the pacing of a
// content change without sitting through a run.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/MeirGavish/balatro-gba/engine"
	"github.com/MeirGavish/balatro-gba/internal/config"
	"github.com/MeirGavish/balatro-gba/internal/content"
	"github.com/MeirGavish/balatro-gba/internal/game"
)

func main() {
	var (
		seed     = flag.Uint64("seed", 0, "rng seed, 0 derives one from the clock")
		maxTicks = flag.Uint64("ticks", 2_000_000, "stop after this many ticks")
		rounds   = flag.Int("rounds", 0, "stop after winning this many rounds, 0 = unlimited")
		verbose  = flag.Bool("verbose", false, "debug logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	reg, err := content.New()
	if err != nil {
		logger.WithError(err).Fatal("load content")
	}

	cfg := config.Config{Seed: *seed}
	session := game.NewSession(logger, cfg.EffectiveSeed(), engine.RedDeckRules(), reg, nil, nil)

	won := 0
	lastPhase := session.Engine.Phase
	for session.Ticks() < *maxTicks {
		session.Step(autoInput(&session.Engine))

		phase := session.Engine.Phase
		if phase == engine.PhaseRoundEnd && lastPhase != engine.PhaseRoundEnd {
			won++
			logger.WithFields(logrus.Fields{
				"rounds": won,
				"ante":   session.Engine.Ante,
				"money":  session.Engine.Money,
				"ticks":  session.Ticks(),
				"state":  session.Engine.StateHash(),
			}).Info("round won")
			if *rounds > 0 && won >= *rounds {
				return
			}
		}
		lastPhase = phase

		if session.Over() {
			logger.WithFields(logrus.Fields{
				"rounds": won,
				"ante":   session.Engine.Ante,
				"score":  session.Engine.Score,
				"ticks":  session.Ticks(),
			}).Info("run lost")
			return
		}
	}
	logger.WithField("rounds", won).Info("tick budget exhausted")
	os.Exit(1)
}

// autoInput plays a plain strategy: pick the first selectable cards,
// play them, never shop, never skip a blind.
func autoInput(g *engine.GameState) engine.Input {
	switch g.Phase {
	case engine.PhaseBlindSelect:
		if g.BlindSel.Step == engine.BlindSelBrowse {
			return engine.Input{Confirm: true}
		}
	case engine.PhaseRoundEnd:
		if g.RoundEnd.Step == engine.RoundEndCashOut && g.Tick > engine.SettleTicks {
			return engine.Input{Confirm: true}
		}
	case engine.PhaseShop:
		if g.Shop.Step == engine.ShopBrowse {
			return engine.Input{Confirm: true} // cursor rests on the leave button
		}
	case engine.PhasePlaying:
		if g.HandPhase != engine.HandSelect {
			return engine.Input{}
		}
		if g.OnButtons {
			if g.OnDiscard {
				return engine.Input{Left: true}
			}
			return engine.Input{Confirm: true}
		}
		if g.Selections < g.Rules.MaxSelection && g.Selections < g.HandLen {
			if !g.Hand[g.Focus].Selected {
				return engine.Input{Confirm: true}
			}
			if g.Focus+1 < g.HandLen {
				return engine.Input{Right: true}
			}
		}
		return engine.Input{Down: true}
	}
	return engine.Input{}
}
