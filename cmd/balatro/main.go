package main

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MeirGavish/balatro-gba/engine"
	"github.com/MeirGavish/balatro-gba/internal/config"
	"github.com/MeirGavish/balatro-gba/internal/content"
	"github.com/MeirGavish/balatro-gba/internal/game"
	"github.com/MeirGavish/balatro-gba/internal/tui"
)

// Frames are repainted every other tick. The engine runs at the full
// tick rate either way.
const ticksPerFrame = 2

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	reg, err := content.New()
	if err != nil {
		logger.WithError(err).Fatal("load content")
	}

	rules := engine.RedDeckRules()
	rules.LowAceStraight = cfg.LowAceStraight
	rules.StartingMoney = cfg.StartingMoney
	rules.HandSize = cfg.HandSize

	renderer, err := tui.NewRenderer()
	if err != nil {
		logger.WithError(err).Fatal("start renderer")
	}
	defer renderer.Stop()

	input := &tui.InputCollector{}
	input.Listen()

	session := game.NewSession(logger, cfg.EffectiveSeed(), rules, reg, nil, &tui.LogAudioSink{Log: logger})

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for range ticker.C {
		in, quit := input.Poll()
		if quit {
			return
		}
		session.Step(in)
		if session.Ticks()%ticksPerFrame == 0 {
			renderer.Render(session.View())
		}
	}
}

// newLogger sends logs to a file so they do not fight the fullscreen
// terminal area. Logging is best effort and falls back to discard.
func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	if lv, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lv)
	}
	f, err := os.OpenFile("balatro.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger
	}
	logger.SetOutput(f)
	return logger
}
