package tui

import (
	"github.com/sirupsen/logrus"

	"github.com/MeirGavish/balatro-gba/engine"
)

// LogAudioSink narrates sound cues through the logger at debug level.
// The terminal has no speaker; the cues still matter for diagnosing
// tick timing.
type LogAudioSink struct {
	Log logrus.FieldLogger
}

func (s *LogAudioSink) PlayEffect(kind engine.EffectKind, variation int16) {
	if s.Log == nil {
		return
	}
	s.Log.WithFields(logrus.Fields{
		"effect":    kind,
		"variation": variation,
	}).Debug("sfx")
}
