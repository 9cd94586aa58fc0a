package tui

import (
	"testing"

	"atomicgo.dev/keyboard/keys"
	"github.com/stretchr/testify/assert"
)

func TestPollClearsPending(t *testing.T) {
	var c InputCollector
	c.handle(keys.Key{Code: keys.Right})
	c.handle(keys.Key{Code: keys.Enter})

	in, quit := c.Poll()
	assert.True(t, in.Right)
	assert.True(t, in.Confirm)
	assert.False(t, quit)

	in, _ = c.Poll()
	assert.Equal(t, false, in.Right, "poll must clear pending keys")
	assert.Equal(t, false, in.Confirm)
}

func TestKeyMapping(t *testing.T) {
	var c InputCollector
	c.handle(keys.Key{Code: keys.Up})
	c.handle(keys.Key{Code: keys.Down})
	c.handle(keys.Key{Code: keys.Left})
	c.handle(keys.Key{Code: keys.Space})
	c.handle(keys.Key{Code: keys.RuneKey, Runes: []rune{'s'}})

	in, quit := c.Poll()
	assert.True(t, in.Up)
	assert.True(t, in.Down)
	assert.True(t, in.Left)
	assert.True(t, in.Confirm)
	assert.True(t, in.Sort)
	assert.False(t, quit)
}

func TestQuitKeys(t *testing.T) {
	var c InputCollector
	stop, err := c.handle(keys.Key{Code: keys.RuneKey, Runes: []rune{'q'}})
	assert.True(t, stop)
	assert.NoError(t, err)

	_, quit := c.Poll()
	assert.True(t, quit)

	c = InputCollector{}
	stop, _ = c.handle(keys.Key{Code: keys.CtrlC})
	assert.True(t, stop)
	_, quit = c.Poll()
	assert.True(t, quit)
}
