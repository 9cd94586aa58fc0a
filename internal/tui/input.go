package tui

import (
	"sync"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"

	"github.com/MeirGavish/balatro-gba/engine"
)

// InputCollector turns asynchronous key events into the edge-triggered
// per-tick Input the engine expects: each Poll returns the keys pressed
// since the previous Poll and clears them.
type InputCollector struct {
	mu      sync.Mutex
	pending engine.Input
	quit    bool
}

// Listen starts the keyboard listener in a goroutine. It returns after
// the listener is installed; key events accumulate until Poll.
func (c *InputCollector) Listen() {
	go func() {
		_ = keyboard.Listen(c.handle)
	}()
}

// handle maps one key event onto the pending input. Exposed to tests
// through Poll, never called concurrently by the keyboard package.
func (c *InputCollector) handle(key keys.Key) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch key.Code {
	case keys.Up:
		c.pending.Up = true
	case keys.Down:
		c.pending.Down = true
	case keys.Left:
		c.pending.Left = true
	case keys.Right:
		c.pending.Right = true
	case keys.Enter, keys.Space:
		c.pending.Confirm = true
	case keys.CtrlC, keys.Escape:
		c.quit = true
		return true, nil
	case keys.RuneKey:
		switch key.String() {
		case "s":
			c.pending.Sort = true
		case "q":
			c.quit = true
			return true, nil
		}
	}
	return false, nil
}

// Poll returns the input accumulated since the last call and whether
// the player asked to quit.
func (c *InputCollector) Poll() (engine.Input, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := c.pending
	c.pending = engine.Input{}
	return in, c.quit
}
