// Package tui renders a run to the terminal with pterm and collects
// keyboard input for the tick loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/MeirGavish/balatro-gba/engine"
	"github.com/MeirGavish/balatro-gba/internal/game"
)

// Renderer draws the session view into the terminal. It repaints the
// whole screen each frame; pterm's area handles the diffing.
type Renderer struct {
	area *pterm.AreaPrinter
}

func NewRenderer() (*Renderer, error) {
	area, err := pterm.DefaultArea.WithFullscreen().Start()
	if err != nil {
		return nil, fmt.Errorf("tui: start area: %w", err)
	}
	return &Renderer{area: area}, nil
}

func (r *Renderer) Stop() error {
	return r.area.Stop()
}

// Render repaints the screen from the view.
func (r *Renderer) Render(v game.View) {
	var b strings.Builder
	b.WriteString(headerPanel(v))
	b.WriteString("\n")
	switch v.Phase {
	case engine.PhaseBlindSelect:
		b.WriteString(blindSelectPanel(v))
	case engine.PhaseShop:
		b.WriteString(shopPanel(v))
	case engine.PhaseRoundEnd:
		b.WriteString(roundEndPanel(v))
	case engine.PhaseLose:
		b.WriteString(losePanel(v))
	default:
		b.WriteString(tablePanel(v))
	}
	b.WriteString("\n")
	b.WriteString(footerPanel(v))
	r.area.Update(b.String())
}

var suitGlyphs = [engine.NumSuits]string{"♣", "♦", "♥", "♠"}

// cardText renders one card, red suits in red, with selection and
// focus markers.
func cardText(c game.HandCard) string {
	label := c.Label
	if len(label) > 0 {
		label = label[:len(label)-1] + suitGlyphs[c.Suit]
	}
	if c.Suit == engine.SuitHearts || c.Suit == engine.SuitDiamonds {
		label = pterm.LightRed(label)
	}
	switch {
	case c.Focused && c.Selected:
		return "[" + pterm.Bold.Sprint(label) + "*]"
	case c.Focused:
		return "[" + pterm.Bold.Sprint(label) + "]"
	case c.Selected:
		return " " + label + "* "
	}
	return " " + label + " "
}

func headerPanel(v game.View) string {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)
	title := fmt.Sprintf("%s  ante %d  round %d", v.Blind, v.Ante, v.Round)
	score := fmt.Sprintf("score %d / %d", v.Score, v.Requirement)
	if v.TempScore > 0 {
		score += pterm.LightYellow(fmt.Sprintf("  +%d", v.TempScore))
	}
	line := score
	if v.HandName != "" {
		line += fmt.Sprintf("\n%s  %s x %s",
			v.HandName, pterm.LightBlue(fmt.Sprint(v.Chips)), pterm.LightRed(fmt.Sprint(v.Mult)))
	}
	return box.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprint(line)
}

func tablePanel(v game.View) string {
	var b strings.Builder
	if len(v.PlayedCards) > 0 {
		row := make([]string, 0, len(v.PlayedCards))
		for _, c := range v.PlayedCards {
			row = append(row, cardText(c))
		}
		b.WriteString(pterm.DefaultBox.WithTitle("played").Sprint(strings.Join(row, " ")))
		b.WriteString("\n")
	}
	row := make([]string, 0, len(v.HandCards))
	for _, c := range v.HandCards {
		row = append(row, cardText(c))
	}
	b.WriteString(pterm.DefaultBox.WithTitle("hand").Sprint(strings.Join(row, " ")))
	if len(v.Jokers) > 0 {
		names := make([]string, 0, len(v.Jokers))
		for _, j := range v.Jokers {
			names = append(names, j.Name)
		}
		b.WriteString("\n")
		b.WriteString(pterm.DefaultBox.WithTitle("jokers").Sprint(strings.Join(names, " | ")))
	}
	return b.String()
}

func blindSelectPanel(v game.View) string {
	var b strings.Builder
	for i, st := range v.BlindStates {
		name := engine.BlindID(i).String()
		switch st {
		case engine.BlindCurrent:
			b.WriteString(pterm.LightGreen("> " + name + "\n"))
		case engine.BlindDefeated:
			b.WriteString(pterm.Gray(name+" (defeated)") + "\n")
		case engine.BlindSkipped:
			b.WriteString(pterm.Gray(name+" (skipped)") + "\n")
		default:
			b.WriteString("  " + name + "\n")
		}
	}
	sel, skip := "[ Select ]", "  Skip  "
	if v.OnSkip {
		sel, skip = "  Select  ", "[ Skip ]"
	}
	b.WriteString("\n" + sel + "   " + skip)
	return pterm.DefaultBox.WithTitle(pterm.LightYellow("|CHOOSE BLIND|")).WithTitleTopCenter().Sprint(b.String())
}

func shopPanel(v game.View) string {
	var b strings.Builder
	for i, o := range v.Offers {
		line := fmt.Sprintf("%s  $%d", o.Name, o.Price)
		if o.Sold {
			line = pterm.Gray(o.Name + "  (sold)")
		}
		if !v.OnReroll && int(v.ShopCursor) == i+1 {
			line = pterm.LightGreen("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	leave := "  Next Round"
	if !v.OnReroll && v.ShopCursor == 0 {
		leave = pterm.LightGreen("> Next Round")
	}
	reroll := fmt.Sprintf("  Reroll $%d", v.RerollCost)
	if v.OnReroll {
		reroll = pterm.LightGreen(fmt.Sprintf("> Reroll $%d", v.RerollCost))
	}
	b.WriteString("\n" + leave + "\n" + reroll)
	return pterm.DefaultBox.WithTitle(pterm.LightYellow("|SHOP|")).WithTitleTopCenter().Sprint(b.String())
}

func roundEndPanel(v game.View) string {
	msg := fmt.Sprintf("%s defeated!", v.Blind)
	if v.CashOutReady {
		msg += "\n\n" + pterm.LightGreen("[ Cash Out ]")
	}
	return pterm.DefaultBox.WithTitle(pterm.LightGreen("|ROUND WON|")).WithTitleTopCenter().Sprint(msg)
}

func losePanel(v game.View) string {
	msg := fmt.Sprintf("Out of hands.\nFinal score %d on %s, ante %d.", v.Score, v.Blind, v.Ante)
	return pterm.DefaultBox.WithTitle(pterm.LightRed("|GAME OVER|")).WithTitleTopCenter().Sprint(msg)
}

func footerPanel(v game.View) string {
	return fmt.Sprintf(" $%d   hands %d   discards %d   deck %d/%d ",
		v.Money, v.Hands, v.Discards, v.DeckLeft, v.DeckMax)
}
