package cli

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/FThompson/DominionRandomizer/internal/cards"
	"github.com/FThompson/DominionRandomizer/internal/events"
	"github.com/FThompson/DominionRandomizer/internal/randomizer"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Info, Warn, Header, Prompt, Debug *color.Color
}{
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// TypeColors maps a card's leading type tags to display colors.
var TypeColors = map[cards.CardType]*color.Color{
	cards.TypeAction:   color.New(color.FgWhite),
	cards.TypeTreasure: color.New(color.FgYellow),
	cards.TypeVictory:  color.New(color.FgGreen),
	cards.TypeAttack:   color.New(color.FgRed),
	cards.TypeReaction: color.New(color.FgBlue),
	cards.TypeDuration: color.New(color.FgHiYellow),
	cards.TypeNight:    color.New(color.FgMagenta),
}

// ColorizeCard returns a card's name colored by its first recognized type.
func ColorizeCard(c cards.Card) string {
	for _, t := range c.Types {
		if col, ok := TypeColors[t]; ok {
			return col.Sprint(c.Name)
		}
	}
	return c.Name
}

// KingdomRenderer implements the events.Listener interface to print
// randomization results to the console.
type KingdomRenderer struct{}

// HandleEvent is the central dispatcher for rendering events.
func (r *KingdomRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.RollStartedEvent:
		names := make([]string, len(event.Sets))
		for i, gs := range event.Sets {
			names[i] = gs.FullName()
		}
		C.Header.Printf("\n--- Randomizing %d cards from %s ---\n",
			event.Number, strings.Join(names, ", "))
	case events.KingdomGeneratedEvent:
		result, ok := event.Result.(*randomizer.Result)
		if !ok {
			return
		}
		r.renderKingdom(result)
	}
}

func (r *KingdomRenderer) renderKingdom(result *randomizer.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Kingdom")
	t.AppendHeader(table.Row{"Set", "Card", "Types", "Cost"})
	first := true
	for _, group := range result.Groups {
		if len(group.Cards) == 0 {
			continue
		}
		if !first {
			t.AppendSeparator()
		}
		first = false
		for i, c := range group.Cards {
			setName := ""
			if i == 0 {
				setName = group.Set.FullName()
			}
			t.AppendRow(table.Row{setName, ColorizeCard(c), c.TypeNames(), c.Cost.String()})
		}
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.Render()

	r.renderExtras("Events", result.Events, true)
	r.renderExtras("Landmarks", result.Landmarks, false)
}

// renderExtras prints an Event or Landmark section, if any were drawn.
// Landmarks have no meaningful cost, so the column is dropped.
func (r *KingdomRenderer) renderExtras(label string, extras []cards.Card, withCost bool) {
	if len(extras) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(label)
	if withCost {
		t.AppendHeader(table.Row{"Name", "Set", "Cost"})
	} else {
		t.AppendHeader(table.Row{"Name", "Set"})
	}
	for _, c := range extras {
		if withCost {
			t.AppendRow(table.Row{c.Name, c.Set.FullName(), c.Cost.String()})
		} else {
			t.AppendRow(table.Row{c.Name, c.Set.FullName()})
		}
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}
