package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/FThompson/DominionRandomizer/internal/cards"
	"github.com/FThompson/DominionRandomizer/internal/events"
	"github.com/FThompson/DominionRandomizer/internal/randomizer"
)

// CLI manages all command-line interactions.
type CLI struct {
	log *logrus.Logger
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	return &CLI{log: log}
}

// Run is the main entry point for the CLI application. Arguments are either
// the "shell" command or a one-shot randomization request (set identifiers
// plus flags).
func (c *CLI) Run(args []string, collection *cards.Collection, rng *rand.Rand) error {
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no game sets provided")
	}
	if args[0] == "shell" {
		return c.runShell(collection, rng)
	}
	req, err := parseRequest(args)
	if err != nil {
		return err
	}
	return c.roll(req, collection, rng)
}

// roll runs one randomization; the subscribed renderer prints the result.
func (c *CLI) roll(req randomizer.Request, collection *cards.Collection, rng *rand.Rand) error {
	manager := events.NewManager()
	manager.Subscribe(&KingdomRenderer{})
	_, err := randomizer.New(collection, c.log, manager).Randomize(req, rng)
	return err
}

// shellState accumulates request arguments across shell commands. Raw strings
// are kept so each roll revalidates the full configuration the same way the
// one-shot command line does.
type shellState struct {
	sets      []string
	number    int
	weights   []string
	counts    []string
	include   []string
	exclude   []string
	filters   []string
	events    int
	landmarks int
}

func newShellState() *shellState {
	return &shellState{number: 10}
}

func (s *shellState) buildRequest() (randomizer.Request, error) {
	args := append([]string{}, s.sets...)
	args = append(args, "-n", strconv.Itoa(s.number))
	args = append(args, "-e", strconv.Itoa(s.events))
	args = append(args, "-l", strconv.Itoa(s.landmarks))
	for _, w := range s.weights {
		args = append(args, "-w", w)
	}
	for _, n := range s.counts {
		args = append(args, "-c", n)
	}
	for _, name := range s.include {
		args = append(args, "-i", name)
	}
	for _, name := range s.exclude {
		args = append(args, "-x", name)
	}
	for _, t := range s.filters {
		args = append(args, "-f", t)
	}
	return parseRequest(args)
}

// runShell starts an interactive session for building and re-rolling kingdoms.
func (c *CLI) runShell(collection *cards.Collection, rng *rand.Rand) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	C.Info.Println("\n--- Dominion Randomizer Shell ---")
	c.printShellHelp()
	state := newShellState()

	for {
		input, err := line.Prompt("(dominion) ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		rest := parts[1:]

		switch cmd {
		case "sets", "s":
			state.sets = rest
		case "number", "n":
			c.setIntArg(&state.number, rest)
		case "weights", "w":
			state.weights = rest
			state.counts = nil
		case "counts", "c":
			state.counts = rest
			state.weights = nil
		case "include", "i":
			state.include = splitNames(rest)
		case "exclude", "x":
			state.exclude = splitNames(rest)
		case "filter", "f":
			state.filters = rest
		case "events", "e":
			c.setIntArg(&state.events, rest)
		case "landmarks", "la":
			c.setIntArg(&state.landmarks, rest)
		case "clear":
			state = newShellState()
			C.Info.Println("Configuration cleared.")
		case "show":
			c.showState(state)
		case "roll", "r":
			req, err := state.buildRequest()
			if err == nil {
				err = c.roll(req, collection, rng)
			}
			if err != nil {
				C.Warn.Printf("Cannot roll: %v\n", err)
			}
		case "help", "h":
			c.printShellHelp()
		case "quit", "q":
			C.Info.Println("Exiting shell.")
			return nil
		default:
			C.Warn.Printf("Unknown command '%s'. Type 'help' for a list of commands.\n", cmd)
		}
	}
}

func (c *CLI) setIntArg(target *int, args []string) {
	if len(args) != 1 {
		C.Warn.Println("Expected exactly one number.")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		C.Warn.Printf("Invalid number %q.\n", args[0])
		return
	}
	*target = n
}

// splitNames rejoins the command's words and splits on commas, so multi-word
// card names work: "include Council Room, Moat".
func splitNames(args []string) []string {
	var names []string
	for _, part := range strings.Split(strings.Join(args, " "), ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func (c *CLI) showState(state *shellState) {
	C.Header.Println("\n--- Current Configuration ---")
	show := func(label string, values []string) {
		if len(values) > 0 {
			fmt.Printf("%-12s %s\n", label+":", strings.Join(values, ", "))
		}
	}
	fmt.Printf("%-12s %d\n", "number:", state.number)
	show("sets", state.sets)
	show("weights", state.weights)
	show("counts", state.counts)
	show("include", state.include)
	show("exclude", state.exclude)
	show("filter", state.filters)
	if state.events > 0 {
		fmt.Printf("%-12s %d\n", "events:", state.events)
	}
	if state.landmarks > 0 {
		fmt.Printf("%-12s %d\n", "landmarks:", state.landmarks)
	}
}

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Dominion Randomizer ---")
	fmt.Println("Usage:")
	fmt.Println("  dominion <sets...> [flags]")
	fmt.Println("    Randomize a kingdom from the given game sets (or 'all').")
	fmt.Println("  dominion shell")
	fmt.Println("    Start an interactive session for building and re-rolling kingdoms.")
	fmt.Println("\nFlags:")
	fmt.Println("  -n, --number INT        Number of cards to pick, default 10")
	fmt.Println("  -w, --weights FLOATS    Weights applied to each set when picking cards")
	fmt.Println("  -c, --counts INTS       Counts of cards to pick from each set")
	fmt.Println("  -i, --include NAMES     Specific cards to include")
	fmt.Println("  -x, --exclude NAMES     Specific cards to exclude")
	fmt.Println("  -f, --filter-types TAGS Card types to filter out before picking")
	fmt.Println("  -e, --events INT        Number of events to pick")
	fmt.Println("  -l, --landmarks INT     Number of landmarks to pick")
	fmt.Println("\nList flags repeat or take comma-separated values: -w 2 -w 1 or -w 2,1")
}

func (c *CLI) printShellHelp() {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"sets", "s", "Choose the game sets to draw from, or 'all'."},
		{"number", "n", "Set the total number of cards to pick."},
		{"weights", "w", "Set per-set weights (clears counts)."},
		{"counts", "c", "Set per-set counts (clears weights)."},
		{"include", "i", "Comma-separated card names to force-include."},
		{"exclude", "x", "Comma-separated card names to exclude."},
		{"filter", "f", "Card types to filter out of the pool."},
		{"events", "e", "Set the number of events to pick."},
		{"landmarks", "la", "Set the number of landmarks to pick."},
		{"show", "", "Display the current configuration."},
		{"roll", "r", "Randomize a kingdom with the current configuration."},
		{"clear", "", "Reset the configuration to defaults."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Exit the shell."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}
