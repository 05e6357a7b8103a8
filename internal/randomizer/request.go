package randomizer

import (
	"fmt"

	"github.com/FThompson/DominionRandomizer/internal/cards"
)

// Request is the full configuration for one randomization run. All entities
// are constructed fresh per invocation and discarded after output.
type Request struct {
	// Sets are the chosen game sets, in the order the user listed them.
	Sets []cards.GameSet
	// Number is the total count of ordinary cards to draw, including
	// forced includes.
	Number int
	// Weights and Counts are mutually exclusive per-set distributions,
	// parallel to Sets. Leaving both empty draws with uniform weights.
	Weights []float64
	Counts  []int
	// Include and Exclude are card names; matching is case-insensitive
	// with apostrophes and spaces ignored.
	Include []string
	Exclude []string
	// FilterTypes removes every card carrying one of these tags from the
	// pool before drawing.
	FilterTypes []cards.CardType
	// Events and Landmarks are drawn separately and do not count against
	// Number.
	Events    int
	Landmarks int
}

// ParseSets resolves set identifier arguments into game sets. The sentinel
// "all" expands to every complete set in canonical order.
func ParseSets(args []string) ([]cards.GameSet, error) {
	for _, arg := range args {
		if arg == "all" {
			return cards.CompleteSets(), nil
		}
	}
	sets := make([]cards.GameSet, 0, len(args))
	for _, arg := range args {
		gs, ok := cards.SetForArg(arg)
		if !ok || !gs.Complete() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSet, arg)
		}
		sets = append(sets, gs)
	}
	return sets, nil
}

// ParseFilterTypes resolves type tag arguments into card types. Only
// filterable (in-supply, non-Curse) tags are accepted.
func ParseFilterTypes(args []string) ([]cards.CardType, error) {
	types := make([]cards.CardType, 0, len(args))
	for _, arg := range args {
		ct, ok := cards.TypeForName(arg)
		if !ok || !ct.InSupply() || ct == cards.TypeCurse {
			return nil, fmt.Errorf("%w: cannot filter type %q", ErrInvalidRequest, arg)
		}
		types = append(types, ct)
	}
	return types, nil
}

// validate checks the request's shape before any cards are resolved or drawn.
func (req *Request) validate() error {
	if len(req.Sets) == 0 {
		return fmt.Errorf("%w: at least one game set is required", ErrInvalidRequest)
	}
	if req.Number < 0 {
		return fmt.Errorf("%w: number must be >= 0, got %d", ErrInvalidRequest, req.Number)
	}
	if req.Events < 0 || req.Landmarks < 0 {
		return fmt.Errorf("%w: event and landmark counts must be >= 0", ErrInvalidRequest)
	}
	if len(req.Weights) > 0 && len(req.Counts) > 0 {
		return fmt.Errorf("%w: weights and counts are mutually exclusive", ErrInvalidRequest)
	}
	seen := make(map[cards.GameSet]struct{}, len(req.Sets))
	for _, gs := range req.Sets {
		if _, ok := seen[gs]; ok {
			return fmt.Errorf("%w: set %s given more than once", ErrInvalidRequest, gs.FullName())
		}
		seen[gs] = struct{}{}
	}
	if err := req.validateEditions(cards.SetBase1E, cards.SetBase2E); err != nil {
		return err
	}
	if err := req.validateEditions(cards.SetIntrigue1E, cards.SetIntrigue2E); err != nil {
		return err
	}
	if len(req.Weights) > 0 && len(req.Weights) != len(req.Sets) {
		return fmt.Errorf("%w: must have equal quantities of sets (%d) and weights (%d)",
			ErrInvalidRequest, len(req.Sets), len(req.Weights))
	}
	for _, w := range req.Weights {
		if w <= 0 {
			return fmt.Errorf("%w: weights must be positive, got %g", ErrInvalidRequest, w)
		}
	}
	if len(req.Counts) > 0 && len(req.Counts) != len(req.Sets) {
		return fmt.Errorf("%w: must have equal quantities of sets (%d) and counts (%d)",
			ErrInvalidRequest, len(req.Sets), len(req.Counts))
	}
	if len(req.Include) > req.Number {
		return fmt.Errorf("%w: must not have more cards included (%d) than requested (%d)",
			ErrInvalidRequest, len(req.Include), req.Number)
	}
	if len(req.Counts) > 0 {
		sum := 0
		for _, n := range req.Counts {
			if n < 0 {
				return fmt.Errorf("%w: counts must be >= 0, got %d", ErrInvalidRequest, n)
			}
			sum += n
		}
		if remaining := req.Number - len(req.Include); sum != remaining {
			return fmt.Errorf("%w: counts must add up to %d (number %d minus %d included)",
				ErrInvalidRequest, remaining, req.Number, len(req.Include))
		}
	}
	return nil
}

// validateEditions rejects conflicting editioned sets (e.g. Base 1E with
// Base 2E).
func (req *Request) validateEditions(set1, set2 cards.GameSet) error {
	var has1, has2 bool
	for _, gs := range req.Sets {
		has1 = has1 || gs == set1
		has2 = has2 || gs == set2
	}
	if has1 && has2 {
		return fmt.Errorf("%w: must choose only one of %s, %s",
			ErrInvalidRequest, set1.FullName(), set2.FullName())
	}
	return nil
}

// remaining is the count of slots left for random draws after includes.
func (req *Request) remaining() int {
	return req.Number - len(req.Include)
}
