package randomizer

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/FThompson/DominionRandomizer/internal/cards"
	"github.com/FThompson/DominionRandomizer/internal/events"
)

// Randomizer draws randomized kingdoms from an injected, read-only card
// collection. Results are published on the event manager for rendering.
type Randomizer struct {
	collection *cards.Collection
	log        *logrus.Logger
	events     *events.Manager
}

// New creates a Randomizer with its required dependencies.
func New(collection *cards.Collection, log *logrus.Logger, eventManager *events.Manager) *Randomizer {
	return &Randomizer{
		collection: collection,
		log:        log,
		events:     eventManager,
	}
}

// Group is the chosen ordinary cards of one game set.
type Group struct {
	Set   cards.GameSet
	Cards []cards.Card
}

// Result is the outcome of one randomization run. Groups follow the order in
// which the user listed sets on input; Events and Landmarks are reported
// separately.
type Result struct {
	Groups    []Group
	Events    []cards.Card
	Landmarks []cards.Card
}

// Total returns the number of ordinary cards across all groups.
func (res *Result) Total() int {
	total := 0
	for _, g := range res.Groups {
		total += len(g.Cards)
	}
	return total
}

// Randomize validates the request, then draws the requested kingdom using the
// given random source. No randomness is invoked on an inconsistent request,
// and no partial result is ever produced.
func (r *Randomizer) Randomize(req Request, rng *rand.Rand) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	p, err := r.buildPool(&req)
	if err != nil {
		return nil, err
	}
	capacities := p.capacities(req.Sets)
	counts, err := r.resolveCounts(&req, capacities)
	if err != nil {
		return nil, err
	}

	// Validation is complete; everything from here on succeeds.
	r.events.Publish(events.RollStartedEvent{Sets: req.Sets, Number: req.Number})
	sizes := make(map[cards.GameSet]int, len(req.Sets))
	for i, gs := range req.Sets {
		sizes[gs] = capacities[i]
	}
	r.events.Publish(events.PoolReadyEvent{Sizes: sizes})

	result := &Result{}
	for i, gs := range req.Sets {
		drawn := drawN(p.bySet[gs], counts[i], rng)
		r.log.Debugf("Drew %d of %d candidates from %s", counts[i], capacities[i], gs.FullName())
		result.Groups = append(result.Groups, Group{Set: gs, Cards: drawn})
	}
	r.placeIncludes(result, p.included, req.Sets)
	for i := range result.Groups {
		sortByName(result.Groups[i].Cards)
	}
	result.Events = drawN(p.events, req.Events, rng)
	result.Landmarks = drawN(p.landmarks, req.Landmarks, rng)
	sortByName(result.Events)
	sortByName(result.Landmarks)

	r.events.Publish(events.KingdomGeneratedEvent{Result: result})
	return result, nil
}

// resolveCounts determines how many cards to draw from each set's partition.
// In count mode the requested counts are used as-is and must each fit within
// the set's candidate pool. Otherwise the remaining slots are split
// proportionally to the weights (uniform by default).
func (r *Randomizer) resolveCounts(req *Request, capacities []int) ([]int, error) {
	if len(req.Counts) > 0 {
		for i, n := range req.Counts {
			if n > capacities[i] {
				return nil, fmt.Errorf("%w: requested %d cards from %s but only %d available",
					ErrInsufficientCandidates, n, req.Sets[i].FullName(), capacities[i])
			}
		}
		return req.Counts, nil
	}
	weights := req.Weights
	if len(weights) == 0 {
		weights = uniformWeights(len(req.Sets))
	}
	return allocate(weights, capacities, req.remaining())
}

// placeIncludes adds the forced includes to their sets' groups. An include
// from outside the chosen sets gets its own group appended after them.
func (r *Randomizer) placeIncludes(result *Result, included []cards.Card, sets []cards.GameSet) {
	for _, c := range included {
		placed := false
		for i, gs := range sets {
			if gs.Contains(c) {
				result.Groups[i].Cards = append(result.Groups[i].Cards, c)
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		extra := -1
		for i := len(sets); i < len(result.Groups); i++ {
			if result.Groups[i].Set == c.Set {
				extra = i
				break
			}
		}
		if extra == -1 {
			result.Groups = append(result.Groups, Group{Set: c.Set})
			extra = len(result.Groups) - 1
		}
		result.Groups[extra].Cards = append(result.Groups[extra].Cards, c)
	}
}

func sortByName(list []cards.Card) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}
