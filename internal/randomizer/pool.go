package randomizer

import (
	"fmt"

	"github.com/FThompson/DominionRandomizer/internal/cards"
)

// pool holds the candidate cards eligible for random sampling, partitioned by
// the chosen game sets, along with the resolved forced includes and the
// auxiliary Event/Landmark candidates.
type pool struct {
	bySet     map[cards.GameSet][]cards.Card
	included  []cards.Card
	events    []cards.Card
	landmarks []cards.Card
}

// buildPool assembles the candidate pool for the request. It is a pure
// function of the request and the card collection; all name resolution
// errors surface here, before any randomness.
func (r *Randomizer) buildPool(req *Request) (*pool, error) {
	included, err := r.resolveNames(req.Include, "-i/--include")
	if err != nil {
		return nil, err
	}
	excluded, err := r.resolveNames(req.Exclude, "-x/--exclude")
	if err != nil {
		return nil, err
	}

	// An include overrides the exclude list and the type filter: explicit
	// user intent wins.
	reserved := make(map[string]struct{}, len(included))
	for _, c := range included {
		reserved[cards.StandardizeName(c.Name)] = struct{}{}
	}
	dropped := make(map[string]struct{}, len(excluded))
	for _, c := range excluded {
		key := cards.StandardizeName(c.Name)
		if _, ok := reserved[key]; !ok {
			dropped[key] = struct{}{}
		}
	}

	eligible := func(c cards.Card) bool {
		if !c.Pickable || c.HasAnyType(req.FilterTypes) {
			return false
		}
		key := cards.StandardizeName(c.Name)
		if _, ok := reserved[key]; ok {
			return false
		}
		_, ok := dropped[key]
		return !ok
	}

	p := &pool{
		bySet:    make(map[cards.GameSet][]cards.Card, len(req.Sets)),
		included: included,
	}
	for _, gs := range req.Sets {
		var setCards []cards.Card
		for _, c := range r.collection.Cards() {
			if c.Category == cards.CategoryCard && gs.Contains(c) && eligible(c) {
				setCards = append(setCards, c)
			}
		}
		// Special randomizer cards stand in for whole stacks (Knights,
		// Castles); split pile members are replaced by their joint
		// randomizer entry.
		for _, c := range cards.SpecialTypeCards() {
			if c.Set == gs && eligible(c) {
				setCards = append(setCards, c)
			}
		}
		for _, split := range cards.SplitPileCards() {
			if split.Set != gs {
				continue
			}
			setCards = removeNames(setCards, split.SplitMembers())
			if eligible(split) {
				setCards = append(setCards, split)
			}
		}
		p.bySet[gs] = setCards
	}

	for _, c := range r.collection.Cards() {
		if _, ok := dropped[cards.StandardizeName(c.Name)]; ok {
			continue
		}
		if !anySetContains(req.Sets, c) {
			continue
		}
		switch c.Category {
		case cards.CategoryEvent:
			p.events = append(p.events, c)
		case cards.CategoryLandmark:
			p.landmarks = append(p.landmarks, c)
		}
	}
	if req.Events > len(p.events) {
		return nil, fmt.Errorf("%w: requested %d events but only %d available in given sets",
			ErrInsufficientCandidates, req.Events, len(p.events))
	}
	if req.Landmarks > len(p.landmarks) {
		return nil, fmt.Errorf("%w: requested %d landmarks but only %d available in given sets",
			ErrInsufficientCandidates, req.Landmarks, len(p.landmarks))
	}
	return p, nil
}

// resolveNames maps card name arguments to cards from the full, unfiltered
// dataset. The hint names the failing argument in error messages.
func (r *Randomizer) resolveNames(names []string, hint string) ([]cards.Card, error) {
	resolved := make([]cards.Card, 0, len(names))
	for _, name := range names {
		card, ok := r.collection.FindByName(name)
		if !ok {
			card, ok = findSynthetic(name)
		}
		if !ok {
			return nil, fmt.Errorf("%w: unable to find card specified via %s: %q",
				ErrUnknownCardName, hint, name)
		}
		resolved = append(resolved, card)
	}
	return resolved, nil
}

// findSynthetic checks the randomizer-only cards (Knights, split piles) that
// do not appear in the dataset itself.
func findSynthetic(name string) (cards.Card, bool) {
	key := cards.StandardizeName(name)
	for _, c := range append(cards.SpecialTypeCards(), cards.SplitPileCards()...) {
		if cards.StandardizeName(c.Name) == key {
			return c, true
		}
	}
	return cards.Card{}, false
}

// capacities returns the per-set candidate counts in the request's set order.
func (p *pool) capacities(sets []cards.GameSet) []int {
	sizes := make([]int, len(sets))
	for i, gs := range sets {
		sizes[i] = len(p.bySet[gs])
	}
	return sizes
}

func removeNames(setCards []cards.Card, names []string) []cards.Card {
	kept := setCards[:0]
	for _, c := range setCards {
		removed := false
		for _, name := range names {
			if c.Name == name {
				removed = true
				break
			}
		}
		if !removed {
			kept = append(kept, c)
		}
	}
	return kept
}

func anySetContains(sets []cards.GameSet, c cards.Card) bool {
	for _, gs := range sets {
		if gs.Contains(c) {
			return true
		}
	}
	return false
}
