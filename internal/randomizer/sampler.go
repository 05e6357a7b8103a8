package randomizer

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/FThompson/DominionRandomizer/internal/cards"
)

// drawN picks n cards uniformly at random without replacement using a partial
// Fisher-Yates shuffle, so every n-subset and ordering is equally likely. The
// input slice is not modified.
func drawN(candidates []cards.Card, n int, rng *rand.Rand) []cards.Card {
	indexes := make([]int, len(candidates))
	for i := range indexes {
		indexes[i] = i
	}
	drawn := make([]cards.Card, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(indexes)-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
		drawn[i] = candidates[indexes[i]]
	}
	return drawn
}

// allocate distributes total slots across sets proportionally to weights
// using the largest-remainder rule. Remainder ties break by input order. Sets
// allocated beyond their capacity are capped, with the overflow redistributed
// to sets that still have room; if aggregate capacity cannot hold the total,
// the allocation fails.
func allocate(weights []float64, capacities []int, total int) ([]int, error) {
	sumWeights := 0.0
	for _, w := range weights {
		sumWeights += w
	}

	counts := make([]int, len(weights))
	remainders := make([]float64, len(weights))
	assigned := 0
	for i, w := range weights {
		exact := float64(total) * w / sumWeights
		counts[i] = int(math.Floor(exact))
		remainders[i] = exact - float64(counts[i])
		assigned += counts[i]
	}

	// Distribute the leftover slots to the largest fractional remainders,
	// preferring earlier sets on ties.
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for leftover := total - assigned; leftover > 0; leftover-- {
		counts[order[leftover-1]]++
	}

	// Cap any allocation that exceeds its set's candidate pool and push the
	// overflow onto sets with spare capacity, in the same deterministic
	// order.
	overflow := 0
	for i := range counts {
		if counts[i] > capacities[i] {
			overflow += counts[i] - capacities[i]
			counts[i] = capacities[i]
		}
	}
	for overflow > 0 {
		moved := false
		for _, i := range order {
			if overflow == 0 {
				break
			}
			if counts[i] < capacities[i] {
				counts[i]++
				overflow--
				moved = true
			}
		}
		if !moved {
			return nil, fmt.Errorf("%w: requested %d cards but only %d available across given sets",
				ErrInsufficientCandidates, total, sum(capacities))
		}
	}
	return counts, nil
}

// uniformWeights is the default distribution when neither weights nor counts
// are given.
func uniformWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
