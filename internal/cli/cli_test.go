package cli

import (
	"errors"
	"reflect"
	"testing"

	"github.com/FThompson/DominionRandomizer/internal/cards"
	"github.com/FThompson/DominionRandomizer/internal/randomizer"
)

func TestParseRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// GIVEN just a set identifier
		req, err := parseRequest([]string{"base2e"})
		if err != nil {
			t.Fatalf("parseRequest failed: %v", err)
		}
		// THEN the request falls back to ten cards, no extras
		if req.Number != 10 || req.Events != 0 || req.Landmarks != 0 {
			t.Errorf("Unexpected defaults: %+v", req)
		}
		if len(req.Sets) != 1 || req.Sets[0] != cards.SetBase2E {
			t.Errorf("Expected [Base 2E], got %v", req.Sets)
		}
	})

	t.Run("positionals may be interleaved with flags", func(t *testing.T) {
		req, err := parseRequest([]string{"base2e", "-n", "12", "seaside", "-e", "2", "prosperity"})
		if err != nil {
			t.Fatalf("parseRequest failed: %v", err)
		}
		want := []cards.GameSet{cards.SetBase2E, cards.SetSeaside, cards.SetProsperity}
		if !reflect.DeepEqual(req.Sets, want) {
			t.Errorf("Expected sets %v, got %v", want, req.Sets)
		}
		if req.Number != 12 || req.Events != 2 {
			t.Errorf("Expected number 12 and 2 events, got %d and %d", req.Number, req.Events)
		}
	})

	t.Run("list flags split on commas and repeat", func(t *testing.T) {
		req, err := parseRequest([]string{
			"base2e", "seaside",
			"-w", "2,1",
			"-i", "Cellar, Moat", "-i", "Lighthouse",
			"-f", "attack",
		})
		if err != nil {
			t.Fatalf("parseRequest failed: %v", err)
		}
		if !reflect.DeepEqual(req.Weights, []float64{2, 1}) {
			t.Errorf("Expected weights [2 1], got %v", req.Weights)
		}
		if !reflect.DeepEqual(req.Include, []string{"Cellar", "Moat", "Lighthouse"}) {
			t.Errorf("Unexpected includes %v", req.Include)
		}
		if !reflect.DeepEqual(req.FilterTypes, []cards.CardType{cards.TypeAttack}) {
			t.Errorf("Unexpected filter types %v", req.FilterTypes)
		}
	})

	t.Run("all expands to the complete sets", func(t *testing.T) {
		req, err := parseRequest([]string{"all", "-n", "10"})
		if err != nil {
			t.Fatalf("parseRequest failed: %v", err)
		}
		if len(req.Sets) != len(cards.CompleteSets()) {
			t.Errorf("Expected %d sets, got %d", len(cards.CompleteSets()), len(req.Sets))
		}
	})

	t.Run("long flag names work", func(t *testing.T) {
		req, err := parseRequest([]string{"empires", "--number", "8", "--landmarks", "2", "--counts", "8"})
		if err != nil {
			t.Fatalf("parseRequest failed: %v", err)
		}
		if req.Number != 8 || req.Landmarks != 2 || !reflect.DeepEqual(req.Counts, []int{8}) {
			t.Errorf("Unexpected request %+v", req)
		}
	})

	t.Run("unknown flags fail as invalid requests", func(t *testing.T) {
		if _, err := parseRequest([]string{"base2e", "--bogus"}); !errors.Is(err, randomizer.ErrInvalidRequest) {
			t.Errorf("Expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("malformed weights fail as invalid requests", func(t *testing.T) {
		if _, err := parseRequest([]string{"base2e", "-w", "heavy"}); !errors.Is(err, randomizer.ErrInvalidRequest) {
			t.Errorf("Expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("unknown sets fail", func(t *testing.T) {
		if _, err := parseRequest([]string{"atlantis"}); !errors.Is(err, randomizer.ErrUnknownSet) {
			t.Errorf("Expected ErrUnknownSet, got %v", err)
		}
	})

	t.Run("unfilterable types fail", func(t *testing.T) {
		if _, err := parseRequest([]string{"base2e", "-f", "knight"}); !errors.Is(err, randomizer.ErrInvalidRequest) {
			t.Errorf("Expected ErrInvalidRequest, got %v", err)
		}
	})
}

func TestShellStateBuildRequest(t *testing.T) {
	// GIVEN a shell configuration built up across commands
	state := newShellState()
	state.sets = []string{"base2e", "seaside"}
	state.number = 12
	state.counts = []string{"5", "7"}
	state.exclude = []string{"Moat"}
	state.filters = []string{"attack"}
	state.events = 1

	// WHEN the request is rebuilt for a roll
	req, err := state.buildRequest()
	if err != nil {
		t.Fatalf("buildRequest failed: %v", err)
	}

	// THEN it matches the one-shot command line equivalent
	want := []cards.GameSet{cards.SetBase2E, cards.SetSeaside}
	if !reflect.DeepEqual(req.Sets, want) {
		t.Errorf("Expected sets %v, got %v", want, req.Sets)
	}
	if !reflect.DeepEqual(req.Counts, []int{5, 7}) {
		t.Errorf("Expected counts [5 7], got %v", req.Counts)
	}
	if req.Number != 12 || req.Events != 1 {
		t.Errorf("Expected number 12 and 1 event, got %d and %d", req.Number, req.Events)
	}
	if !reflect.DeepEqual(req.Exclude, []string{"Moat"}) {
		t.Errorf("Unexpected excludes %v", req.Exclude)
	}
}

func TestSplitNames(t *testing.T) {
	got := splitNames([]string{"Council", "Room,", "Moat", ",", "King's", "Court"})
	want := []string{"Council Room", "Moat", "King's Court"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
