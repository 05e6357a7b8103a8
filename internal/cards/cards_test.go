package cards

import (
	"strings"
	"testing"
)

func TestDefaultCollection(t *testing.T) {
	// GIVEN the embedded dataset
	col, err := Default()
	if err != nil {
		t.Fatalf("Failed to load embedded dataset: %v", err)
	}

	t.Run("it contains a few hundred cards", func(t *testing.T) {
		if col.Len() < 200 {
			t.Errorf("Expected at least 200 cards, got %d", col.Len())
		}
	})

	t.Run("it finds cards case-insensitively", func(t *testing.T) {
		card, ok := col.FindByName("cellar")
		if !ok || card.Name != "Cellar" {
			t.Errorf("Expected to find Cellar, got %q (ok=%v)", card.Name, ok)
		}
	})

	t.Run("it ignores apostrophes and spaces in lookups", func(t *testing.T) {
		card, ok := col.FindByName("workers village")
		if !ok || card.Name != "Worker's Village" {
			t.Errorf("Expected to find Worker's Village, got %q (ok=%v)", card.Name, ok)
		}
	})

	t.Run("it reports missing cards", func(t *testing.T) {
		if _, ok := col.FindByName("Not A Card"); ok {
			t.Error("Expected lookup of a bogus name to fail")
		}
	})
}

func TestPickability(t *testing.T) {
	// GIVEN the embedded dataset
	col, err := Default()
	if err != nil {
		t.Fatalf("Failed to load embedded dataset: %v", err)
	}
	find := func(name string) Card {
		card, ok := col.FindByName(name)
		if !ok {
			t.Fatalf("dataset is missing %q", name)
		}
		return card
	}

	t.Run("kingdom cards are pickable", func(t *testing.T) {
		if !find("Cellar").Pickable {
			t.Error("Expected Cellar to be pickable")
		}
	})

	t.Run("basic cards are not pickable", func(t *testing.T) {
		for _, name := range []string{"Copper", "Province", "Curse", "Potion", "Platinum"} {
			if find(name).Pickable {
				t.Errorf("Expected basic card %s to not be pickable", name)
			}
		}
	})

	t.Run("cards with non-supply types are not pickable", func(t *testing.T) {
		if find("Dame Anna").Pickable {
			t.Error("Expected Knight-typed card to not be pickable")
		}
		if find("Humble Castle").Pickable {
			t.Error("Expected Castle-typed card to not be pickable")
		}
	})

	t.Run("cards opting out via text are not pickable", func(t *testing.T) {
		if find("Bag of Gold").Pickable {
			t.Error("Expected a not-in-supply card to not be pickable")
		}
	})

	t.Run("events and landmarks are not pickable", func(t *testing.T) {
		if find("Raid").Pickable || find("Aqueduct").Pickable {
			t.Error("Expected events and landmarks to not be pickable as kingdom cards")
		}
	})
}

func TestGameSetContains(t *testing.T) {
	shared := Card{Name: "Market", Set: SetBase}
	firstOnly := Card{Name: "Thief", Set: SetBase1E}
	secondOnly := Card{Name: "Sentry", Set: SetBase2E}

	t.Run("editioned sets contain shared cards", func(t *testing.T) {
		if !SetBase1E.Contains(shared) || !SetBase2E.Contains(shared) {
			t.Error("Expected both Base editions to contain a shared Base card")
		}
	})

	t.Run("editioned sets contain their own cards only", func(t *testing.T) {
		if !SetBase1E.Contains(firstOnly) || SetBase1E.Contains(secondOnly) {
			t.Error("Expected Base 1E to contain only 1E and shared cards")
		}
		if !SetBase2E.Contains(secondOnly) || SetBase2E.Contains(firstOnly) {
			t.Error("Expected Base 2E to contain only 2E and shared cards")
		}
	})

	t.Run("unrelated sets contain nothing of the sort", func(t *testing.T) {
		if SetSeaside.Contains(shared) {
			t.Error("Expected Seaside to not contain a Base card")
		}
	})
}

func TestSetForArg(t *testing.T) {
	gs, ok := SetForArg("darkages")
	if !ok || gs != SetDarkAges {
		t.Errorf("Expected darkages to resolve to Dark Ages, got %v (ok=%v)", gs, ok)
	}
	if _, ok := SetForArg("atlantis"); ok {
		t.Error("Expected an unknown set arg to fail")
	}
}

func TestCompleteSets(t *testing.T) {
	for _, gs := range CompleteSets() {
		if gs == SetBase || gs == SetIntrigue || gs == SetPromo {
			t.Errorf("Expected %s to not be selectable", gs.FullName())
		}
	}
}

func TestCostString(t *testing.T) {
	tests := []struct {
		cost Cost
		want string
	}{
		{Cost{Coins: 2}, "$2"},
		{Cost{}, "$0"},
		{Cost{Coins: 3, Potions: 1}, "$3, P"},
		{Cost{Debt: 8}, "8D"},
		{Cost{Coins: 8, Debt: 8}, "$8, 8D"},
		{Cost{Coins: 5, HasException: true}, "$5*"},
	}
	for _, tt := range tests {
		if got := tt.cost.String(); got != tt.want {
			t.Errorf("Cost %+v: expected %q, got %q", tt.cost, tt.want, got)
		}
	}
}

func TestParseRejectsBadData(t *testing.T) {
	t.Run("unknown game set", func(t *testing.T) {
		_, err := parse([]byte(`[{"name":"X","category":"Card","types":["Action"],"game_set":"Atlantis","cost":{}}]`))
		if err == nil || !strings.Contains(err.Error(), "unknown game set") {
			t.Errorf("Expected an unknown game set error, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := parse([]byte(`[{"name":"X","category":"Card","types":["Wizard"],"game_set":"Base","cost":{}}]`))
		if err == nil || !strings.Contains(err.Error(), "unknown type") {
			t.Errorf("Expected an unknown type error, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := parse([]byte(`[{"name":"X","category":"Token","types":[],"game_set":"Base","cost":{}}]`))
		if err == nil || !strings.Contains(err.Error(), "unknown category") {
			t.Errorf("Expected an unknown category error, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := parse([]byte(`{not json`)); err == nil {
			t.Error("Expected malformed data to fail")
		}
	})
}
