package cards

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/cards.json
var defaultData []byte

// Collection is the immutable set of all known cards. It is loaded once and
// only ever read by the randomizer.
type Collection struct {
	cards  []Card
	byName map[string][]int // standardized name -> indexes into cards
}

type cardJSON struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Types    []string `json:"types"`
	GameSet  string   `json:"game_set"`
	Cost     costJSON `json:"cost"`
	Text     string   `json:"text"`
}

type costJSON struct {
	Coins        int  `json:"coins"`
	Potions      int  `json:"potions"`
	Debt         int  `json:"debt"`
	HasException bool `json:"has_exception"`
}

// Load reads, parses, and validates a card dataset from a file. Every set
// and type name in the data must match a known enum value.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// Default returns the embedded card dataset.
func Default() (*Collection, error) {
	return parse(defaultData)
}

func parse(data []byte) (*Collection, error) {
	var records []cardJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("malformed card data: %w", err)
	}

	all := make([]Card, 0, len(records))
	for _, rec := range records {
		card := Card{Name: rec.Name, Text: rec.Text, Cost: Cost(rec.Cost)}
		var ok bool
		if card.Category, ok = CategoryForName(rec.Category); !ok {
			return nil, fmt.Errorf("card %q has unknown category %q", rec.Name, rec.Category)
		}
		if card.Set, ok = SetForName(rec.GameSet); !ok {
			return nil, fmt.Errorf("card %q has unknown game set %q", rec.Name, rec.GameSet)
		}
		for _, typeName := range rec.Types {
			cardType, ok := TypeForName(typeName)
			if !ok {
				return nil, fmt.Errorf("card %q has unknown type %q", rec.Name, typeName)
			}
			card.Types = append(card.Types, cardType)
		}
		all = append(all, card)
	}
	return NewCollection(all), nil
}

// NewCollection builds a collection from card records, computing each card's
// derived attributes and the name lookup index.
func NewCollection(all []Card) *Collection {
	col := &Collection{
		cards:  make([]Card, len(all)),
		byName: make(map[string][]int),
	}
	for i, card := range all {
		card.finalize(card.Pickable)
		col.cards[i] = card
		key := StandardizeName(card.Name)
		col.byName[key] = append(col.byName[key], i)
	}
	return col
}

// Cards returns all cards in the collection. Callers must not modify the
// returned slice.
func (col *Collection) Cards() []Card {
	return col.cards
}

// Len returns the number of cards in the collection.
func (col *Collection) Len() int {
	return len(col.cards)
}

// FindByName looks up a card by standardized name match.
func (col *Collection) FindByName(name string) (Card, bool) {
	indexes, ok := col.byName[StandardizeName(name)]
	if !ok {
		return Card{}, false
	}
	return col.cards[indexes[0]], true
}
