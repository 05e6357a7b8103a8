package cards

import (
	"fmt"
	"strings"
)

// Category defines a card's category using a typed enum. Ordinary kingdom
// cards are CategoryCard; Events and Landmarks are drawn separately.
type Category int

const (
	CategoryCard Category = iota
	CategoryEvent
	CategoryLandmark
	CategoryBoon
	CategoryHex
	CategoryState
	CategoryArtifact
	CategoryProject
)

func (c Category) String() string {
	return []string{"Card", "Event", "Landmark", "Boon", "Hex", "State", "Artifact", "Project"}[c]
}

// CategoryForName finds the category with the given name.
func CategoryForName(name string) (Category, bool) {
	for c := CategoryCard; c <= CategoryProject; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return 0, false
}

// Cost holds a card's cost components: coins, potions, and debt.
// HasException marks costs printed with an asterisk.
type Cost struct {
	Coins        int
	Potions      int
	Debt         int
	HasException bool
}

// String formats a cost like "$5", "$3, P", "4D", or "$4, 3D". A zero cost
// renders as "$0".
func (c Cost) String() string {
	var parts []string
	if c.Coins > 0 || (c.Potions == 0 && c.Debt == 0) {
		coins := fmt.Sprintf("$%d", c.Coins)
		if c.HasException {
			coins += "*"
		}
		parts = append(parts, coins)
	}
	if c.Potions > 0 {
		parts = append(parts, strings.Repeat("P", c.Potions))
	}
	if c.Debt > 0 {
		parts = append(parts, fmt.Sprintf("%dD", c.Debt))
	}
	return strings.Join(parts, ", ")
}

// Card represents a single Dominion card record, including non-card records
// like Events and Landmarks. Cards are read-only reference data.
type Card struct {
	Name     string
	Category Category
	Types    []CardType
	Set      GameSet
	Cost     Cost
	Text     string

	// Derived when the collection is built.
	InSupply bool
	Basic    bool
	Pickable bool
}

// HasType reports whether the card carries the given type tag.
func (c Card) HasType(t CardType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// HasAnyType reports whether the card carries any of the given type tags.
func (c Card) HasAnyType(types []CardType) bool {
	for _, t := range types {
		if c.HasType(t) {
			return true
		}
	}
	return false
}

// TypeNames returns the card's type tags joined for display, e.g.
// "Action - Attack".
func (c Card) TypeNames() string {
	names := make([]string, len(c.Types))
	for i, t := range c.Types {
		names[i] = t.String()
	}
	return strings.Join(names, " - ")
}

func (c Card) String() string {
	return fmt.Sprintf("%s (%s), %s, %s", c.Name, c.TypeNames(), c.Set.FullName(), c.Cost)
}

// basicCards are present in all or most games and are never randomized.
var basicCards = map[string]struct{}{
	"copper":   {},
	"silver":   {},
	"gold":     {},
	"estate":   {},
	"duchy":    {},
	"province": {},
	"curse":    {},
	"platinum": {},
	"colony":   {},
	"potion":   {},
}

// StandardizeName normalizes a card name for matching: lowercase, with
// apostrophes and spaces removed. "Worker's Village" matches "workersvillage".
func StandardizeName(name string) string {
	return strings.ToLower(strings.NewReplacer("'", "", " ", "").Replace(name))
}

// finalize computes the card's derived attributes. A card is in the supply if
// it is an ordinary card, its text does not opt it out, and all of its types
// are supply types. Only in-supply, non-basic cards can be picked, plus the
// special randomizer cards installed by the collection.
func (c *Card) finalize(specialPick bool) {
	c.InSupply = c.Category == CategoryCard &&
		!strings.Contains(c.Text, "This is not in the Supply")
	for _, t := range c.Types {
		if !t.InSupply() {
			c.InSupply = false
		}
	}
	_, c.Basic = basicCards[strings.ToLower(c.Name)]
	c.Pickable = specialPick || (c.InSupply && !c.Basic)
}
