package cards

import "strings"

// SpecialTypeCards returns the randomizer cards that stand in for a whole
// stack of unique cards of one type (Knights, Castles). Drawing one of these
// means the game includes the stack of unique cards of that type.
func SpecialTypeCards() []Card {
	return []Card{
		newSpecialCard("Knights", []CardType{TypeAction, TypeAttack, TypeKnight}, SetDarkAges, Cost{Coins: 5}),
		newSpecialCard("Castles", []CardType{TypeVictory, TypeCastle}, SetEmpires, Cost{Coins: 3}),
	}
}

// SplitPileCards returns the randomizer cards that stand in for pairs of
// cards sharing a split pile. The listed types are those of the top card.
func SplitPileCards() []Card {
	return []Card{
		newSpecialCard("Encampment/Plunder", []CardType{TypeAction}, SetEmpires, Cost{Coins: 2}),
		newSpecialCard("Patrician/Emporium", []CardType{TypeAction}, SetEmpires, Cost{Coins: 2}),
		newSpecialCard("Settlers/Bustling Village", []CardType{TypeAction}, SetEmpires, Cost{Coins: 2}),
		newSpecialCard("Catapult/Rocks", []CardType{TypeAction, TypeAttack}, SetEmpires, Cost{Coins: 3}),
		newSpecialCard("Gladiator/Fortune", []CardType{TypeAction}, SetEmpires, Cost{Coins: 3}),
		newSpecialCard("Sauna/Avanto", []CardType{TypeAction}, SetPromo, Cost{Coins: 4}),
	}
}

// SplitMembers returns the member names of a split pile randomizer card, or
// nil for ordinary cards.
func (c Card) SplitMembers() []string {
	if !strings.Contains(c.Name, "/") {
		return nil
	}
	return strings.Split(c.Name, "/")
}

func newSpecialCard(name string, types []CardType, set GameSet, cost Cost) Card {
	c := Card{Name: name, Category: CategoryCard, Types: types, Set: set, Cost: cost}
	c.finalize(true)
	return c
}
