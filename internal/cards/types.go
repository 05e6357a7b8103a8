package cards

import "strings"

// CardType defines a card's type tag (Action, Attack, etc.) using a typed enum.
type CardType int

const (
	TypeAction CardType = iota
	TypeTreasure
	TypeVictory
	TypeCurse
	TypeAttack
	TypeDuration
	TypeReaction
	TypeCastle
	TypeDoom
	TypeFate
	TypeGathering
	TypeHeirloom
	TypeKnight
	TypeLooter
	TypeNight
	TypePrize
	TypeReserve
	TypeRuins
	TypeShelter
	TypeSpirit
	TypeTraveller
	TypeZombie
)

type cardTypeInfo struct {
	name string
	// inSupply is false for types whose cards never sit in the supply
	// (Knights, Castles, Prizes, ...). A card with any such type cannot be
	// drawn by the randomizer directly.
	inSupply bool
}

var cardTypes = []cardTypeInfo{
	{"Action", true},
	{"Treasure", true},
	{"Victory", true},
	{"Curse", true},
	{"Attack", true},
	{"Duration", true},
	{"Reaction", true},
	{"Castle", false},
	{"Doom", true},
	{"Fate", true},
	{"Gathering", true},
	{"Heirloom", false},
	{"Knight", false},
	{"Looter", true},
	{"Night", true},
	{"Prize", false},
	{"Reserve", true},
	{"Ruins", false},
	{"Shelter", false},
	{"Spirit", false},
	{"Traveller", true},
	{"Zombie", false},
}

func (ct CardType) String() string {
	return cardTypes[ct].name
}

// InSupply reports whether cards of this type appear in the supply.
func (ct CardType) InSupply() bool {
	return cardTypes[ct].inSupply
}

// TypeForName finds the card type with the given name, case-insensitively.
func TypeForName(name string) (CardType, bool) {
	for ct := range cardTypes {
		if strings.EqualFold(cardTypes[ct].name, name) {
			return CardType(ct), true
		}
	}
	return 0, false
}

// FilterableTypes returns the type tags that may be filtered out of the pool:
// in-supply types except Curse, which only appears on the basic Curse card.
func FilterableTypes() []CardType {
	var types []CardType
	for ct := range cardTypes {
		if cardTypes[ct].inSupply && CardType(ct) != TypeCurse {
			types = append(types, CardType(ct))
		}
	}
	return types
}
