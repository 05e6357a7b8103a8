package cards

import "strings"

// GameSet identifies a Dominion game set using a typed enum.
// Sets with multiple editions have entries for each edition as well as the
// non-editioned name used by cards shared between editions.
type GameSet int

const (
	SetBase GameSet = iota
	SetBase1E
	SetBase2E
	SetIntrigue
	SetIntrigue1E
	SetIntrigue2E
	SetSeaside
	SetAlchemy
	SetProsperity
	SetCornucopia
	SetHinterlands
	SetDarkAges
	SetGuilds
	SetAdventures
	SetEmpires
	SetNocturne
	SetRenaissance
	SetPromo
)

type gameSetInfo struct {
	name     string
	edition  int  // 0 for non-editioned sets
	complete bool // false for shared edition entries and Promo
}

var gameSets = []gameSetInfo{
	{name: "Base"},
	{name: "Base", edition: 1, complete: true},
	{name: "Base", edition: 2, complete: true},
	{name: "Intrigue"},
	{name: "Intrigue", edition: 1, complete: true},
	{name: "Intrigue", edition: 2, complete: true},
	{name: "Seaside", complete: true},
	{name: "Alchemy", complete: true},
	{name: "Prosperity", complete: true},
	{name: "Cornucopia", complete: true},
	{name: "Hinterlands", complete: true},
	{name: "Dark Ages", complete: true},
	{name: "Guilds", complete: true},
	{name: "Adventures", complete: true},
	{name: "Empires", complete: true},
	{name: "Nocturne", complete: true},
	{name: "Renaissance", complete: true},
	{name: "Promo"},
}

// String returns the set's name without edition.
func (gs GameSet) String() string {
	return gameSets[gs].name
}

// FullName returns the set's name including edition, e.g. "Base 1E".
func (gs GameSet) FullName() string {
	info := gameSets[gs]
	if info.edition > 0 {
		return info.name + " " + []string{"1E", "2E"}[info.edition-1]
	}
	return info.name
}

// Arg returns the set's name in argument form: lowercase, no spaces.
func (gs GameSet) Arg() string {
	return strings.ToLower(strings.ReplaceAll(gs.FullName(), " ", ""))
}

// Complete reports whether this entry is a selectable, complete game set.
func (gs GameSet) Complete() bool {
	return gameSets[gs].complete
}

// Edition returns the set's edition number, or 0 for non-editioned sets.
func (gs GameSet) Edition() int {
	return gameSets[gs].edition
}

// Contains reports whether this game set contains the given card. The prefix
// match handles editioned sets: a card tagged "Base" belongs to both Base 1E
// and Base 2E, while a card tagged "Base 2E" belongs only to Base 2E.
func (gs GameSet) Contains(c Card) bool {
	return strings.HasPrefix(gs.FullName(), c.Set.FullName())
}

// SetForArg finds the game set with the given argument form.
func SetForArg(arg string) (GameSet, bool) {
	arg = strings.ToLower(strings.ReplaceAll(arg, " ", ""))
	for gs := range gameSets {
		if GameSet(gs).Arg() == arg {
			return GameSet(gs), true
		}
	}
	return 0, false
}

// SetForName finds the game set with the given full name, e.g. "Dark Ages".
func SetForName(name string) (GameSet, bool) {
	for gs := range gameSets {
		if GameSet(gs).FullName() == name {
			return GameSet(gs), true
		}
	}
	return 0, false
}

// CompleteSets returns all selectable game sets in canonical order.
func CompleteSets() []GameSet {
	var sets []GameSet
	for gs := range gameSets {
		if gameSets[gs].complete {
			sets = append(sets, GameSet(gs))
		}
	}
	return sets
}
