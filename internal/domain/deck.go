package domain

import (
	"math/rand"
	"sort"
)

// DeckSize is the number of pieces in a standard deck.
const DeckSize = 32

// HandSize is the number of pieces dealt to each of the four players.
const HandSize = 8

// deckCounts maps each family to the copies per color in a standard deck.
var deckCounts = map[Family]int{
	FamilyGeneral:  1,
	FamilyAdvisor:  2,
	FamilyElephant: 2,
	FamilyChariot:  2,
	FamilyHorse:    2,
	FamilyCannon:   2,
	FamilySoldier:  5,
}

// NewDeck returns an ordered 32-piece deck.
func NewDeck() []Piece {
	deck := make([]Piece, 0, DeckSize)
	for kind := GeneralRed; kind <= SoldierBlack; kind++ {
		p := Piece{Kind: kind}
		for i := 0; i < deckCounts[p.Family()]; i++ {
			deck = append(deck, p)
		}
	}
	return deck
}

// DealHands shuffles a fresh deck with the given rng and deals four hands
// of eight pieces, each sorted descending by point.
func DealHands(rng *rand.Rand) [NumPlayers][]Piece {
	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var hands [NumPlayers][]Piece
	for seat := 0; seat < NumPlayers; seat++ {
		hand := append([]Piece{}, deck[seat*HandSize:(seat+1)*HandSize]...)
		SortHand(hand)
		hands[seat] = hand
	}
	return hands
}

// SortHand orders a hand by descending point.
func SortHand(pieces []Piece) {
	sort.Slice(pieces, func(i, j int) bool {
		return pieces[i].Point() > pieces[j].Point()
	})
}
