package domain

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}

	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card found: %s", c)
		}
		seen[c] = true
		if c.Rank < 2 || c.Rank > RankAce {
			t.Fatalf("rank out of range: %d", c.Rank)
		}
		switch c.Suit {
		case SuitSpades, SuitHearts, SuitDiamonds, SuitClubs:
		default:
			t.Fatalf("unexpected suit: %s", c.Suit)
		}
	}
}

func TestShuffleDeckIsSeededPermutation(t *testing.T) {
	deck := NewDeck()

	a := ShuffleDeck(deck, rand.New(rand.NewSource(7)))
	b := ShuffleDeck(deck, rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different orders")
	}

	// The shuffle must not add, drop, or duplicate cards.
	counts := make(map[Card]int)
	for _, c := range a {
		counts[c]++
	}
	for _, c := range deck {
		counts[c]--
	}
	for card, n := range counts {
		if n != 0 {
			t.Fatalf("card %s count off by %d after shuffle", card, n)
		}
	}

	// The input deck stays untouched.
	if !reflect.DeepEqual(deck, NewDeck()) {
		t.Fatalf("shuffle mutated its input")
	}
}

func TestDrawTop(t *testing.T) {
	deck := []Card{{Suit: SuitHearts, Rank: 4}, {Suit: SuitSpades, Rank: RankKing}}

	card, rest, err := DrawTop(deck)
	if err != nil {
		t.Fatalf("draw error: %v", err)
	}
	if card != (Card{Suit: SuitHearts, Rank: 4}) {
		t.Fatalf("drew %s, want 4♥", card)
	}
	if len(rest) != 1 {
		t.Fatalf("remaining = %d, want 1", len(rest))
	}

	if _, _, err := DrawTop(nil); err != ErrEmptyDeck {
		t.Fatalf("empty draw error = %v, want ErrEmptyDeck", err)
	}
}

func TestDealInitial(t *testing.T) {
	deck := ShuffleDeck(NewDeck(), rand.New(rand.NewSource(3)))

	deal, err := DealInitial(deck)
	if err != nil {
		t.Fatalf("deal error: %v", err)
	}
	if len(deal.Hands[SeatPlayer]) != 3 || len(deal.Hands[SeatOpponent]) != 3 {
		t.Fatalf("hand sizes = %d/%d, want 3/3", len(deal.Hands[SeatPlayer]), len(deal.Hands[SeatOpponent]))
	}
	if len(deal.Remaining) != 45 {
		t.Fatalf("remaining = %d, want 45", len(deal.Remaining))
	}
	if deal.Upcard != deck[6] {
		t.Fatalf("upcard = %s, want %s", deal.Upcard, deck[6])
	}

	// The deal partitions the input deck.
	counts := make(map[Card]int)
	for _, c := range deck {
		counts[c]++
	}
	for _, c := range deal.Hands[SeatPlayer] {
		counts[c]--
	}
	for _, c := range deal.Hands[SeatOpponent] {
		counts[c]--
	}
	for _, c := range deal.Remaining {
		counts[c]--
	}
	counts[deal.Upcard]--
	for card, n := range counts {
		if n != 0 {
			t.Fatalf("card %s count off by %d after deal", card, n)
		}
	}
}

func TestDealInitialShortDeck(t *testing.T) {
	if _, err := DealInitial(NewDeck()[:6]); err != ErrEmptyDeck {
		t.Fatalf("short deal error = %v, want ErrEmptyDeck", err)
	}
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		card Card
		want int
	}{
		{Card{Suit: SuitClubs, Rank: 2}, 2},
		{Card{Suit: SuitClubs, Rank: 9}, 9},
		{Card{Suit: SuitClubs, Rank: 10}, 10},
		{Card{Suit: SuitClubs, Rank: RankJack}, 10},
		{Card{Suit: SuitClubs, Rank: RankQueen}, 10},
		{Card{Suit: SuitClubs, Rank: RankKing}, 10},
		{Card{Suit: SuitClubs, Rank: RankAce}, 11},
	}

	for _, tt := range tests {
		if got := CardValue(tt.card); got != tt.want {
			t.Errorf("CardValue(%s) = %d, want %d", tt.card, got, tt.want)
		}
	}
}
