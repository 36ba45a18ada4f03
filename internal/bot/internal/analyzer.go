package internal

import "thirtyone/internal/domain"

// SuitTotals sums card values per suit, preserving the order suits first
// appear in the hand so tie-breaks stay stable.
func SuitTotals(hand []domain.Card) (map[domain.Suit]int, []domain.Suit) {
	totals := make(map[domain.Suit]int, 4)
	order := make([]domain.Suit, 0, 4)
	for _, c := range hand {
		if _, seen := totals[c.Suit]; !seen {
			order = append(order, c.Suit)
		}
		totals[c.Suit] += domain.CardValue(c)
	}
	return totals, order
}

// StrongestSuit returns the suit with the highest accumulated value and
// that value. Ties go to the suit encountered first in hand order. An
// empty hand reports a zero total.
func StrongestSuit(hand []domain.Card) (domain.Suit, int) {
	totals, order := SuitTotals(hand)
	var best domain.Suit
	bestTotal := 0
	for _, s := range order {
		if totals[s] > bestTotal {
			best, bestTotal = s, totals[s]
		}
	}
	return best, bestTotal
}

// HoldsSuit reports whether the hand contains at least one card of the
// given suit.
func HoldsSuit(hand []domain.Card, suit domain.Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// lowestCard picks the lowest-valued card matching the filter, breaking
// ties by first occurrence in hand order. The second return is false
// when no card matches.
func lowestCard(hand []domain.Card, match func(domain.Card) bool) (domain.Card, bool) {
	var pick domain.Card
	found := false
	for _, c := range hand {
		if !match(c) {
			continue
		}
		if !found || domain.CardValue(c) < domain.CardValue(pick) {
			pick, found = c, true
		}
	}
	return pick, found
}
