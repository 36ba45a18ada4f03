package internal

import (
	"math/rand"

	"thirtyone/internal/domain"
)

const thirtyOne = 31

// Tuning holds the thresholds and probabilities behind the opponent's
// decisions. Difficulty strategies differ only in these values.
type Tuning struct {
	// HighCardValue marks a discard worth grabbing when the hand
	// already holds its suit.
	HighCardValue int
	// AceGrabDecline is the probability of passing on an exposed ace.
	AceGrabDecline float64
	// SureKnock is the total that always knocks.
	SureKnock int
	// KnockFloor and KnockSpread set the randomized knock threshold,
	// drawn uniformly from [KnockFloor, KnockFloor+KnockSpread).
	KnockFloor  int
	KnockSpread int
	// PressureKnockMin and PressureKnockProb drive the fallback knock
	// taken even without an edge over the opponent estimate.
	PressureKnockMin  int
	PressureKnockProb float64
	// BaseEstimate is the opponent total assumed before any card of
	// theirs has been seen.
	BaseEstimate int
	// HiddenAllowance is the value granted to opponent cards that were
	// never exposed.
	HiddenAllowance int
}

// ChooseDrawSource decides between the deck and the discard pile. The
// exposed card is worth taking when it feeds the strongest suit, when it
// is a high card of a suit already held, or usually when it is an ace.
func ChooseDrawSource(t Tuning, hand []domain.Card, top *domain.Card, rng *rand.Rand) domain.DrawSource {
	if top == nil {
		return domain.DrawFromDeck
	}

	strongest, _ := StrongestSuit(hand)
	value := domain.CardValue(*top)

	switch {
	case top.Suit == strongest:
		return domain.DrawFromDiscard
	case value >= t.HighCardValue && HoldsSuit(hand, top.Suit):
		return domain.DrawFromDiscard
	case top.Rank == domain.RankAce && rng.Float64() > t.AceGrabDecline:
		return domain.DrawFromDiscard
	default:
		return domain.DrawFromDeck
	}
}

// ChooseDiscard picks the card to shed from a four-card hand: the lowest
// card outside the strongest suit, falling back to the lowest card of
// the strongest suit when the hand is mono-suit. Ties go to hand order.
func ChooseDiscard(hand []domain.Card) domain.Card {
	strongest, _ := StrongestSuit(hand)

	if pick, ok := lowestCard(hand, func(c domain.Card) bool { return c.Suit != strongest }); ok {
		return pick
	}
	if pick, ok := lowestCard(hand, func(c domain.Card) bool { return c.Suit == strongest }); ok {
		return pick
	}
	pick, _ := lowestCard(hand, func(domain.Card) bool { return true })
	return pick
}

// ShouldKnock decides whether to end the round. A thirty-one or a total
// at SureKnock knocks outright; below that the bot knocks only with an
// edge over the estimated opponent total, past a randomized threshold,
// or occasionally under pressure at a high total.
func ShouldKnock(t Tuning, hand []domain.Card, opponentEstimate int, rng *rand.Rand) bool {
	mine := domain.ScoreHand(hand).MaxSuitTotal

	if mine >= thirtyOne || mine >= t.SureKnock {
		return true
	}

	threshold := t.KnockFloor
	if t.KnockSpread > 0 {
		threshold += rng.Intn(t.KnockSpread)
	}
	if mine >= threshold && mine-opponentEstimate > 0 {
		return true
	}

	if mine >= t.PressureKnockMin && rng.Float64() < t.PressureKnockProb {
		return true
	}
	return false
}
