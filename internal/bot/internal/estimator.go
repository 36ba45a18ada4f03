package internal

import "thirtyone/internal/domain"

// Estimator tracks what the opponent has revealed about their hand.
// Cards taken from the discard pile are the only hard evidence of what
// they hold; cards they shed count against suits they previously took.
type Estimator struct {
	kept   map[domain.Suit]int
	tuning Tuning
}

// NewEstimator builds an estimator seeded with the tuning's baseline
// assumptions.
func NewEstimator(t Tuning) *Estimator {
	return &Estimator{kept: make(map[domain.Suit]int, 4), tuning: t}
}

// RecordTaken notes a card the opponent picked up from the discard pile.
func (e *Estimator) RecordTaken(c domain.Card) {
	e.kept[c.Suit] += domain.CardValue(c)
}

// RecordShed notes a card the opponent discarded. Shedding a suit they
// previously collected walks that suit's evidence back.
func (e *Estimator) RecordShed(c domain.Card) {
	if e.kept[c.Suit] == 0 {
		return
	}
	e.kept[c.Suit] -= domain.CardValue(c)
	if e.kept[c.Suit] < 0 {
		e.kept[c.Suit] = 0
	}
}

// Reset clears all evidence, for a fresh round.
func (e *Estimator) Reset() {
	e.kept = make(map[domain.Suit]int, 4)
}

// Estimate returns the assumed opponent MaxSuitTotal: the best suit
// seen plus an allowance for their hidden cards, never below the
// baseline and never above a thirty-one.
func (e *Estimator) Estimate() int {
	best := 0
	for _, total := range e.kept {
		if total > best {
			best = total
		}
	}

	estimate := e.tuning.BaseEstimate
	if seen := best + e.tuning.HiddenAllowance; seen > estimate {
		estimate = seen
	}
	if estimate > thirtyOne {
		estimate = thirtyOne
	}
	return estimate
}
