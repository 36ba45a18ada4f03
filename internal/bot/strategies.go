package bot

import (
	"math/rand"

	"thirtyone/internal/bot/internal"
	"thirtyone/internal/domain"
)

// StandardBot plays the suit-collection heuristics with a configurable
// tuning. All difficulty levels share this implementation and differ
// only in their Tuning values.
type StandardBot struct {
	tuning    internal.Tuning
	rng       *rand.Rand
	estimator *internal.Estimator
}

// NewTunedBot builds a strategy around the given tuning. The rng drives
// every probabilistic branch, so a seeded source replays exactly.
func NewTunedBot(tuning internal.Tuning, rng *rand.Rand) *StandardBot {
	return &StandardBot{
		tuning:    tuning,
		rng:       rng,
		estimator: internal.NewEstimator(tuning),
	}
}

func (b *StandardBot) ChooseDrawSource(hand []domain.Card, discardTop *domain.Card) domain.DrawSource {
	return internal.ChooseDrawSource(b.tuning, hand, discardTop, b.rng)
}

func (b *StandardBot) ChooseDiscard(hand []domain.Card) domain.Card {
	return internal.ChooseDiscard(hand)
}

func (b *StandardBot) ShouldKnock(hand []domain.Card) bool {
	return internal.ShouldKnock(b.tuning, hand, b.estimator.Estimate(), b.rng)
}

// OnEvent feeds table observations into the opponent estimate.
func (b *StandardBot) OnEvent(event interface{}) {
	switch e := event.(type) {
	case PlayerTookDiscard:
		b.estimator.RecordTaken(e.Card)
	case PlayerShedCard:
		b.estimator.RecordShed(e.Card)
	case RoundRestarted:
		b.estimator.Reset()
	}
}
