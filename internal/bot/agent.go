package bot

import (
	"thirtyone/internal/domain"
)

// Agent represents an autonomous opponent seated in a session. It pairs
// a provisioned identity with a strategy.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// ChooseDrawSource asks the strategy where to draw from.
func (a *Agent) ChooseDrawSource(hand []domain.Card, discardTop *domain.Card) domain.DrawSource {
	return a.Strategy.ChooseDrawSource(hand, discardTop)
}

// ChooseDiscard asks the strategy which card to shed from a four-card
// hand.
func (a *Agent) ChooseDiscard(hand []domain.Card) domain.Card {
	return a.Strategy.ChooseDiscard(hand)
}

// ShouldKnock asks the strategy whether to end the round.
func (a *Agent) ShouldKnock(hand []domain.Card) bool {
	return a.Strategy.ShouldKnock(hand)
}

// OnGameEvent notifies the agent of a table event.
func (a *Agent) OnGameEvent(event interface{}) {
	a.Strategy.OnEvent(event)
}
