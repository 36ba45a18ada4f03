package bot

import (
	"thirtyone/internal/domain"
)

// Brain is the interface that all opponent strategies must implement.
// Decisions are pure reads; the caller applies them through the game's
// guarded transitions.
type Brain interface {
	ChooseDrawSource(hand []domain.Card, discardTop *domain.Card) domain.DrawSource
	ChooseDiscard(hand []domain.Card) domain.Card
	ShouldKnock(hand []domain.Card) bool
	OnEvent(event interface{})
}

// Observation events fed to OnEvent so a strategy can read the table.

// PlayerTookDiscard reports the human picking up the exposed card.
type PlayerTookDiscard struct {
	Card domain.Card
}

// PlayerShedCard reports the human discarding a card face up.
type PlayerShedCard struct {
	Card domain.Card
}

// RoundRestarted reports a fresh deal, invalidating anything seen.
type RoundRestarted struct{}
