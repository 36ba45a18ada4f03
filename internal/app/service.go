package app

import (
	"math/rand"
	"time"

	"thirtyone/internal/domain"
)

// Service contains Thirty-One use-cases operating on domain state. It
// never holds a game itself; callers pass the game they own.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartSession deals a fresh game and announces its initial state.
func (s *Service) StartSession() (*domain.Game, []Event, error) {
	game, err := domain.NewGame(s.rng)
	if err != nil {
		return nil, nil, err
	}
	return game, []Event{stateChanged(game)}, nil
}

// Draw applies a draw and returns the new state, plus the drawn card so
// the ports layer can surface it to the actor alone.
func (s *Service) Draw(game *domain.Game, seat domain.Seat, source domain.DrawSource) (domain.Card, []Event, error) {
	card, err := game.Draw(seat, source)
	if err != nil {
		return domain.Card{}, nil, err
	}
	return card, []Event{stateChanged(game)}, nil
}

// Discard applies a discard.
func (s *Service) Discard(game *domain.Game, seat domain.Seat, card domain.Card) ([]Event, error) {
	if err := game.Discard(seat, card); err != nil {
		return nil, err
	}
	return []Event{stateChanged(game)}, nil
}

// EndTurn passes the turn to the other seat.
func (s *Service) EndTurn(game *domain.Game, seat domain.Seat) ([]Event, error) {
	if err := game.EndTurn(seat); err != nil {
		return nil, err
	}
	return []Event{stateChanged(game)}, nil
}

// Knock locks the round, scores both hands, and announces the result.
// RoundOver is emitted exactly once per round, here.
func (s *Service) Knock(game *domain.Game, seat domain.Seat) ([]Event, error) {
	if err := game.Knock(seat); err != nil {
		return nil, err
	}

	scores := [2]domain.HandScore{
		domain.ScoreHand(game.Hand(domain.SeatPlayer)),
		domain.ScoreHand(game.Hand(domain.SeatOpponent)),
	}
	return []Event{
		stateChanged(game),
		{
			Kind: EventRoundOver,
			Payload: RoundOverPayload{
				Winner:    domain.CompareHands(scores[domain.SeatPlayer], scores[domain.SeatOpponent]),
				Scores:    scores,
				KnockedBy: seat,
			},
		},
	}, nil
}

// Restart re-deals the game in place.
func (s *Service) Restart(game *domain.Game) ([]Event, error) {
	if err := game.Restart(s.rng); err != nil {
		return nil, err
	}
	return []Event{stateChanged(game)}, nil
}

func stateChanged(game *domain.Game) Event {
	return Event{
		Kind:    EventStateChanged,
		Payload: StateChangedPayload{Snapshot: game.Snapshot()},
	}
}
