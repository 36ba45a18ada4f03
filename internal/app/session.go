package app

import (
	"errors"

	"thirtyone/internal/bot"
	"thirtyone/internal/domain"
)

// ErrSessionNotStarted is returned for actions before the first deal.
var ErrSessionNotStarted = errors.New("session not started")

// Session owns exactly one game and one opponent agent. All mutation
// funnels through the guarded transitions; accepted transitions are
// published to subscribers, rejected ones become ActionRejected events.
// A session is single-writer; callers serialize access.
type Session struct {
	svc   *Service
	game  *domain.Game
	agent *bot.Agent
	sinks []func(Event)
}

// NewSession wires a service and an opponent agent. Start deals the
// first round.
func NewSession(svc *Service, agent *bot.Agent) *Session {
	return &Session{svc: svc, agent: agent}
}

// Subscribe registers a sink for every published event.
func (s *Session) Subscribe(fn func(Event)) {
	s.sinks = append(s.sinks, fn)
}

// Start deals the opening round and announces the initial state.
func (s *Session) Start() error {
	game, events, err := s.svc.StartSession()
	if err != nil {
		return err
	}
	s.game = game
	s.publish(events)
	return nil
}

// Game exposes the underlying state for read-only uses such as view
// redaction.
func (s *Session) Game() *domain.Game {
	return s.game
}

// Agent returns the seated opponent agent.
func (s *Session) Agent() *bot.Agent {
	return s.agent
}

// HandleDraw routes a draw request. A guard failure is published as a
// rejection, not returned.
func (s *Session) HandleDraw(seat domain.Seat, source domain.DrawSource) error {
	if s.game == nil {
		return ErrSessionNotStarted
	}
	card, events, err := s.svc.Draw(s.game, seat, source)
	if err != nil {
		s.reject(seat, ActionDraw, err)
		return nil
	}
	if seat == domain.SeatPlayer && source == domain.DrawFromDiscard {
		s.agent.OnGameEvent(bot.PlayerTookDiscard{Card: card})
	}
	s.publish(events)
	return nil
}

// HandleDiscard routes a discard request.
func (s *Session) HandleDiscard(seat domain.Seat, card domain.Card) error {
	if s.game == nil {
		return ErrSessionNotStarted
	}
	events, err := s.svc.Discard(s.game, seat, card)
	if err != nil {
		s.reject(seat, ActionDiscard, err)
		return nil
	}
	if seat == domain.SeatPlayer {
		s.agent.OnGameEvent(bot.PlayerShedCard{Card: card})
	}
	s.publish(events)
	return nil
}

// HandleEndTurn routes an end-turn request.
func (s *Session) HandleEndTurn(seat domain.Seat) error {
	if s.game == nil {
		return ErrSessionNotStarted
	}
	events, err := s.svc.EndTurn(s.game, seat)
	if err != nil {
		s.reject(seat, ActionEndTurn, err)
		return nil
	}
	s.publish(events)
	return nil
}

// HandleKnock routes a knock request. An accepted knock publishes the
// round result.
func (s *Session) HandleKnock(seat domain.Seat) error {
	if s.game == nil {
		return ErrSessionNotStarted
	}
	events, err := s.svc.Knock(s.game, seat)
	if err != nil {
		s.reject(seat, ActionKnock, err)
		return nil
	}
	s.publish(events)
	return nil
}

// HandleRestart re-deals the round wholesale.
func (s *Session) HandleRestart(seat domain.Seat) error {
	if s.game == nil {
		return ErrSessionNotStarted
	}
	events, err := s.svc.Restart(s.game)
	if err != nil {
		s.reject(seat, ActionRestart, err)
		return nil
	}
	s.agent.OnGameEvent(bot.RoundRestarted{})
	s.publish(events)
	return nil
}

// RunOpponentTurn executes the opponent's full sequence synchronously:
// choose a source and draw, shed a card, then knock or pass the turn.
// Pacing is the caller's concern; the mutations are instantaneous.
func (s *Session) RunOpponentTurn() error {
	if s.game == nil {
		return ErrSessionNotStarted
	}
	g := s.game
	if g.Phase != domain.PhasePlaying || g.TurnSeat() != domain.SeatOpponent {
		return nil
	}

	source := s.agent.ChooseDrawSource(g.Hand(domain.SeatOpponent), g.DiscardTop())
	_, events, err := s.svc.Draw(g, domain.SeatOpponent, source)
	if err != nil {
		return err
	}
	s.publish(events)

	if len(g.Hand(domain.SeatOpponent)) == 4 {
		card := s.agent.ChooseDiscard(g.Hand(domain.SeatOpponent))
		events, err = s.svc.Discard(g, domain.SeatOpponent, card)
		if err != nil {
			return err
		}
		s.publish(events)
	}

	if s.agent.ShouldKnock(g.Hand(domain.SeatOpponent)) {
		events, err = s.svc.Knock(g, domain.SeatOpponent)
	} else {
		events, err = s.svc.EndTurn(g, domain.SeatOpponent)
	}
	if err != nil {
		return err
	}
	s.publish(events)
	return nil
}

func (s *Session) publish(events []Event) {
	for _, ev := range events {
		for _, sink := range s.sinks {
			sink(ev)
		}
	}
}

func (s *Session) reject(seat domain.Seat, action Action, err error) {
	s.publish([]Event{{
		Kind: EventActionRejected,
		Payload: ActionRejectedPayload{
			Seat:   seat,
			Action: action,
			Reason: err.Error(),
		},
	}})
}
