package app

import "thirtyone/internal/domain"

// EventKind identifies emitted session events for Nakama dispatch.
type EventKind string

const (
	EventStateChanged   EventKind = "state_changed"
	EventActionRejected EventKind = "action_rejected"
	EventRoundOver      EventKind = "round_over"
)

// Action names an inbound request routed to the state machine.
type Action string

const (
	ActionDraw    Action = "draw"
	ActionDiscard Action = "discard"
	ActionEndTurn Action = "end_turn"
	ActionKnock   Action = "knock"
	ActionRestart Action = "restart"
)

// Event is a published session event. Recipient targeting is decided
// at the ports layer, which knows seats and user identities.
type Event struct {
	Kind    EventKind
	Payload any
}

// StateChangedPayload carries the full state view after every accepted
// transition. The ports layer redacts it per recipient.
type StateChangedPayload struct {
	Snapshot domain.Snapshot `json:"snapshot"`
}

// ActionRejectedPayload reports a guard failure back to the actor.
type ActionRejectedPayload struct {
	Seat   domain.Seat `json:"seat"`
	Action Action      `json:"action"`
	Reason string      `json:"reason"`
}

// RoundOverPayload is emitted once, when a knock ends the round.
type RoundOverPayload struct {
	Winner    domain.Winner       `json:"winner"`
	Scores    [2]domain.HandScore `json:"scores"`
	KnockedBy domain.Seat         `json:"knocked_by"`
}
