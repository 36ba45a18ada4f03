package nakama

import (
	"thirtyone/internal/app"
	"thirtyone/internal/domain"
)

// Client requests. StartGame, Knock, EndTurn, and NewRound carry no
// payload.

type DrawCardRequest struct {
	Source domain.DrawSource `json:"source"`
}

type DiscardCardRequest struct {
	Card domain.Card `json:"card"`
}

// Server events.

// SeatInfo describes one occupant in roster messages.
type SeatInfo struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	DisplayName string `json:"display_name"`
	IsBot       bool   `json:"is_bot"`
	IsOwner     bool   `json:"is_owner"`
}

// RosterMessage is sent on joins and leaves.
type RosterMessage struct {
	Seats     []SeatInfo `json:"seats"`
	OwnerSeat int        `json:"owner_seat"`
}

// GameStartedEvent announces the deal.
type GameStartedEvent struct {
	Stake int64 `json:"stake"`
}

// PlayerView is the per-seat redaction of a state snapshot: the
// recipient sees their own hand and only a count of the other.
type PlayerView struct {
	Seat          domain.Seat   `json:"seat"`
	Phase         domain.Phase  `json:"phase"`
	State         domain.Flags  `json:"state"`
	Hand          []domain.Card `json:"hand"`
	OpponentCount int           `json:"opponent_count"`
	DiscardTop    *domain.Card  `json:"discard_top,omitempty"`
	DeckRemaining int           `json:"deck_remaining"`
	DiscardCount  int           `json:"discard_count"`
}

// ActionRejectedEvent reports a guard failure to the acting user.
type ActionRejectedEvent struct {
	Action app.Action `json:"action"`
	Reason string     `json:"reason"`
}

// RoundOverEvent announces the showdown. Hands are revealed to both
// seats once the round is locked.
type RoundOverEvent struct {
	Winner         domain.Winner       `json:"winner"`
	Scores         [2]domain.HandScore `json:"scores"`
	Hands          [2][]domain.Card    `json:"hands"`
	KnockedBy      domain.Seat         `json:"knocked_by"`
	BalanceChanges map[string]int64    `json:"balance_changes"`
}

// viewForSeat redacts a full snapshot down to what one seat may see.
func viewForSeat(snap domain.Snapshot, seat domain.Seat) PlayerView {
	return PlayerView{
		Seat:          seat,
		Phase:         snap.Phase,
		State:         snap.State,
		Hand:          snap.Hands[seat],
		OpponentCount: len(snap.Hands[seat.Other()]),
		DiscardTop:    snap.DiscardTop,
		DeckRemaining: snap.DeckRemaining,
		DiscardCount:  snap.DiscardCount,
	}
}
