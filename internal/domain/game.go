package domain

import (
	"errors"
	"math/rand"
)

// Phase represents the lifecycle stage of a round.
type Phase string

const (
	// PhasePlaying is the active state where turns alternate.
	PhasePlaying Phase = "playing"
	// PhaseRoundOver is the terminal state after a knock.
	PhaseRoundOver Phase = "round_over"
)

// Seat indexes the two participants of a session.
type Seat int

const (
	SeatPlayer   Seat = 0
	SeatOpponent Seat = 1
)

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	if s == SeatPlayer {
		return SeatOpponent
	}
	return SeatPlayer
}

// Valid reports whether the seat indexes a participant.
func (s Seat) Valid() bool {
	return s == SeatPlayer || s == SeatOpponent
}

// DrawSource selects where a draw takes its card from.
type DrawSource string

const (
	DrawFromDeck    DrawSource = "deck"
	DrawFromDiscard DrawSource = "discard"
)

// Guard violations. A failing guard rejects the transition and leaves
// the game untouched.
var (
	ErrInvalidSeat       = errors.New("invalid seat")
	ErrRoundNotRunning   = errors.New("round is not running")
	ErrRoundLocked       = errors.New("round is locked by a knock")
	ErrAnimating         = errors.New("animation in progress")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrAlreadyDrawn      = errors.New("already drew this turn")
	ErrDiscardOwed       = errors.New("a discard is owed")
	ErrNoDiscardOwed     = errors.New("no discard is owed")
	ErrCardNotInHand     = errors.New("card is not in hand")
	ErrEmptyDiscard      = errors.New("discard pile is empty")
	ErrUnknownDrawSource = errors.New("unknown draw source")
)

// Flags is the turn-gating state record. It is owned by Game and
// mutated only through the guarded transitions below; the animation
// flags are caller-set gates the transitions merely respect.
type Flags struct {
	IsPlayerTurn      bool `json:"is_player_turn"`
	HasDrawnCard      bool `json:"has_drawn_card"`
	HasDiscardedCard  bool `json:"has_discarded_card"`
	MustDiscard       bool `json:"must_discard"`
	Knocked           bool `json:"knocked"`
	IsAnimating       bool `json:"is_animating"`
	CardsInteractable bool `json:"cards_interactable"`
	AnimationComplete bool `json:"animation_complete"`
}

// Game holds all mutable state for one Thirty-One round.
type Game struct {
	Phase       Phase     `json:"phase"`
	Deck        []Card    `json:"deck"`
	Hands       [2][]Card `json:"hands"`
	DiscardPile []Card    `json:"discard_pile"`
	State       Flags     `json:"state"`
}

// NewGame shuffles with the provided rng, deals both hands and the
// first discard, and opens the round on the player's turn.
func NewGame(rng *rand.Rand) (*Game, error) {
	deal, err := DealInitial(ShuffleDeck(NewDeck(), rng))
	if err != nil {
		return nil, err
	}
	return &Game{
		Phase:       PhasePlaying,
		Deck:        deal.Remaining,
		Hands:       deal.Hands,
		DiscardPile: []Card{deal.Upcard},
		State: Flags{
			IsPlayerTurn:      true,
			CardsInteractable: true,
			AnimationComplete: true,
		},
	}, nil
}

// Restart rebuilds the deck and re-deals, replacing all round state
// wholesale. Nothing carries over, including the knock flag.
func (g *Game) Restart(rng *rand.Rand) error {
	fresh, err := NewGame(rng)
	if err != nil {
		return err
	}
	*g = *fresh
	return nil
}

// TurnSeat returns the seat currently holding the turn.
func (g *Game) TurnSeat() Seat {
	if g.State.IsPlayerTurn {
		return SeatPlayer
	}
	return SeatOpponent
}

// Hand returns the cards held by a seat.
func (g *Game) Hand(seat Seat) []Card {
	return g.Hands[seat]
}

// DiscardTop returns a copy of the top discard, or nil when the pile is
// empty.
func (g *Game) DiscardTop() *Card {
	if len(g.DiscardPile) == 0 {
		return nil
	}
	c := g.DiscardPile[len(g.DiscardPile)-1]
	return &c
}

// SetAnimating toggles the presentation gate. While set, draw and
// discard transitions are rejected; the engine itself never waits on it.
func (g *Game) SetAnimating(on bool) {
	g.State.IsAnimating = on
	g.State.AnimationComplete = !on
	g.State.CardsInteractable = !on && !g.State.Knocked
}

// Draw moves one card from the chosen source into the seat's hand.
// Legal only at the start of the seat's turn, before any discard is
// owed. The drawn card is returned so callers can surface it.
func (g *Game) Draw(seat Seat, source DrawSource) (Card, error) {
	if !seat.Valid() {
		return Card{}, ErrInvalidSeat
	}
	if g.Phase != PhasePlaying {
		return Card{}, ErrRoundNotRunning
	}
	if g.State.Knocked {
		return Card{}, ErrRoundLocked
	}
	if g.State.IsAnimating {
		return Card{}, ErrAnimating
	}
	if g.TurnSeat() != seat {
		return Card{}, ErrNotYourTurn
	}
	if g.State.MustDiscard {
		return Card{}, ErrDiscardOwed
	}
	if g.State.HasDrawnCard {
		return Card{}, ErrAlreadyDrawn
	}

	var card Card
	switch source {
	case DrawFromDeck:
		c, rest, err := DrawTop(g.Deck)
		if err != nil {
			return Card{}, err
		}
		card, g.Deck = c, rest
	case DrawFromDiscard:
		if len(g.DiscardPile) == 0 {
			return Card{}, ErrEmptyDiscard
		}
		card = g.DiscardPile[len(g.DiscardPile)-1]
		g.DiscardPile = g.DiscardPile[:len(g.DiscardPile)-1]
	default:
		return Card{}, ErrUnknownDrawSource
	}

	g.Hands[seat] = append(g.Hands[seat], card)
	g.State.HasDrawnCard = true
	g.State.MustDiscard = true
	return card, nil
}

// Discard moves the named card from the seat's hand onto the pile,
// settling the discard owed after a draw.
func (g *Game) Discard(seat Seat, card Card) error {
	if !seat.Valid() {
		return ErrInvalidSeat
	}
	if g.Phase != PhasePlaying {
		return ErrRoundNotRunning
	}
	if g.State.Knocked {
		return ErrRoundLocked
	}
	if g.State.IsAnimating {
		return ErrAnimating
	}
	if g.TurnSeat() != seat {
		return ErrNotYourTurn
	}
	if !g.State.MustDiscard || g.State.HasDiscardedCard {
		return ErrNoDiscardOwed
	}
	idx := indexOfCard(g.Hands[seat], card)
	if idx < 0 {
		return ErrCardNotInHand
	}

	g.Hands[seat] = append(g.Hands[seat][:idx], g.Hands[seat][idx+1:]...)
	g.DiscardPile = append(g.DiscardPile, card)
	g.State.MustDiscard = false
	g.State.HasDiscardedCard = true
	return nil
}

// EndTurn passes the turn once the hand is settled back to three cards.
func (g *Game) EndTurn(seat Seat) error {
	if !seat.Valid() {
		return ErrInvalidSeat
	}
	if g.Phase != PhasePlaying {
		return ErrRoundNotRunning
	}
	if g.State.Knocked {
		return ErrRoundLocked
	}
	if g.TurnSeat() != seat {
		return ErrNotYourTurn
	}
	if len(g.Hands[seat]) != 3 {
		return ErrDiscardOwed
	}

	g.State.IsPlayerTurn = !g.State.IsPlayerTurn
	g.State.HasDrawnCard = false
	g.State.HasDiscardedCard = false
	g.State.MustDiscard = false
	return nil
}

// Knock locks the round and hands control to scoring. The player seat
// may only knock on its own turn; the opponent seat knocks at the end
// of its own sequence.
func (g *Game) Knock(seat Seat) error {
	if !seat.Valid() {
		return ErrInvalidSeat
	}
	if g.Phase != PhasePlaying {
		return ErrRoundNotRunning
	}
	if g.State.Knocked {
		return ErrRoundLocked
	}
	if len(g.Hands[seat]) != 3 {
		return ErrDiscardOwed
	}
	if seat == SeatPlayer && !g.State.IsPlayerTurn {
		return ErrNotYourTurn
	}

	g.State.Knocked = true
	g.State.CardsInteractable = false
	g.Phase = PhaseRoundOver
	return nil
}

// Snapshot is a read-only serializable view of the full round state.
type Snapshot struct {
	Phase         Phase     `json:"phase"`
	State         Flags     `json:"state"`
	Hands         [2][]Card `json:"hands"`
	DiscardTop    *Card     `json:"discard_top,omitempty"`
	DeckRemaining int       `json:"deck_remaining"`
	DiscardCount  int       `json:"discard_count"`
}

// Snapshot copies the observable state. Hands are cloned so holders of
// a snapshot cannot reach back into the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         g.Phase,
		State:         g.State,
		DiscardTop:    g.DiscardTop(),
		DeckRemaining: len(g.Deck),
		DiscardCount:  len(g.DiscardPile),
	}
	for i := range g.Hands {
		snap.Hands[i] = append([]Card{}, g.Hands[i]...)
	}
	return snap
}

func indexOfCard(hand []Card, card Card) int {
	for i, c := range hand {
		if c == card {
			return i
		}
	}
	return -1
}
