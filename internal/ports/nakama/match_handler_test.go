package nakama

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"thirtyone/internal/app"
	"thirtyone/internal/bot"
	"thirtyone/internal/domain"
	"thirtyone/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to
// satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockPresence is a minimal runtime.Presence for seat bookkeeping.
type mockPresence struct {
	userID   string
	username string
}

func (p *mockPresence) GetUserId() string                 { return p.userID }
func (p *mockPresence) GetSessionId() string              { return "session-" + p.userID }
func (p *mockPresence) GetNodeId() string                 { return "node" }
func (p *mockPresence) GetHidden() bool                   { return false }
func (p *mockPresence) GetPersistence() bool              { return true }
func (p *mockPresence) GetUsername() string               { return p.username }
func (p *mockPresence) GetStatus() string                 { return "" }
func (p *mockPresence) GetReason() runtime.PresenceReason { return runtime.PresenceReasonUnknown }

type sentMessage struct {
	opCode     int64
	data       []byte
	recipients []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	messages     []sentMessage
	labelUpdates int
	lastLabel    string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.messages = append(md.messages, sentMessage{
		opCode:     opCode,
		data:       append([]byte(nil), data...),
		recipients: presences,
	})
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

func (md *mockDispatcher) byOpCode(opCode int64) []sentMessage {
	var out []sentMessage
	for _, msg := range md.messages {
		if msg.opCode == opCode {
			out = append(out, msg)
		}
	}
	return out
}

// mockEconomy records wallet updates.
type mockEconomy struct {
	updates []ports.WalletUpdate
}

func (me *mockEconomy) GetBalance(context.Context, string) (int64, error) { return 0, nil }

func (me *mockEconomy) UpdateBalances(_ context.Context, updates []ports.WalletUpdate) error {
	me.updates = append(me.updates, updates...)
	return nil
}

func registerTestBots(t *testing.T) {
	t.Helper()
	bot.RegisterIdentities([]bot.BotIdentity{
		{UserID: "bot-alpha", Username: "bot_alpha", DisplayName: "Alpha", Difficulty: "medium"},
		{UserID: "bot-beta", Username: "bot_beta", DisplayName: "Beta", Difficulty: "hard"},
	})
	t.Cleanup(func() { bot.RegisterIdentities(nil) })
}

func newTestState(t *testing.T) *MatchState {
	t.Helper()
	registerTestBots(t)

	state := &MatchState{
		Seats:       [2]string{"user-1", ""},
		OwnerSeat:   0,
		Presences:   map[string]runtime.Presence{"user-1": &mockPresence{userID: "user-1", username: "alice"}},
		BotsEnabled: true,
		BotMinDelay: 1,
		BotMaxDelay: 2,
		Economy:     &mockEconomy{},
		rng:         rand.New(rand.NewSource(1)),
	}
	return state
}

func startTestGame(t *testing.T, state *MatchState, dispatcher *mockDispatcher) *matchHandler {
	t.Helper()
	handler := &matchHandler{}
	handler.handleStartGame(context.Background(), state, dispatcher, noopLogger{}, "user-1")
	if state.Session == nil {
		t.Fatalf("session not started")
	}
	return handler
}

func TestSeatOf(t *testing.T) {
	state := &MatchState{Seats: [2]string{"user-1", "bot-alpha"}}

	if seat, ok := state.seatOf("user-1"); !ok || seat != domain.SeatPlayer {
		t.Fatalf("seatOf(user-1) = %d/%t", seat, ok)
	}
	if seat, ok := state.seatOf("bot-alpha"); !ok || seat != domain.SeatOpponent {
		t.Fatalf("seatOf(bot-alpha) = %d/%t", seat, ok)
	}
	if _, ok := state.seatOf("stranger"); ok {
		t.Fatalf("seatOf(stranger) should not resolve")
	}
	if _, ok := state.seatOf(""); ok {
		t.Fatalf("empty user must not match an empty seat")
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	registerTestBots(t)

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{name: "BotOnly", seats: []string{"bot-alpha", ""}, want: true},
		{name: "AllEmpty", seats: []string{"", ""}, want: true},
		{name: "HumanPresent", seats: []string{"user-1", "bot-alpha"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(tt.seats); got != tt.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestMatchLabelMarshal(t *testing.T) {
	labelBytes, err := json.Marshal(matchLabel{Open: 1, Game: "thirtyone", Phase: "lobby"})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"open":1,"game":"thirtyone","phase":"lobby"}`
	if string(labelBytes) != want {
		t.Fatalf("label = %s, want %s", labelBytes, want)
	}
}

func TestProcessBotsSeatsOpponentForSoloHuman(t *testing.T) {
	state := newTestState(t)
	state.BotAutoFillDelay = 2
	state.LastSinglePlayerTick = 8
	state.Tick = 10
	dispatcher := &mockDispatcher{}
	handler := &matchHandler{}

	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	if state.Seats[domain.SeatOpponent] == "" || !isBotUserId(state.Seats[domain.SeatOpponent]) {
		t.Fatalf("opponent seat = %q, want a bot", state.Seats[domain.SeatOpponent])
	}
	if state.Bot == nil {
		t.Fatalf("no agent created for the seated bot")
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("auto-fill timer not reset")
	}
	if dispatcher.labelUpdates == 0 || len(dispatcher.byOpCode(OpPlayerJoined)) == 0 {
		t.Fatalf("expected roster broadcast and label update after auto-fill")
	}
}

func TestProcessBotsWaitsOutAutoFillDelay(t *testing.T) {
	state := newTestState(t)
	state.BotAutoFillDelay = 5
	state.Tick = 10
	dispatcher := &mockDispatcher{}
	handler := &matchHandler{}

	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	if state.LastSinglePlayerTick != 10 {
		t.Fatalf("auto-fill timer = %d, want 10", state.LastSinglePlayerTick)
	}
	if state.Seats[domain.SeatOpponent] != "" {
		t.Fatalf("bot seated before the delay elapsed")
	}
}

func TestHandleStartGameDealsAndSendsRedactedView(t *testing.T) {
	state := newTestState(t)
	dispatcher := &mockDispatcher{}
	startTestGame(t, state, dispatcher)

	if state.Seats[domain.SeatOpponent] == "" {
		t.Fatalf("start did not seat a bot opponent")
	}
	if len(dispatcher.byOpCode(OpGameStarted)) != 1 {
		t.Fatalf("expected one game_started broadcast")
	}

	views := dispatcher.byOpCode(OpStateChanged)
	if len(views) != 1 {
		t.Fatalf("state views sent = %d, want 1 (human only)", len(views))
	}
	if len(views[0].recipients) != 1 || views[0].recipients[0].GetUserId() != "user-1" {
		t.Fatalf("view not targeted at the human seat")
	}

	var view PlayerView
	if err := json.Unmarshal(views[0].data, &view); err != nil {
		t.Fatalf("unmarshal view: %v", err)
	}
	if view.Seat != domain.SeatPlayer || len(view.Hand) != 3 {
		t.Fatalf("view = seat %d hand %d, want seat 0 hand 3", view.Seat, len(view.Hand))
	}
	if view.OpponentCount != 3 {
		t.Fatalf("opponent count = %d, want 3", view.OpponentCount)
	}
	if !view.State.IsPlayerTurn {
		t.Fatalf("opening view should show the player's turn")
	}
}

func TestHandleDrawRejectionGoesToActorOnly(t *testing.T) {
	state := newTestState(t)
	dispatcher := &mockDispatcher{}
	handler := startTestGame(t, state, dispatcher)
	dispatcher.messages = nil

	draw, _ := json.Marshal(DrawCardRequest{Source: domain.DrawFromDeck})
	handler.handleDrawCard(context.Background(), state, dispatcher, noopLogger{}, "user-1", draw)
	// Second draw in the same turn violates the discard-owed guard.
	handler.handleDrawCard(context.Background(), state, dispatcher, noopLogger{}, "user-1", draw)

	rejections := dispatcher.byOpCode(OpActionRejected)
	if len(rejections) != 1 {
		t.Fatalf("rejections sent = %d, want 1", len(rejections))
	}
	if len(rejections[0].recipients) != 1 || rejections[0].recipients[0].GetUserId() != "user-1" {
		t.Fatalf("rejection not targeted at the actor")
	}

	var event ActionRejectedEvent
	if err := json.Unmarshal(rejections[0].data, &event); err != nil {
		t.Fatalf("unmarshal rejection: %v", err)
	}
	if event.Action != "draw" || event.Reason == "" {
		t.Fatalf("rejection event = %+v", event)
	}
	if len(state.Session.Game().Hand(domain.SeatPlayer)) != 4 {
		t.Fatalf("hand size changed by the rejected draw")
	}
}

func TestHumanKnockSettlesStake(t *testing.T) {
	state := newTestState(t)
	economy := &mockEconomy{}
	state.Economy = economy
	dispatcher := &mockDispatcher{}
	handler := startTestGame(t, state, dispatcher)
	dispatcher.messages = nil

	// Pin both hands so the human wins the showdown.
	game := state.Session.Game()
	game.Hands[domain.SeatPlayer] = []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankAce},
		{Suit: domain.SuitHearts, Rank: domain.RankKing},
		{Suit: domain.SuitHearts, Rank: domain.RankQueen},
	}
	game.Hands[domain.SeatOpponent] = []domain.Card{
		{Suit: domain.SuitClubs, Rank: 2},
		{Suit: domain.SuitSpades, Rank: 3},
		{Suit: domain.SuitDiamonds, Rank: 4},
	}

	handler.handleKnock(context.Background(), state, dispatcher, noopLogger{}, "user-1")

	overs := dispatcher.byOpCode(OpRoundOver)
	if len(overs) != 1 {
		t.Fatalf("round_over broadcasts = %d, want 1", len(overs))
	}

	var event RoundOverEvent
	if err := json.Unmarshal(overs[0].data, &event); err != nil {
		t.Fatalf("unmarshal round over: %v", err)
	}
	if event.Winner != domain.WinnerPlayer || event.KnockedBy != domain.SeatPlayer {
		t.Fatalf("event = winner %s knocked_by %d", event.Winner, event.KnockedBy)
	}
	if event.Scores[domain.SeatPlayer].MaxSuitTotal != 31 {
		t.Fatalf("player score = %d, want 31", event.Scores[domain.SeatPlayer].MaxSuitTotal)
	}
	if len(event.Hands[domain.SeatOpponent]) != 3 {
		t.Fatalf("opponent hand not revealed at showdown")
	}
	if event.BalanceChanges["user-1"] != state.Stake {
		t.Fatalf("human balance change = %d, want %d", event.BalanceChanges["user-1"], state.Stake)
	}

	// Only the human's wallet is touched.
	if len(economy.updates) != 1 {
		t.Fatalf("wallet updates = %d, want 1", len(economy.updates))
	}
	if economy.updates[0].UserID != "user-1" || economy.updates[0].Amount != state.Stake {
		t.Fatalf("wallet update = %+v", economy.updates[0])
	}
}

func TestProcessBotsPacesAndRunsOpponentTurn(t *testing.T) {
	state := newTestState(t)
	dispatcher := &mockDispatcher{}
	handler := startTestGame(t, state, dispatcher)

	// Human completes a full turn, handing the turn to the bot.
	draw, _ := json.Marshal(DrawCardRequest{Source: domain.DrawFromDeck})
	handler.handleDrawCard(context.Background(), state, dispatcher, noopLogger{}, "user-1", draw)
	shed, _ := json.Marshal(DiscardCardRequest{Card: state.Session.Game().Hand(domain.SeatPlayer)[0]})
	handler.handleDiscardCard(context.Background(), state, dispatcher, noopLogger{}, "user-1", shed)
	handler.handleEndTurn(context.Background(), state, dispatcher, noopLogger{}, "user-1")

	if state.Session.Game().TurnSeat() != domain.SeatOpponent {
		t.Fatalf("turn did not pass to the bot")
	}

	// First tick only schedules the bot.
	state.Tick = 100
	handler.processBots(context.Background(), state, dispatcher, noopLogger{})
	if state.BotWaitUntil <= state.Tick {
		t.Fatalf("bot delay not scheduled, wait until = %d", state.BotWaitUntil)
	}
	if state.Session.Game().TurnSeat() != domain.SeatOpponent {
		t.Fatalf("bot acted before its delay")
	}

	// Once the delay elapses the bot takes its whole turn.
	state.Tick = state.BotWaitUntil
	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	g := state.Session.Game()
	if g.Phase == domain.PhasePlaying && g.TurnSeat() != domain.SeatPlayer {
		t.Fatalf("bot turn did not complete")
	}
	if len(g.Hand(domain.SeatOpponent)) != 3 {
		t.Fatalf("bot hand size = %d, want 3", len(g.Hand(domain.SeatOpponent)))
	}
	if state.BotWaitUntil != 0 {
		t.Fatalf("bot delay not cleared after acting")
	}
}

func TestMatchJoinAttemptVerifiesRejoinToken(t *testing.T) {
	state := newTestState(t)
	handler := &matchHandler{}
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_MATCH_ID, "match-1")
	presence := &mockPresence{userID: "user-1", username: "alice"}

	// Same construction the join path falls back to without env creds.
	mint := app.NewTokenService("test-secret", "thirtyone", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
		want  bool
	}{
		{
			name: "ValidToken",
			token: func(t *testing.T) string {
				token, err := mint.GenerateRejoinToken("user-1", "match-1")
				if err != nil {
					t.Fatalf("mint error: %v", err)
				}
				return token
			},
			want: true,
		},
		{
			name:  "NoTokenSeatedUser",
			token: func(t *testing.T) string { return "" },
			want:  true,
		},
		{
			name: "TokenForAnotherUser",
			token: func(t *testing.T) string {
				token, err := mint.GenerateRejoinToken("impostor", "match-1")
				if err != nil {
					t.Fatalf("mint error: %v", err)
				}
				return token
			},
			want: false,
		},
		{
			name: "TokenForAnotherMatch",
			token: func(t *testing.T) string {
				token, err := mint.GenerateRejoinToken("user-1", "match-2")
				if err != nil {
					t.Fatalf("mint error: %v", err)
				}
				return token
			},
			want: false,
		},
		{
			name:  "GarbageToken",
			token: func(t *testing.T) string { return "not.a.token" },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := map[string]string{"rejoin_token": tt.token(t)}
			_, allowed, reason := handler.MatchJoinAttempt(ctx, noopLogger{}, nil, nil, nil, 0, state, presence, metadata)
			if allowed != tt.want {
				t.Fatalf("allowed = %t (%s), want %t", allowed, reason, tt.want)
			}
		})
	}
}

func TestViewForSeatRedaction(t *testing.T) {
	game, err := domain.NewGame(rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("new game error: %v", err)
	}

	view := viewForSeat(game.Snapshot(), domain.SeatOpponent)
	if view.Seat != domain.SeatOpponent {
		t.Fatalf("view seat = %d", view.Seat)
	}
	if len(view.Hand) != 3 || view.OpponentCount != 3 {
		t.Fatalf("view hand/opponent = %d/%d", len(view.Hand), view.OpponentCount)
	}
	if view.DeckRemaining != 45 || view.DiscardCount != 1 {
		t.Fatalf("view counts = %d/%d", view.DeckRemaining, view.DiscardCount)
	}
	if view.DiscardTop == nil {
		t.Fatalf("view missing discard top")
	}
}
