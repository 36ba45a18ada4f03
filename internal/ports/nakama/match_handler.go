package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"thirtyone/internal/app"
	"thirtyone/internal/bot"
	"thirtyone/internal/config"
	"thirtyone/internal/domain"
	"thirtyone/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match
// handler. Seat 0 is the human seat, seat 1 the opponent.
type MatchState struct {
	Seats                [2]string                   `json:"seats"`
	OwnerSeat            int                         `json:"owner_seat"`
	Tick                 int64                       `json:"tick"`
	Stake                int64                       `json:"stake"`
	Presences            map[string]runtime.Presence `json:"-"`
	Session              *app.Session                `json:"-"` // nil while in lobby
	Bot                  *bot.Agent                  `json:"-"` // seated opponent agent
	BotsEnabled          bool                        `json:"bots_enabled"`
	BotMinDelay          int                         `json:"bot_min_delay"`
	BotMaxDelay          int                         `json:"bot_max_delay"`
	BotAutoFillDelay     int                         `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64                       `json:"bot_wait_until"`
	LastSinglePlayerTick int64                       `json:"last_single_player_tick"`
	Economy              ports.EconomyPort           `json:"-"`

	rng     *rand.Rand
	pending []app.Event
}

type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// seatOf resolves a user ID to its seat.
func (ms *MatchState) seatOf(userID string) (domain.Seat, bool) {
	for i, seatUserId := range ms.Seats {
		if seatUserId != "" && seatUserId == userID {
			return domain.Seat(i), true
		}
	}
	return 0, false
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// shouldTerminateNoHumans returns true when there are no humans left.
func shouldTerminateNoHumans(seats []string) bool {
	for _, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return false
		}
	}
	return true
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: could not load game config: %v", err)
	}

	state := &MatchState{
		Tick:        time.Now().Unix(),
		OwnerSeat:   -1,
		Presences:   make(map[string]runtime.Presence),
		BotsEnabled: true,
		Economy:     NewNakamaEconomyAdapter(nk),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if cfg := config.GetGameConfig(); cfg != nil {
		state.BotMinDelay = cfg.BotTurnMinSeconds
		state.BotMaxDelay = cfg.BotTurnMaxSeconds
		state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["thirtyone_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["thirtyone_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["thirtyone_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["thirtyone_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}

	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay + 2
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	labelBytes, err := json.Marshal(matchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  "thirtyone",
		Phase: "lobby",
	})
	if err != nil {
		logger.Error("MatchInit: failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// A presented rejoin token must bind this user to this match.
	if token := metadata["rejoin_token"]; token != "" {
		claims, err := tokenServiceFromEnv(ctx, logger).ParseRejoinToken(token)
		if err != nil {
			logger.Warn("MatchJoinAttempt: invalid rejoin token from %s: %v", presence.GetUserId(), err)
			return state, false, "invalid rejoin token"
		}
		matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
		if claims.UserID != presence.GetUserId() || (matchID != "" && claims.MatchID != matchID) {
			logger.Warn("MatchJoinAttempt: rejoin token mismatch for %s", presence.GetUserId())
			return state, false, "rejoin token mismatch"
		}
	}

	// Reconnects are allowed back to their seat.
	if _, seated := matchState.seatOf(presence.GetUserId()); seated {
		return state, true, ""
	}

	// The human seat must be free.
	if matchState.Seats[domain.SeatPlayer] != "" {
		return state, false, "match full"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if seat, seated := matchState.seatOf(p.GetUserId()); seated {
			// Reconnect: resend the current view privately.
			logger.Info("MatchJoin: user %s rejoined seat %d", p.GetUserId(), seat)
			if matchState.Session != nil {
				mh.sendView(matchState, dispatcher, logger, seat)
			}
			continue
		}

		if matchState.Seats[domain.SeatPlayer] == "" {
			matchState.Seats[domain.SeatPlayer] = p.GetUserId()
			matchState.OwnerSeat = int(domain.SeatPlayer)
			logger.Debug("MatchJoin: user %s took seat %d", p.GetUserId(), domain.SeatPlayer)
		} else {
			logger.Warn("MatchJoin: user %s joined but no seat was available.", p.GetUserId())
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoster(matchState, dispatcher, logger, OpPlayerJoined)
	return matchState
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		// During a round the seat is held for reconnects; in the lobby
		// it frees up.
		if matchState.Session == nil {
			for i, seatUserId := range matchState.Seats {
				if seatUserId == p.GetUserId() {
					matchState.Seats[i] = ""
					logger.Debug("MatchLeave: user %s left, seat %d freed.", p.GetUserId(), i)
					break
				}
			}
		}
	}

	if matchState.Session != nil && len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: terminating abandoned match.")
		return nil
	}
	if matchState.Session == nil && shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoster(matchState, dispatcher, logger, OpPlayerLeft)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg.GetUserId())
		case OpDrawCard:
			mh.handleDrawCard(ctx, matchState, dispatcher, logger, msg.GetUserId(), msg.GetData())
		case OpDiscardCard:
			mh.handleDiscardCard(ctx, matchState, dispatcher, logger, msg.GetUserId(), msg.GetData())
		case OpKnock:
			mh.handleKnock(ctx, matchState, dispatcher, logger, msg.GetUserId())
		case OpEndTurn:
			mh.handleEndTurn(ctx, matchState, dispatcher, logger, msg.GetUserId())
		case OpNewRound:
			mh.handleNewRound(ctx, matchState, dispatcher, logger, msg.GetUserId())
		default:
			logger.Warn("MatchLoop: unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

// processBots seats a bot opposite a lone human after the auto-fill
// delay, and paces the bot's in-game turns by tick.
func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Session == nil {
		if state.GetHumanPlayerCount() == 1 && state.Seats[domain.SeatOpponent] == "" {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: single player detected, starting auto-fill timer.")
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				state.LastSinglePlayerTick = 0
				if err := mh.seatBot(state, logger); err != nil {
					logger.Error("processBots: failed to seat bot: %v", err)
					return
				}
				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastRoster(state, dispatcher, logger, OpPlayerJoined)
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	game := state.Session.Game()
	if game == nil || game.Phase != domain.PhasePlaying || game.TurnSeat() != domain.SeatOpponent {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.rng.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: bot will act at tick %d (current %d)", state.BotWaitUntil, state.Tick)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	if err := state.Session.RunOpponentTurn(); err != nil {
		logger.Error("processBots: opponent turn failed: %v", err)
		return
	}
	mh.flushEvents(ctx, state, dispatcher, logger)
}

// seatBot places an identity from the bot pool into the opponent seat.
func (mh *matchHandler) seatBot(state *MatchState, logger runtime.Logger) error {
	identity := bot.GetBotIdentity(state.rng.Intn(16))
	agent, err := bot.NewAgentForIdentity(identity, rand.New(rand.NewSource(state.rng.Int63())))
	if err != nil {
		return err
	}

	state.Seats[domain.SeatOpponent] = identity.UserID
	state.Bot = agent
	logger.Info("processBots: seated bot %s (%s), difficulty %s", identity.DisplayName, identity.UserID, identity.Difficulty)
	return nil
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	seat, seated := state.seatOf(senderID)
	if !seated || int(seat) != state.OwnerSeat {
		logger.Warn("StartGame: user %s tried to start but is not the owner.", senderID)
		return
	}
	if state.Session != nil {
		logger.Warn("StartGame: session already running.")
		return
	}

	if state.Seats[domain.SeatOpponent] == "" {
		if err := mh.seatBot(state, logger); err != nil {
			logger.Error("StartGame: failed to seat bot: %v", err)
			return
		}
		mh.broadcastRoster(state, dispatcher, logger, OpPlayerJoined)
	}

	state.Stake = config.GetStake("")

	session := app.NewSession(app.NewService(rand.New(rand.NewSource(state.rng.Int63()))), state.Bot)
	session.Subscribe(func(ev app.Event) {
		state.pending = append(state.pending, ev)
	})
	if err := session.Start(); err != nil {
		logger.Error("StartGame: failed to deal: %v", err)
		return
	}
	state.Session = session

	mh.updateLabel(state, dispatcher, logger)

	startedBytes, err := json.Marshal(GameStartedEvent{Stake: state.Stake})
	if err != nil {
		logger.Error("StartGame: failed to marshal event: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpGameStarted, startedBytes, nil, nil, true)
	mh.flushEvents(ctx, state, dispatcher, logger)

	logger.Info("StartGame: round dealt, stake %d.", state.Stake)
}

func (mh *matchHandler) handleDrawCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string, data []byte) {
	seat, ok := mh.requireSeatedSession(state, logger, senderID, "handleDrawCard")
	if !ok {
		return
	}

	var request DrawCardRequest
	if err := json.Unmarshal(data, &request); err != nil {
		logger.Warn("handleDrawCard: invalid request from %s: %v", senderID, err)
		return
	}

	if err := state.Session.HandleDraw(seat, request.Source); err != nil {
		logger.Error("handleDrawCard: %v", err)
		return
	}
	mh.flushEvents(ctx, state, dispatcher, logger)
}

func (mh *matchHandler) handleDiscardCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string, data []byte) {
	seat, ok := mh.requireSeatedSession(state, logger, senderID, "handleDiscardCard")
	if !ok {
		return
	}

	var request DiscardCardRequest
	if err := json.Unmarshal(data, &request); err != nil {
		logger.Warn("handleDiscardCard: invalid request from %s: %v", senderID, err)
		return
	}

	if err := state.Session.HandleDiscard(seat, request.Card); err != nil {
		logger.Error("handleDiscardCard: %v", err)
		return
	}
	mh.flushEvents(ctx, state, dispatcher, logger)
}

func (mh *matchHandler) handleKnock(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	seat, ok := mh.requireSeatedSession(state, logger, senderID, "handleKnock")
	if !ok {
		return
	}
	if err := state.Session.HandleKnock(seat); err != nil {
		logger.Error("handleKnock: %v", err)
		return
	}
	mh.flushEvents(ctx, state, dispatcher, logger)
}

func (mh *matchHandler) handleEndTurn(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	seat, ok := mh.requireSeatedSession(state, logger, senderID, "handleEndTurn")
	if !ok {
		return
	}
	if err := state.Session.HandleEndTurn(seat); err != nil {
		logger.Error("handleEndTurn: %v", err)
		return
	}
	mh.flushEvents(ctx, state, dispatcher, logger)
}

func (mh *matchHandler) handleNewRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	seat, ok := mh.requireSeatedSession(state, logger, senderID, "handleNewRound")
	if !ok {
		return
	}
	if err := state.Session.HandleRestart(seat); err != nil {
		logger.Error("handleNewRound: %v", err)
		return
	}
	mh.updateLabel(state, dispatcher, logger)
	mh.flushEvents(ctx, state, dispatcher, logger)
}

func (mh *matchHandler) requireSeatedSession(state *MatchState, logger runtime.Logger, senderID, op string) (domain.Seat, bool) {
	seat, seated := state.seatOf(senderID)
	if !seated {
		logger.Warn("%s: user %s is not seated.", op, senderID)
		return 0, false
	}
	if state.Session == nil {
		logger.Warn("%s: game not started.", op)
		return 0, false
	}
	return seat, true
}

// flushEvents drains the session's published events into dispatches.
func (mh *matchHandler) flushEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	pending := state.pending
	state.pending = nil
	for _, ev := range pending {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) dispatchEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	switch ev.Kind {
	case app.EventStateChanged:
		p := ev.Payload.(app.StateChangedPayload)
		for i := range state.Seats {
			mh.sendViewSnapshot(state, dispatcher, logger, domain.Seat(i), p.Snapshot)
		}

	case app.EventActionRejected:
		p := ev.Payload.(app.ActionRejectedPayload)
		userID := state.Seats[p.Seat]
		if userID == "" || isBotUserId(userID) {
			logger.Debug("dispatchEvent: rejection for seat %d (%s): %s", p.Seat, p.Action, p.Reason)
			return
		}
		presence, ok := state.Presences[userID]
		if !ok {
			return
		}
		bytes, err := json.Marshal(ActionRejectedEvent{Action: p.Action, Reason: p.Reason})
		if err != nil {
			logger.Error("dispatchEvent: failed to marshal rejection: %v", err)
			return
		}
		dispatcher.BroadcastMessage(OpActionRejected, bytes, []runtime.Presence{presence}, nil, true)

	case app.EventRoundOver:
		p := ev.Payload.(app.RoundOverPayload)
		mh.settleRound(ctx, state, dispatcher, logger, p)

	default:
		logger.Warn("dispatchEvent: unknown event kind: %v", ev.Kind)
	}
}

// settleRound reveals both hands, moves the stake, and announces the
// result.
func (mh *matchHandler) settleRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, p app.RoundOverPayload) {
	game := state.Session.Game()

	changes := make(map[string]int64, 2)
	switch p.Winner {
	case domain.WinnerPlayer:
		changes[state.Seats[domain.SeatPlayer]] = state.Stake
		changes[state.Seats[domain.SeatOpponent]] = -state.Stake
	case domain.WinnerOpponent:
		changes[state.Seats[domain.SeatPlayer]] = -state.Stake
		changes[state.Seats[domain.SeatOpponent]] = state.Stake
	}

	if state.Economy != nil {
		updates := make([]ports.WalletUpdate, 0, len(changes))
		for userID, amount := range changes {
			if userID == "" || isBotUserId(userID) {
				continue
			}
			updates = append(updates, ports.WalletUpdate{
				UserID: userID,
				Amount: amount,
				Metadata: map[string]interface{}{
					"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
					"reason":   "round_settlement",
				},
			})
		}
		if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
			logger.Error("settleRound: failed to update balances: %v", err)
		}
	}

	event := RoundOverEvent{
		Winner:         p.Winner,
		Scores:         p.Scores,
		KnockedBy:      p.KnockedBy,
		BalanceChanges: changes,
	}
	for i := range event.Hands {
		event.Hands[i] = game.Hand(domain.Seat(i))
	}

	bytes, err := json.Marshal(event)
	if err != nil {
		logger.Error("settleRound: failed to marshal event: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpRoundOver, bytes, nil, nil, true)
	mh.updateLabel(state, dispatcher, logger)
}

// sendView resends the current redacted snapshot to one seat.
func (mh *matchHandler) sendView(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat domain.Seat) {
	mh.sendViewSnapshot(state, dispatcher, logger, seat, state.Session.Game().Snapshot())
}

func (mh *matchHandler) sendViewSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat domain.Seat, snap domain.Snapshot) {
	userID := state.Seats[seat]
	if userID == "" || isBotUserId(userID) {
		return
	}
	presence, ok := state.Presences[userID]
	if !ok {
		return
	}

	bytes, err := json.Marshal(viewForSeat(snap, seat))
	if err != nil {
		logger.Error("sendViewSnapshot: failed to marshal view: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpStateChanged, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) broadcastRoster(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64) {
	roster := RosterMessage{OwnerSeat: state.OwnerSeat}
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if name := bot.GetBotDisplayName(userID); name != "" {
			displayName = name
		}

		roster.Seats = append(roster.Seats, SeatInfo{
			UserID:      userID,
			Seat:        i,
			DisplayName: displayName,
			IsBot:       isBotUserId(userID),
			IsOwner:     i == state.OwnerSeat,
		})
	}

	bytes, err := json.Marshal(roster)
	if err != nil {
		logger.Error("broadcastRoster: failed to marshal: %v", err)
		return
	}
	dispatcher.BroadcastMessage(opCode, bytes, nil, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Session != nil {
		phase = string(state.Session.Game().Phase)
	}

	labelBytes, err := json.Marshal(matchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  "thirtyone",
		Phase: phase,
	})
	if err != nil {
		logger.Error("updateLabel: failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
