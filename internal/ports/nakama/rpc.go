package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"thirtyone/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients requesting an
// open match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RejoinTokenResponse carries a signed reconnect token.
type RejoinTokenResponse struct {
	Token string `json:"token"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcRejoinToken, rpcRejoinToken)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	// Find any open lobby of our game.
	query := "+label.open:>=1 +label.game:thirtyone +label.phase:lobby"

	limit := 10
	authoritative := true
	minSize := 0
	maxSize := 1

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		resp := QuickMatchResponse{MatchID: matches[0].MatchId, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	// Create a new match; seating happens in MatchJoin.
	matchID, err := nk.MatchCreate(ctx, MatchNameThirtyOne, map[string]interface{}{})
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	resp := QuickMatchResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

// rpcRejoinToken mints a reconnect token binding the caller to a match.
// Payload: {"match_id": "..."}
func rpcRejoinToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("authentication required", 16) // UNAUTHENTICATED
	}

	var req struct {
		MatchID string `json:"match_id"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.MatchID == "" {
		return "", runtime.NewError("match_id required", 3) // INVALID_ARGUMENT
	}

	service := tokenServiceFromEnv(ctx, logger)
	token, err := service.GenerateRejoinToken(userID, req.MatchID)
	if err != nil {
		logger.Error("Failed to generate rejoin token: %v", err)
		return "", runtime.NewError("internal error", 13) // INTERNAL
	}

	b, _ := json.Marshal(RejoinTokenResponse{Token: token})
	return string(b), nil
}

// tokenServiceFromEnv builds the rejoin token service from runtime env
// credentials. Both the minting RPC and the match join verification use
// the same construction so tokens stay verifiable.
func tokenServiceFromEnv(ctx context.Context, logger runtime.Logger) *app.TokenService {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["thirtyone_token_secret"]
	issuer := env["thirtyone_token_issuer"]
	if secret == "" || issuer == "" {
		secret = "test-secret"
		issuer = "thirtyone"
		logger.Warn("Rejoin token credentials missing from env, using test defaults.")
	}
	return app.NewTokenService(secret, issuer, time.Hour)
}
