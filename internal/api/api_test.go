package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dicegame-go/internal/api"
	"github.com/mcoot/dicegame-go/internal/api/apierr"
	"github.com/mcoot/dicegame-go/internal/api/response"
	"github.com/mcoot/dicegame-go/internal/factory"
	"github.com/mcoot/dicegame-go/internal/testutil"
)

// testServer wraps the router with a mocked app so dice can be scripted
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		AuthService:     app.AuthService,
		MatchController: app.MatchController,
		OpponentService: app.OpponentService,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, rr).Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGuestPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/guest", map[string]string{"display_name": "Alice"}, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	resp := decode[response.AuthResponse](t, rr)
	assert.Equal(t, "Alice", resp.Player.DisplayName)
	assert.True(t, resp.Player.IsGuest)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestCreateGuestPlayerWithoutBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/guest", nil, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decode[response.AuthResponse](t, rr)
	assert.Equal(t, "Guest", resp.Player.DisplayName)
}

func TestRegisterLoginLogout(t *testing.T) {
	ts := newTestServer(t)

	registerBody := map[string]string{
		"username":     "alice",
		"password":     "secret123",
		"display_name": "Alice",
	}
	rr := ts.request(http.MethodPost, "/api/v1/players/register", registerBody, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	registerResp := decode[response.AuthResponse](t, rr)
	assert.False(t, registerResp.Player.IsGuest)

	rr = ts.request(http.MethodPost, "/api/v1/players/register", registerBody, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeUsernameExists, errorCode(t, rr))

	loginBody := map[string]string{"username": "alice", "password": "secret123"}
	rr = ts.request(http.MethodPost, "/api/v1/players/login", loginBody, "")
	require.Equal(t, http.StatusOK, rr.Code)
	loginResp := decode[response.AuthResponse](t, rr)
	assert.Equal(t, registerResp.Player.ID, loginResp.Player.ID)

	rr = ts.request(http.MethodPost, "/api/v1/players/logout", nil, loginResp.SessionToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/me", nil, loginResp.SessionToken)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{"username": "al", "password": "secret123"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidUsername, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{"username": "alice", "password": "abc"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodePasswordTooShort, errorCode(t, rr))
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{"username": "alice", "password": "secret123"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players/login", map[string]string{"username": "alice", "password": "nope123"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeInvalidCredentials, errorCode(t, rr))
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Bob")

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "Bob", decode[response.Player](t, rr).DisplayName)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/matches", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/matches/current", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListStrategies(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/strategies", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.StrategiesResponse](t, rr)
	require.Len(t, resp.Strategies, 2)
	assert.Equal(t, "heuristic", resp.Strategies[0].Name)
	assert.True(t, resp.Strategies[0].Default)
	assert.Equal(t, "random", resp.Strategies[1].Name)
	assert.False(t, resp.Strategies[1].Default)
}

func TestStartMatchDefaults(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/matches", map[string]string{"target": "lots"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	match := decode[response.Match](t, rr)
	assert.Equal(t, 101, match.TargetScore)
	assert.Equal(t, "heuristic", match.Strategy)
	assert.Equal(t, "in_progress", match.Status)
	assert.Equal(t, 1, match.Round)
	assert.Equal(t, "idle", match.Turn.Phase)
	assert.Equal(t, 3, match.Turn.RemainingRolls)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, match.Turn.Dice)
	assert.Equal(t, "H:0 / C:0", match.Tally.Display)
	assert.Equal(t, "/api/v1/matches/"+match.ID, rr.Header().Get("Location"))
}

func TestStartMatchTargetForms(t *testing.T) {
	tests := []struct {
		name   string
		target any
		want   int
	}{
		{"number", 50, 50},
		{"numeric string", "75", 75},
		{"boolean", true, 101},
		{"negative number", -5, 101},
		{"fraction", 12.5, 101},
		{"null", nil, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			token := createGuestPlayer(t, ts, "Alice")

			rr := ts.request(http.MethodPost, "/api/v1/matches", map[string]any{"target": tt.target}, token)
			require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
			assert.Equal(t, tt.want, decode[response.Match](t, rr).TargetScore)
		})
	}
}

func TestStartMatchErrors(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/matches", map[string]string{"strategy": "psychic"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownStrategy, errorCode(t, rr))

	startMatch(t, ts, token, "50", "random")

	rr = ts.request(http.MethodPost, "/api/v1/matches", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeMatchInProgress, errorCode(t, rr))
}

func TestCurrentMatch(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/matches/current", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNoMatchInProgress, errorCode(t, rr))

	id := startMatch(t, ts, token, "50", "random")

	rr = ts.request(http.MethodGet, "/api/v1/matches/current", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, id, decode[response.Match](t, rr).ID)
}

func TestMatchBelongsToOwner(t *testing.T) {
	ts := newTestServer(t)
	alice := createGuestPlayer(t, ts, "Alice")
	bob := createGuestPlayer(t, ts, "Bob")

	id := startMatch(t, ts, alice, "50", "random")

	rr := ts.request(http.MethodGet, "/api/v1/matches/"+id, nil, bob)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/matches/"+id+"/roll", nil, bob)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/matches/nope", nil, alice)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeMatchNotFound, errorCode(t, rr))
}

func TestRollHoldAndScore(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")
	id := startMatch(t, ts, token, "20", "random")
	base := "/api/v1/matches/" + id

	// Nothing to hold or score before the first roll
	rr := ts.request(http.MethodPost, base+"/hold", map[string]int{"index": 0}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNotRolledYet, errorCode(t, rr))
	rr = ts.request(http.MethodPost, base+"/score", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	ts.app.QueueHumanRoll(6, 6, 2, 2, 2)
	rr = ts.request(http.MethodPost, base+"/roll", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	result := decode[response.TurnResult](t, rr)
	assert.Nil(t, result.Scored)
	assert.Equal(t, []int{6, 6, 2, 2, 2}, result.Match.Turn.Dice)
	assert.Equal(t, 1, result.Match.Turn.RollCount)
	assert.Equal(t, "rolled", result.Match.Turn.Phase)

	rr = ts.request(http.MethodPost, base+"/hold", map[string]int{"index": 0}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, base+"/hold", map[string]int{"index": 1}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []bool{true, true, false, false, false}, decode[response.Match](t, rr).Turn.Holds)

	rr = ts.request(http.MethodPost, base+"/hold", map[string]int{"index": 5}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidDieIndex, errorCode(t, rr))
	rr = ts.request(http.MethodPost, base+"/hold", map[string]string{}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))

	ts.app.QueueHumanRoll(5, 5, 5)
	rr = ts.request(http.MethodPost, base+"/roll", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int{6, 6, 5, 5, 5}, decode[response.TurnResult](t, rr).Match.Turn.Dice)

	// Scoring after two rolls leaves the computer one roll
	ts.app.QueueOpponentRolls(1, 2)
	rr = ts.request(http.MethodPost, base+"/score", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	result = decode[response.TurnResult](t, rr)

	require.NotNil(t, result.Scored)
	assert.Equal(t, 27, result.Scored.HumanPoints)
	assert.Equal(t, 10, result.Scored.OpponentPoints)
	assert.Equal(t, 1, result.Scored.OpponentRolls)
	assert.Equal(t, "human_wins", result.Scored.Outcome)
	assert.Equal(t, "You Win!", result.Match.Message)
	assert.Equal(t, "complete", result.Match.Status)
	assert.Equal(t, []int{2, 2, 2, 2, 2}, result.Match.OpponentDice)
	assert.Equal(t, "H:1 / C:0", result.Match.Tally.Display)

	rr = ts.request(http.MethodPost, base+"/roll", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeMatchComplete, errorCode(t, rr))

	rr = ts.request(http.MethodGet, "/api/v1/players/me/record", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	record := decode[response.Record](t, rr)
	assert.Equal(t, 1, record.HumanWins)
	assert.Equal(t, 0, record.OpponentWins)
	assert.Nil(t, record.CurrentMatch)
	require.Len(t, record.History, 1)
	assert.Equal(t, id, record.History[0].ID)
}

func TestHoldCoversOnlyTheNextRoll(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")
	id := startMatch(t, ts, token, "", "random")
	base := "/api/v1/matches/" + id

	ts.app.QueueHumanRoll(6, 2, 2, 2, 2)
	rr := ts.request(http.MethodPost, base+"/roll", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, base+"/hold", map[string]int{"index": 0}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	ts.app.QueueHumanRoll(3, 3, 3, 3)
	rr = ts.request(http.MethodPost, base+"/roll", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	turn := decode[response.TurnResult](t, rr).Match.Turn
	assert.Equal(t, []int{6, 3, 3, 3, 3}, turn.Dice)
	assert.Equal(t, []bool{false, false, false, false, false}, turn.Holds)

	// The six was not held again, so the final roll replaces every die
	ts.app.QueueHumanRoll(4, 4, 4, 4, 4)
	ts.app.QueueOpponentRolls(1, 1)
	rr = ts.request(http.MethodPost, base+"/roll", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	result := decode[response.TurnResult](t, rr)
	require.NotNil(t, result.Scored)
	assert.Equal(t, []int{4, 4, 4, 4, 4}, result.Scored.HumanDice)
	assert.Equal(t, 20, result.Scored.HumanPoints)
}

func TestThirdRollScoresAutomatically(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")
	id := startMatch(t, ts, token, "", "random")
	base := "/api/v1/matches/" + id

	for range 2 {
		ts.app.QueueHumanRoll(3, 3, 3, 3, 3)
		rr := ts.request(http.MethodPost, base+"/roll", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	ts.app.QueueHumanRoll(4, 4, 4, 4, 4)
	ts.app.QueueOpponentRolls(1, 4)
	rr := ts.request(http.MethodPost, base+"/roll", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	result := decode[response.TurnResult](t, rr)
	require.NotNil(t, result.Scored)
	assert.Equal(t, 20, result.Match.HumanScore)
	assert.Equal(t, 20, result.Match.OpponentScore)
	assert.Equal(t, "continue", result.Scored.Outcome)
	assert.Equal(t, 2, result.Match.Round)
	assert.Equal(t, "idle", result.Match.Turn.Phase)
	assert.Len(t, result.Match.Rounds, 1)
}

func TestQuitMatch(t *testing.T) {
	ts := newTestServer(t)
	token := createGuestPlayer(t, ts, "Alice")
	id := startMatch(t, ts, token, "50", "random")

	rr := ts.request(http.MethodDelete, "/api/v1/matches/"+id, nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/matches/current", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/matches/"+id+"/roll", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeMatchAbandoned, errorCode(t, rr))

	rr = ts.request(http.MethodGet, "/api/v1/matches/"+id, nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abandoned", decode[response.Match](t, rr).Status)

	startMatch(t, ts, token, "50", "random")
	rr = ts.request(http.MethodGet, "/api/v1/matches", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.Match](t, rr), 2)
}

// Helper functions

func createGuestPlayer(t *testing.T, ts *testServer, displayName string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/players/guest", map[string]string{"display_name": displayName}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	return decode[response.AuthResponse](t, rr).SessionToken
}

func startMatch(t *testing.T, ts *testServer, token, target, strategy string) string {
	t.Helper()

	body := map[string]string{"target": target, "strategy": strategy}
	rr := ts.request(http.MethodPost, "/api/v1/matches", body, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	return decode[response.Match](t, rr).ID
}
