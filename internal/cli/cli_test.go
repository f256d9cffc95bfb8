package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dicegame-go/internal/api"
	"github.com/mcoot/dicegame-go/internal/factory"
	"github.com/mcoot/dicegame-go/internal/testutil"
)

type cliHarness struct {
	t         *testing.T
	app       *factory.TestApp
	serverURL string
	tokenFile string
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()

	app := factory.NewTestApp()
	server := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		AuthService:     app.AuthService,
		MatchController: app.MatchController,
		OpponentService: app.OpponentService,
	}))
	t.Cleanup(server.Close)

	return &cliHarness{
		t:         t,
		app:       app,
		serverURL: server.URL,
		tokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", h.serverURL, "--token-file", h.tokenFile}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func (h *cliHarness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func runJSON[T any](h *cliHarness, args ...string) T {
	h.t.Helper()
	out := h.mustRun(append([]string{"-o", "json"}, args...)...)
	var v T
	require.NoError(h.t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestHealth(t *testing.T) {
	h := newCLIHarness(t)

	assert.Equal(t, "Status: ok\n", h.mustRun("health"))
}

func TestStrategies(t *testing.T) {
	h := newCLIHarness(t)

	out := h.mustRun("strategies")

	assert.Contains(t, out, "heuristic - Heuristic [default]")
	assert.Contains(t, out, "random - Random\n")
}

func TestGuestSavesToken(t *testing.T) {
	h := newCLIHarness(t)

	out := h.mustRun("player", "guest", "--name", "Alice")
	assert.Contains(t, out, "Player: Alice")
	assert.Contains(t, out, "Guest: yes")

	token, err := os.ReadFile(h.tokenFile)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	me := runJSON[Player](h, "player", "me")
	assert.Equal(t, "Alice", me.DisplayName)
}

func TestRegisterLoginLogout(t *testing.T) {
	h := newCLIHarness(t)

	h.mustRun("player", "register", "--user", "carol", "--pass", "secret123")
	h.mustRun("player", "logout")

	_, err := os.Stat(h.tokenFile)
	assert.True(t, os.IsNotExist(err))

	_, err = h.run("player", "me")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)

	login := runJSON[AuthResult](h, "player", "login", "--user", "carol", "--pass", "secret123")
	assert.Equal(t, "carol", login.Player.DisplayName)
	assert.False(t, login.Player.IsGuest)
}

func TestLoginWrongPassword(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("player", "register", "--user", "dave", "--pass", "secret123")

	_, err := h.run("player", "login", "--user", "dave", "--pass", "wrong")

	require.Error(t, err)
}

func TestPlayMatch(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("player", "guest")

	match := runJSON[Match](h, "match", "new", "--target", "20")
	assert.Equal(t, 20, match.TargetScore)
	assert.Equal(t, "heuristic", match.Strategy)
	assert.Equal(t, "in_progress", match.Status)

	h.app.QueueHumanRoll(6, 6, 6, 2, 2)
	rolled := runJSON[TurnResult](h, "match", "roll")
	assert.Nil(t, rolled.Scored)
	assert.Equal(t, []int{6, 6, 6, 2, 2}, rolled.Match.Turn.Dice)

	out := h.mustRun("match", "hold", "0")
	assert.Contains(t, out, "Your dice: [6*] [6] [6] [2] [2]")

	h.mustRun("match", "hold", "1", "--match", match.ID)
	h.mustRun("match", "hold", "2")

	// Unscripted opponent rolls are all ones
	h.app.QueueHumanRoll(6, 6)
	scored := runJSON[TurnResult](h, "match", "roll", match.ID)
	assert.Nil(t, scored.Scored)

	final := runJSON[TurnResult](h, "match", "score")
	require.NotNil(t, final.Scored)
	assert.Equal(t, 30, final.Scored.HumanPoints)
	assert.Equal(t, 5, final.Scored.OpponentPoints)
	assert.Equal(t, "human_wins", final.Scored.Outcome)
	assert.Equal(t, "complete", final.Match.Status)
	assert.Equal(t, "H:1 / C:0", final.Match.Tally.Display)

	record := h.mustRun("player", "record")
	assert.Contains(t, record, "Tally: H:1 / C:0")
	assert.Contains(t, record, match.ID+" won 30-5")
}

func TestQuitMatch(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("player", "guest")
	match := runJSON[Match](h, "match", "new")
	assert.Equal(t, 101, match.TargetScore)

	assert.Equal(t, "Match abandoned\n", h.mustRun("match", "quit"))

	_, err := h.run("match", "current")
	require.Error(t, err)

	list := runJSON[[]Match](h, "match", "list")
	require.Len(t, list, 1)
	assert.Equal(t, "abandoned", list[0].Status)
}

func TestHoldRejectsNonNumericIndex(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("player", "guest")
	h.mustRun("match", "new")

	_, err := h.run("match", "hold", "first")

	assert.ErrorContains(t, err, "index must be a number")
}

func TestFormatDice(t *testing.T) {
	assert.Equal(t, "[1] [2*] [3]", formatDice([]int{1, 2, 3}, []bool{false, true, false}))
	assert.Equal(t, "[4] [5]", formatDice([]int{4, 5}, nil))
}
