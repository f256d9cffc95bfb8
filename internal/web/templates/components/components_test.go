package components_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/web/templates/components"
)

func renderDoc(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestDiceRowMarksHeldDice(t *testing.T) {
	doc := renderDoc(t, components.DiceRow("dice", model.DiceSet{1, 2, 3, 4, 6}, model.HoldMask{false, true}))

	assert.Equal(t, 5, doc.Find("#dice .die").Length())
	held := doc.Find("#dice .die.held")
	require.Equal(t, 1, held.Length())
	assert.Equal(t, "2", held.AttrOr("data-value", ""))
	assert.Equal(t, "⚅", doc.Find("#dice .die").Last().Text())
}

func TestHoldableDiceRowNeedsARoll(t *testing.T) {
	idle := renderDoc(t, components.HoldableDiceRow("dice", "M1", model.NewTurnState()))
	assert.Equal(t, 0, idle.Find(".hold-form").Length())

	turn := model.NewTurnState()
	turn.RollCount = 1
	rolled := renderDoc(t, components.HoldableDiceRow("dice", "M1", turn))
	forms := rolled.Find(".hold-form")
	assert.Equal(t, 5, forms.Length())
	assert.Equal(t, "/match/M1/hold", forms.First().AttrOr("action", ""))
	assert.Equal(t, "4", forms.Last().Find("input[name=index]").AttrOr("value", ""))
}

func TestOutcomeBanner(t *testing.T) {
	doc := renderDoc(t, components.OutcomeBanner(model.OutcomeContinue))
	assert.Equal(t, 0, doc.Find("#outcome").Length())

	doc = renderDoc(t, components.OutcomeBanner(model.OutcomeTie))
	assert.Equal(t, "Tie! Keep Rolling...", doc.Find("#outcome.outcome-tie").Text())
}

func TestScoreBoxEscapesLabel(t *testing.T) {
	doc := renderDoc(t, components.ScoreBox("score", "<b>YOU</b>", 42))

	assert.Equal(t, "<b>YOU</b>", doc.Find(".label").Text())
	assert.Equal(t, 0, doc.Find(".label b").Length())
	assert.Equal(t, "42", doc.Find("#score").Text())
}

func TestTally(t *testing.T) {
	doc := renderDoc(t, components.Tally(3, 1))
	assert.Equal(t, "H:3 / C:1", doc.Find("#tally").Text())
}
