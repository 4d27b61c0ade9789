package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-bank/internal/quiz"
	"quiz-bank/internal/quiz/sqlite"
)

func newShellService(t *testing.T) (*quiz.Service, *sqlite.SQLiteStore) {
	t.Helper()
	store, err := sqlite.NewSQLiteStore(filepath.Join(t.TempDir(), "shell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return quiz.NewService(store, nil), store
}

func runShell(t *testing.T, service *quiz.Service, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, RunShell(context.Background(), service, strings.NewReader(input), &out))
	return out.String()
}

func lines(values ...string) string {
	return strings.Join(values, "\n") + "\n"
}

func TestShellAddPromptsEveryField(t *testing.T) {
	service, store := newShellService(t)

	out := runShell(t, service, lines(
		"add",
		`What does defer do?\`,
		"Runs at function exit.",
		"3",
		"short answer",
		"defer",
		"Go",
		"easy",
		"LIFO after return",
		"0",
		"exit",
	))

	assert.Contains(t, out, "Question added (id=1).")

	questions, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What does defer do?\nRuns at function exit.", questions[0].Content)
	assert.Equal(t, 3, questions[0].Score)
	assert.False(t, questions[0].SelectedLastThreeYears)
}

func TestShellEditAndDeleteRequireSelection(t *testing.T) {
	service, _ := newShellService(t)

	out := runShell(t, service, lines("edit", "delete", "exit"))

	assert.Contains(t, out, "warning: select a question to update")
	assert.Contains(t, out, "warning: select a question to delete")
	assert.NotContains(t, out, "error:")
}

func TestShellEditBlankKeepsValues(t *testing.T) {
	service, store := newShellService(t)
	ctx := context.Background()

	id, err := store.InsertQuestion(ctx, quiz.QuestionFields{
		Content:    "Original",
		Score:      2,
		Type:       "choice",
		Point:      "maps",
		Course:     "Go",
		Difficulty: "easy",
		Answer:     "make",
	})
	require.NoError(t, err)
	otherID, err := store.InsertQuestion(ctx, quiz.QuestionFields{Content: "Other", Score: 1})
	require.NoError(t, err)

	out := runShell(t, service, lines(
		"select 1",
		"edit",
		"",
		"7",
		"",
		"",
		"",
		"hard",
		"",
		"1",
		"exit",
	))
	assert.Contains(t, out, "Question 1 updated.")

	got, err := store.GetQuestion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Content)
	assert.Equal(t, 7, got.Score)
	assert.Equal(t, "maps", got.Point)
	assert.Equal(t, "hard", got.Difficulty)
	assert.Equal(t, "make", got.Answer)
	assert.True(t, got.SelectedLastThreeYears)

	other, err := store.GetQuestion(ctx, otherID)
	require.NoError(t, err)
	assert.Equal(t, "Other", other.Content)
	assert.Equal(t, 1, other.Score)
}

func TestShellDeleteSelected(t *testing.T) {
	service, store := newShellService(t)
	ctx := context.Background()

	_, err := store.InsertQuestion(ctx, quiz.QuestionFields{Content: "first"})
	require.NoError(t, err)
	_, err = store.InsertQuestion(ctx, quiz.QuestionFields{Content: "second"})
	require.NoError(t, err)

	out := runShell(t, service, lines("select 2", "delete", "yes", "delete", "exit"))

	assert.Contains(t, out, "Question 2 deleted.")
	assert.Contains(t, out, "warning: select a question to delete")

	questions, err := store.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "first", questions[0].Content)
}

func TestShellErrorsAreReportedAndLoopContinues(t *testing.T) {
	service, store := newShellService(t)

	out := runShell(t, service, lines(
		"select 42",
		"add",
		"content",
		"lots",
		"", "", "", "", "",
		"1",
		"list",
		"frobnicate",
	))

	assert.Contains(t, out, "error: question not found")
	assert.Contains(t, out, `error: invalid score: "lots" is not an integer`)
	assert.Contains(t, out, "No questions.")
	assert.Contains(t, out, "unknown command")

	questions, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestShellEndOfInputMidFormExits(t *testing.T) {
	service, store := newShellService(t)

	runShell(t, service, "add\npartial content\n")

	questions, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, questions)
}
