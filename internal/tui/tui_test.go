package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotdemo4/tamil-insight/internal/api"
	"github.com/spotdemo4/tamil-insight/internal/render"
	"github.com/spotdemo4/tamil-insight/internal/tamil"
)

func newTestTui(t *testing.T) (Tui, chan string, chan Msg) {
	t.Helper()

	requests := make(chan string, 4)
	output := make(chan Msg, 4)
	m := New("test", DefaultExamples, 10*time.Millisecond, requests, output)

	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}), requests, output
}

func update(t *testing.T, m Tui, msg tea.Msg) Tui {
	t.Helper()

	next, _ := m.Update(msg)
	out, ok := next.(Tui)
	require.True(t, ok)

	return out
}

func typeText(t *testing.T, m Tui, text string) Tui {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

var (
	analyzeKey = tea.KeyMsg{Type: tea.KeyCtrlS}
	clearKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func thirukkuralResult() Msg {
	return Msg{
		Type: MsgResult,
		Data: &api.AnalysisResponse{
			Header:              "திருக்குறள் கண்டறியப்பட்டது",
			Verse:               "அகர முதல எழுத்தெல்லாம்",
			Meaning:             "எழுத்துக்கள் அகரத்தில் தொடங்குகின்றன",
			SentimentConfidence: 0.87,
			Source:              render.SourceThirukkural,
		},
	}
}

func TestInitialState(t *testing.T) {
	m, _, _ := newTestTui(t)

	assert.Equal(t, StateIdle, m.State().Kind)
	assert.Equal(t, 0, m.chars)
}

func TestUpdateCharCount(t *testing.T) {
	m, _, _ := newTestTui(t)

	m = typeText(t, m, "வணக்கம்")
	assert.Equal(t, "வணக்கம்", m.input.Value())
	assert.Equal(t, 7, m.chars)
	assert.Equal(t, 5, m.letters)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 6, m.chars)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\uFEFF"} {
		m, requests, _ := newTestTui(t)
		if input != "" {
			m = typeText(t, m, input)
		}

		m = update(t, m, analyzeKey)

		assert.Equal(t, StateError, m.State().Kind)
		assert.Equal(t, tamil.ErrEmptyInput.Error(), m.State().Message)
		assert.Empty(t, requests, "no request may be sent for %q", input)
	}
}

func TestAnalyze_NoTamilScript(t *testing.T) {
	m, requests, _ := newTestTui(t)

	m = typeText(t, m, "hello world")
	m = update(t, m, analyzeKey)

	assert.Equal(t, StateError, m.State().Kind)
	assert.Equal(t, tamil.ErrNoTamilScript.Error(), m.State().Message)
	assert.Empty(t, requests)
}

func TestAnalyze_SendsTrimmedText(t *testing.T) {
	m, requests, _ := newTestTui(t)

	m = typeText(t, m, "  வணக்கம்  ")
	m = update(t, m, analyzeKey)

	assert.Equal(t, StateLoading, m.State().Kind)
	require.Len(t, requests, 1)
	assert.Equal(t, "வணக்கம்", <-requests)
}

func TestAnalyze_AltEnter(t *testing.T) {
	m, requests, _ := newTestTui(t)

	m = typeText(t, m, "வணக்கம்")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter, Alt: true})

	assert.Equal(t, StateLoading, m.State().Kind)
	assert.Len(t, requests, 1)
	assert.Equal(t, "வணக்கம்", m.input.Value())
}

func TestApply_Result(t *testing.T) {
	m, _, _ := newTestTui(t)

	m = typeText(t, m, "அகர முதல")
	m = update(t, m, analyzeKey)
	m = update(t, m, thirukkuralResult())

	require.Equal(t, StateResult, m.State().Kind)
	assert.Equal(t, "87%", m.State().View.ConfidenceLabel())
	assert.Equal(t, "அகர முதல எழுத்தெல்லாம்", m.State().View.Verse)
	assert.Equal(t, 0, m.result.YOffset)
	assert.Contains(t, m.View(), "87%")
}

func TestApply_Error(t *testing.T) {
	m, _, _ := newTestTui(t)

	m = typeText(t, m, "வணக்கம்")
	m = update(t, m, analyzeKey)
	m = update(t, m, Msg{Type: MsgError, Text: "சேவையகம் தயாராக இல்லை"})

	assert.Equal(t, StateError, m.State().Kind)
	assert.Equal(t, "சேவையகம் தயாராக இல்லை", m.State().Message)
	assert.Contains(t, m.View(), "சேவையகம் தயாராக இல்லை")
}

func TestClear_FromEveryState(t *testing.T) {
	loading := func(t *testing.T) Tui {
		m, _, _ := newTestTui(t)
		m = typeText(t, m, "வணக்கம்")
		return update(t, m, analyzeKey)
	}

	states := map[string]func(t *testing.T) Tui{
		"loading": loading,
		"result": func(t *testing.T) Tui {
			return update(t, loading(t), thirukkuralResult())
		},
		"error": func(t *testing.T) Tui {
			m, _, _ := newTestTui(t)
			m = typeText(t, m, "hello")
			return update(t, m, analyzeKey)
		},
		"idle": func(t *testing.T) Tui {
			m, _, _ := newTestTui(t)
			return typeText(t, m, "வணக்கம்")
		},
	}

	for name, setup := range states {
		t.Run(name, func(t *testing.T) {
			m := update(t, setup(t), clearKey)

			assert.Equal(t, StateIdle, m.State().Kind)
			assert.Empty(t, m.input.Value())
			assert.Equal(t, 0, m.chars)
		})
	}
}

func TestLastResponseWins(t *testing.T) {
	m, requests, _ := newTestTui(t)

	m = typeText(t, m, "வணக்கம்")
	m = update(t, m, analyzeKey)
	m = update(t, m, analyzeKey)
	assert.Len(t, requests, 2)

	m = update(t, m, thirukkuralResult())
	m = update(t, m, Msg{Type: MsgError, Text: "late failure"})

	assert.Equal(t, StateError, m.State().Kind)
	assert.Equal(t, "late failure", m.State().Message)
}

func TestResponseAfterClearStillShown(t *testing.T) {
	m, _, _ := newTestTui(t)

	m = typeText(t, m, "வணக்கம்")
	m = update(t, m, analyzeKey)
	m = update(t, m, clearKey)
	require.Equal(t, StateIdle, m.State().Kind)

	m = update(t, m, thirukkuralResult())
	assert.Equal(t, StateResult, m.State().Kind)
}

func TestLoadExample(t *testing.T) {
	m, requests, _ := newTestTui(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.True(t, m.picking)
	assert.Contains(t, m.View(), DefaultExamples[0].Title)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Tui)

	assert.False(t, m.picking)
	assert.Equal(t, DefaultExamples[0].Text, m.input.Value())
	assert.Equal(t, tamil.CharCount(DefaultExamples[0].Text), m.chars)
	assert.NotNil(t, cmd)
	assert.Empty(t, requests, "analysis waits for the delay")

	m = update(t, m, analyzeMsg{})
	assert.Equal(t, StateLoading, m.State().Kind)
	require.Len(t, requests, 1)
	assert.Equal(t, DefaultExamples[0].Text, <-requests)
}

func TestPickerEscapeKeepsInput(t *testing.T) {
	m, _, _ := newTestTui(t)

	m = typeText(t, m, "வணக்கம்")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m = update(t, m, clearKey)

	assert.False(t, m.picking)
	assert.Equal(t, "வணக்கம்", m.input.Value())
}

func TestViewBeforeResize(t *testing.T) {
	m := New("test", DefaultExamples, time.Millisecond, make(chan string, 1), make(chan Msg))
	assert.Empty(t, m.View())
}

func TestListen(t *testing.T) {
	m, _, output := newTestTui(t)

	output <- Msg{Type: MsgError, Text: "x"}
	assert.Equal(t, Msg{Type: MsgError, Text: "x"}, m.listen()())

	close(output)
	assert.Nil(t, m.listen()())
}
