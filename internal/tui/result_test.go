package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spotdemo4/tamil-insight/internal/api"
	"github.com/spotdemo4/tamil-insight/internal/render"
)

func TestRenderResult_Thirukkural(t *testing.T) {
	out := RenderResult(render.Render(&api.AnalysisResponse{
		Header:         "திருக்குறள்",
		Verse:          "அகர முதல எழுத்தெல்லாம்",
		Meaning:        "முதல் பொருள்<br>இரண்டாம் வரி",
		Summary:        "சுருக்கம்",
		EnglishMeaning: "English meaning",
		Theme:          "கடவுள் வாழ்த்து",
		Moral:          "நீதி",
		Author:         "திருவள்ளுவர்",
		Sentiment:      &api.Sentiment{Label: "POSITIVE", Emoji: "😊"},

		SentimentConfidence: 0.87,
		Source:              render.SourceThirukkural,
	}), 0)

	assert.Contains(t, out, "அகர முதல எழுத்தெல்லாம்")
	assert.Contains(t, out, "முதல் பொருள்")
	assert.Contains(t, out, "இரண்டாம் வரி")
	assert.NotContains(t, out, "<br>")
	assert.Contains(t, out, "😊 POSITIVE")
	assert.Contains(t, out, "87%")
	assert.Contains(t, out, "📖 திருக்குறள் (Thirukkural)")

	order := []string{"சுருக்கம்", "English meaning", "கடவுள் வாழ்த்து", "நீதி (Moral)", "திருவள்ளுவர்"}
	last := -1
	for _, s := range order {
		i := strings.Index(out, s)
		assert.Greater(t, i, last, "%q out of order", s)
		last = i
	}
}

func TestRenderResult_NeutralDefaults(t *testing.T) {
	out := RenderResult(render.Render(&api.AnalysisResponse{Source: "unknown"}), 60)

	assert.Contains(t, out, render.DefaultSentimentEmoji+" "+render.DefaultSentimentLabel)
	assert.Contains(t, out, render.DefaultSourceLabel)
	assert.Contains(t, out, "0%")
}

func TestConfidenceBar(t *testing.T) {
	assert.Equal(t, confidenceBarWidth, strings.Count(confidenceBar(100), "█"))
	assert.Equal(t, confidenceBarWidth, strings.Count(confidenceBar(150), "█"))
	assert.Equal(t, confidenceBarWidth, strings.Count(confidenceBar(-20), "░"))
	assert.Equal(t, 17, strings.Count(confidenceBar(87), "█"))
}
