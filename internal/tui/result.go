package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spotdemo4/tamil-insight/internal/render"
)

const confidenceBarWidth = 20

// RenderResult lays out a rendered analysis for the terminal. A width of zero
// leaves lines unwrapped.
func RenderResult(v render.View, width int) string {
	block := lipgloss.NewStyle()
	if width > 0 {
		block = block.Width(width)
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Center,
			AccentTextStyle.Bold(true).Render(v.Header)+" ",
			ButtonStyle.Render(v.SourceLabel),
		),
	}

	if v.ShowVerse {
		verse := AccentTextStyle.Italic(true).Render(v.Verse)
		if v.VerseCaption != "" {
			verse += "\n" + SubtextStyle.Render(v.VerseCaption)
		}
		sections = append(sections, verse)
	}

	if meaning := render.Plain(v.Meaning); meaning != "" {
		sections = append(sections, TextStyle.Render(meaning))
	}

	for _, f := range v.Summary {
		lines := []string{}
		if f.Label != "" {
			lines = append(lines, TextStyle.Bold(true).Render(f.Label))
		}
		if text := render.Plain(f.Text); text != "" {
			lines = append(lines, TextStyle.Render(text))
		}
		for _, line := range f.Lines {
			lines = append(lines, AltTextStyle.Render("• "+line))
		}

		sections = append(sections, strings.Join(lines, "\n"))
	}

	sections = append(sections, sentimentRow(v))

	return block.Render(strings.Join(sections, "\n\n"))
}

func sentimentRow(v render.View) string {
	badge := ButtonStyle.Render(v.Sentiment.Emoji + " " + v.Sentiment.Label)
	return badge + "  " + confidenceBar(v.Confidence) + " " + TextStyle.Render(v.ConfidenceLabel())
}

// The bar is clamped to its drawable width; the label next to it is not.
func confidenceBar(percent int) string {
	filled := percent * confidenceBarWidth / 100
	filled = max(0, min(filled, confidenceBarWidth))

	return AccentTextStyle.Render(strings.Repeat("█", filled)) +
		SubtextStyle.Render(strings.Repeat("░", confidenceBarWidth-filled))
}
