// Package render maps an analysis response onto the regions shown to the
// user. The mapping is pure; terminal and HTML output are both built from the
// View it produces.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/spotdemo4/tamil-insight/internal/api"
)

const (
	DefaultSentimentLabel = "NEUTRAL"
	DefaultSentimentEmoji = "😐"
)

type FragmentKind int

const (
	FragmentSummary FragmentKind = iota
	FragmentEnglishMeaning
	FragmentTheme
	FragmentMoral
	FragmentAuthor
	FragmentCharacters
	FragmentBookMetadata
	FragmentSentiment
)

var fragmentName = map[FragmentKind]string{
	FragmentSummary:        "summary",
	FragmentEnglishMeaning: "english_meaning",
	FragmentTheme:          "theme",
	FragmentMoral:          "moral",
	FragmentAuthor:         "author",
	FragmentCharacters:     "characters",
	FragmentBookMetadata:   "book_metadata",
	FragmentSentiment:      "sentiment",
}

func (k FragmentKind) String() string {
	return fragmentName[k]
}

// Fragment is one labeled piece of the summary region. Text may carry
// backend markup; Lines never do.
type Fragment struct {
	Kind  FragmentKind
	Label string
	Text  string
	Lines []string
}

type Badge struct {
	Label string
	Emoji string
}

type View struct {
	Header string

	ShowVerse    bool
	Verse        string
	VerseCaption string
	Meaning      string

	Summary []Fragment

	Sentiment Badge

	// Confidence is a whole percentage and is not clamped.
	Confidence int

	Source      string
	SourceLabel string
}

func (v View) ConfidenceLabel() string {
	return fmt.Sprintf("%d%%", v.Confidence)
}

// Render builds the view for one response.
func Render(data *api.AnalysisResponse) View {
	if data == nil {
		data = &api.AnalysisResponse{}
	}

	thirukkural := data.Source == SourceThirukkural

	v := View{
		Header:      data.Header,
		ShowVerse:   thirukkural,
		Meaning:     data.Meaning,
		Summary:     summary(data),
		Sentiment:   badge(data.Sentiment),
		Confidence:  Percent(data.SentimentConfidence),
		Source:      data.Source,
		SourceLabel: SourceLabel(data.Source),
	}

	if thirukkural {
		v.Verse = data.Verse
		v.VerseCaption = caption(data)
	}

	return v
}

// Percent rounds a probability to a whole percentage, halves toward
// positive infinity.
func Percent(p float64) int {
	return int(math.Floor(p*100 + 0.5))
}

func summary(data *api.AnalysisResponse) []Fragment {
	fragments := []Fragment{}
	thirukkural := data.Source == SourceThirukkural

	add := func(kind FragmentKind, label, text string) {
		if text == "" {
			return
		}
		fragments = append(fragments, Fragment{Kind: kind, Label: label, Text: text})
	}

	add(FragmentSummary, "", data.Summary)

	if thirukkural {
		add(FragmentEnglishMeaning, "🌐 ஆங்கில பொருள் (English Meaning)", data.EnglishMeaning)
		add(FragmentTheme, "💡 கருத்து (Theme)", data.Theme)
		add(FragmentMoral, "⭐ நீதி (Moral)", data.Moral)
		add(FragmentAuthor, "✍️ ஆசிரியர் (Author)", data.Author)
	}

	if len(data.Characters) > 0 {
		add(FragmentCharacters, "👥 கதாபாத்திரங்கள் (Characters)", strings.Join(data.Characters, ", "))
	}

	if lines := bookLines(data.BookMetadata); len(lines) > 0 {
		fragments = append(fragments, Fragment{
			Kind:  FragmentBookMetadata,
			Label: "📚 நூல் விவரம் (Book Details)",
			Lines: lines,
		})
	}

	if data.Source == SourceRandomText && data.Sentiment != nil {
		fragments = append(fragments, Fragment{
			Kind:  FragmentSentiment,
			Label: "🎭 உணர்வு பகுப்பாய்வு (Sentiment Analysis)",
			Lines: sentimentLines(data.Sentiment),
		})
	}

	return fragments
}

func bookLines(meta *api.BookMetadata) []string {
	if meta == nil {
		return nil
	}

	lines := []string{}
	field := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	field("தமிழ் தலைப்பு (Tamil Title)", meta.TamilTitle)
	field("ஆங்கில தலைப்பு (English Title)", meta.EnglishTitle)
	field("ஆசிரியர் (Author)", meta.Author)
	field("காலம் (Period)", meta.Period)
	field("வகை (Category)", meta.Category)

	return lines
}

func sentimentLines(s *api.Sentiment) []string {
	b := badge(s)
	lines := []string{fmt.Sprintf("உணர்வு (Sentiment): %s %s", b.Label, b.Emoji)}

	if s.PositiveWords > 0 {
		lines = append(lines, fmt.Sprintf("நேர்மறை சொற்கள் (Positive words): %d", s.PositiveWords))
	}
	if s.NegativeWords > 0 {
		lines = append(lines, fmt.Sprintf("எதிர்மறை சொற்கள் (Negative words): %d", s.NegativeWords))
	}

	return lines
}

func badge(s *api.Sentiment) Badge {
	b := Badge{Label: DefaultSentimentLabel, Emoji: DefaultSentimentEmoji}
	if s == nil {
		return b
	}

	if s.Label != "" {
		b.Label = s.Label
	}
	if s.Emoji != "" {
		b.Emoji = s.Emoji
	}

	return b
}

func caption(data *api.AnalysisResponse) string {
	number := ""
	switch n := data.Number.(type) {
	case nil:
	case string:
		number = n
	case float64:
		number = fmt.Sprintf("%.0f", n)
	default:
		number = fmt.Sprint(n)
	}

	switch {
	case data.Book != "" && number != "":
		return fmt.Sprintf("%s · %s", data.Book, number)
	case data.Book != "":
		return data.Book
	case number != "":
		return number
	}

	return ""
}
