package api

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeEnvelope wraps every /analyze reply. When Error is set, Message
// carries the backend's explanation and Data is absent.
type AnalyzeEnvelope struct {
	Error   bool              `json:"error"`
	Message string            `json:"message,omitempty"`
	Data    *AnalysisResponse `json:"data,omitempty"`
}

type AnalysisResponse struct {
	Header         string        `json:"header"`
	Verse          string        `json:"verse,omitempty"`
	Meaning        string        `json:"meaning,omitempty"`
	Summary        string        `json:"summary,omitempty"`
	EnglishMeaning string        `json:"english_meaning,omitempty"`
	Theme          string        `json:"theme,omitempty"`
	Moral          string        `json:"moral,omitempty"`
	Author         string        `json:"author,omitempty"`
	Characters     []string      `json:"characters,omitempty"`
	BookMetadata   *BookMetadata `json:"book_metadata,omitempty"`
	Sentiment      *Sentiment    `json:"sentiment,omitempty"`

	SentimentConfidence float64 `json:"sentiment_confidence"`
	Source              string  `json:"source"`

	// Carried through from the backend's match record when present.
	Found      bool    `json:"found,omitempty"`
	Book       string  `json:"book,omitempty"`
	Section    string  `json:"section,omitempty"`
	Chapter    string  `json:"chapter,omitempty"`
	Number     any     `json:"number,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type BookMetadata struct {
	TamilTitle   string `json:"tamil_title"`
	EnglishTitle string `json:"english_title"`
	Author       string `json:"author"`
	Period       string `json:"period"`
	Category     string `json:"category"`
}

type Sentiment struct {
	Label         string  `json:"label"`
	Emoji         string  `json:"emoji"`
	Score         float64 `json:"score,omitempty"`
	PositiveWords int     `json:"positive_words"`
	NegativeWords int     `json:"negative_words"`
	NeutralWords  int     `json:"neutral_words,omitempty"`
}

// Health is the body of GET /health.
type Health struct {
	ModelsLoaded   bool `json:"models_loaded"`
	DatabaseLoaded bool `json:"database_loaded"`
	VerseCount     int  `json:"verse_count"`
}

// Ready reports whether the backend has everything it needs to answer.
func (h Health) Ready() bool {
	return h.ModelsLoaded && h.DatabaseLoaded
}
