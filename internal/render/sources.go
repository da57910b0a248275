package render

// Source identifiers sent by the backend.
const (
	SourceThirukkural = "thirukkural"
	SourceRandomText  = "random_text"
	SourceGeneric     = "generic"
	SourceUnknown     = "unknown"
)

// DefaultSourceLabel is shown when the backend could not attribute the text.
const DefaultSourceLabel = "🤖 தானியங்கி பகுப்பாய்வு (Automated Analysis)"

var sourceNames = map[string]string{
	SourceThirukkural: "📖 திருக்குறள் (Thirukkural)",
	"kamba_ramayanam": "📖 கம்ப ராமாயணம் (Kamba Ramayanam)",
	"aathichudi":      "📖 ஆத்திசூடி (Aathichudi)",
	"kondrai_vendhan": "📖 கொன்றை வேந்தன் (Kondrai Vendhan)",
	"naladiyar":       "📖 நாலடியார் (Naladiyar)",
	"silappathikaram": "📖 சிலப்பதிகாரம் (Silappathikaram)",
	"manimegalai":     "📖 மணிமேகலை (Manimegalai)",
	"purananuru":      "📖 புறநானூறு (Purananuru)",
	"bharathiyar":     "📖 பாரதியார் கவிதைகள் (Bharathiyar Poems)",
	SourceRandomText:  "📝 பொது தமிழ் உரை (General Tamil Text)",
}

// SourceLabel maps a backend source identifier to its display name. Unknown
// identifiers are shown as sent.
func SourceLabel(source string) string {
	switch source {
	case "", SourceGeneric, SourceUnknown:
		return DefaultSourceLabel
	}

	if name, ok := sourceNames[source]; ok {
		return name
	}

	return source
}
