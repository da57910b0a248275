package tui

// Example is a predefined text the user can load and analyze.
type Example struct {
	Title string
	Text  string
}

var DefaultExamples = []Example{
	{
		Title: "திருக்குறள் (Thirukkural)",
		Text:  "அகர முதல எழுத்தெல்லாம் ஆதி பகவன் முதற்றே உலகு",
	},
	{
		Title: "ஆத்திசூடி (Aathichudi)",
		Text:  "அறம் செய விரும்பு",
	},
	{
		Title: "கொன்றை வேந்தன் (Kondrai Vendhan)",
		Text:  "அன்னையும் பிதாவும் முன்னறி தெய்வம்",
	},
	{
		Title: "பொது உரை (Everyday text)",
		Text:  "இன்று நான் மிகவும் மகிழ்ச்சியாக இருக்கிறேன், நண்பர்களுடன் நன்றாக நேரம் கழித்தேன்",
	},
}
