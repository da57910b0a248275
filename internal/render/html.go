package render

import (
	"html/template"
	"io"
)

var page = template.Must(template.New("result").Funcs(template.FuncMap{
	"safe": SafeHTML,
}).Parse(`<section class="result" id="result">
  <header class="result-header">
    <h2>{{.Header}}</h2>
    <span class="source-badge">{{.SourceLabel}}</span>
  </header>
{{- if .ShowVerse}}
  <div class="verse-block">
    <p class="verse">{{.Verse}}</p>
{{- if .VerseCaption}}
    <p class="verse-caption">{{.VerseCaption}}</p>
{{- end}}
  </div>
{{- end}}
  <div class="meaning-block">{{safe .Meaning}}</div>
  <div class="summary">
{{- range .Summary}}
    <div class="fragment fragment-{{.Kind}}">
{{- if .Label}}
      <strong>{{.Label}}</strong>
{{- end}}
{{- if .Text}}
      <p>{{safe .Text}}</p>
{{- end}}
{{- range .Lines}}
      <p>{{.}}</p>
{{- end}}
    </div>
{{- end}}
  </div>
  <div class="sentiment-badge">{{.Sentiment.Emoji}} {{.Sentiment.Label}}</div>
  <div class="confidence">
    <div class="confidence-fill" style="width: {{.Confidence}}%"></div>
    <span class="confidence-label">{{.ConfidenceLabel}}</span>
  </div>
</section>
`))

// HTML writes the result region as an HTML fragment. Backend fragments that
// may contain markup are sanitized; every other value is escaped.
func HTML(w io.Writer, v View) error {
	return page.Execute(w, v)
}
