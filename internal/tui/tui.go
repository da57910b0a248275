package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spotdemo4/tamil-insight/internal/render"
	"github.com/spotdemo4/tamil-insight/internal/tamil"
)

var (
	BodyStyle   = lipgloss.NewStyle().Padding(1)
	FooterStyle = lipgloss.NewStyle().Align(lipgloss.Center)

	TextStyle       = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"})
	SubtextStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#a6adc8"})
	AltTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5c5f77", Dark: "#bac2de"})
	AccentTextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04a5e5", Dark: "#89dceb"})

	ButtonStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1).
			Background(lipgloss.AdaptiveColor{Light: "#ccd0da", Dark: "#313244"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"})
	AccentButtonStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1).
				Background(lipgloss.AdaptiveColor{Light: "#04a5e5", Dark: "#89dceb"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#dce0e8", Dark: "#11111b"})
)

const (
	inputHeight = 5

	// title, status line, gaps and footer around the input and result regions
	chromeHeight = 8
)

type Tui struct {
	input     textarea.Model
	spinner   spinner.Model
	stopwatch stopwatch.Model
	result    viewport.Model
	picker    picker
	help      help.Model
	keys      keyMap
	width     *int
	height    *int

	requests     chan<- string
	output       <-chan Msg
	state        ViewState
	chars        int
	letters      int
	picking      bool
	version      string
	exampleDelay time.Duration
}

// New builds the controller. Validated texts are sent on requests; outcomes
// are read from output in arrival order.
func New(version string, examples []Example, exampleDelay time.Duration, requests chan<- string, output <-chan Msg) Tui {
	ta := textarea.New()
	ta.Placeholder = "தமிழ் உரையை இங்கே உள்ளிடவும்... (Enter Tamil text here)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.Focus()

	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = AccentTextStyle
	sw := stopwatch.New()

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	return Tui{
		input:     ta,
		spinner:   s,
		stopwatch: sw,
		result:    vp,
		picker:    NewPicker(examples),
		help:      help.New(),
		keys:      defaultKeyMap(),

		requests:     requests,
		output:       output,
		state:        Idle(),
		version:      version,
		exampleDelay: exampleDelay,
	}
}

func (m Tui) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.stopwatch.Init(),
		textarea.Blink,
		m.listen(),
	)
}

func (m Tui) State() ViewState {
	return m.state
}

func (m Tui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	cmds := []tea.Cmd{}

	switch msg := msg.(type) {

	case Msg:
		cmds = append(cmds, m.apply(msg), m.listen())

	case analyzeMsg:
		cmds = append(cmds, m.analyze())

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		// If the example picker is open
		if m.picking {
			cmds = append(cmds, m.updatePicker(msg))
			break
		}

		switch {
		case key.Matches(msg, m.keys.Analyze):
			cmds = append(cmds, m.analyze())

		case key.Matches(msg, m.keys.Clear):
			m.clear()

		case key.Matches(msg, m.keys.Examples):
			m.picking = true

		case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
			m.result, cmd = m.result.Update(msg)
			cmds = append(cmds, cmd)

		default:
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
			m.updateCharCount()
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.stopwatch, cmd = m.stopwatch.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Tui) listen() tea.Cmd {
	output := m.output
	return func() tea.Msg {
		msg, ok := <-output
		if !ok {
			return nil
		}
		return msg
	}
}

// apply shows the outcome of a request. Outcomes are applied in arrival
// order whatever the current state, so the last reply wins.
func (m *Tui) apply(msg Msg) tea.Cmd {
	switch msg.Type {
	case MsgResult:
		m.state = Result(render.Render(msg.Data))
		m.refreshResult()
	case MsgError:
		m.state = Failed(msg.Text)
	}

	return m.stopwatch.Stop()
}

func (m *Tui) analyze() tea.Cmd {
	text, err := tamil.Validate(m.input.Value())
	if err != nil {
		m.state = Failed(err.Error())
		return nil
	}

	m.state = Loading()
	m.requests <- text

	return tea.Batch(m.stopwatch.Reset(), m.stopwatch.Start())
}

func (m *Tui) clear() {
	m.input.Reset()
	m.updateCharCount()
	m.state = Idle()
}

func (m *Tui) updateCharCount() {
	value := m.input.Value()
	m.chars = tamil.CharCount(value)
	m.letters = tamil.Letters(value)
}

func (m *Tui) loadExample(example Example) tea.Cmd {
	m.picking = false
	m.input.SetValue(example.Text)
	m.updateCharCount()

	return tea.Batch(
		m.input.Focus(),
		tea.Tick(m.exampleDelay, func(time.Time) tea.Msg {
			return analyzeMsg{}
		}),
	)
}

func (m *Tui) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.picking = false
		return nil

	case "enter":
		example, ok := m.picker.Selected()
		if !ok {
			return nil
		}
		return m.loadExample(example)
	}

	var cmd tea.Cmd
	m.picker.List, cmd = m.picker.List.Update(msg)
	return cmd
}

func (m *Tui) resize(width, height int) {
	m.width = &width
	m.height = &height

	inner := max(width-2, 1)
	m.input.SetWidth(inner)
	m.result.Width = inner
	m.result.Height = max(height-inputHeight-chromeHeight, 3)
	m.picker.Update(width, height)

	m.refreshResult()
}

// refreshResult redraws the result region and brings its top into view.
func (m *Tui) refreshResult() {
	if m.state.Kind != StateResult {
		return
	}

	m.result.SetContent(RenderResult(m.state.View, m.result.Width))
	m.result.GotoTop()
}

func (m Tui) View() string {
	footer := AltTextStyle.Render(fmt.Sprintf("tamil insight v%s", m.version))

	// If the example picker is open
	if m.picking {
		return m.render(renderParams{
			body:   m.picker.List.View(),
			footer: footer,
			center: true,
		})
	}

	title := AccentTextStyle.Bold(true).Render("தமிழ் உரை பகுப்பாய்வு (Tamil Text Analysis)")
	status := SubtextStyle.Render(fmt.Sprintf("%d எழுத்துகள் (characters) · %d letters", m.chars, m.letters))

	var region string
	switch m.state.Kind {

	case StateIdle:
		region = SubtextStyle.Render(m.help.ShortHelpView(m.keys.help()))

	case StateLoading:
		region = m.spinner.View() + " " + TextStyle.Render("பகுப்பாய்வு செய்யப்படுகிறது... (Analyzing...)")
		footer = AltTextStyle.Render(fmt.Sprintf("%s elapsed", m.stopwatch.View()))

	case StateResult:
		region = m.result.View()
		footer = AltTextStyle.Render(fmt.Sprintf("took %s", m.stopwatch.View()))

	case StateError:
		region = ErrTextStyle.Render("⚠ " + m.state.Message)
	}

	body := strings.Join([]string{title, m.input.View(), status, region}, "\n\n")

	return m.render(renderParams{
		body:   body,
		footer: footer,
	})
}

type renderParams struct {
	body   string
	footer string
	center bool
}

func (m Tui) render(p renderParams) string {
	if m.width == nil || m.height == nil {
		return ""
	}

	bodyStyle := BodyStyle.Width(*m.width).Height(*m.height - 1)
	if p.center {
		bodyStyle = bodyStyle.Align(lipgloss.Center, lipgloss.Center)
	}

	footerStyle := FooterStyle.Width(*m.width)

	return lipgloss.JoinVertical(lipgloss.Top, bodyStyle.Render(p.body), footerStyle.Render(p.footer))
}
