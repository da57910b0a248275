package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = TextStyle.MarginLeft(2)
	itemStyle         = AltTextStyle.PaddingLeft(4)
	selectedItemStyle = AccentTextStyle.PaddingLeft(2)
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
)

func NewPicker(examples []Example) picker {
	// Turn examples into items
	items := []list.Item{}
	minWidth := 9
	for _, example := range examples {
		w := lipgloss.Width(example.Title) + 4
		if w > minWidth {
			minWidth = w
		}

		items = append(items, item(example))
	}
	minHeight := len(items) + 4

	// Create list
	l := list.New(items, itemDelegate{}, minWidth, minHeight)
	l.Title = "உதாரணங்கள் (Examples)"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle

	return picker{
		List:      l,
		minWidth:  minWidth,
		minHeight: minHeight,
	}
}

type picker struct {
	List list.Model

	minWidth  int
	minHeight int
}

func (p *picker) Update(width int, height int) {
	if width < p.List.Width() {
		p.List.SetWidth(width)
	} else {
		p.List.SetWidth(p.minWidth)
	}

	if height < p.List.Height()-1 {
		p.List.SetHeight(height - 1)
	} else {
		p.List.SetHeight(p.minHeight)
	}
}

func (p *picker) Selected() (Example, bool) {
	i, ok := p.List.SelectedItem().(item)
	return Example(i), ok
}

type item Example

func (i item) FilterValue() string { return i.Title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(i.Title))
}
