package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const (
	minDetailWidth = 40
	// modalChrome is the border and title space around modal content.
	modalChrome = 6
)

// modal is a boxed foreground drawn over the tree.
type modal struct {
	title string
	body  string
}

func (m modal) Init() tea.Cmd                       { return nil }
func (m modal) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m modal) View() string {
	return modalStyle.Render(modalTitleStyle.Render(m.title) + "\n\n" + m.body)
}

// background wraps the tree view for use as overlay background. Updates
// are handled by the parent Model.
type background struct {
	model *Model
}

func (b background) Init() tea.Cmd                       { return nil }
func (b background) Update(tea.Msg) (tea.Model, tea.Cmd) { return b, nil }
func (b background) View() string                        { return b.model.baseView() }

// renderOverlay draws fg centered over the tree. The overlay is rebuilt on
// every render since Update returns new models.
func (m Model) renderOverlay(fg tea.Model) string {
	return overlay.New(fg, background{model: &m}, overlay.Center, overlay.Center, 0, 0).View()
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.showHelp && key.Matches(msg, m.keys.Help, m.keys.Close):
		m.showHelp = false
		return m, nil
	case m.showDetail && key.Matches(msg, m.keys.Detail, m.keys.Close):
		m.showDetail = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	if !m.showDetail {
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// openDetail shows the value of a leaf in a scrollable modal.
func (m *Model) openDetail(row Row) {
	lines := strings.Count(row.Value, "\n") + 1
	width := minDetailWidth
	height := lines
	if m.width > 0 {
		width = max(m.width/2, minDetailWidth)
	}
	if m.height > 0 {
		height = max(min(lines, m.height-modalChrome), 1)
	}

	vp := viewport.New(width, height)
	vp.SetContent(row.Value)
	m.detail = vp
	m.detailPath = row.Key()
	m.showDetail = true
}

// helpText renders one line per binding.
func (k Keys) helpText() string {
	const keyWidth = 10
	var b strings.Builder
	for i, binding := range k.fullHelp() {
		if i > 0 {
			b.WriteString("\n")
		}
		h := binding.Help()
		b.WriteString(helpKeyStyle.Width(keyWidth).Render(h.Key))
		b.WriteString(h.Desc)
	}
	return b.String()
}
