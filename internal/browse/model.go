// Package browse implements an interactive terminal browser for a
// configuration tree.
package browse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/confkit/internal/logger"
	"github.com/joshuapare/confkit/pkg/conftree"
)

// chromeLines is the number of lines used by the header and status bar.
const chromeLines = 3

// Row is one visible line of the browser: a node or a leaf.
type Row struct {
	Path  []string       // names from the root (exclusive) down to this entry
	Depth int            // 0 for the root
	Node  *conftree.Node // nil for a leaf
	Leaf  *conftree.Leaf // nil for a node
	Value string         // leaf value
}

// IsLeaf reports whether the row shows a leaf.
func (r Row) IsLeaf() bool { return r.Node == nil }

// Key returns the dotted path of the row.
func (r Row) Key() string { return strings.Join(r.Path, conftree.PathSeparator) }

func (r Row) name(rootName string) string {
	if len(r.Path) == 0 {
		return rootName
	}
	return r.Path[len(r.Path)-1]
}

// Model is the bubbletea model of the browser.
type Model struct {
	root     *conftree.Node
	title    string
	keys     Keys
	rows     []Row
	expanded map[*conftree.Node]bool
	cursor   int
	offset   int
	height   int
	width    int
	status   string

	showHelp   bool
	showDetail bool
	detailPath string
	detail     viewport.Model

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error
}

// New creates a browser over root with the root expanded.
func New(title string, root *conftree.Node) Model {
	m := Model{
		root:     root,
		title:    title,
		keys:     DefaultKeys(),
		expanded: map[*conftree.Node]bool{root: true},
		copyText: clipboard.WriteAll,
	}
	m.rebuild()
	return m
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(title string, root *conftree.Node) error {
	p := tea.NewProgram(New(title, root), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scroll()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showDetail {
		return m.handleOverlayKey(msg)
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0

	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.rows) - 1

	case key.Matches(msg, m.keys.Expand):
		m.setExpanded(true)

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.Current(); ok && !row.IsLeaf() {
			m.setExpanded(!m.expanded[row.Node])
		}

	case key.Matches(msg, m.keys.Collapse):
		row, ok := m.Current()
		if !ok {
			break
		}
		if !row.IsLeaf() && m.expanded[row.Node] {
			m.setExpanded(false)
			break
		}
		m.goToParent(row)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Detail):
		if row, ok := m.Current(); ok && row.IsLeaf() {
			m.openDetail(row)
		}

	case key.Matches(msg, m.keys.Copy):
		if row, ok := m.Current(); ok {
			path := row.Key()
			if err := m.copyText(path); err != nil {
				logger.Warn("copy path failed", "path", path, "error", err)
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = "copied " + path
			}
		}
	}
	m.scroll()
	return m, nil
}

// Current returns the row under the cursor.
func (m Model) Current() (Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[m.cursor], true
}

// Rows returns the visible rows.
func (m Model) Rows() []Row { return m.rows }

// Cursor returns the cursor index.
func (m Model) Cursor() int { return m.cursor }

func (m *Model) setExpanded(open bool) {
	row, ok := m.Current()
	if !ok || row.IsLeaf() {
		return
	}
	if m.expanded[row.Node] == open {
		return
	}
	logger.Debug("browse: toggle", "path", row.Key(), "expanded", open)
	if open {
		m.expanded[row.Node] = true
	} else {
		delete(m.expanded, row.Node)
	}
	m.rebuild()
}

func (m *Model) goToParent(row Row) {
	if len(row.Path) == 0 {
		return
	}
	parent := row.Path[:len(row.Path)-1]
	for i := m.cursor - 1; i >= 0; i-- {
		if !m.rows[i].IsLeaf() && slices.Equal(m.rows[i].Path, parent) {
			m.cursor = i
			return
		}
	}
}

// rebuild flattens the expanded part of the tree into rows, keeping the
// cursor on the same node or leaf when it is still visible. Entries are
// matched by identity since CreateNode allows siblings with equal names.
func (m *Model) rebuild() {
	selected, hadSelection := m.Current()

	m.rows = nil
	m.appendNode(m.root, nil, 0)

	m.cursor = min(m.cursor, len(m.rows)-1)
	if !hadSelection {
		return
	}
	for i, row := range m.rows {
		if row.Node == selected.Node && row.Leaf == selected.Leaf {
			m.cursor = i
			break
		}
	}
}

func (m *Model) appendNode(n *conftree.Node, path []string, depth int) {
	m.rows = append(m.rows, Row{Path: path, Depth: depth, Node: n})
	if !m.expanded[n] {
		return
	}
	for l := range n.Leaves() {
		m.rows = append(m.rows, Row{
			Path:  append(slices.Clip(path), l.Name()),
			Depth: depth + 1,
			Leaf:  l,
			Value: l.Value(),
		})
	}
	for child := range n.Nodes() {
		m.appendNode(child, append(slices.Clip(path), child.Name()), depth+1)
	}
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	visible := m.visibleRows()
	if visible <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m Model) visibleRows() int {
	if m.height == 0 {
		return len(m.rows)
	}
	return m.height - chromeLines
}

// View implements tea.Model.
func (m Model) View() string {
	switch {
	case m.showHelp:
		return m.renderOverlay(modal{title: "Keyboard Shortcuts", body: m.keys.helpText()})
	case m.showDetail:
		return m.renderOverlay(modal{title: m.detailPath, body: m.detail.View()})
	}
	return m.baseView()
}

// baseView renders the tree without overlays.
func (m Model) baseView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n")

	end := min(m.offset+m.visibleRows(), len(m.rows))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.cursor))
		b.WriteString("\n")
	}

	status := m.keys.helpLine()
	if m.status != "" {
		status = m.status
	}
	b.WriteString(statusStyle.Render(status))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, b.String())
	}
	return b.String()
}

func (m Model) renderRow(row Row, selected bool) string {
	indent := strings.Repeat("  ", row.Depth)
	var line string
	if row.IsLeaf() {
		line = indent + "  " + leafNameStyle.Render(row.name(m.root.Name())) +
			" = " + leafValueStyle.Render(fmt.Sprintf("%q", row.Value))
	} else {
		marker := "▸"
		if m.expanded[row.Node] {
			marker = "▾"
		}
		if row.Node.IsEmpty() {
			marker = " "
		}
		line = indent + marker + " " + nodeStyle.Render(row.name(m.root.Name()))
	}
	if selected {
		return selectedStyle.Render(line)
	}
	return line
}
