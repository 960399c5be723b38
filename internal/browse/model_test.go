package browse

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/confkit/pkg/conftree"
)

func testTree() *conftree.Node {
	root := conftree.NewNode("root")
	root.SetLeaf("theme", "dark")
	window := root.AddNode("window")
	window.SetLeaf("width", "800")
	window.AddNode("position").SetLeaf("x", "10")
	root.AddNode("empty")
	return root
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	end   = tea.KeyMsg{Type: tea.KeyEnd}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keysOf(m Model) []string {
	out := make([]string, 0, len(m.Rows()))
	for _, r := range m.Rows() {
		k := r.Key()
		if r.IsLeaf() {
			k += "="
		}
		out = append(out, k)
	}
	return out
}

func TestNew_RootExpanded(t *testing.T) {
	m := New("app.conf", testTree())
	require.Equal(t, []string{"", "theme=", "window", "empty"}, keysOf(m))
	require.Equal(t, 0, m.Cursor())
}

func TestExpandCollapse(t *testing.T) {
	m := New("app.conf", testTree())

	m = press(t, m, down, down, right)
	require.Equal(t, []string{"", "theme=", "window", "window.width=", "window.position", "empty"}, keysOf(m))

	row, ok := m.Current()
	require.True(t, ok)
	require.Equal(t, "window", row.Key())

	// Expanding a leaf does nothing.
	m = press(t, m, down, right)
	require.Len(t, m.Rows(), 6)

	// Left on a leaf jumps to its node, left again collapses it.
	m = press(t, m, left)
	row, _ = m.Current()
	require.Equal(t, "window", row.Key())
	m = press(t, m, left)
	require.Equal(t, []string{"", "theme=", "window", "empty"}, keysOf(m))

	// Enter toggles.
	m = press(t, m, enter)
	require.Len(t, m.Rows(), 6)
	m = press(t, m, enter)
	require.Len(t, m.Rows(), 4)
}

func TestCursorBounds(t *testing.T) {
	m := New("app.conf", testTree())
	m = press(t, m, up)
	require.Equal(t, 0, m.Cursor())

	m = press(t, m, end)
	require.Equal(t, len(m.Rows())-1, m.Cursor())
	m = press(t, m, down)
	require.Equal(t, len(m.Rows())-1, m.Cursor())

	m = press(t, m, runes("g"))
	require.Equal(t, 0, m.Cursor())
}

func TestCursorKeptAcrossRebuild(t *testing.T) {
	m := New("app.conf", testTree())
	m = press(t, m, down, down, enter)
	row, _ := m.Current()
	require.Equal(t, "window", row.Key())
	require.Equal(t, 2, m.Cursor())

	m = press(t, m, end)
	row, _ = m.Current()
	require.Equal(t, "empty", row.Key())
}

func TestCopyPath(t *testing.T) {
	m := New("app.conf", testTree())
	var copied string
	m.copyText = func(s string) error { copied = s; return nil }

	m = press(t, m, down, down, right, down, runes("y"))
	require.Equal(t, "window.width", copied)
	require.Contains(t, m.View(), "copied window.width")

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, runes("y"))
	require.Contains(t, m.View(), "copy failed: no clipboard")
}

func TestQuit(t *testing.T) {
	m := New("app.conf", testTree())
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := New("app.conf", testTree())
	out := m.View()
	require.Contains(t, out, "app.conf")
	require.Contains(t, out, "root")
	require.Contains(t, out, "theme")
	require.Contains(t, out, `"dark"`)
	require.Contains(t, out, "window")
}

func TestScrolling(t *testing.T) {
	root := conftree.NewNode("root")
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		root.SetLeaf(name, "v")
	}
	m := New("big", root)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: chromeLines + 3})
	m = next.(Model)

	m = press(t, m, end)
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, chromeLines+3, "padded to the window height")
	require.Contains(t, lines[3], "h")
	require.NotContains(t, lines[1], "root")
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func TestHelpOverlay(t *testing.T) {
	m := sized(t, New("app.conf", testTree()))
	require.NotContains(t, m.View(), "Keyboard Shortcuts")

	m = press(t, m, runes("?"))
	require.True(t, m.showHelp)
	require.Contains(t, m.View(), "Keyboard Shortcuts")

	// Navigation is ignored while the overlay is open.
	m = press(t, m, down)
	require.Equal(t, 0, m.Cursor())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.showHelp)
	require.NotContains(t, m.View(), "Keyboard Shortcuts")
}

func TestDetailOverlay(t *testing.T) {
	m := sized(t, New("app.conf", testTree()))

	// Nodes have no detail view.
	m = press(t, m, runes("v"))
	require.False(t, m.showDetail)

	m = press(t, m, down, runes("v"))
	require.True(t, m.showDetail)
	require.Equal(t, "theme", m.detailPath)
	require.Contains(t, m.detail.View(), "dark")

	m = press(t, m, runes("v"))
	require.False(t, m.showDetail)

	m = press(t, m, runes("v"))
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
}

func TestDuplicateSiblingsExpandSeparately(t *testing.T) {
	root := conftree.NewNode("root")
	first := root.CreateNode("dup")
	first.SetLeaf("a", "1")
	second := root.CreateNode("dup")
	second.SetLeaf("b", "2")

	m := New("dups", root)
	require.Equal(t, []string{"", "dup", "dup"}, keysOf(m))

	// Expand the second "dup" only.
	m = press(t, m, down, down, right)
	require.Equal(t, []string{"", "dup", "dup", "dup.b="}, keysOf(m))
	row, _ := m.Current()
	require.Same(t, second, row.Node)

	// Expanding the first keeps the second open and the cursor on the first.
	m = press(t, m, up, right)
	require.Equal(t, []string{"", "dup", "dup.a=", "dup", "dup.b="}, keysOf(m))
	row, _ = m.Current()
	require.Same(t, first, row.Node)

	m = press(t, m, left)
	require.Equal(t, []string{"", "dup", "dup", "dup.b="}, keysOf(m))
}
