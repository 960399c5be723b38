package conftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordChanges(c *Config) *[]Change {
	var changes []Change
	c.Subscribe(func(ch Change) { changes = append(changes, ch) })
	return &changes
}

func TestSplitPath(t *testing.T) {
	segs, err := SplitPath("a.b.c")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, segs)

	segs, err = SplitPath("single")
	require.NoError(t, err)
	require.Equal(t, []string{"single"}, segs)

	for _, bad := range []string{"", ".", "a.", ".a", "a..b"} {
		_, err := SplitPath(bad)
		require.ErrorIs(t, err, ErrInvalidPath, "path %q", bad)
	}
}

func TestConfig_SetGet(t *testing.T) {
	cfg := NewConfig("root")
	changes := recordChanges(cfg)
	require.False(t, cfg.Dirty())

	changed, err := cfg.Set("window.position.x", "10")
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, cfg.Dirty())

	got, ok := cfg.Get("window.position.x")
	require.True(t, ok)
	require.Equal(t, "10", got)

	pos := cfg.Lookup("window.position")
	require.NotNil(t, pos)
	require.Equal(t, "position", pos.Name())
	require.Same(t, cfg.Root(), cfg.Lookup(""))

	require.Len(t, *changes, 1)
	ch := (*changes)[0]
	assert.Equal(t, ChangeSet, ch.Kind)
	assert.Equal(t, "window.position.x", ch.Path)
	assert.Equal(t, "10", ch.New)
	assert.False(t, ch.HadOld)

	cfg.ClearDirty()
	changed, err = cfg.Set("window.position.x", "10")
	require.NoError(t, err)
	require.False(t, changed)
	require.False(t, cfg.Dirty())
	require.Len(t, *changes, 1, "no notification without a change")

	changed, err = cfg.Set("window.position.x", "20")
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, *changes, 2)
	assert.Equal(t, "10", (*changes)[1].Old)
	assert.True(t, (*changes)[1].HadOld)
}

func TestConfig_SetBlankDoesNotCreateNodes(t *testing.T) {
	cfg := NewConfig("root")

	changed, err := cfg.Set("a.b.c", "  ")
	require.NoError(t, err)
	require.False(t, changed)
	require.False(t, cfg.Root().HasNodes())
	require.False(t, cfg.Dirty())
}

func TestConfig_SetInvalidPath(t *testing.T) {
	cfg := NewConfig("root")
	_, err := cfg.Set("a..b", "v")
	require.ErrorIs(t, err, ErrInvalidPath)
	_, ok := cfg.Get("")
	require.False(t, ok)
	require.Nil(t, cfg.Lookup("a..b"))
}

func TestConfig_UnsetPrunesEmptyNodes(t *testing.T) {
	cfg := NewConfig("root")
	_, _ = cfg.Set("a.b.c", "1")
	_, _ = cfg.Set("a.keep", "2")
	cfg.ClearDirty()
	changes := recordChanges(cfg)

	changed, err := cfg.Unset("a.b.c")
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, cfg.Dirty())

	require.Nil(t, cfg.Lookup("a.b"), "emptied node is pruned")
	require.NotNil(t, cfg.Lookup("a"), "node with leaves stays")

	require.Len(t, *changes, 1)
	assert.Equal(t, ChangeUnset, (*changes)[0].Kind)
	assert.Equal(t, "1", (*changes)[0].Old)

	changed, err = cfg.Unset("a.keep")
	require.NoError(t, err)
	require.True(t, changed)
	require.Nil(t, cfg.Lookup("a"))
	require.False(t, cfg.Root().HasNodes())
}

func TestConfig_UnsetMissing(t *testing.T) {
	cfg := NewConfig("root")
	_, _ = cfg.Set("a.x", "1")
	cfg.ClearDirty()

	for _, path := range []string{"a.y", "b.x", "a.x.y"} {
		changed, err := cfg.Unset(path)
		require.NoError(t, err)
		require.False(t, changed, path)
	}
	require.False(t, cfg.Dirty())
}

func TestConfig_RemoveSection(t *testing.T) {
	cfg := NewConfig("root")
	_, _ = cfg.Set("a.b.c", "1")
	changes := recordChanges(cfg)

	removed, err := cfg.RemoveSection("a.b")
	require.NoError(t, err)
	require.True(t, removed)
	require.Nil(t, cfg.Lookup("a.b"))
	require.NotNil(t, cfg.Lookup("a"))
	require.Equal(t, ChangeRemoveSection, (*changes)[0].Kind)

	removed, err = cfg.RemoveSection("a.b")
	require.NoError(t, err)
	require.False(t, removed)
	require.Len(t, *changes, 1)
}

func TestConfig_Graft(t *testing.T) {
	cfg := NewConfig("root")
	changes := recordChanges(cfg)

	sub := NewNode("plugins")
	sub.SetLeaf("enabled", "true")

	require.NoError(t, cfg.Graft("extra.more", sub))
	require.Same(t, sub, cfg.Lookup("extra.more.plugins"))
	got, ok := cfg.Get("extra.more.plugins.enabled")
	require.True(t, ok)
	require.Equal(t, "true", got)
	require.Equal(t, ChangeGraft, (*changes)[0].Kind)
	require.Equal(t, "extra.more.plugins", (*changes)[0].Path)

	err := cfg.Graft("extra.more", NewNode("plugins"))
	require.ErrorIs(t, err, ErrNodeExists)

	require.NoError(t, cfg.Graft("", NewNode("top")))
	require.NotNil(t, cfg.Lookup("top"))
}

func TestConfig_GraftCycle(t *testing.T) {
	cfg := NewConfig("root")
	_, _ = cfg.Set("a.b.c", "1")
	a := cfg.Lookup("a")

	err := cfg.Graft("a.b", a)
	require.ErrorIs(t, err, ErrCycle)

	err = cfg.Graft("a.b.new.deeper", a)
	require.ErrorIs(t, err, ErrCycle)
	require.Nil(t, cfg.Lookup("a.b.new"), "rejected graft creates nothing")

	err = cfg.Graft("", cfg.Root())
	require.ErrorIs(t, err, ErrCycle)
}

func TestConfig_Unsubscribe(t *testing.T) {
	cfg := NewConfig("root")
	calls := 0
	unsubscribe := cfg.Subscribe(func(Change) { calls++ })

	_, _ = cfg.Set("a", "1")
	unsubscribe()
	_, _ = cfg.Set("a", "2")
	require.Equal(t, 1, calls)
}

func TestConfig_UnsubscribeDuringNotify(t *testing.T) {
	cfg := NewConfig("root")
	var order []string
	var unsubscribe func()
	unsubscribe = cfg.Subscribe(func(Change) {
		order = append(order, "first")
		unsubscribe()
	})
	cfg.Subscribe(func(Change) { order = append(order, "second") })

	_, _ = cfg.Set("a", "1")
	_, _ = cfg.Set("a", "2")
	require.Equal(t, []string{"first", "second", "second"}, order)
}

func TestWrap(t *testing.T) {
	root := NewNode("root")
	root.SetLeaf("k", "v")
	cfg := Wrap(root)

	require.Same(t, root, cfg.Root())
	require.False(t, cfg.Dirty())
	got, ok := cfg.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", got)
}

func TestChangeKind_String(t *testing.T) {
	require.Equal(t, "set", ChangeSet.String())
	require.Equal(t, "unset", ChangeUnset.String())
	require.Equal(t, "remove-section", ChangeRemoveSection.String())
	require.Equal(t, "graft", ChangeGraft.String())
	require.Equal(t, "ChangeKind(42)", ChangeKind(42).String())
}
