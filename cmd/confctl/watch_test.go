package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/confkit/internal/fileio"
)

func TestWatcher_ReloadsOnSave(t *testing.T) {
	resetFlags()
	file := writeFile(t, "app.conf", sampleConf)

	w, err := newWatcher(file, format)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	values := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.run(ctx, func(doc *document) error {
			v, _ := doc.cfg.Get("theme")
			values <- v
			return nil
		})
	}()

	require.NoError(t, fileio.WriteAtomic(file, []byte("theme = light\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for got := ""; got != "light"; {
		select {
		case got = <-values:
		case <-timeout:
			t.Fatal("no reload seen")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	resetFlags()
	file := writeFile(t, "app.conf", sampleConf)

	w, err := newWatcher(file, format)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 300*time.Millisecond)
	defer cancel()

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- w.run(ctx, func(*document) error {
			calls++
			return nil
		})
	}()

	require.NoError(t, writeTo(file+".bak", "theme = other\n"))
	require.NoError(t, <-done)
	require.Zero(t, calls)
}

func TestRenderPath(t *testing.T) {
	resetFlags()
	doc, err := loadDocument(writeFile(t, "app.conf", sampleConf), format, false)
	require.NoError(t, err)

	out, err := renderPath(doc, "window.width")
	require.NoError(t, err)
	require.Equal(t, "800\n", string(out))

	out, err = renderPath(doc, "window.position")
	require.NoError(t, err)
	require.Equal(t, "[position]\n  x = \"10\"\n", string(out))

	_, err = renderPath(doc, "missing")
	require.ErrorIs(t, err, errPathNotFound)
}
