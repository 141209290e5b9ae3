package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"newelem/internal/registry"
	"newelem/internal/resolve"
	"newelem/internal/vfs"
	"newelem/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchedDocument = `<NewElements>
  <Locale name="en">
    <Type>
      <Source>/templates/article.html</Source>
      <Destination>
        <Folder>/site/</Folder>
        <Pattern>/site/article_%(number).html</Pattern>
      </Destination>
    </Type>
  </Locale>
</NewElements>`

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	root := t.TempDir()
	testutils.SeedRepo(t, root, "/templates/article.html", "/site/placeholder.txt")
	docPath := testutils.WriteFile(t, root, "new-elements.xml", watchedDocument)

	resolver := resolve.New(vfs.New(root), registry.Default())
	w, err := New(docPath, resolver, "en", "en", 50*time.Millisecond)
	require.NoError(t, err, "New watcher creation failed")
	return w, docPath
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	w, docPath := newTestWatcher(t)

	require.NoError(t, w.Start(), "Failed to start watcher")
	defer w.Stop()
	assert.True(t, w.Running())

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(docPath, []byte(watchedDocument), 0644))

	select {
	case reload, ok := <-w.ReloadChannel():
		require.True(t, ok, "Reload channel closed unexpectedly")
		require.NotNil(t, reload.Configuration)
		assert.Equal(t, 1, reload.Configuration.Len())
		_, found := reload.Configuration.Item("page")
		assert.True(t, found)
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for configuration reload")
	}
}

func TestWatcherKeepsPreviousOnBadWrite(t *testing.T) {
	w, docPath := newTestWatcher(t)

	require.NoError(t, w.Start())
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	// A broken write must not deliver a reload
	require.NoError(t, os.WriteFile(docPath, []byte("<NewElements><Locale"), 0644))

	select {
	case reload := <-w.ReloadChannel():
		t.Fatalf("unexpected reload after broken write: %+v", reload)
	case <-time.After(500 * time.Millisecond):
	}

	// A subsequent good write recovers
	require.NoError(t, os.WriteFile(docPath, []byte(watchedDocument), 0644))
	select {
	case reload := <-w.ReloadChannel():
		assert.Equal(t, 1, reload.Configuration.Len())
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for recovery reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	w, docPath := newTestWatcher(t)

	require.NoError(t, w.Start())
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	other := filepath.Join(filepath.Dir(docPath), "unrelated.txt")
	require.NoError(t, os.WriteFile(other, []byte("noise"), 0644))

	select {
	case reload := <-w.ReloadChannel():
		t.Fatalf("unexpected reload from unrelated file: %+v", reload)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherLifecycle(t *testing.T) {
	w, _ := newTestWatcher(t)

	require.NoError(t, w.Start())
	assert.Error(t, w.Start(), "second Start must fail while running")

	require.NoError(t, w.Stop())
	assert.False(t, w.Running())
	assert.NoError(t, w.Stop(), "Stop is idempotent")
}
