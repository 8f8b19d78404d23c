package spectator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-spectator/common"
	"github.com/Carmen-Shannon/oxy-spectator/engine/camera"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitReload(t *testing.T, bw *BindingsWatcher) int {
	t.Helper()
	select {
	case n := <-bw.Reloaded:
		return n
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for bindings reload")
		return 0
	}
}

func TestBindingsWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key_mapping:\n  W: FORWARD\n"), 0o644))

	sc := NewSpectatorController(camera.NewCamera())
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	bw, err := WatchBindings(path, sc, logger)
	require.NoError(t, err)
	defer bw.Close()

	require.NoError(t, os.WriteFile(path, []byte("key_mapping:\n  Up: FORWARD\n  W: NONE\n"), 0o644))
	assert.Equal(t, 2, waitReload(t, bw))

	km := sc.KeyMapping()
	assert.Equal(t, ActionForward, km[common.KeyUp])
	assert.NotContains(t, km, uint32(common.KeyW))
}

func TestBindingsWatcherKeepsBindingsOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key_mapping: {}\n"), 0o644))

	sc := NewSpectatorController(camera.NewCamera())
	bw, err := WatchBindings(path, sc, nil)
	require.NoError(t, err)
	defer bw.Close()

	require.NoError(t, os.WriteFile(path, []byte("key_mapping:\n  W: JUMP\n"), 0o644))
	select {
	case <-bw.Reloaded:
		t.Fatal("bad file must not be applied")
	case <-time.After(4 * reloadDebounce):
	}
	assert.Equal(t, DefaultKeyMapping(), sc.KeyMapping())

	require.NoError(t, os.WriteFile(path, []byte("key_mapping:\n  E: UP\n"), 0o644))
	waitReload(t, bw)
	assert.Equal(t, ActionUp, sc.KeyMapping()[common.KeyE])
}

func TestBindingsWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectator.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	bw, err := WatchBindings(path, NewSpectatorController(camera.NewCamera()), nil)
	require.NoError(t, err)
	assert.NoError(t, bw.Close())
	assert.NoError(t, bw.Close())
}
