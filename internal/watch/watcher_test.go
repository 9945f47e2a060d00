package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWatchedFile(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "config.yaml")
	other := filepath.Join(tempDir, "other.yaml")

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.AddFile(target))
	require.NoError(t, w.Start())
	defer w.Stop()

	// Allow fsnotify to install its watches
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("style: cover\n"), 0644))

	select {
	case mod, ok := <-w.FileChannel():
		require.True(t, ok)
		abs, _ := filepath.Abs(target)
		gotAbs, _ := filepath.Abs(mod.Path)
		assert.Equal(t, abs, gotAbs, "only the watched file is reported")
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for file event")
	}
}

func TestAddFileMissingDirectory(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	err = w.AddFile(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	assert.Error(t, err)
}

func TestStartTwice(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	assert.Error(t, w.Start())
}

func TestStopClosesChannel(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()
	w.Stop()

	_, ok := <-w.FileChannel()
	assert.False(t, ok)
}

func TestStopWhileFileIsWritten(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "config.yaml")

	for round := 0; round < 5; round++ {
		w, err := New()
		require.NoError(t, err)
		require.NoError(t, w.AddFile(target))
		require.NoError(t, w.Start())

		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			for i := 0; i < 200; i++ {
				_ = os.WriteFile(target, []byte("style: cover\n"), 0644)
			}
		}()

		time.Sleep(time.Duration(round) * time.Millisecond)
		w.Stop()
		<-writerDone

		// Buffered events may remain, but the channel must end closed
		drained := false
		timeout := time.After(3 * time.Second)
		for !drained {
			select {
			case _, ok := <-w.FileChannel():
				drained = !ok
			case <-timeout:
				t.Fatal("FileChannel was not closed after Stop")
			}
		}
	}
}

func TestStartAfterStop(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()

	assert.Error(t, w.Start())
}
