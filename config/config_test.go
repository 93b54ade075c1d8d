package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/melowave/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadResolvesSongsRelativeToTheFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "songs.yaml")
	writeFile(t, path, `
listen_addr: ":9999"
songs:
  - path: midi/moonlight.mid
    title: Moonlight
  - path: /abs/unravel.mid
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(":9999", c.ListenAddr)
	assert.Equal([]string{filepath.Join(dir, "midi/moonlight.mid"), "/abs/unravel.mid"}, c.Paths())
	assert.Equal([]string{"Moonlight", "unravel"}, c.Titles())
}

func TestLoadWithoutFileDiscoversMedia(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "media", "ngnl.mid"), "")
	t.Setenv("MEDIA_PATH", filepath.Join(dir, "media"))

	c, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ngnl"}, c.Titles())
}

func TestLoadWithoutFileOrMediaIsEmpty(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEDIA_PATH", filepath.Join(dir, "nothing"))

	c, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, c.Songs)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "songs.yaml")

	writeFile(t, path, "songs: [")
	_, err := Load(path)
	assert.Error(t, err)

	writeFile(t, path, "songs:\n  - title: no path\n")
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "songs[0].path is required")
}

func TestLoadRejectsUnknownLogSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "songs.yaml")

	cases := []struct {
		content string
		want    string
	}{
		{"log_format: xml\n", "log_format must be one of: json text"},
		{"log_level: loud\n", "log_level must be one of: debug info warn warning error"},
	}
	for _, c := range cases {
		t.Run(c.content, func(t *testing.T) {
			writeFile(t, path, c.content)
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, c.want)
		})
	}

	writeFile(t, path, "log_format: json\nlog_level: debug\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", c.LogFormat)
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "songs.yaml")
	writeFile(t, path, "songs:\n  - path: a.mid\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, logger.Discard(), func(c *Config) { changes <- c })
	}()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	writeFile(t, path, "songs:\n  - path: a.mid\n  - path: b.mid\n")

	select {
	case c := <-changes:
		assert.Len(t, c.Songs, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}

	cancel()
	assert.NoError(t, <-done)
}
