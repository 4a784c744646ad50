package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediascribe/mediascribe/internal/config"
)

func newTestFetcher(t *testing.T, cfg config.FetchConfig) *YTDLPFetcher {
	t.Helper()
	if cfg.TempDir == "" {
		cfg.TempDir = t.TempDir()
	}
	return NewYTDLPFetcher(cfg, nil)
}

func TestCookieFileNoMaterial(t *testing.T) {
	f := newTestFetcher(t, config.FetchConfig{})

	path, cleanup, err := f.cookieFile(filepath.Join(t.TempDir(), "media-x"))
	require.NoError(t, err)
	assert.Empty(t, path)
	cleanup()
}

func TestCookieFilePersistentWinsAndSurvives(t *testing.T) {
	dir := t.TempDir()
	persistent := filepath.Join(dir, "cookies.txt")
	original := []byte("# Netscape HTTP Cookie File\nexample.com\tFALSE\t/\tFALSE\t0\tsid\tabc\n")
	require.NoError(t, os.WriteFile(persistent, original, 0o600))

	f := newTestFetcher(t, config.FetchConfig{
		CookiesFile:    persistent,
		CookiesContent: "should-not-be-used",
	})

	for i := 0; i < 3; i++ {
		path, cleanup, err := f.cookieFile(filepath.Join(dir, "media-y"))
		require.NoError(t, err)
		assert.Equal(t, persistent, path)
		cleanup()
	}

	after, err := os.ReadFile(persistent)
	require.NoError(t, err)
	assert.Equal(t, original, after, "persistent cookie file must stay untouched")
}

func TestCookieFileTransientIsCreatedAndRemoved(t *testing.T) {
	dir := t.TempDir()
	f := newTestFetcher(t, config.FetchConfig{
		CookiesFile:    filepath.Join(dir, "missing-cookies.txt"),
		CookiesContent: "example.com\tFALSE\t/\tFALSE\t0\tsid\tabc",
	})

	base := filepath.Join(dir, "media-z")
	path, cleanup, err := f.cookieFile(base)
	require.NoError(t, err)
	require.Equal(t, base+cookieSuffix, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), netscapeHeader),
		"transient cookie file must carry the Netscape header")
	assert.Contains(t, string(content), "sid\tabc")

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "transient cookie file must be removed by cleanup")
}

func TestFormatNetscapeCookiesKeepsExistingHeader(t *testing.T) {
	in := "# Netscape HTTP Cookie File\nexample.com\tFALSE\t/\tFALSE\t0\tsid\tabc"
	out := string(formatNetscapeCookies(in))
	assert.Equal(t, 1, strings.Count(out, netscapeHeader))
}

func TestPrintedPath(t *testing.T) {
	assert.Equal(t, "/tmp/media-1.mp3", printedPath("/tmp/media-1.mp3\n"))
	assert.Equal(t, "/tmp/media-1.mp3", printedPath("warning line\n/tmp/media-1.mp3\n\n"))
	assert.Empty(t, printedPath("  \n"))
}

func TestRemoveLeftoversSparesCookies(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "media-a")
	require.NoError(t, os.WriteFile(base+".part", []byte("partial"), 0o600))
	require.NoError(t, os.WriteFile(base+cookieSuffix, []byte("cookies"), 0o600))

	f := newTestFetcher(t, config.FetchConfig{TempDir: dir})
	f.removeLeftovers(base)

	_, err := os.Stat(base + ".part")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(base + cookieSuffix)
	assert.NoError(t, err, "cookie cleanup is owned by cookieFile, not removeLeftovers")
}
