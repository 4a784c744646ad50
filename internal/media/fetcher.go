// Package media retrieves remote audio/video to local temporary files by
// driving yt-dlp. Each fetch produces exactly one file whose deletion is the
// caller's responsibility; every transient resource the fetch itself creates
// (cookie material) is removed before Fetch returns.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"

	"github.com/mediascribe/mediascribe/internal/apierror"
	"github.com/mediascribe/mediascribe/internal/config"
)

// Fetcher downloads the media behind a URL and returns the local file path.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// YTDLPFetcher fetches media through the yt-dlp binary, preferring the best
// audio-only stream and extracting audio to mp3.
type YTDLPFetcher struct {
	cfg config.FetchConfig
	log *slog.Logger
}

func NewYTDLPFetcher(cfg config.FetchConfig, log *slog.Logger) *YTDLPFetcher {
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &YTDLPFetcher{cfg: cfg, log: log}
}

// Install makes sure a yt-dlp binary is available, downloading one if the
// host has none. Called once at startup.
func Install(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}
	return nil
}

// Fetch downloads the URL's best audio stream into the temp dir and returns
// the resulting file path. Failures come back as a single download error
// carrying yt-dlp's diagnostic text; no partial files are left behind.
func (f *YTDLPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	base := filepath.Join(f.cfg.TempDir, "media-"+uuid.NewString())

	cookiePath, cleanup, err := f.cookieFile(base)
	if err != nil {
		return "", apierror.Download(err)
	}
	defer cleanup()

	// The output path is a template; yt-dlp decides the real extension, so
	// the actual path is recovered from --print after_move:filepath.
	dl := ytdlp.New().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat("mp3").
		Output(base + ".%(ext)s").
		NoPlaylist().
		NoProgress().
		NoWarnings().
		Quiet().
		Print("after_move:filepath")
	if cookiePath != "" {
		dl = dl.Cookies(cookiePath)
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		f.removeLeftovers(base)
		return "", apierror.Download(fmt.Errorf("%s", condense(err.Error())))
	}

	path := printedPath(result.Stdout)
	if path == "" || !fileExists(path) {
		// Older yt-dlp versions print nothing for some post-processors;
		// fall back to whatever the template produced.
		path = f.findOutput(base)
	}
	if path == "" {
		f.removeLeftovers(base)
		return "", apierror.Download(fmt.Errorf("no media file produced for %s", url))
	}

	f.log.Info("media downloaded", "url", url, "path", path)
	return path, nil
}

// printedPath extracts the last non-empty line of yt-dlp's stdout, which is
// the after_move filepath when printing is enabled.
func printedPath(stdout string) string {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

func (f *YTDLPFetcher) findOutput(base string) string {
	matches, err := filepath.Glob(base + ".*")
	if err != nil {
		return ""
	}
	for _, m := range matches {
		if strings.HasSuffix(m, cookieSuffix) {
			continue
		}
		return m
	}
	return ""
}

// removeLeftovers deletes any partial downloads for this fetch so a failed
// request cannot leak disk space.
func (f *YTDLPFetcher) removeLeftovers(base string) {
	matches, _ := filepath.Glob(base + "*")
	for _, m := range matches {
		if strings.HasSuffix(m, cookieSuffix) {
			continue
		}
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			f.log.Warn("failed to remove partial download", "path", m, "error", err)
		}
	}
}

// condense flattens multi-line yt-dlp diagnostics into one message.
func condense(msg string) string {
	fields := strings.Fields(msg)
	return strings.Join(fields, " ")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
