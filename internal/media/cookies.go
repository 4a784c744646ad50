package media

import (
	"fmt"
	"os"
	"strings"
)

const (
	cookieSuffix   = ".cookies.txt"
	netscapeHeader = "# Netscape HTTP Cookie File"
)

// cookieFile resolves the cookie material for one fetch. A persistent
// operator-provided file wins and is never touched. Otherwise raw cookie
// material from the environment is written to a transient file that the
// returned cleanup removes whether the fetch succeeds or fails. The cleanup
// is never nil.
func (f *YTDLPFetcher) cookieFile(base string) (string, func(), error) {
	noop := func() {}

	if f.cfg.CookiesFile != "" && fileExists(f.cfg.CookiesFile) {
		return f.cfg.CookiesFile, noop, nil
	}

	content := strings.TrimSpace(f.cfg.CookiesContent)
	if content == "" {
		return "", noop, nil
	}

	path := base + cookieSuffix
	if err := os.WriteFile(path, formatNetscapeCookies(content), 0o600); err != nil {
		return "", noop, fmt.Errorf("write transient cookie file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			f.log.Warn("failed to remove transient cookie file", "path", path, "error", err)
		}
	}
	return path, cleanup, nil
}

// formatNetscapeCookies ensures the material carries the header line yt-dlp
// requires for browser-export cookie files.
func formatNetscapeCookies(content string) []byte {
	if strings.HasPrefix(content, "#") {
		return []byte(content + "\n")
	}
	return []byte(netscapeHeader + "\n" + content + "\n")
}
