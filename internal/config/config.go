package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	STT       STTConfig
	Fetch     FetchConfig
	Keepalive KeepaliveConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type STTConfig struct {
	Backend       string // "openai" or "local"
	OpenAIKey     string
	OpenAIBaseURL string
	LocalBaseURL  string // default: "http://localhost:8178/v1"
	DefaultModel  string // selector forwarded to the engine when the request omits one
}

type FetchConfig struct {
	TempDir        string
	CookiesFile    string // persistent cookie file, used as-is when present
	CookiesContent string // raw cookie material, written to a transient file per fetch
	Timeout        time.Duration
}

type KeepaliveConfig struct {
	BaseURL  string // empty disables the pinger
	Interval time.Duration
	Timeout  time.Duration
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	downloadTimeout, err := getEnvInt("DOWNLOAD_TIMEOUT_SECONDS", 120)
	if err != nil {
		return nil, fmt.Errorf("invalid DOWNLOAD_TIMEOUT_SECONDS: %w", err)
	}

	keepaliveInterval, err := getEnvInt("KEEPALIVE_INTERVAL_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid KEEPALIVE_INTERVAL_SECONDS: %w", err)
	}

	keepaliveTimeout, err := getEnvInt("KEEPALIVE_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid KEEPALIVE_TIMEOUT_SECONDS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		STT: STTConfig{
			Backend:       getEnv("STT_BACKEND", "openai"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("STT_OPENAI_BASE_URL", ""),
			LocalBaseURL:  getEnv("STT_LOCAL_BASE_URL", "http://localhost:8178/v1"),
			DefaultModel:  getEnv("STT_DEFAULT_MODEL", "base"),
		},
		Fetch: FetchConfig{
			TempDir:        getEnv("DOWNLOAD_TEMP_DIR", os.TempDir()),
			CookiesFile:    getEnv("COOKIES_FILE", "cookies.txt"),
			CookiesContent: getEnv("COOKIES_CONTENT", ""),
			Timeout:        time.Duration(downloadTimeout) * time.Second,
		},
		Keepalive: KeepaliveConfig{
			BaseURL:  getEnv("KEEPALIVE_BASE_URL", ""),
			Interval: time.Duration(keepaliveInterval) * time.Second,
			Timeout:  time.Duration(keepaliveTimeout) * time.Second,
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
