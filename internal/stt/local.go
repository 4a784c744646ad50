package stt

// LocalConfig holds configuration for a self-hosted whisper backend.
type LocalConfig struct {
	BaseURL string // default: "http://localhost:8178/v1"
	// DefaultModel is forwarded opaquely; whisper.cpp's server ignores it,
	// faster-whisper-server uses it to pick a model size.
	DefaultModel string
}

// LocalProvider wraps OpenAIProvider pointed at a local OpenAI-compatible
// whisper server (whisper.cpp server, faster-whisper-server, etc).
type LocalProvider struct {
	*OpenAIProvider
}

// NewLocalProvider creates a LocalProvider backed by a local whisper HTTP server.
func NewLocalProvider(cfg LocalConfig) *LocalProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8178/v1"
	}
	model := cfg.DefaultModel
	if model == "" {
		model = "base"
	}
	return &LocalProvider{
		OpenAIProvider: NewOpenAIProvider(OpenAIConfig{
			BaseURL:      baseURL,
			DefaultModel: model,
			// No API key needed for a local server
		}),
	}
}

func (l *LocalProvider) Name() string { return "local-whisper" }
