package stt

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIConfig holds configuration for the OpenAI STT backend.
type OpenAIConfig struct {
	APIKey       string
	BaseURL      string // default: "https://api.openai.com/v1"
	DefaultModel string // default: "whisper-1"
}

// OpenAIProvider transcribes audio using OpenAI's Whisper API (or any
// endpoint speaking the same protocol).
type OpenAIProvider struct {
	client       *openai.Client
	defaultModel string
}

// NewOpenAIProvider creates an OpenAIProvider with sensible defaults applied.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = openai.Whisper1
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client:       openai.NewClientWithConfig(clientCfg),
		defaultModel: cfg.DefaultModel,
	}
}

func (p *OpenAIProvider) Name() string { return "openai-whisper" }

// Transcribe uploads the audio file and asks for verbose JSON so per-segment
// timestamps come back with the text.
func (p *OpenAIProvider) Transcribe(ctx context.Context, req Request) (*Result, error) {
	model := req.Model
	if model == "" {
		model = p.defaultModel
	}

	audioReq := openai.AudioRequest{
		Model:    model,
		FilePath: req.FilePath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	if lang := strings.TrimSpace(req.Language); lang != "" && lang != LanguageAuto {
		audioReq.Language = lang
	}

	resp, err := p.client.CreateTranscription(ctx, audioReq)
	if err != nil {
		return nil, fmt.Errorf("openai transcription: %w", err)
	}

	return normalize(resp, audioReq.Language), nil
}

// normalize maps the raw engine output into the Result shape: trimmed text,
// {start, end, text} segments, and a language falling back to the requested
// hint when the engine reports none.
func normalize(resp openai.AudioResponse, requestedLanguage string) *Result {
	segments := make([]Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}

	language := resp.Language
	if language == "" {
		language = requestedLanguage
	}

	return &Result{
		Text:     strings.TrimSpace(resp.Text),
		Language: language,
		Segments: segments,
	}
}
