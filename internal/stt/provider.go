package stt

import "context"

// LanguageAuto is the sentinel that lets the engine detect the language
// instead of receiving it as a hint.
const LanguageAuto = "auto"

// Request holds the parameters for audio transcription.
type Request struct {
	// FilePath is the local audio file to transcribe.
	FilePath string
	// Model is an opaque selector for the engine's model size/tier. Empty
	// means the backend's default. Invalid values surface as engine errors.
	Model string
	// Language is an optional hint; empty or "auto" means auto-detect.
	Language string
}

// Segment is a time-aligned portion of a transcript.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result holds a normalized transcription.
type Result struct {
	Text     string
	Language string
	Segments []Segment
}

// Provider is the interface for speech-to-text backends. Implementations
// must be safe for concurrent use; they are constructed once at startup and
// shared across requests.
type Provider interface {
	Transcribe(ctx context.Context, req Request) (*Result, error)
	Name() string
}
