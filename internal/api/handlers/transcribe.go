package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/mediascribe/mediascribe/internal/apierror"
	"github.com/mediascribe/mediascribe/internal/media"
	"github.com/mediascribe/mediascribe/internal/stt"
	"github.com/mediascribe/mediascribe/internal/validate"
)

// TranscribeHandler sequences validate -> fetch -> transcribe and owns the
// downloaded file's lifetime: whatever the outcome, the file is removed
// before the handler returns.
type TranscribeHandler struct {
	fetcher      media.Fetcher
	provider     stt.Provider
	defaultModel string
}

func NewTranscribeHandler(fetcher media.Fetcher, provider stt.Provider, defaultModel string) *TranscribeHandler {
	if defaultModel == "" {
		defaultModel = "base"
	}
	return &TranscribeHandler{
		fetcher:      fetcher,
		provider:     provider,
		defaultModel: defaultModel,
	}
}

type transcribeRequest struct {
	URL       string `json:"url"`
	ModelSize string `json:"model_size"`
	Language  string `json:"language"`
}

type transcribeResponse struct {
	Text     string        `json:"text"`
	Segments []stt.Segment `json:"segments"`
	Language string        `json:"language"`
}

// Transcribe handles POST /transcribe.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierror.Validation("invalid request body"))
		return
	}

	if !validate.IsURL(req.URL) {
		writeError(w, apierror.Validation("Invalid URL provided"))
		return
	}

	mediaPath, err := h.fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		writeError(w, apierror.Coerce(err, apierror.Download))
		return
	}
	defer func() {
		if err := os.Remove(mediaPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove downloaded media", "path", mediaPath, "error", err)
		}
	}()

	model := req.ModelSize
	if model == "" {
		model = h.defaultModel
	}

	result, err := h.provider.Transcribe(r.Context(), stt.Request{
		FilePath: mediaPath,
		Model:    model,
		Language: req.Language,
	})
	if err != nil {
		writeError(w, apierror.Coerce(err, apierror.Transcription))
		return
	}

	segments := result.Segments
	if segments == nil {
		segments = []stt.Segment{}
	}

	writeJSON(w, http.StatusOK, transcribeResponse{
		Text:     result.Text,
		Segments: segments,
		Language: result.Language,
	})
}

func writeError(w http.ResponseWriter, e *apierror.Error) {
	writeJSON(w, e.Status, map[string]string{"detail": e.Detail})
}
