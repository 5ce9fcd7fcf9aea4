package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Transcriber turns a recorded answer into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (string, error)
}

type transcriptionService struct {
	gemini GeminiService
}

func NewTranscriptionService(gemini GeminiService) Transcriber {
	return &transcriptionService{gemini: gemini}
}

const transcribePrompt = "You are a transcription engine. Transcribe the following audio accurately. " +
	"Only return the raw transcript, no extra commentary."

// Transcribe implements Transcriber. Browser recordings arrive as webm video
// blobs; the container is passed to the model as-is and treated as audio.
func (t *transcriptionService) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	data, err := os.ReadFile(mediaPath)
	if err != nil {
		return "", fmt.Errorf("failed to read media file: %w", err)
	}

	transcript, err := t.gemini.GenerateFromMedia(ctx, transcribePrompt, data, guessMimeType(mediaPath))
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	if transcript == "" {
		return "", fmt.Errorf("transcription returned an empty transcript")
	}

	return transcript, nil
}

func guessMimeType(mediaPath string) string {
	switch strings.ToLower(filepath.Ext(mediaPath)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".webm":
		return "audio/webm"
	case ".ogg":
		return "audio/ogg"
	case ".mp4":
		return "video/mp4"
	}
	return "audio/wav"
}
