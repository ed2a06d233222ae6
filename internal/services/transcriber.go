package services

import (
	"context"
	"errors"
	"time"

	"careerforge/interview-lab/internal/apperrors"
)

// TranscriptionService converts a recorded answer clip into text. The audio
// payload is forwarded inline and never persisted; transcripts exist only in
// the response.
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

type transcriptionService struct {
	gemini  GeminiService
	timeout time.Duration
}

func NewTranscriptionService(gemini GeminiService, timeout time.Duration) TranscriptionService {
	return &transcriptionService{
		gemini:  gemini,
		timeout: timeout,
	}
}

// Transcribe implements TranscriptionService.
func (t *transcriptionService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", apperrors.New(apperrors.KindEmptyAudio, "audio payload is empty")
	}

	if mimeType == "" {
		mimeType = "audio/webm"
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	text, err := t.gemini.TranscribeAudio(ctx, audio, mimeType)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apperrors.Wrap(apperrors.KindUpstreamTimeout, "transcription timed out", err)
		}
		return "", apperrors.Wrap(apperrors.KindUpstreamTranscriptionFailed, "transcription failed", err)
	}

	return text, nil
}
