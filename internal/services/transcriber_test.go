package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerforge/interview-lab/internal/apperrors"
)

type fakeGemini struct {
	response   string
	err        error
	lastPrompt string
	textCalls  int
	audioCalls int
	lastAudio  []byte
	lastMime   string
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.textCalls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return f.GenerateText(ctx, prompt, temperature)
}

func (f *fakeGemini) TranscribeAudio(ctx context.Context, audio []byte, mimeType string) (string, error) {
	f.audioCalls++
	f.lastAudio = audio
	f.lastMime = mimeType
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestTranscribe_EmptyAudioRejectedBeforeUpstream(t *testing.T) {
	gemini := &fakeGemini{}
	transcriber := NewTranscriptionService(gemini, 30*time.Second)

	_, err := transcriber.Transcribe(context.Background(), nil, "audio/webm")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindEmptyAudio))
	assert.Zero(t, gemini.audioCalls)
}

func TestTranscribe_Success(t *testing.T) {
	gemini := &fakeGemini{response: "I led the postmortem for a checkout outage."}
	transcriber := NewTranscriptionService(gemini, 30*time.Second)

	text, err := transcriber.Transcribe(context.Background(), []byte{0x01, 0x02}, "audio/wav")

	require.NoError(t, err)
	assert.Equal(t, "I led the postmortem for a checkout outage.", text)
	assert.Equal(t, "audio/wav", gemini.lastMime)
}

func TestTranscribe_DefaultsMimeType(t *testing.T) {
	gemini := &fakeGemini{response: "hello"}
	transcriber := NewTranscriptionService(gemini, 30*time.Second)

	_, err := transcriber.Transcribe(context.Background(), []byte{0x01}, "")

	require.NoError(t, err)
	assert.Equal(t, "audio/webm", gemini.lastMime)
}

func TestTranscribe_UpstreamFailure(t *testing.T) {
	gemini := &fakeGemini{err: errors.New("speech model unavailable")}
	transcriber := NewTranscriptionService(gemini, 30*time.Second)

	_, err := transcriber.Transcribe(context.Background(), []byte{0x01}, "audio/webm")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUpstreamTranscriptionFailed))
}

func TestTranscribe_DeadlineMapsToTimeout(t *testing.T) {
	gemini := &fakeGemini{err: context.DeadlineExceeded}
	transcriber := NewTranscriptionService(gemini, 30*time.Second)

	_, err := transcriber.Transcribe(context.Background(), []byte{0x01}, "audio/webm")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUpstreamTimeout))
}
