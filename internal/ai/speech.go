package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Speech output format of Speaker implementations.
const (
	SpeechSampleRate = 24000
	SpeechChannels   = 1
)

// Speaker turns narration text into signed 16-bit little-endian PCM.
type Speaker interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

// Gemini is a Speaker backed by the Gemini TTS models.
type Gemini struct {
	client *genai.Client
	model  string
	voice  string
}

func NewGemini(ctx context.Context, apiKey, model, voice string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: model, voice: voice}, nil
}

func (g *Gemini) Speak(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate speech: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 || resp.Candidates[0].Content.Parts[0].InlineData == nil {
		return nil, fmt.Errorf("generate speech: no audio data in response")
	}

	pcm := resp.Candidates[0].Content.Parts[0].InlineData.Data
	if len(pcm) == 0 {
		return nil, fmt.Errorf("generate speech: %w", ErrEmptyResponse)
	}

	return pcm, nil
}
