package stt

import (
	"context"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements STT using the OpenAI transcription API. It
// requests the verbose JSON response format so segment timings survive.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI transcription provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Transcribe sends the audio file to the OpenAI API and returns the result
func (p *OpenAIProvider) Transcribe(audioPath string) (*Result, error) {
	startTime := time.Now()

	resp, err := p.client.CreateTranscription(context.Background(), openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI transcription failed: %w", err)
	}

	res := &Result{
		Text:     resp.Text,
		Language: resp.Language,
		Segments: make([]Segment, len(resp.Segments)),
		Provider: p.Name(),
	}
	for n, s := range resp.Segments {
		res.Segments[n] = Segment{
			ID:               s.ID,
			Start:            s.Start,
			End:              s.End,
			Text:             s.Text,
			Tokens:           s.Tokens,
			Temperature:      s.Temperature,
			AvgLogprob:       s.AvgLogprob,
			CompressionRatio: s.CompressionRatio,
			NoSpeechProb:     s.NoSpeechProb,
		}
	}

	log.Printf("[OpenAI STT] Transcription successful: language=%s, segments=%d, duration=%v",
		res.Language, len(res.Segments), time.Since(startTime))

	return res, nil
}
