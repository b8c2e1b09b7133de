package stt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WhisperProvider implements STT by shelling out to the local whisper CLI.
// Every call runs its own process against its own output directory, so
// concurrent requests do not share any model state.
type WhisperProvider struct {
	cmdPath  string
	model    string
	modelDir string
}

// NewWhisperProvider creates a local whisper provider. It fails if the
// whisper CLI is not installed, so a misconfigured deployment is caught at
// startup rather than on the first request.
func NewWhisperProvider(model, modelDir string) (*WhisperProvider, error) {
	cmdPath, err := exec.LookPath("whisper")
	if err != nil {
		return nil, fmt.Errorf("whisper CLI not found in PATH: %w", err)
	}
	return &WhisperProvider{
		cmdPath:  cmdPath,
		model:    model,
		modelDir: modelDir,
	}, nil
}

// Name returns the provider name
func (p *WhisperProvider) Name() string {
	return "whisper"
}

// whisperOutput mirrors the JSON file the whisper CLI writes next to its
// output. Timestamps are parsed as decimals before conversion so long
// recordings do not pick up float noise from the fractional seconds.
type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		ID               int             `json:"id"`
		Start            decimal.Decimal `json:"start"`
		End              decimal.Decimal `json:"end"`
		Text             string          `json:"text"`
		Tokens           []int           `json:"tokens"`
		Temperature      float64         `json:"temperature"`
		AvgLogprob       float64         `json:"avg_logprob"`
		CompressionRatio float64         `json:"compression_ratio"`
		NoSpeechProb     float64         `json:"no_speech_prob"`
	} `json:"segments"`
}

// Transcribe runs the whisper CLI over the audio file and parses the JSON
// result. Word-level timestamps and conditioning on previous text are
// disabled: every call is independent of transcript history.
func (p *WhisperProvider) Transcribe(audioPath string) (*Result, error) {
	startTime := time.Now()

	outDir, err := os.MkdirTemp("", "whisper-out-")
	if err != nil {
		return nil, fmt.Errorf("failed to create whisper output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	cmd := exec.Command(p.cmdPath,
		audioPath,
		"--model", p.model,
		"--model_dir", p.modelDir,
		"--output_dir", outDir,
		"--output_format", "json",
		"--word_timestamps", "False",
		"--condition_on_previous_text", "False",
		"--verbose", "False",
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("whisper CLI failed: %s", detail)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	resultPath := filepath.Join(outDir, base+".json")

	data, err := os.ReadFile(resultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read whisper result: %w", err)
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse whisper result: %w", err)
	}

	res := &Result{
		Text:     out.Text,
		Language: out.Language,
		Segments: make([]Segment, len(out.Segments)),
		Provider: p.Name(),
	}
	for n, s := range out.Segments {
		res.Segments[n] = Segment{
			ID:               s.ID,
			Start:            s.Start.InexactFloat64(),
			End:              s.End.InexactFloat64(),
			Text:             s.Text,
			Tokens:           s.Tokens,
			Temperature:      s.Temperature,
			AvgLogprob:       s.AvgLogprob,
			CompressionRatio: s.CompressionRatio,
			NoSpeechProb:     s.NoSpeechProb,
		}
	}

	log.Printf("[Whisper] Transcription successful: language=%s, segments=%d, duration=%v",
		out.Language, len(res.Segments), time.Since(startTime))

	return res, nil
}
