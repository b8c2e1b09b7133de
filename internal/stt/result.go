package stt

// Segment is one time-aligned span of the raw model output. The token and
// probability fields are model internals; they never reach the response.
type Segment struct {
	ID               int
	Start            float64 // seconds
	End              float64 // seconds
	Text             string
	Tokens           []int
	Temperature      float64
	AvgLogprob       float64
	CompressionRatio float64
	NoSpeechProb     float64
}

// Result represents the raw result of a speech-to-text transcription.
// Segments are ordered by start time, as emitted by the model.
type Result struct {
	Text     string
	Language string // detected language code, may be empty
	Segments []Segment
	Provider string // the provider used (e.g., "whisper", "openai")
}
