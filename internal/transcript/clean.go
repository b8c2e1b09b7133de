package transcript

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"scribe/internal/stt"
)

// Clean projects a raw model result down to the canonical transcript:
// text trimmed at the top level and inside every segment, tokens and
// probability internals dropped, segment order and ids untouched.
func Clean(r *stt.Result) Transcript {
	segments := make([]Segment, len(r.Segments))
	for n, s := range r.Segments {
		segments[n] = Segment{
			ID:    s.ID,
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		}
	}

	text := strings.TrimSpace(r.Text)
	language := r.Language
	if language == "" {
		language = detectLanguage(text)
	}

	return Transcript{
		Text:     text,
		Language: language,
		Segments: segments,
	}
}

// detectLanguage guesses an ISO 639-1 code from the transcript text for
// providers that do not report one. Empty text stays undetected.
func detectLanguage(text string) string {
	if text == "" {
		return ""
	}
	return whatlanggo.DetectLang(text).Iso6391()
}
