package transcript

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTranscript() Transcript {
	return Transcript{
		Text:     "Hello world.",
		Language: "en",
		Segments: []Segment{
			{ID: 0, Start: 0.0, End: 2.4, Text: "Hello world."},
		},
	}
}

func mustKeys(t *testing.T, raw string) OutputKeys {
	t.Helper()
	keys, err := ParseOutputKeys(raw)
	require.NoError(t, err)
	return keys
}

func TestShape_FullReproducesCleanExactly(t *testing.T) {
	clean := testTranscript()

	out := Shape(clean, mustKeys(t, "full"), nil)

	assert.Equal(t, gin.H{
		"text":     clean.Text,
		"language": clean.Language,
		"segments": clean.Segments,
	}, out)
	assert.NotContains(t, out, "gen_cache")
}

func TestShape_SubsetSelection(t *testing.T) {
	clean := testTranscript()

	tests := []struct {
		name     string
		keys     string
		expected []string
	}{
		{name: "Text only", keys: "text", expected: []string{"text"}},
		{name: "Language only", keys: "language", expected: []string{"language"}},
		{name: "Singular segment alias", keys: "segment", expected: []string{"segments"}},
		{name: "Plural segments alias", keys: "segments", expected: []string{"segments"}},
		{name: "Text and language", keys: "text,language", expected: []string{"text", "language"}},
		{name: "Full wins over subset", keys: "full,text", expected: []string{"text", "language", "segments"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Shape(clean, mustKeys(t, tt.keys), nil)
			assert.Len(t, out, len(tt.expected))
			for _, k := range tt.expected {
				assert.Contains(t, out, k)
			}
		})
	}
}

func TestShape_CacheSummaryAlwaysAttached(t *testing.T) {
	clean := testTranscript()
	gen := &CacheSummary{
		ID:          "1700000000.0000000000_ab12cd34.json",
		DateAndTime: "2026-09-01 12:00:00",
		FileName:    "meeting.mp3",
	}

	// Subset selection: exactly the requested fields plus gen_cache
	out := Shape(clean, mustKeys(t, "text,language"), gen)
	assert.Len(t, out, 3)
	assert.Equal(t, clean.Text, out["text"])
	assert.Equal(t, clean.Language, out["language"])
	assert.Equal(t, gen, out["gen_cache"])
	assert.NotContains(t, out, "segments")

	// gen_cache rides along even when it was the only requested key
	out = Shape(clean, mustKeys(t, "gen_cache"), gen)
	assert.Equal(t, gin.H{"gen_cache": gen}, out)

	// and on top of full output
	out = Shape(clean, mustKeys(t, "full,gen_cache"), gen)
	assert.Len(t, out, 4)
	assert.Equal(t, gen, out["gen_cache"])
}
