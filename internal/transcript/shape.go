package transcript

import "github.com/gin-gonic/gin"

// Shape assembles the response body for the requested output keys.
// "full" (the default) selects everything; otherwise only the selected
// fields appear, with "segment" and "segments" both selecting segments.
// A non-nil cache summary is always attached under gen_cache: caching is
// a side effect, not a field selection.
func Shape(t Transcript, keys OutputKeys, gen *CacheSummary) gin.H {
	out := gin.H{}

	if keys.Has(KeyFull) || len(keys) == 0 {
		out["text"] = t.Text
		out["language"] = t.Language
		out["segments"] = t.Segments
	} else {
		if keys.Has(KeyText) {
			out["text"] = t.Text
		}
		if keys.Has(KeyLanguage) {
			out["language"] = t.Language
		}
		if keys.Has(KeySegment) || keys.Has(KeySegments) {
			out["segments"] = t.Segments
		}
	}

	if gen != nil {
		out["gen_cache"] = gen
	}
	return out
}
