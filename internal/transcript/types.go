package transcript

// Segment is the canonical, response-facing form of one transcript span
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the cleaned projection of a raw model result. It is the
// only form that is ever cached or returned to a client.
type Transcript struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// CacheSummary is the cache metadata surfaced under gen_cache in the
// transcribe response and in the cache listing endpoints.
type CacheSummary struct {
	ID          string `json:"temp_cache_file_id"`
	DateAndTime string `json:"date_and_time"`
	FileName    string `json:"file_name"`
}
