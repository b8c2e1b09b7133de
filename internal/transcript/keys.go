package transcript

import (
	"fmt"
	"strings"
)

// Output keys a client may request via the `output` query parameter.
const (
	KeyFull     = "full"
	KeyText     = "text"
	KeySegment  = "segment"
	KeySegments = "segments"
	KeyLanguage = "language"
	KeyGenCache = "gen_cache"
)

var allowedOutputKeys = map[string]bool{
	KeyFull:     true,
	KeyText:     true,
	KeySegment:  true,
	KeySegments: true,
	KeyLanguage: true,
	KeyGenCache: true,
}

// OutputKeys is a set of normalized, validated output-selection tokens
type OutputKeys map[string]struct{}

// Has reports whether key was requested
func (k OutputKeys) Has(key string) bool {
	_, ok := k[key]
	return ok
}

// InvalidOutputKeysError reports every token outside the allowed
// vocabulary, not just the first one encountered.
type InvalidOutputKeysError struct {
	Invalid []string
}

func (e *InvalidOutputKeysError) Error() string {
	return fmt.Sprintf("Invalid output key(s): %s. Allowed: full, text, segment, segments, language, gen_cache",
		strings.Join(e.Invalid, ", "))
}

// ParseOutputKeys parses the comma-separated `output` query parameter.
// Tokens are trimmed and lower-cased; a blank parameter means "full".
// Validation happens here, before any decode or model work is started.
func ParseOutputKeys(raw string) (OutputKeys, error) {
	keys := make(OutputKeys)
	var invalid []string

	for _, token := range strings.Split(raw, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if !allowedOutputKeys[token] {
			invalid = append(invalid, token)
			continue
		}
		keys[token] = struct{}{}
	}

	if len(invalid) > 0 {
		return nil, &InvalidOutputKeysError{Invalid: invalid}
	}
	if len(keys) == 0 {
		keys[KeyFull] = struct{}{}
	}
	return keys, nil
}
