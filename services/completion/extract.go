package completion

import (
	"encoding/json"
	"regexp"
	"strings"
)

// maxExtractBytes bounds how much completion text the regex strategies will
// scan. Anything past this is discarded before matching.
const maxExtractBytes = 64 * 1024

var (
	// First substring shaped like a JSON array of objects. Non-greedy, so the
	// match ends at the first "}]", so nested brackets can truncate it.
	arrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)
	// First substring shaped like a JSON object with a quoted key.
	objectPattern = regexp.MustCompile(`(?s)\{\s*".*?\}`)
)

// Extract recovers a JSON value from raw completion text. Strategies are
// tried in order, one attempt each: parse the whole text, then the first
// array-of-objects match, then the first object match. This is a best-effort
// scraper, not a grammar scan; brackets inside string values can truncate
// the regex match.
func Extract(text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > maxExtractBytes {
		trimmed = trimmed[:maxExtractBytes]
	}
	if trimmed == "" {
		return nil, ErrUnparseable
	}

	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	if match := arrayPattern.FindString(trimmed); match != "" && json.Valid([]byte(match)) {
		return json.RawMessage(match), nil
	}

	if match := objectPattern.FindString(trimmed); match != "" && json.Valid([]byte(match)) {
		return json.RawMessage(match), nil
	}

	return nil, ErrUnparseable
}
