package ocr

import (
	"encoding/json"
	"strings"
)

const (
	// LineSeparator joins lines inside one result object.
	LineSeparator = "\n"
	// RegionSeparator joins the text of separate result objects.
	RegionSeparator = "\n---\n"
)

// Strategy extracts text from one result object. It returns false when the
// object does not have the shape the strategy understands or holds no text.
type Strategy func(r Result) (string, bool)

// NamedStrategy labels a Strategy for logging.
type NamedStrategy struct {
	Name    string
	Extract Strategy
}

// DefaultStrategies are tried in order until one yields text.
var DefaultStrategies = []NamedStrategy{
	{Name: "structured", Extract: StructuredTexts},
	{Name: "legacy_lines", Extract: LegacyLines},
}

// StructuredTexts reads {"res": {"rec_texts": [...]}}. Non-string and blank
// entries are dropped; kept entries are joined with LineSeparator.
func StructuredTexts(r Result) (string, bool) {
	root, ok := normalize(r).(map[string]any)
	if !ok {
		return "", false
	}
	res, ok := root["res"].(map[string]any)
	if !ok {
		return "", false
	}
	var texts []string
	switch v := res["rec_texts"].(type) {
	case []any:
		for _, t := range v {
			if s, ok := t.(string); ok && strings.TrimSpace(s) != "" {
				texts = append(texts, s)
			}
		}
	case []string:
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				texts = append(texts, s)
			}
		}
	default:
		return "", false
	}
	if len(texts) == 0 {
		return "", false
	}
	return strings.Join(texts, LineSeparator), true
}

// LegacyLines reads a list of detections shaped [box, [text, score]].
// Texts are trimmed; blank ones are dropped.
func LegacyLines(r Result) (string, bool) {
	lines, ok := normalize(r).([]any)
	if !ok {
		return "", false
	}
	var texts []string
	for _, line := range lines {
		pair, ok := line.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		rec, ok := pair[1].([]any)
		if !ok || len(rec) != 2 {
			continue
		}
		s, ok := rec[0].(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			texts = append(texts, s)
		}
	}
	if len(texts) == 0 {
		return "", false
	}
	return strings.Join(texts, LineSeparator), true
}

// normalize decodes raw JSON results so strategies only see decoded values.
func normalize(r Result) any {
	var raw []byte
	switch v := r.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		return r
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
