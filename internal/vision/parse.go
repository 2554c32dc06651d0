package vision

import (
	"encoding/json"
	"errors"
	"strings"
)

// parseProps decodes the model output. Models sometimes wrap the JSON in
// prose or code fences, so on a decode failure we retry on the slice from the
// first '[' to the last ']'. A single bare object is accepted as a one-entry
// array.
func parseProps(text string) ([]ExtractedProp, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	if props, err := decodeProps(trimmed); err == nil {
		return props, nil
	}

	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start >= 0 && end > start {
		if props, err := decodeProps(trimmed[start : end+1]); err == nil {
			return props, nil
		}
	}
	return nil, errors.New("no JSON array found")
}

func decodeProps(s string) ([]ExtractedProp, error) {
	if strings.HasPrefix(s, "{") {
		var one ExtractedProp
		if err := json.Unmarshal([]byte(s), &one); err != nil {
			return nil, err
		}
		return []ExtractedProp{one}, nil
	}
	var props []ExtractedProp
	if err := json.Unmarshal([]byte(s), &props); err != nil {
		return nil, err
	}
	return props, nil
}
