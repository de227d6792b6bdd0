package extraction

import (
	"encoding/json"
	"fmt"
)

// ExtractionResult is the stable response shape returned to clients.
// ActionItems is always a real array. Each item keeps whatever fields the
// model produced (task, assignee, priority, deadline, context) untouched,
// plus the injected id.
type ExtractionResult struct {
	ActionItems []map[string]any `json:"actionItems"`
	Summary     string           `json:"summary"`
}

// Normalize parses raw model output into an ExtractionResult.
//
// The text must be a JSON object carrying an actionItems array; text that
// is not valid JSON, or an object without that array, is a malformed
// response. No repair or extraction of embedded JSON is attempted. Item
// fields pass through without content validation (an out-of-enum priority
// survives as-is). Ids are assigned here, never by the model, as
// item-<timestamp>-<index> with one timestamp shared by the whole result,
// so normalization is reproducible for a fixed timestamp.
func Normalize(rawText string, timestamp int64) (*ExtractionResult, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(rawText), &parsed); err != nil {
		return nil, wrapError(KindMalformedResponse, "model response is not valid JSON", err)
	}

	rawItems, ok := parsed["actionItems"].([]any)
	if !ok {
		return nil, newError(KindMalformedResponse, "model response has no actionItems array")
	}

	items := make([]map[string]any, len(rawItems))
	for i, element := range rawItems {
		item := make(map[string]any)
		if fields, ok := element.(map[string]any); ok {
			for k, v := range fields {
				item[k] = v
			}
		}
		item["id"] = fmt.Sprintf("item-%d-%d", timestamp, i)
		items[i] = item
	}

	summary, _ := parsed["summary"].(string)

	return &ExtractionResult{ActionItems: items, Summary: summary}, nil
}
