package assist

import (
	"encoding/json"
	"fmt"
	"strings"

	"timeboard/internal/common"
	"timeboard/internal/timesheet"
)

// envelope is the JSON shape the model is instructed to return.
type envelope struct {
	Rows []timesheet.Row `json:"rows"`
}

// ParseRows extracts proposed rows from raw model output. It first strips a
// markdown code fence if present, then unmarshals directly, then falls back
// to brace-matching the first JSON object buried in surrounding prose. A
// reply with no usable object yields common.ErrAssistBadResponse.
func ParseRows(raw string) ([]timesheet.Row, error) {
	cleaned := stripCodeFences(raw)

	var env envelope
	if err := json.Unmarshal([]byte(cleaned), &env); err == nil && env.Rows != nil {
		return env.Rows, nil
	}

	extracted := extractJSONObject(cleaned)
	if extracted == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", common.ErrAssistBadResponse)
	}
	if err := json.Unmarshal([]byte(extracted), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAssistBadResponse, err)
	}
	if env.Rows == nil {
		return nil, fmt.Errorf("%w: object carries no rows", common.ErrAssistBadResponse)
	}
	return env.Rows, nil
}

// stripCodeFences unwraps ```json ... ``` (or plain ```) blocks, a habit of
// completion models even when told not to.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	firstNewline := strings.Index(trimmed, "\n")
	if firstNewline == -1 {
		return s
	}
	lastFence := strings.LastIndex(trimmed, "```")
	if lastFence <= firstNewline {
		return s
	}
	return strings.TrimSpace(trimmed[firstNewline+1 : lastFence])
}

// extractJSONObject returns the first balanced {...} span in s, or "".
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
