// Package assist turns free-form workday descriptions into proposed time
// entry rows using a text-completion backend. The backend sits behind the
// Completer interface; parsing tolerates prose and markdown around the JSON
// payload the model is asked for.
package assist

import (
	"context"
	"fmt"
	"strings"

	"timeboard/internal/timesheet"
)

// Completer is the text-completion backend. Implementations return the raw
// model output for a system prompt plus the user's text.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// SystemPrompt builds the fixed instruction sent with every assist request.
// The model is asked for a bare JSON object so ParseRows can find it even
// when the reply wraps it in prose.
func SystemPrompt(types []timesheet.ActivityType, ceiling float64) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	var b strings.Builder
	b.WriteString("You convert an employee's description of their workday into timesheet rows.\n")
	b.WriteString("Respond with a single JSON object of the form:\n")
	b.WriteString(`{"rows":[{"ticket":"","subject":"","project":"","hours":0,"type":""}]}` + "\n")
	b.WriteString("Rules:\n")
	b.WriteString("- one row per distinct activity, subject is a short description\n")
	b.WriteString("- hours is a decimal number; the whole day must not exceed ")
	fmt.Fprintf(&b, "%.2g hours\n", ceiling)
	b.WriteString("- type must be one of: " + strings.Join(names, ", ") + "\n")
	b.WriteString("- ticket and project may be empty when the text names none\n")
	b.WriteString("- no commentary, no markdown, only the JSON object")
	return b.String()
}
