package assist

import (
	"errors"
	"strings"
	"testing"

	"timeboard/internal/common"
	"timeboard/internal/timesheet"
)

func TestParseRows_PlainJSON(t *testing.T) {
	raw := `{"rows":[{"ticket":"T-1","subject":"fix login","project":"alpha","hours":3.5,"type":"Anomaly"}]}`

	rows, err := ParseRows(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.Ticket != "T-1" || r.Subject != "fix login" || r.Hours != 3.5 || r.Type != timesheet.TypeAnomaly {
		t.Fatalf("unexpected row: %+v", r)
	}
}

func TestParseRows_CodeFenced(t *testing.T) {
	raw := "```json\n{\"rows\":[{\"subject\":\"standup\",\"hours\":0.5,\"type\":\"Meeting\"}]}\n```"

	rows, err := ParseRows(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Subject != "standup" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestParseRows_JSONBuriedInProse(t *testing.T) {
	raw := `Sure! Here is your timesheet:
{"rows":[{"subject":"code review","hours":2,"type":"Work"}]}
Let me know if you need changes.`

	rows, err := ParseRows(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Subject != "code review" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestParseRows_BracesInsideStrings(t *testing.T) {
	raw := `note: {"rows":[{"subject":"fix {weird} bug }","hours":1,"type":"Anomaly"}]} done`

	rows, err := ParseRows(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].Subject != "fix {weird} bug }" {
		t.Fatalf("brace-matching broke on strings: %+v", rows[0])
	}
}

func TestParseRows_NoJSON(t *testing.T) {
	_, err := ParseRows("I could not parse your day, sorry.")
	if !errors.Is(err, common.ErrAssistBadResponse) {
		t.Fatalf("want ErrAssistBadResponse, got %v", err)
	}
}

func TestParseRows_ObjectWithoutRows(t *testing.T) {
	_, err := ParseRows(`{"message":"hello"}`)
	if !errors.Is(err, common.ErrAssistBadResponse) {
		t.Fatalf("want ErrAssistBadResponse, got %v", err)
	}
}

func TestParseRows_MalformedJSON(t *testing.T) {
	_, err := ParseRows(`{"rows":[{"subject":`)
	if !errors.Is(err, common.ErrAssistBadResponse) {
		t.Fatalf("want ErrAssistBadResponse, got %v", err)
	}
}

func TestParseRows_EmptyRowsArray(t *testing.T) {
	rows, err := ParseRows(`{"rows":[]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestSystemPrompt_ListsTypesAndCeiling(t *testing.T) {
	p := SystemPrompt(timesheet.AllActivityTypes, 7)

	if !strings.Contains(p, "7 hours") {
		t.Fatalf("prompt misses ceiling: %s", p)
	}
	for _, typ := range []string{"Work", "Anomaly", "Application Incident"} {
		if !strings.Contains(p, typ) {
			t.Fatalf("prompt misses type %s", typ)
		}
	}
	if !strings.Contains(p, `"rows"`) {
		t.Fatalf("prompt misses the JSON shape: %s", p)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"unclosed fence untouched", "```json\n{\"a\":1}", "```json\n{\"a\":1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
