package timesheet

import "testing"

func TestPrepareRows_NormalizesAndCaps(t *testing.T) {
	in := []Row{
		{Subject: "  fix bug  ", Hours: 5, Type: "anomalie"},
		{Subject: "meetings", Hours: 5, Type: "réunion"},
		{Subject: "misc", Hours: 4, Type: "whatever"},
	}

	got := PrepareRows(in, TypeOther, 7)

	if got[0].Subject != "fix bug" {
		t.Fatalf("subject not trimmed: %q", got[0].Subject)
	}
	if got[0].Type != TypeAnomaly || got[1].Type != TypeMeeting {
		t.Fatalf("types not normalized: %q %q", got[0].Type, got[1].Type)
	}
	if got[2].Type != TypeOther {
		t.Fatalf("fallback not applied: %q", got[2].Type)
	}
	if s := SumHours(got); s > 7+epsilon {
		t.Fatalf("sum %v exceeds ceiling", s)
	}
	// 5:5:4 over 14 scales by 0.5.
	if got[0].Hours != 2.5 || got[1].Hours != 2.5 || got[2].Hours != 2 {
		t.Fatalf("unexpected scaled hours: %v", hours(got))
	}
}

func TestPrepareRows_ValidTypePreserved(t *testing.T) {
	in := []Row{{Subject: "s", Hours: 1, Type: TypeAppIncident}}
	got := PrepareRows(in, TypeUndefined, 7)
	if got[0].Type != TypeAppIncident {
		t.Fatalf("valid type changed: %q", got[0].Type)
	}
}

func TestPrepareRows_EmptyInput(t *testing.T) {
	if got := PrepareRows(nil, TypeUndefined, 7); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}
