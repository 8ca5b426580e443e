package timesheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes text and drops combining marks, so that
// "Réunion" and "Reunion" fold to the same bytes.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripInvisible removes zero-width characters the assist backend (and the
// occasional copy-paste) likes to smuggle into values.
func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\ufeff', '\u00ad':
			return -1
		}
		return r
	}, s)
}

// fold lowercases s, strips diacritics, and collapses every punctuation or
// whitespace run into a single space. The result is the lookup key for the
// synonym table.
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw
		// bytes so the function stays total.
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	space := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		} else {
			space = true
		}
	}
	return b.String()
}

// synonyms maps folded spellings to canonical members. Keys must themselves
// be folded (lowercase, no diacritics, single spaces).
var synonyms = map[string]ActivityType{
	"work":          TypeWork,
	"travail":       TypeWork,
	"travaux":       TypeWork,
	"dev":           TypeWork,
	"development":   TypeWork,
	"developpement": TypeWork,

	"meeting":  TypeMeeting,
	"meetings": TypeMeeting,
	"reunion":  TypeMeeting,
	"reunions": TypeMeeting,

	"support":    TypeSupport,
	"assistance": TypeSupport,

	"project": TypeProject,
	"projet":  TypeProject,
	"projets": TypeProject,

	"evolution":  TypeEvolution,
	"evolutions": TypeEvolution,
	"evo":        TypeEvolution,

	"anomaly":   TypeAnomaly,
	"anomalies": TypeAnomaly,
	"anomalie":  TypeAnomaly,
	"ano":       TypeAnomaly,
	"bug":       TypeAnomaly,
	"bugfix":    TypeAnomaly,

	"application incident": TypeAppIncident,
	"incident applicatif":  TypeAppIncident,
	"incident":             TypeAppIncident,
	"incidents":            TypeAppIncident,

	"undefined":  TypeUndefined,
	"non defini": TypeUndefined,
	"n a":        TypeUndefined,

	"other":  TypeOther,
	"autre":  TypeOther,
	"autres": TypeOther,
	"divers": TypeOther,

	"leave":    TypeLeave,
	"conge":    TypeLeave,
	"conges":   TypeLeave,
	"vacation": TypeLeave,
	"holiday":  TypeLeave,
	"absence":  TypeLeave,

	"weekend":  TypeWeekend,
	"week end": TypeWeekend,

	"training":   TypeTraining,
	"formation":  TypeTraining,
	"stage":      TypeTraining,
	"internship": TypeTraining,
}

// NormalizeType maps arbitrary text onto the activity-type enumeration,
// falling back to DefaultActivityType. See NormalizeTypeWithDefault.
func NormalizeType(raw string) ActivityType {
	return NormalizeTypeWithDefault(raw, DefaultActivityType)
}

// NormalizeTypeWithDefault maps arbitrary text (assist output, legacy stored
// values, user input) onto the enumeration. An exact match after trimming is
// returned unchanged, which preserves historical spellings; otherwise the
// folded value is looked up in the synonym table; otherwise fallback is
// returned. The function is total: every input yields a valid member and no
// input panics.
func NormalizeTypeWithDefault(raw string, fallback ActivityType) ActivityType {
	if !fallback.IsValid() {
		fallback = DefaultActivityType
	}

	trimmed := strings.TrimSpace(stripInvisible(raw))
	if trimmed == "" {
		return fallback
	}

	if t := ActivityType(trimmed); t.IsValid() {
		return t
	}

	if t, ok := synonyms[fold(trimmed)]; ok {
		return t
	}

	return fallback
}
