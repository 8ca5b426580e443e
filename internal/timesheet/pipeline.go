package timesheet

import "strings"

// PrepareRows is the shared pipeline every row set passes before persistence
// or preview, whether it came from the assist backend or from a direct user
// submission: trim text fields, normalize the activity type (with the
// deployment's fallback), clamp negative hours, and cap the day at ceiling.
func PrepareRows(rows []Row, fallback ActivityType, ceiling float64) []Row {
	prepared := make([]Row, len(rows))
	for i, r := range rows {
		r.Ticket = strings.TrimSpace(r.Ticket)
		r.Subject = strings.TrimSpace(r.Subject)
		r.Project = strings.TrimSpace(r.Project)
		r.BillingCode = strings.TrimSpace(r.BillingCode)
		r.Type = NormalizeTypeWithDefault(string(r.Type), fallback)
		prepared[i] = r
	}
	return CapHours(prepared, ceiling)
}
