package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"timeboard/internal/timesheet"
)

// formatHours renders an hour count without trailing zeros, e.g. "7.5h".
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// isYes reports whether a prompt answer means consent.
func isYes(answer string) bool {
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

// firstLine returns the first line of s, shortened for list output.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}

// rowLabel joins the ticket, subject and project of a row into one column.
func rowLabel(r timesheet.Row) string {
	label := r.Subject
	if r.Ticket != "" {
		label = r.Ticket + " " + label
	}
	if r.Project != "" {
		label += " [" + r.Project + "]"
	}
	return label
}

// renderRows prints time-entry rows as a numbered list with a total line.
func renderRows(w io.Writer, rows []timesheet.Row) {
	var total float64
	for i, r := range rows {
		fmt.Fprintf(w, "%3d. %-48s %-22s %s\n", i+1, firstLine(rowLabel(r)), string(r.Type), formatHours(r.Hours))
		total += r.Hours
	}
	fmt.Fprintf(w, "     %-48s %-22s %s\n", "", "total", formatHours(total))
}

// renderCompletion prints one line per team member with filled-day counts.
func renderCompletion(w io.Writer, rows []timesheet.CompletionRow) {
	fmt.Fprintf(w, "%-28s %12s %10s\n", "Member", "Filled days", "Hours")
	for _, r := range rows {
		fmt.Fprintf(w, "%-28s %12d %10s\n", r.Name, r.FilledDays, formatHours(r.TotalHours))
	}
}
