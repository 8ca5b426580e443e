package timesheet

import "math"

// round2 rounds to 2 decimal places, the precision stored per row.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place, the precision used for displayed totals.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// largestRowIndex returns the index of the row with the most hours, first
// occurrence winning ties.
func largestRowIndex(rows []Row) int {
	largest := 0
	for i, r := range rows {
		if r.Hours > rows[largest].Hours {
			largest = i
		}
	}
	return largest
}

// CapHours rescales a day's rows so their hour total never exceeds ceiling.
//
// Negative hours are clamped to zero first. When the clamped total is zero or
// already within the ceiling the rows are returned as-is; otherwise every row
// is multiplied by ceiling/total and rounded to 2 decimals. Per-row rounding
// can leave the sum slightly off the ceiling, so the residual is applied to
// the largest row, and a final pass subtracts any remaining overshoot from the
// largest row again (clamped at zero). Relative proportions survive up to
// rounding, the output sum never exceeds ceiling beyond float noise, and
// reapplying the function is a no-op.
//
// The input slice is not modified. A non-positive ceiling only clamps
// negatives.
func CapHours(rows []Row, ceiling float64) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	total := 0.0
	for i := range out {
		if out[i].Hours < 0 {
			out[i].Hours = 0
		}
		total += out[i].Hours
	}

	if total == 0 || ceiling <= 0 || total <= ceiling {
		return out
	}

	factor := ceiling / total
	scaledSum := 0.0
	for i := range out {
		out[i].Hours = round2(out[i].Hours * factor)
		scaledSum += out[i].Hours
	}

	// Put the rounding drift on the largest row so small rows keep their
	// 2-decimal values.
	if delta := round2(ceiling - scaledSum); delta != 0 {
		i := largestRowIndex(out)
		out[i].Hours = round2(out[i].Hours + delta)
		if out[i].Hours < 0 {
			out[i].Hours = 0
		}
	}

	// The residual correction itself may overshoot when the ceiling is not a
	// 2-decimal value; take the exact excess back from the largest row.
	sum := 0.0
	for i := range out {
		sum += out[i].Hours
	}
	if excess := sum - ceiling; excess > 1e-9 {
		i := largestRowIndex(out)
		out[i].Hours -= excess
		if out[i].Hours < 0 {
			out[i].Hours = 0
		}
	}

	return out
}

// SumHours returns the total of the rows' hours.
func SumHours(rows []Row) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.Hours
	}
	return total
}
