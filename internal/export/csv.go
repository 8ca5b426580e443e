package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"timeboard/internal/datex"
)

// utf8BOM marks the output as UTF-8 so spreadsheet tools pick the right
// encoding when opening the file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"date", "ticket", "subject", "project", "charge", "type", "billing_code"}

// WriteCSV renders records as semicolon-delimited UTF-8 text with a leading
// byte-order mark, one line per record plus a header. Text cells are
// sanitized against formula injection.
func WriteCSV(records []Record, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv write error: %w", err)
	}

	for _, r := range records {
		line := []string{
			datex.FormatDay(r.Day),
			sanitizeCell(r.Ticket),
			sanitizeCell(r.Subject),
			sanitizeCell(r.Project),
			strconv.FormatFloat(opts.charge(r.Hours), 'f', -1, 64),
			sanitizeCell(string(r.Type)),
			sanitizeCell(r.BillingCode),
		}
		if err := w.Write(line); err != nil {
			return nil, fmt.Errorf("csv write error: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write error: %w", err)
	}
	return buf.Bytes(), nil
}
