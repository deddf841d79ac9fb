package dashboard

import (
	"strings"

	"dashboard-service/internal/domain"
)

// ParseCSV splits comma separated text into a header row and one RawRecord per data line.
//
// Quoted fields may contain commas and newlines, and "" inside quotes is a literal quote.
// Carriage returns are dropped, so CRLF and LF files read the same. A line holding a single
// blank field is skipped. An input with no retained line yields empty headers and data.
func ParseCSV(text string) domain.ParsedCSV {
	text = strings.ReplaceAll(text, "\r", "")

	var (
		records  [][]string
		record   []string
		field    strings.Builder
		inQuotes bool
	)

	flush := func() {
		record = append(record, field.String())
		field.Reset()
		if len(record) > 1 || strings.TrimSpace(record[0]) != "" {
			records = append(records, record)
		}
		record = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			record = append(record, field.String())
			field.Reset()
		case c == '\n' && !inQuotes:
			flush()
		default:
			field.WriteByte(c)
		}
	}
	if field.Len() > 0 || len(record) > 0 {
		flush()
	}

	if len(records) == 0 {
		return domain.ParsedCSV{Headers: []string{}, Data: []domain.RawRecord{}}
	}

	headers := records[0]
	data := make([]domain.RawRecord, 0, len(records)-1)
	for _, rec := range records[1:] {
		raw := make(domain.RawRecord, len(headers))
		for idx, h := range headers {
			if idx < len(rec) {
				raw[h] = rec[idx]
			} else {
				raw[h] = ""
			}
		}
		data = append(data, raw)
	}
	return domain.ParsedCSV{Headers: headers, Data: data}
}
