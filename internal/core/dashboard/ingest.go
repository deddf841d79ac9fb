package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"dashboard-service/internal/domain"

	"github.com/schollz/closestmatch"
	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText turns an uploaded CSV into UTF-8 text. Uploads that are not valid UTF-8 are
// read as Windows-1252, the usual encoding of spreadsheet exports on Brazilian desktops.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("erro ao decodificar o arquivo: %w", err)
		}
		data = decoded
	}
	return norm.NFC.String(string(data)), nil
}

// readUpload returns the CSV text of an upload, converting spreadsheets by extension.
func readUpload(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return convertXLSXtoCSV(bytes.NewReader(data))
	case ".xls":
		return convertXLStoCSV(data)
	default:
		return decodeText(data)
	}
}

// convertXLSXtoCSV renders the first non-empty sheet of a workbook as comma separated text.
func convertXLSXtoCSV(file io.Reader) (string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return "", fmt.Errorf("erro ao abrir planilha xlsx: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		return writeCSV(rows)
	}
	return "", nil
}

// convertXLStoCSV does the same for legacy .xls files, falling back to excelize when the
// bytes turn out to be a renamed .xlsx.
func convertXLStoCSV(data []byte) (string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		if _, errX := excelize.OpenReader(bytes.NewReader(data)); errX == nil {
			return convertXLSXtoCSV(bytes.NewReader(data))
		}
		return "", fmt.Errorf("erro ao abrir planilha xls: %w", err)
	}

	for _, sheet := range workbook.GetSheets() {
		var rows [][]string
		for _, row := range sheet.GetRows() {
			var csvRow []string
			for _, cell := range row.GetCols() {
				csvRow = append(csvRow, cell.GetString())
			}
			rows = append(rows, csvRow)
		}
		if len(rows) == 0 {
			continue
		}
		return writeCSV(rows)
	}
	return "", nil
}

func writeCSV(rows [][]string) (string, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	for _, row := range rows {
		for i := range row {
			row[i] = norm.NFC.String(row[i])
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return buffer.String(), writer.Error()
}

// validateHeaders checks the required columns and suggests the closest present header for
// every missing one.
func validateHeaders(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range domain.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	required := make(map[string]bool, len(domain.RequiredColumns))
	for _, col := range domain.RequiredColumns {
		required[col] = true
	}
	var candidates []string
	for _, h := range headers {
		if strings.TrimSpace(h) != "" && !required[h] {
			candidates = append(candidates, h)
		}
	}

	suggestions := make(map[string]string)
	if len(candidates) > 0 {
		cm := closestmatch.New(candidates, []int{2, 3})
		for _, col := range missing {
			if match := cm.Closest(col); match != "" {
				suggestions[col] = match
			}
		}
	}

	return ErrIngestion.Wrap(&MissingColumnsError{Missing: missing, Suggestions: suggestions})
}
