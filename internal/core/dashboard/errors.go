package dashboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/errs"
)

var (
	// ErrIngestion marks uploads that cannot be turned into a dashboard: no header, no data
	// or missing required columns. Its message is meant for the user.
	ErrIngestion = errs.Class("ingestion")

	// ErrUnexpected marks any other failure while loading a file.
	ErrUnexpected = errs.Class("unexpected")
)

// User facing messages.
const (
	MsgNoData           = "Não foi possível ler dados do CSV. Verifique se o arquivo está correto."
	MsgProcessingFailed = "Ocorreu um erro ao processar o arquivo. Verifique se o CSV está no formato correto."
	MsgNoRows           = "Nenhuma linha no filtro."
	MsgNoCommission     = "Nenhuma comissão no filtro."
)

// MissingColumnsError lists the required columns absent from an upload.
// Suggestions maps a missing column to the closest header found in the file, when there is one.
type MissingColumnsError struct {
	Missing     []string
	Suggestions map[string]string
}

func (e *MissingColumnsError) Error() string {
	return "Colunas obrigatórias ausentes no CSV: " + strings.Join(e.Missing, ", ")
}

// Hints renders one line per suggestion, sorted by missing column.
func (e *MissingColumnsError) Hints() []string {
	keys := make([]string, 0, len(e.Suggestions))
	for k := range e.Suggestions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hints := make([]string, 0, len(keys))
	for _, k := range keys {
		hints = append(hints, fmt.Sprintf("Coluna %q não encontrada; você quis dizer %q?", k, e.Suggestions[k]))
	}
	return hints
}

// UserMessage returns the text to show for an error returned by the service.
func UserMessage(err error) string {
	var missing *MissingColumnsError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &missing):
		return missing.Error()
	case ErrIngestion.Has(err):
		return MsgNoData
	default:
		return MsgProcessingFailed
	}
}
