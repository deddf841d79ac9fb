package dashboard

import (
	"fmt"
	"time"

	"dashboard-service/internal/domain"

	"github.com/google/uuid"
)

// Session is the state of one loaded file: its canonical rows, the global date range and
// the filters chosen so far. Loading another file always creates a new Session.
type Session struct {
	ID       string
	FileName string
	Headers  []string
	Data     domain.Processed
	Filters  domain.FilterState
	LoadedAt time.Time
}

// NewSession wraps freshly processed rows with an empty filter state.
func NewSession(fileName string, headers []string, data domain.Processed) *Session {
	return &Session{
		ID:       uuid.NewString(),
		FileName: fileName,
		Headers:  headers,
		Data:     data,
		LoadedAt: time.Now(),
	}
}

// SetFilters replaces the dropdown, date and click filters.
func (s *Session) SetFilters(state domain.FilterState) {
	s.Filters = state
}

// Toggle applies a click on a table row: clicking the selected key clears the filter,
// clicking any other key selects it.
func (s *Session) Toggle(field domain.KeyField, key string) error {
	switch field {
	case domain.KeySub1:
		s.Filters.SubID = toggleOption(s.Filters.SubID, key)
	case domain.KeyChannel:
		s.Filters.Channel = toggleOption(s.Filters.Channel, key)
	case domain.KeySub2:
		s.Filters.ClickedSub2 = toggleClick(s.Filters.ClickedSub2, key)
	case domain.KeySub3:
		s.Filters.ClickedSub3 = toggleClick(s.Filters.ClickedSub3, key)
	default:
		return fmt.Errorf("tabela desconhecida: %q", field)
	}
	return nil
}

// Filtered returns the session rows passing the current filters.
func (s *Session) Filtered(loc *time.Location) []domain.Row {
	return FilterRows(s.Data.Rows, s.Filters, loc)
}

func toggleOption(current, key string) string {
	if current == key {
		return domain.AllOption
	}
	return key
}

func toggleClick(current *string, key string) *string {
	if current != nil && *current == key {
		return nil
	}
	return &key
}
