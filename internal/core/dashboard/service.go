// package dashboard/service.go
package dashboard

import (
	"fmt"
	"io"
	"time"

	"dashboard-service/internal/domain"
	"dashboard-service/internal/metrics"

	"go.uber.org/zap"
)

// Service defines the interface for the affiliate orders dashboard.
type Service interface {
	Load(file io.Reader, filename string) (*Session, error)
	Render(session *Session) domain.Dashboard
	Export(session *Session) ([]byte, error)
	Location() *time.Location
}

type service struct {
	logger  *zap.Logger
	loc     *time.Location
	metrics *metrics.Metrics
}

// NewService creates a new dashboard service. Order dates without an offset and date
// filters are interpreted in loc.
func NewService(logger *zap.Logger, loc *time.Location, m *metrics.Metrics) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{logger: logger, loc: loc, metrics: m}
}

// Load reads an uploaded export and builds a fresh session from it.
func (s *service) Load(file io.Reader, filename string) (session *Session, err error) {
	start := time.Now()
	rows := 0

	defer func() {
		if r := recover(); r != nil {
			session = nil
			err = ErrUnexpected.New("%v", r)
		}

		result := metrics.ResultOK
		switch {
		case err == nil:
		case ErrIngestion.Has(err):
			result = metrics.ResultRejected
		default:
			result = metrics.ResultFailed
		}
		s.metrics.ObserveUpload(result, rows, time.Since(start))

		if err != nil {
			s.logger.Warn("upload rejected",
				zap.String("file", filename),
				zap.String("result", result),
				zap.Error(err))
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, ErrUnexpected.Wrap(fmt.Errorf("erro ao ler o arquivo: %w", err))
	}

	text, err := readUpload(data, filename)
	if err != nil {
		return nil, ErrIngestion.Wrap(err)
	}

	parsed := ParseCSV(text)
	if len(parsed.Headers) == 0 || len(parsed.Data) == 0 {
		return nil, ErrIngestion.New("%s", MsgNoData)
	}
	if err := validateHeaders(parsed.Headers); err != nil {
		return nil, err
	}

	processed := ProcessRows(parsed.Data, s.loc)
	rows = len(processed.Rows)
	session = NewSession(filename, parsed.Headers, processed)

	s.logger.Info("file loaded",
		zap.String("session_id", session.ID),
		zap.String("file", filename),
		zap.Int("rows", rows),
		zap.Int("headers", len(parsed.Headers)),
		zap.Duration("elapsed", time.Since(start)))
	return session, nil
}

// Render builds the dashboard for the session's current filters.
func (s *service) Render(session *Session) domain.Dashboard {
	return Render(session, s.loc)
}

// Export renders the session and writes it as an XLSX workbook.
func (s *service) Export(session *Session) ([]byte, error) {
	return ExportXLSX(Render(session, s.loc))
}

// Location returns the time zone used for order dates and date filters.
func (s *service) Location() *time.Location {
	return s.loc
}
