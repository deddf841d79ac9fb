// internal/api/handlers/dashboard_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"dashboard-service/internal/api/responses"
	"dashboard-service/internal/core/dashboard"
	"dashboard-service/internal/core/sessions"
	"dashboard-service/internal/domain"
	"dashboard-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// DashboardHandler handles dashboard-related API requests.
type DashboardHandler struct {
	service        dashboard.Service
	store          *sessions.Store
	metrics        *metrics.Metrics
	maxUploadBytes int64
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service dashboard.Service, store *sessions.Store, m *metrics.Metrics, maxUploadBytes int64) *DashboardHandler {
	return &DashboardHandler{
		service:        service,
		store:          store,
		metrics:        m,
		maxUploadBytes: maxUploadBytes,
	}
}

// FilterRequest carries the filter controls, as JSON or form fields.
type FilterRequest struct {
	DateFrom string  `json:"dateFrom" form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string  `json:"dateTo" form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Channel  string  `json:"channel" form:"channel"`
	SubID    string  `json:"subId" form:"subId"`
	Sub2     *string `json:"sub2" form:"sub2"`
	Sub3     *string `json:"sub3" form:"sub3"`
}

// ToggleRequest is a click on a row of one of the grouped tables.
type ToggleRequest struct {
	Table string `json:"table" binding:"required"`
	Key   string `json:"key" binding:"required"`
}

// SessionResponse is returned when a file is loaded.
type SessionResponse struct {
	SessionID string           `json:"session_id"`
	FileName  string           `json:"file_name"`
	Rows      int              `json:"rows"`
	Dashboard domain.Dashboard `json:"dashboard"`
}

// toState converts the request into a filter state; dates are read in loc.
func (r FilterRequest) toState(loc *time.Location) (domain.FilterState, error) {
	state := domain.FilterState{
		Channel: strings.TrimSpace(r.Channel),
		SubID:   strings.TrimSpace(r.SubID),
	}
	if r.DateFrom != "" {
		t, err := time.ParseInLocation(dateLayout, r.DateFrom, loc)
		if err != nil {
			return state, fmt.Errorf("data inicial inválida: %q", r.DateFrom)
		}
		state.DateFrom = &t
	}
	if r.DateTo != "" {
		t, err := time.ParseInLocation(dateLayout, r.DateTo, loc)
		if err != nil {
			return state, fmt.Errorf("data final inválida: %q", r.DateTo)
		}
		state.DateTo = &t
	}
	state.ClickedSub2 = nonEmpty(r.Sub2)
	state.ClickedSub3 = nonEmpty(r.Sub3)
	return state, nil
}

// HandleCreateSession loads an uploaded file into a new session.
func (h *DashboardHandler) HandleCreateSession(c *gin.Context) {
	h.limitBody(c)
	session, ok := h.loadUpload(c)
	if !ok {
		return
	}
	h.store.Put(session)
	h.metrics.SetSessions(h.store.Len())

	responses.Success(c, SessionResponse{
		SessionID: session.ID,
		FileName:  session.FileName,
		Rows:      len(session.Data.Rows),
		Dashboard: h.service.Render(session),
	}, "Arquivo carregado com sucesso")
}

// HandleGetDashboard renders a session with its current filters.
func (h *DashboardHandler) HandleGetDashboard(c *gin.Context) {
	var view domain.Dashboard
	err := h.store.Update(c.Param("id"), func(s *dashboard.Session) error {
		view = h.service.Render(s)
		return nil
	})
	if err != nil {
		h.sessionError(c, err)
		return
	}
	responses.Success(c, view, "")
}

// HandleSetFilters replaces the filters of a session and renders it.
func (h *DashboardHandler) HandleSetFilters(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Filtros inválidos", err.Error())
		return
	}
	state, err := req.toState(h.service.Location())
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Filtros inválidos", err.Error())
		return
	}

	var view domain.Dashboard
	err = h.store.Update(c.Param("id"), func(s *dashboard.Session) error {
		s.SetFilters(state)
		view = h.service.Render(s)
		return nil
	})
	if err != nil {
		h.sessionError(c, err)
		return
	}
	responses.Success(c, view, "Filtros aplicados")
}

// HandleToggle applies a click on a table row.
func (h *DashboardHandler) HandleToggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Requisição inválida", err.Error())
		return
	}
	field := domain.KeyField(req.Table)
	if !field.Valid() {
		responses.Error(c, http.StatusBadRequest, "Tabela desconhecida", req.Table)
		return
	}

	var view domain.Dashboard
	err := h.store.Update(c.Param("id"), func(s *dashboard.Session) error {
		if err := s.Toggle(field, req.Key); err != nil {
			return err
		}
		view = h.service.Render(s)
		return nil
	})
	if err != nil {
		h.sessionError(c, err)
		return
	}
	responses.Success(c, view, "Filtros aplicados")
}

// HandleExport downloads the session dashboard as an XLSX workbook.
func (h *DashboardHandler) HandleExport(c *gin.Context) {
	var (
		content  []byte
		fileName string
	)
	err := h.store.Update(c.Param("id"), func(s *dashboard.Session) error {
		var err error
		content, err = h.service.Export(s)
		fileName = strings.TrimSuffix(filepath.Base(s.FileName), filepath.Ext(s.FileName))
		return err
	})
	if err != nil {
		h.sessionError(c, err)
		return
	}
	if fileName == "" || fileName == "." {
		fileName = "dashboard"
	}

	name := fmt.Sprintf("%s_%s.xlsx", fileName, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+name)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// HandleDeleteSession drops a session.
func (h *DashboardHandler) HandleDeleteSession(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	h.metrics.SetSessions(h.store.Len())
	responses.Success(c, nil, "Sessão encerrada")
}

// HandleAnalyze loads a file and renders it with the filters sent in the same form, without keeping a session.
func (h *DashboardHandler) HandleAnalyze(c *gin.Context) {
	h.limitBody(c)
	var req FilterRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Filtros inválidos", err.Error())
		return
	}
	state, err := req.toState(h.service.Location())
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Filtros inválidos", err.Error())
		return
	}

	session, ok := h.loadUpload(c)
	if !ok {
		return
	}
	session.SetFilters(state)
	responses.Success(c, h.service.Render(session), "Análise concluída com sucesso")
}

// loadUpload reads the csvFile form field and runs the ingestion; on failure the response is already written.
func (h *DashboardHandler) loadUpload(c *gin.Context) (*dashboard.Session, bool) {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo CSV não encontrado ou inválido")
		return nil, false
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".csv" && ext != ".txt" && ext != ".xls" && ext != ".xlsx" {
		responses.Error(c, http.StatusBadRequest, fmt.Sprintf("Extensão de arquivo não suportada: %s", ext))
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir o arquivo")
		return nil, false
	}
	defer file.Close()

	session, err := h.service.Load(file, fileHeader.Filename)
	if err != nil {
		h.ingestionError(c, err)
		return nil, false
	}
	return session, true
}

func (h *DashboardHandler) limitBody(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
}

func (h *DashboardHandler) ingestionError(c *gin.Context, err error) {
	if !dashboard.ErrIngestion.Has(err) {
		responses.Error(c, http.StatusInternalServerError, dashboard.MsgProcessingFailed)
		return
	}
	var missing *dashboard.MissingColumnsError
	if errors.As(err, &missing) {
		responses.Error(c, http.StatusUnprocessableEntity, missing.Error(), missing.Hints()...)
		return
	}
	responses.Error(c, http.StatusUnprocessableEntity, dashboard.UserMessage(err), err.Error())
}

func (h *DashboardHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, sessions.ErrNotFound) {
		responses.Error(c, http.StatusNotFound, err.Error())
		return
	}
	responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o painel", err.Error())
}

func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
