package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/sessions", nil)
	return c, rec, logs
}

func TestSuccess(t *testing.T) {
	c, rec, logs := newContext(t)
	Success(c, map[string]int{"rows": 4}, "ok")

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "ok", resp.Message)
	assert.Equal(t, 1, logs.FilterMessage("API success").Len())
}

func TestError(t *testing.T) {
	c, rec, logs := newContext(t)
	Error(c, http.StatusUnprocessableEntity, "Colunas obrigatórias ausentes no CSV: Canal", "dica")

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, []string{"dica"}, resp.Errors)
	assert.Nil(t, resp.Data)

	entries := logs.FilterMessage("API error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
}

func TestInitLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := InitLogger("barulhento")
	require.NoError(t, err)
	t.Cleanup(func() { SetLogger(nil) })
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}
