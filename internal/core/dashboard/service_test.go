package dashboard

import (
	"errors"
	"strings"
	"testing"

	"dashboard-service/internal/domain"
	"dashboard-service/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() Service {
	return NewService(zap.NewNop(), brt, metrics.New())
}

func TestService_Load(t *testing.T) {
	svc := newTestService()

	session, err := svc.Load(strings.NewReader(sampleCSV), "vendas.csv")
	require.NoError(t, err)
	assert.Equal(t, "vendas.csv", session.FileName)
	assert.Equal(t, domain.RequiredColumns, session.Headers)
	assert.Len(t, session.Data.Rows, 4)
	assert.Equal(t, brt, svc.Location())

	d := svc.Render(session)
	assert.Equal(t, "4", d.Labels.TotalOrders)

	content, err := svc.Export(session)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestService_LoadXLSX(t *testing.T) {
	data := workbook(t, map[string][][]interface{}{"Pedidos": sampleSheet()})

	session, err := newTestService().Load(strings.NewReader(string(data)), "vendas.xlsx")
	require.NoError(t, err)
	require.Len(t, session.Data.Rows, 1)
	assert.Equal(t, "camp, 1", session.Data.Rows[0].Sub1)
}

func TestService_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		file    string
		message string
	}{
		{"empty file", "", "vendas.csv", MsgNoData},
		{"blank lines", "\n\n  \n", "vendas.csv", MsgNoData},
		{"header only", headerLine + "\n", "vendas.csv", MsgNoData},
		{"broken spreadsheet", "not a workbook", "vendas.xlsx", MsgNoData},
		{
			"missing columns",
			"Horário do pedido,Canal\n2024-03-01,Instagram\n",
			"vendas.csv",
			"Colunas obrigatórias ausentes no CSV: Valor de Compra(R$), Comissão líquida do afiliado(R$), " +
				"Taxa de contrato do afiliado, Sub_id1, Sub_id2, Sub_id3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := newTestService().Load(strings.NewReader(tt.input), tt.file)
			require.Error(t, err)
			assert.Nil(t, session)
			assert.True(t, ErrIngestion.Has(err))
			assert.Equal(t, tt.message, UserMessage(err))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestService_LoadReadFailure(t *testing.T) {
	_, err := newTestService().Load(failingReader{}, "vendas.csv")
	require.Error(t, err)
	assert.True(t, ErrUnexpected.Has(err))
	assert.Equal(t, MsgProcessingFailed, UserMessage(err))
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(nil, nil, nil)
	assert.NotNil(t, svc.Location())

	_, err := svc.Load(strings.NewReader(sampleCSV), "vendas.csv")
	assert.NoError(t, err)
}
