package dashboard

import (
	"bytes"
	"testing"

	"dashboard-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	s := NewSession("vendas.csv", nil, sampleProcessed(t))
	s.SetFilters(domain.FilterState{Channel: "Facebook"})

	content, err := ExportXLSX(Render(s, brt))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetSub1, SheetSub2, SheetSub3, SheetChannel}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Indicador", "Valor"}, summary[0])
	assert.Equal(t, []string{"Pedidos", "2"}, summary[1])
	assert.Equal(t, []string{"Período", "Período: 02/03/2024 a 03/03/2024"}, summary[len(summary)-1])

	channel, err := f.GetRows(SheetChannel)
	require.NoError(t, err)
	require.Len(t, channel, 2)
	assert.Equal(t, []string{"channel", "Pedidos", "Vendas", "Comissão", "Taxa média"}, channel[0])
	assert.Equal(t, "Facebook", channel[1][0])
	assert.Equal(t, "5,00%", channel[1][4])

	sub3, err := f.GetRows(SheetSub3)
	require.NoError(t, err)
	assert.Equal(t, []string{"sub3", "Pedidos", "Comissão", "Taxa média"}, sub3[0])
}

func TestExportXLSX_EmptyTables(t *testing.T) {
	s := NewSession("vendas.csv", nil, sampleProcessed(t))
	s.SetFilters(domain.FilterState{SubID: "nada"})

	content, err := ExportXLSX(Render(s, brt))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetSub1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{MsgNoCommission}, rows[1])
}
