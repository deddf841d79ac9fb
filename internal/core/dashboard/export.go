package dashboard

import (
	"fmt"

	"dashboard-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetSummary = "Resumo"
	SheetSub1    = "Sub_id1"
	SheetSub2    = "Sub_id2"
	SheetSub3    = "Sub_id3"
	SheetChannel = "Canal"
)

// ExportXLSX writes the dashboard to an in-memory workbook: one summary sheet and one sheet per table.
func ExportXLSX(d domain.Dashboard) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("erro ao criar aba de resumo: %w", err)
	}
	summaryRows := [][]interface{}{
		{"Indicador", "Valor"},
		{"Pedidos", d.Summary.TotalOrders},
		{"Pedidos com comissão", d.Summary.CommissionOrders},
		{"Vendas", d.Summary.TotalSales},
		{"Ticket médio", d.Summary.AvgTicket},
		{"Comissão total", d.Summary.CommissionTotal},
		{"Comissão média por pedido", d.Summary.AvgCommission},
		{"Taxa média", d.Labels.AvgRate},
		{"Período", d.Labels.Period},
	}
	if err := writeRows(f, SheetSummary, summaryRows); err != nil {
		return nil, err
	}

	tables := []struct {
		sheet string
		table domain.Table
	}{
		{SheetSub1, d.Sub1},
		{SheetSub2, d.Sub2},
		{SheetSub3, d.Sub3},
		{SheetChannel, d.Channel},
	}
	for _, t := range tables {
		if _, err := f.NewSheet(t.sheet); err != nil {
			return nil, fmt.Errorf("erro ao criar aba %s: %w", t.sheet, err)
		}
		if err := writeRows(f, t.sheet, tableRows(t.table)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func tableRows(t domain.Table) [][]interface{} {
	withSales := t.Key == domain.KeyChannel
	header := []interface{}{string(t.Key), "Pedidos"}
	if withSales {
		header = append(header, "Vendas")
	}
	header = append(header, "Comissão", "Taxa média")

	rows := [][]interface{}{header}
	if t.Empty {
		return append(rows, []interface{}{t.EmptyMessage})
	}
	for _, g := range t.Groups {
		row := []interface{}{g.Key, g.Orders}
		if withSales {
			row = append(row, g.Sales)
		}
		row = append(row, g.Commission, FormatPercent(g.AvgRate))
		rows = append(rows, row)
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("erro ao escrever linha %d da aba %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
