// cmd/dashboard-report/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"
	_ "time/tzdata"

	"dashboard-service/internal/core/dashboard"
	"dashboard-service/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type reportOptions struct {
	from     string
	to       string
	channel  string
	subID    string
	sub2     string
	sub3     string
	timezone string
	xlsxPath string
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &reportOptions{}
	cmd := &cobra.Command{
		Use:           "dashboard-report <arquivo>",
		Short:         "Gera o painel de vendas de afiliados a partir de um CSV ou planilha",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReport(cmd.OutOrStdout(), args[0], opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Erro:", dashboard.UserMessage(err))
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "data inicial (AAAA-MM-DD)")
	f.StringVar(&opts.to, "to", "", "data final (AAAA-MM-DD)")
	f.StringVar(&opts.channel, "channel", domain.AllOption, "canal")
	f.StringVar(&opts.subID, "sub-id", domain.AllOption, "Sub_id1")
	f.StringVar(&opts.sub2, "sub2", "", "Sub_id2 selecionado")
	f.StringVar(&opts.sub3, "sub3", "", "Sub_id3 selecionado")
	f.StringVar(&opts.timezone, "timezone", "America/Sao_Paulo", "fuso horário das datas")
	f.StringVar(&opts.xlsxPath, "xlsx", "", "grava o painel neste arquivo XLSX em vez de imprimir")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log detalhado")
	return cmd
}

func runReport(out io.Writer, path string, opts *reportOptions) error {
	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", opts.timezone, err)
	}
	state, err := opts.filterState(loc)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if opts.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("erro ao abrir %s: %w", path, err)
	}
	defer file.Close()

	svc := dashboard.NewService(logger, loc, nil)
	session, err := svc.Load(file, filepath.Base(path))
	if err != nil {
		return err
	}
	session.SetFilters(state)

	if opts.xlsxPath != "" {
		content, err := svc.Export(session)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.xlsxPath, content, 0o644); err != nil {
			return fmt.Errorf("erro ao gravar %s: %w", opts.xlsxPath, err)
		}
		fmt.Fprintf(out, "Painel gravado em %s\n", opts.xlsxPath)
		return nil
	}

	return printDashboard(out, svc.Render(session))
}

func (o *reportOptions) filterState(loc *time.Location) (domain.FilterState, error) {
	state := domain.FilterState{Channel: o.channel, SubID: o.subID}
	for _, d := range []struct {
		value  string
		target **time.Time
	}{
		{o.from, &state.DateFrom},
		{o.to, &state.DateTo},
	} {
		if d.value == "" {
			continue
		}
		t, err := time.ParseInLocation("2006-01-02", d.value, loc)
		if err != nil {
			return state, fmt.Errorf("data inválida %q, use AAAA-MM-DD", d.value)
		}
		*d.target = &t
	}
	if o.sub2 != "" {
		state.ClickedSub2 = &o.sub2
	}
	if o.sub3 != "" {
		state.ClickedSub3 = &o.sub3
	}
	return state, nil
}

func printDashboard(out io.Writer, d domain.Dashboard) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	l := d.Labels
	fmt.Fprintf(tw, "Pedidos\t%s\t%s\n", l.TotalOrders, l.OrdersDetail)
	fmt.Fprintf(tw, "Vendas\t%s\t%s\n", l.TotalSales, l.AvgTicket)
	fmt.Fprintf(tw, "Comissão\t%s\t%s\n", l.TotalCommission, l.AvgCommission)
	fmt.Fprintf(tw, "Taxa média\t%s\t%s\n", l.AvgRate, l.Period)
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, t := range []struct {
		title string
		table domain.Table
	}{
		{domain.ColSub1, d.Sub1},
		{domain.ColSub2, d.Sub2},
		{domain.ColSub3, d.Sub3},
		{domain.ColChannel, d.Channel},
	} {
		if err := printTable(out, t.title, t.table); err != nil {
			return err
		}
	}
	return nil
}

func printTable(out io.Writer, title string, t domain.Table) error {
	fmt.Fprintf(out, "\n%s\n", title)
	if t.Empty {
		fmt.Fprintln(out, t.EmptyMessage)
		return nil
	}

	withSales := t.Key == domain.KeyChannel
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if withSales {
		fmt.Fprintln(tw, "\tChave\tPedidos\tVendas\tComissão\tTaxa média")
	} else {
		fmt.Fprintln(tw, "\tChave\tPedidos\tComissão\tTaxa média")
	}
	for _, g := range t.Groups {
		mark := ""
		if g.Active {
			mark = "*"
		}
		if withSales {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", mark, g.Key, g.Orders, g.SalesLabel, g.CommissionLabel, g.AvgRateLabel)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", mark, g.Key, g.Orders, g.CommissionLabel, g.AvgRateLabel)
		}
	}
	return tw.Flush()
}
