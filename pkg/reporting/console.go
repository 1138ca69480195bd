package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/strategy-console/internal/api"
)

// ConsoleReporter renders dashboard tables to a terminal.
type ConsoleReporter struct {
	out    io.Writer
	emojis bool
}

// NewConsoleReporter creates a reporter writing to stdout.
func NewConsoleReporter(noEmojis bool) *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout, emojis: !noEmojis}
}

// NewConsoleReporterTo creates a reporter writing to w.
func NewConsoleReporterTo(w io.Writer, noEmojis bool) *ConsoleReporter {
	return &ConsoleReporter{out: w, emojis: !noEmojis}
}

func (r *ConsoleReporter) label(emoji, plain string) string {
	if r.emojis {
		return emoji + " " + plain
	}
	return plain
}

// RenderSummary prints the account-level strategy summary.
func (r *ConsoleReporter) RenderSummary(summary *api.StrategySummary) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("STRATEGY SUMMARY")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{r.label("📊", "Total Strategies"), summary.TotalStrategies},
		{r.label("▶️", "Active"), summary.TotalActive},
	})
	t.AppendSeparator()

	for _, st := range summary.StrategyTypes {
		status := "idle"
		if st.HasActive {
			status = "active"
		}
		t.AppendRow(table.Row{st.StrategyType, fmt.Sprintf("%d (%s)", st.Count, status)})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 20, Align: text.AlignLeft},
		{Number: 2, WidthMin: 16, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

// RenderStrategies prints one row per strategy with its backend-owned
// figures.
func (r *ConsoleReporter) RenderStrategies(strategies []api.Strategy) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("STRATEGIES")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Name", "Symbol", "Status", "Invested", "P&L"})
	for _, s := range strategies {
		t.AppendRow(table.Row{
			s.Name,
			s.AssetSymbol,
			s.Status,
			"$" + s.TotalInvested.StringFixed(2),
			"$" + s.CurrentProfitLoss.StringFixed(2),
		})
	}

	portfolio := Aggregate(strategies)
	t.AppendFooter(table.Row{
		"TOTAL", "", "",
		"$" + portfolio.TotalInvested.StringFixed(2),
		"$" + portfolio.TotalProfitLoss.StringFixed(2),
	})

	t.Render()
	fmt.Fprintln(r.out)
}

// RenderBacktest prints the engine result the way the dashboard's result
// panel does.
func (r *ConsoleReporter) RenderBacktest(result *api.BacktestResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("BACKTEST RESULTS")
	t.SetStyle(table.StyleRounded)

	winRate := result.WinRate
	if winRate == 0 && result.TotalTrades > 0 {
		winRate = float64(result.WinningTrades) / float64(result.TotalTrades)
	}

	t.AppendRows([]table.Row{
		{r.label("💰", "Initial Balance"), fmt.Sprintf("$%.2f", result.StartBalance)},
		{r.label("💰", "Final Balance"), fmt.Sprintf("$%.2f", result.FinalBalance)},
		{r.label("📈", "Total Return"), fmt.Sprintf("%.2f%%", result.TotalReturn*100)},
		{r.label("📉", "Max Drawdown"), fmt.Sprintf("%.2f%%", result.MaxDrawdown*100)},
		{r.label("📊", "Sharpe Ratio"), fmt.Sprintf("%.2f", result.SharpeRatio)},
		{r.label("🔄", "Total Trades"), result.TotalTrades},
		{r.label("✅", "Win Rate"), fmt.Sprintf("%.1f%%", winRate*100)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 14, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

// RenderBalances prints the live balance snapshot grouped by connection.
func (r *ConsoleReporter) RenderBalances(resp *api.LiveBalancesResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("LIVE BALANCES")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Connection", "Asset", "Free", "Locked", "USD Value"})
	for connection, balances := range resp.Balances {
		for _, b := range balances {
			t.AppendRow(table.Row{
				connection,
				b.Asset,
				b.Free.String(),
				b.Locked.String(),
				"$" + b.USDValue.StringFixed(2),
			})
		}
	}
	t.AppendFooter(table.Row{"TOTAL", "", "", "", "$" + resp.TotalUSDValue.StringFixed(2)})

	t.Render()
	fmt.Fprintln(r.out)
}
