package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/strategy-console/internal/api"
)

// ExcelReporter writes backtest results to a workbook.
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter.
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// WriteBacktestXLSX writes a summary sheet and a trades sheet for one
// backtest run.
func (r *ExcelReporter) WriteBacktestXLSX(result *api.BacktestResult, strategyName, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const tradesSheet = "Trades"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	if _, err := fx.NewSheet(tradesSheet); err != nil {
		return err
	}

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F5496"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, result, strategyName, headerStyle); err != nil {
		return err
	}
	if err := r.writeTradesSheet(fx, tradesSheet, result, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, result *api.BacktestResult, strategyName string, headerStyle int) error {
	rows := [][]any{
		{"Metric", "Value"},
		{"Strategy", strategyName},
		{"Initial Balance", result.StartBalance},
		{"Final Balance", result.FinalBalance},
		{"Total Return %", result.TotalReturn * 100},
		{"Max Drawdown %", result.MaxDrawdown * 100},
		{"Sharpe Ratio", result.SharpeRatio},
		{"Total Trades", result.TotalTrades},
		{"Winning Trades", result.WinningTrades},
		{"Losing Trades", result.LosingTrades},
		{"Win Rate %", result.WinRate * 100},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return fx.SetCellStyle(sheet, "A1", "B1", headerStyle)
}

func (r *ExcelReporter) writeTradesSheet(fx *excelize.File, sheet string, result *api.BacktestResult, headerStyle int) error {
	header := []any{"Timestamp", "Side", "Price", "Amount", "PnL"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, trade := range result.Trades {
		row := []any{
			trade.Timestamp.Format("2006-01-02 15:04:05"),
			trade.Side,
			trade.Price.String(),
			trade.Amount.String(),
			trade.PnL.String(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
