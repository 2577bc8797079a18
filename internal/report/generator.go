package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ucad-dsi/gestion-budget/internal/analysis"
)

// writeXLSX renders a two-sheet workbook: the year's summary figures and
// the per-category variance table.
func writeXLSX(path string, summary *analysis.Summary, variances []*analysis.Variance) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Resume"
	const varianceSheet = "Ecarts"

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	summaryRows := [][]any{
		{"Exercice", summary.Year},
		{"Total proposé", summary.TotalProposed},
		{"Total réalisé", summary.TotalRealized},
		{"Total recettes", summary.TotalRecettes},
		{"Total dépenses", summary.TotalDepenses},
		{"Taux de réalisation (%)", summary.RealizationRate},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(varianceSheet); err != nil {
		return err
	}

	header := []any{"Code", "Libellé", "Proposé", "Réalisé", "Écart", "Écart (%)", "Sévérité"}
	if err := f.SetSheetRow(varianceSheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range variances {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{v.CategoryCode, v.CategoryLabel, v.Proposed, v.Realized, v.Variance, v.VariancePercent, string(v.Severity)}
		if err := f.SetSheetRow(varianceSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeCSV renders the summary rows followed by the variance table.
func writeCSV(path string, summary *analysis.Summary, variances []*analysis.Variance) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	records := [][]string{
		{"Exercice", fmt.Sprintf("%d", summary.Year)},
		{"Total proposé", formatAmount(summary.TotalProposed)},
		{"Total réalisé", formatAmount(summary.TotalRealized)},
		{"Total recettes", formatAmount(summary.TotalRecettes)},
		{"Total dépenses", formatAmount(summary.TotalDepenses)},
		{"Taux de réalisation (%)", formatAmount(summary.RealizationRate)},
		{},
		{"Code", "Libellé", "Proposé", "Réalisé", "Écart", "Écart (%)", "Sévérité"},
	}
	for _, v := range variances {
		records = append(records, []string{
			v.CategoryCode,
			v.CategoryLabel,
			formatAmount(v.Proposed),
			formatAmount(v.Realized),
			formatAmount(v.Variance),
			formatAmount(v.VariancePercent),
			string(v.Severity),
		})
	}

	return w.WriteAll(records)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
