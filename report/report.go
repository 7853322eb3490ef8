// Package report renders one session's data as a styled Excel workbook:
// a market sheet with every quote line and a top-movers sheet.
package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/viktsys/brvmwatch/database"
	"github.com/viktsys/brvmwatch/models"
	"github.com/xuri/excelize/v2"
)

const (
	colorHeader   = "1B3A6B"
	colorRowEven  = "EBF3FB"
	colorUp       = "006400"
	colorDown     = "CC0000"
	headerRowIdx  = 6
	firstDataRow  = 7
)

var marketHeaders = []string{
	"Comp.", "Sect.", "Symbole", "Titre", "Cours Préc.",
	"Cours Ouv.", "Cours Clôt.", "Var. Jour %", "Volume",
	"Valeur (FCFA)", "Cours Réf.", "Var. Annuelle %", "Dividende", "Rdt %", "PER",
}

var moversHeaders = []string{"Symbole", "Titre", "Cours Clôt.", "Variation Jour", "Volume", "Valeur"}

// Generate writes the workbook for a date under dir and returns its path.
func Generate(store *database.Store, date time.Time, dir string) (string, error) {
	dateStr := date.Format("2006-01-02")

	seance, err := store.SeanceByDate(date)
	if err != nil {
		return "", fmt.Errorf("failed to load seance: %w", err)
	}
	cours, err := store.Cours(date, "", 0)
	if err != nil {
		return "", fmt.Errorf("failed to load cours: %w", err)
	}
	hausses, baisses, err := store.TopMovers(date, 5)
	if err != nil {
		return "", fmt.Errorf("failed to load top movers: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	market := "Marché " + dateStr
	f.SetSheetName("Sheet1", market)
	if err := writeMarketSheet(f, market, dateStr, seance, cours); err != nil {
		return "", err
	}
	if err := writeMoversSheet(f, dateStr, hausses, baisses); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("brvm_%s.xlsx", dateStr))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	log.Printf("Excel report generated: %s", path)
	return path, nil
}

func writeMarketSheet(f *excelize.File, sheet, dateStr string, seance *models.Seance, cours []models.Cours) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: colorHeader},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "O1"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", fmt.Sprintf("BRVM — Bulletin Officiel de la Cote — %s", dateStr))
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	f.SetCellValue(sheet, "A2", "BRVM COMPOSITE")
	f.SetCellValue(sheet, "A3", "BRVM 30")
	f.SetCellValue(sheet, "A4", "BRVM PRESTIGE")
	if seance != nil {
		setFloat(f, sheet, "B2", seance.Composite)
		setPct(f, sheet, "C2", seance.VarComposite)
		setFloat(f, sheet, "B3", seance.Brvm30)
		setPct(f, sheet, "C3", seance.VarBrvm30)
		setFloat(f, sheet, "B4", seance.Prestige)
		setPct(f, sheet, "C4", seance.VarPrestige)
	}

	if err := writeHeaderRow(f, sheet, headerRowIdx, marketHeaders); err != nil {
		return err
	}

	evenStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorRowEven}},
	})
	if err != nil {
		return err
	}
	upStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: colorUp}})
	if err != nil {
		return err
	}
	downStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: colorDown}})
	if err != nil {
		return err
	}

	for i, c := range cours {
		row := firstDataRow + i
		values := []interface{}{
			c.Compartiment, c.SecteurCode, c.Symbole, c.Titre,
			deref(c.CoursPrecedent), deref(c.CoursOuverture), deref(c.CoursCloture),
			deref(c.VariationJour), derefInt(c.Volume), derefInt(c.ValeurSeance),
			deref(c.CoursReference), deref(c.VariationAnnuelle),
			deref(c.DividendeMontant), deref(c.RendementNet), deref(c.PER),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if v != nil {
				f.SetCellValue(sheet, cell, v)
			}
		}
		if row%2 == 0 {
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(values), row)
			f.SetCellStyle(sheet, first, last, evenStyle)
		}
		if c.VariationJour != nil {
			cell, _ := excelize.CoordinatesToCellName(8, row)
			if *c.VariationJour > 0 {
				f.SetCellStyle(sheet, cell, cell, upStyle)
			} else if *c.VariationJour < 0 {
				f.SetCellStyle(sheet, cell, cell, downStyle)
			}
		}
	}

	widths := []float64{8, 5, 8, 30, 12, 12, 12, 10, 12, 16, 12, 12, 12, 8, 8}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
	return nil
}

func writeMoversSheet(f *excelize.File, dateStr string, hausses, baisses []models.Cours) error {
	sheet := "Pépite & Flop"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12, Color: colorHeader}})
	if err != nil {
		return err
	}
	upStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: colorUp}})
	if err != nil {
		return err
	}
	downStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: colorDown}})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("TOP HAUSSES & BAISSES — %s", dateStr))
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	f.SetCellValue(sheet, "A2", "TOP 5 HAUSSES")
	f.SetCellStyle(sheet, "A2", "A2", upStyle)
	if err := writeHeaderRow(f, sheet, 3, moversHeaders); err != nil {
		return err
	}
	writeMoverRows(f, sheet, 4, hausses)

	f.SetCellValue(sheet, "A10", "TOP 5 BAISSES")
	f.SetCellStyle(sheet, "A10", "A10", downStyle)
	if err := writeHeaderRow(f, sheet, 11, moversHeaders); err != nil {
		return err
	}
	writeMoverRows(f, sheet, 12, baisses)
	return nil
}

func writeMoverRows(f *excelize.File, sheet string, startRow int, cours []models.Cours) {
	for i, c := range cours {
		values := []interface{}{
			c.Symbole, c.Titre, deref(c.CoursCloture),
			deref(c.VariationJour), derefInt(c.Volume), derefInt(c.ValeurSeance),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, startRow+i)
			if v != nil {
				f.SetCellValue(sheet, cell, v)
			}
		}
	}
}

func writeHeaderRow(f *excelize.File, sheet string, row int, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorHeader}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return f.SetCellStyle(sheet, first, last, style)
}

func deref(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func derefInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func setFloat(f *excelize.File, sheet, cell string, v *float64) {
	if v != nil {
		f.SetCellValue(sheet, cell, *v)
	}
}

func setPct(f *excelize.File, sheet, cell string, v *float64) {
	if v != nil {
		f.SetCellValue(sheet, cell, fmt.Sprintf("%+.2f%%", *v))
	}
}
