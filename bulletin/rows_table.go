package bulletin

import (
	"strings"

	"github.com/viktsys/brvmwatch/models"
)

// TableStrategy parses the tabular regions detected on the content pages.
// A row is a security row iff one of its cells is a known symbol; the
// surrounding cells are then classified positionally.
type TableStrategy struct {
	ref   RefData
	pages []int

	// A real quote line spans at least this many cells; anything shorter
	// is a heading or separator fragment.
	minCells    int
	minNumerics int
}

func NewTableStrategy(ref RefData, pages []int) *TableStrategy {
	return &TableStrategy{ref: ref, pages: pages, minCells: 6, minNumerics: 3}
}

func (t *TableStrategy) Name() string { return "table" }

func (t *TableStrategy) ExtractRows(doc Document) []models.Cours {
	var cours []models.Cours
	tier := ""
	for _, page := range t.pages {
		if page >= doc.PageCount() {
			continue
		}
		// Table regions lose their position relative to the headings, so
		// the tier cursor can only move at page granularity. Both headings
		// share a page when PRINCIPAL starts mid-page; only the PRESTIGE
		// one is trusted here.
		if strings.Contains(doc.PageText(page), headingPrestige) {
			tier = CompartimentPrestige
		}
		for _, table := range doc.PageTables(page) {
			if len(table) < 2 {
				continue
			}
			for _, row := range table {
				c, ok := t.parseRow(row)
				if !ok {
					continue
				}
				c.Compartiment = tier
				cours = append(cours, c)
			}
		}
	}
	return cours
}

func (t *TableStrategy) parseRow(row []string) (models.Cours, bool) {
	var c models.Cours
	if len(row) < t.minCells {
		return c, false
	}

	symIdx := -1
	for i, cell := range row {
		cellStr := strings.ToUpper(strings.TrimSpace(cell))
		if t.ref.IsSymbol(cellStr) {
			c.Symbole = cellStr
			symIdx = i
			break
		}
	}
	if symIdx < 0 {
		return c, false
	}

	// The sector code sits in the cell before the symbol, or two back when
	// the detector split an empty cell in between.
	for _, back := range []int{1, 2} {
		if symIdx-back < 0 {
			break
		}
		prev := strings.ToUpper(strings.TrimSpace(row[symIdx-back]))
		if t.ref.IsSecteur(prev) {
			c.SecteurCode = prev
			c.SecteurLibelle = t.ref.SecteurLibelle(prev)
			break
		}
	}

	var nums []float64
	for _, cell := range row {
		cellStr := strings.TrimSpace(cell)
		if cellStr == "" {
			continue
		}
		upper := strings.ToUpper(cellStr)
		if t.ref.IsSymbol(upper) || t.ref.IsSecteur(upper) {
			continue
		}
		if v := ParseFloat(cellStr); v != nil {
			nums = append(nums, *v)
			continue
		}
		if c.Titre == "" && len([]rune(cellStr)) > 3 && !allDigits(cellStr) {
			c.Titre = cellStr
		}
	}
	if len(nums) < t.minNumerics {
		return c, false
	}

	assignSlots(&c, nums, quoteSlots(0))
	deriveVariationJour(&c)
	return c, true
}

func allDigits(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
