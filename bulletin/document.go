// Package bulletin extracts structured market data from the BRVM
// "Bulletin Officiel de la Cote", a layout-driven PDF with no stable
// schema. Extraction is defensive throughout: a pattern that does not
// match yields a missing field, never an error.
package bulletin

// Document is a decoded multi-page bulletin. The page index is zero-based.
// Implementations that cannot detect tables (plain-text PDF readers) return
// nil from PageTables; row extraction then runs on raw text.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int
	// PageText returns the extracted plain text of a page, or "" when the
	// page has none.
	PageText(page int) string
	// PageTables returns the tabular regions detected on a page, each as
	// rows of cell texts. Cells may be empty.
	PageTables(page int) [][][]string
}
