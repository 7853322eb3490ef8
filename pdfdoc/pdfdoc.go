// Package pdfdoc adapts a PDF file to the bulletin.Document interface using
// plain-text page extraction. No table detection is available from the
// underlying reader, so documents opened here always go through the
// raw-text row strategy.
package pdfdoc

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

type Doc struct {
	pages []string
}

// Open decodes the PDF at path and extracts the text of every page up
// front. A page whose text cannot be decoded contributes an empty string;
// only a file-level failure is an error.
func Open(path string) (*Doc, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bulletin %s: %w", path, err)
	}
	defer f.Close()

	d := &Doc{pages: make([]string, 0, r.NumPage())}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			d.pages = append(d.pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		d.pages = append(d.pages, text)
	}
	return d, nil
}

func (d *Doc) PageCount() int { return len(d.pages) }

func (d *Doc) PageText(page int) string {
	if page < 0 || page >= len(d.pages) {
		return ""
	}
	return d.pages[page]
}

func (d *Doc) PageTables(page int) [][][]string { return nil }
