package bulletin

import (
	"errors"
	"log"
	"time"

	"github.com/viktsys/brvmwatch/models"
)

// DefaultContentPages are the zero-based indices of the pages holding the
// securities table (bulletin pages 3 and 4).
var DefaultContentPages = []int{2, 3}

// DefaultMinRowYield is the smallest table-extraction row count accepted as
// a structurally sound result. The market lists ~47 securities; anything
// below this is a broken table grid, not a sparse session.
const DefaultMinRowYield = 5

// Extractor runs the full bulletin extraction: page-1 summary, session-date
// resolution, then row extraction through the primary strategy with a
// fallback when it under-yields.
type Extractor struct {
	primary  RowStrategy
	fallback RowStrategy

	MinRowYield int
}

func NewExtractor(ref RefData) *Extractor {
	return &Extractor{
		primary:     NewTableStrategy(ref, DefaultContentPages),
		fallback:    NewTextStrategy(ref, DefaultContentPages),
		MinRowYield: DefaultMinRowYield,
	}
}

// Result is one bulletin's extraction output. Date is the canonical session
// date every record is keyed by.
type Result struct {
	Date     time.Time
	Summary  Summary
	Cours    []models.Cours
	Strategy string
}

// Extract parses the whole document. hint is the date the caller expected
// the bulletin to cover; the date printed on page 1 wins when they differ,
// the hint only fills in when no date could be resolved at all.
func (e *Extractor) Extract(doc Document, hint time.Time) (*Result, error) {
	if doc == nil || doc.PageCount() == 0 {
		return nil, errors.New("bulletin document has no pages")
	}

	pageText := doc.PageText(0)
	summary := ExtractSummary(pageText)

	date := ResolveSessionDate(pageText)
	switch {
	case date.IsZero():
		log.Printf("Warning: no session date on page 1, keeping requested date %s",
			hint.Format("2006-01-02"))
		date = hint
	case !hint.IsZero() && !date.Equal(hint):
		log.Printf("Bulletin date %s differs from requested date %s, using bulletin date",
			date.Format("2006-01-02"), hint.Format("2006-01-02"))
	}

	rows := e.primary.ExtractRows(doc)
	strategy := e.primary.Name()
	if len(rows) < e.MinRowYield {
		log.Printf("Table extraction yielded %d rows (minimum %d), falling back to raw-text extraction",
			len(rows), e.MinRowYield)
		rows = e.fallback.ExtractRows(doc)
		strategy = e.fallback.Name()
	}
	for i := range rows {
		rows[i].Date = date
	}

	log.Printf("Extracted %d cours for %s via %s strategy",
		len(rows), date.Format("2006-01-02"), strategy)
	return &Result{Date: date, Summary: summary, Cours: rows, Strategy: strategy}, nil
}

// Seance maps the extraction result onto the persisted session record.
func (r *Result) Seance() *models.Seance {
	s := r.Summary
	return &models.Seance{
		Date:                 r.Date,
		SeanceNum:            s.SeanceNum,
		DateTexte:            s.DateTexte,
		Composite:            s.Composite,
		VarComposite:         s.VarComposite,
		VarCompositeAnnuelle: s.VarCompositeAnnuelle,
		Brvm30:               s.Brvm30,
		VarBrvm30:            s.VarBrvm30,
		VarBrvm30Annuelle:    s.VarBrvm30Annuelle,
		Prestige:             s.Prestige,
		VarPrestige:          s.VarPrestige,
		VarPrestigeAnnuelle:  s.VarPrestigeAnnuelle,
		Capitalisation:       s.Capitalisation,
		VolumeTotal:          s.VolumeTotal,
		ValeurTotale:         s.ValeurTotale,
		NbTitres:             s.NbTitres,
		NbHausse:             s.NbHausse,
		NbBaisse:             s.NbBaisse,
		NbInchange:           s.NbInchange,
	}
}
