// Package collect drives the bulletin pipeline: download, extract, persist.
// Processing is strictly sequential; one bulletin is fully handled before
// the next date is considered.
package collect

import (
	"fmt"
	"log"
	"time"

	"github.com/viktsys/brvmwatch/bulletin"
	"github.com/viktsys/brvmwatch/models"
)

// Store is the persistence collaborator. Seances are replaced wholesale;
// cours inserts are idempotent on (date, symbole).
type Store interface {
	UpsertSeance(seance *models.Seance) error
	InsertCoursIfAbsent(cours []models.Cours) (int64, error)
	RefreshIndicesSectoriels(date time.Time) error
}

// Downloader fetches the bulletin PDF for a date and returns a local path.
type Downloader interface {
	Fetch(date time.Time, force bool) (string, error)
}

// Opener decodes a bulletin file into a Document.
type Opener func(path string) (bulletin.Document, error)

type Collector struct {
	store     Store
	dl        Downloader
	open      Opener
	extractor *bulletin.Extractor
}

func NewCollector(store Store, dl Downloader, open Opener, extractor *bulletin.Extractor) *Collector {
	return &Collector{store: store, dl: dl, open: open, extractor: extractor}
}

// Outcome summarises one processed bulletin.
type Outcome struct {
	Date       time.Time `json:"date"`
	SeanceNum  *int      `json:"seance_num"`
	NbExtraits int       `json:"nb_extraits"`
	NbInseres  int64     `json:"nb_inseres"`
	Strategy   string    `json:"strategy"`
}

// IsTradingDay reports whether the exchange is open on the given date.
func IsTradingDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CollectDate downloads and processes the bulletin of one date. Weekend
// dates short-circuit before any download; a nil Outcome with a nil error
// means the date was skipped.
func (c *Collector) CollectDate(date time.Time, force bool) (*Outcome, error) {
	if !IsTradingDay(date) {
		log.Printf("%s is a weekend, skipped", date.Format("2006-01-02"))
		return nil, nil
	}

	path, err := c.dl.Fetch(date, force)
	if err != nil {
		return nil, fmt.Errorf("download failed for %s: %w", date.Format("2006-01-02"), err)
	}
	return c.ProcessFile(path, date)
}

// CollectRange processes bulletins in ascending date order. A failure on
// one date is logged and skipped; it never aborts the range.
func (c *Collector) CollectRange(start, end time.Time, force bool) []Outcome {
	var outcomes []Outcome
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		outcome, err := c.CollectDate(date, force)
		if err != nil {
			log.Printf("Skipping %s: %v", date.Format("2006-01-02"), err)
			continue
		}
		if outcome != nil {
			outcomes = append(outcomes, *outcome)
		}
	}
	return outcomes
}

// ProcessFile extracts and persists a local bulletin file. hint is the date
// the caller believes the bulletin covers; the date printed in the bulletin
// is authoritative (see bulletin.Extractor.Extract).
func (c *Collector) ProcessFile(path string, hint time.Time) (*Outcome, error) {
	doc, err := c.open(path)
	if err != nil {
		return nil, err
	}

	result, err := c.extractor.Extract(doc, hint)
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", path, err)
	}

	if err := c.store.UpsertSeance(result.Seance()); err != nil {
		return nil, fmt.Errorf("failed to save seance %s: %w", result.Date.Format("2006-01-02"), err)
	}

	inserted, err := c.store.InsertCoursIfAbsent(result.Cours)
	if err != nil {
		return nil, fmt.Errorf("failed to save cours for %s: %w", result.Date.Format("2006-01-02"), err)
	}

	if err := c.store.RefreshIndicesSectoriels(result.Date); err != nil {
		log.Printf("Warning: sector roll-up refresh failed for %s: %v",
			result.Date.Format("2006-01-02"), err)
	}

	log.Printf("Seance %s saved: %d/%d cours inserted",
		result.Date.Format("2006-01-02"), inserted, len(result.Cours))
	return &Outcome{
		Date:       result.Date,
		SeanceNum:  result.Summary.SeanceNum,
		NbExtraits: len(result.Cours),
		NbInseres:  inserted,
		Strategy:   result.Strategy,
	}, nil
}
