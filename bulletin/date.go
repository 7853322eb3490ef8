package bulletin

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Session header on page 1, e.g. "mercredi 11 février 2026".
var reSessionDate = regexp.MustCompile(`(?i)(lundi|mardi|mercredi|jeudi|vendredi)\s+(\d{1,2})\s+` +
	`(janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+(\d{4})`)

var moisFrancais = map[string]time.Month{
	"janvier":   time.January,
	"février":   time.February,
	"mars":      time.March,
	"avril":     time.April,
	"mai":       time.May,
	"juin":      time.June,
	"juillet":   time.July,
	"août":      time.August,
	"septembre": time.September,
	"octobre":   time.October,
	"novembre":  time.November,
	"décembre":  time.December,
}

// ResolveSessionDate extracts the session date from page-1 text. The zero
// time is returned when no date phrase matches; the caller then falls back
// to its own hint.
func ResolveSessionDate(text string) time.Time {
	m := reSessionDate.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}
	}
	jour, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}
	}
	mois, ok := moisFrancais[strings.ToLower(m[3])]
	if !ok {
		return time.Time{}
	}
	annee, err := strconv.Atoi(m[4])
	if err != nil {
		return time.Time{}
	}
	return time.Date(annee, mois, jour, 0, 0, 0, 0, time.UTC)
}
