package bulletin

import (
	"regexp"
	"strings"

	"github.com/viktsys/brvmwatch/models"
)

// Numbers as printed in a quote line: optional sign, space-grouped
// thousands, comma or dot decimals, optional percent suffix.
var reLineNumber = regexp.MustCompile(`[-+]?\d+(?:[ \x{00A0}]\d{3})*(?:[,.]\d+)?(?:\s*%)?`)

func isGroupSep(r rune) bool { return r == ' ' || r == ' ' }

// extractNumbers returns the numeric values of a line in print order.
// Space-grouped thousands collapse into one value, but grouping is only
// trusted when the leading segment is shorter than a full group of three:
// adjacent standalone values that happen to be 3 digits wide (quotes in
// the low hundreds sit side by side in the text) would otherwise merge
// into one garbage number and shift every following column.
func extractNumbers(line string) []float64 {
	var nums []float64
	for _, raw := range reLineNumber.FindAllString(line, -1) {
		for _, tok := range splitMergedRun(raw) {
			if v := ParseFloat(tok); v != nil {
				nums = append(nums, *v)
			}
		}
	}
	return nums
}

// splitMergedRun undoes false grouping. A genuine grouped number leads
// with 1 or 2 digits ("1 200", "27 000 000"); anything else spanning a
// separator is a run of distinct column values and is split back apart.
func splitMergedRun(raw string) []string {
	head := raw
	if i := strings.IndexAny(raw, ",."); i >= 0 {
		head = raw[:i]
	}
	head = strings.TrimLeft(head, "+-")
	segments := strings.FieldsFunc(head, isGroupSep)
	if len(segments) < 2 || len(segments[0]) < 3 {
		return []string{raw}
	}
	return strings.FieldsFunc(raw, isGroupSep)
}

// Security name: the upper-case words between the symbol and the first
// figure of the line.
var reTitre = regexp.MustCompile(`^\s+([A-ZÉÈÊÀÂÎÏÔÙÛÜ' ()]+?)\s+\d`)

// TextStrategy recovers quote rows from raw page text, line by line. It is
// the fallback of last resort when no reliable column structure could be
// detected: all it assumes is that a line holding a known symbol is a quote
// line and that its numbers appear in column order.
type TextStrategy struct {
	ref         RefData
	pages       []int
	minNumerics int

	// MaxPlausibleVolume rejects a volume slot whose magnitude suggests the
	// pattern swallowed an unrelated figure (a capitalisation, a date run).
	// Tunable; the default is generous for BRVM volumes.
	MaxPlausibleVolume float64
}

func NewTextStrategy(ref RefData, pages []int) *TextStrategy {
	return &TextStrategy{ref: ref, pages: pages, minNumerics: 3, MaxPlausibleVolume: 1e9}
}

func (t *TextStrategy) Name() string { return "text" }

func (t *TextStrategy) ExtractRows(doc Document) []models.Cours {
	var cours []models.Cours
	tier := CompartimentPrestige
	for _, page := range t.pages {
		if page >= doc.PageCount() {
			continue
		}
		// The table header repeats around page breaks and can echo a row;
		// the first occurrence of a symbol on a page wins.
		seen := make(map[string]bool)
		for _, line := range strings.Split(doc.PageText(page), "\n") {
			upper := strings.ToUpper(line)
			if strings.Contains(upper, headingPrestige) {
				tier = CompartimentPrestige
			} else if strings.Contains(upper, headingPrincipal) {
				tier = CompartimentPrincipal
			}

			c, ok := t.parseLine(line)
			if !ok || seen[c.Symbole] {
				continue
			}
			seen[c.Symbole] = true
			c.Compartiment = tier
			cours = append(cours, c)
		}
	}
	return cours
}

func (t *TextStrategy) parseLine(line string) (models.Cours, bool) {
	var c models.Cours

	words := strings.Fields(line)
	symIdx := -1
	for i, word := range words {
		w := strings.TrimRight(strings.ToUpper(word), "*")
		if t.ref.IsSymbol(w) {
			c.Symbole = w
			symIdx = i
			break
		}
	}
	if symIdx < 0 {
		return c, false
	}

	for j := symIdx - 2; j < symIdx; j++ {
		if j < 0 {
			continue
		}
		w := strings.ToUpper(words[j])
		if t.ref.IsSecteur(w) {
			c.SecteurCode = w
			c.SecteurLibelle = t.ref.SecteurLibelle(w)
			break
		}
	}

	nums := extractNumbers(line)
	if len(nums) < t.minNumerics {
		return c, false
	}

	if pos := strings.Index(strings.ToUpper(line), c.Symbole); pos >= 0 {
		after := line[pos+len(c.Symbole):]
		if m := reTitre.FindStringSubmatch(after); m != nil {
			c.Titre = strings.TrimSpace(m[1])
		}
	}

	// The raw text never carries the dividend block in a recoverable
	// position; only the first eight columns are trusted.
	assignSlots(&c, nums, quoteSlots(t.MaxPlausibleVolume)[:8])
	return c, true
}
