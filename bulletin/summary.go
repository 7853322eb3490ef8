package bulletin

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Summary is the page-1 extraction result. Fields are independently
// optional; a pattern that does not match leaves its field nil.
type Summary struct {
	DateTexte string
	SeanceNum *int

	Composite            *float64
	VarComposite         *float64
	VarCompositeAnnuelle *float64
	Brvm30               *float64
	VarBrvm30            *float64
	VarBrvm30Annuelle    *float64
	Prestige             *float64
	VarPrestige          *float64
	VarPrestigeAnnuelle  *float64

	Capitalisation *int64
	VolumeTotal    *int64
	ValeurTotale   *int64
	NbTitres       *int
	NbHausse       *int
	NbBaisse       *int
	NbInchange     *int
}

var (
	reSeanceNum = regexp.MustCompile(`N°\s*(\d+)`)

	reComposite = regexp.MustCompile(`BRVM\s+COMPOSITE\s+([\d\s,\.]+)`)
	reBrvm30    = regexp.MustCompile(`BRVM\s+30\s+([\d,\.]+)`)
	rePrestige  = regexp.MustCompile(`BRVM\s+PRESTIGE\s+([\d,\.]+)`)

	reVarJour     = regexp.MustCompile(`Variation\s+Jour\s+([-+]?[\d,\.]+)\s*%`)
	reVarAnnuelle = regexp.MustCompile(`Variation\s+annuelle\s+([-+]?[\d,\.]+)\s*%`)

	// Label spellings drift between issues (accents, hyphenation); the
	// classes below absorb the variants seen so far.
	reCapitalisation = regexp.MustCompile(`Capitalisation\s+bours[iè]+re\s*\(FCFA\)[^\d]*([\d\s]+)`)
	reVolumeTotal    = regexp.MustCompile(`Volume\s+échangé\s*\(Actions[^)]*\)\s*([\d\s]+)`)
	reValeurTotale   = regexp.MustCompile(`Valeur\s+trans[iig]+ée\s*\(FCFA\)\s*\(Actions[^)]*\)\s*([\d\s]+)`)

	reNbTitres   = regexp.MustCompile(`Nombre\s+de\s+titres\s+transigés\s+(\d+)`)
	reNbHausse   = regexp.MustCompile(`Nombre\s+de\s+titres\s+en\s+hausse\s+(\d+)`)
	reNbBaisse   = regexp.MustCompile(`Nombre\s+de\s+titres\s+en\s+baisse\s+(\d+)`)
	reNbInchange = regexp.MustCompile(`Nombre\s+de\s+titres\s+inchang[eé]s\s+(\d+)`)
)

// ExtractSummary pulls the session header, the three index levels, their
// variations and the aggregate market statistics out of page-1 text. It
// never fails: every unmatched pattern just leaves its field nil.
func ExtractSummary(text string) Summary {
	var s Summary

	if m := reSessionDate.FindStringSubmatch(text); m != nil {
		s.DateTexte = strings.Join(m[1:], " ")
	}
	if m := reSeanceNum.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			s.SeanceNum = &n
		}
	}

	if m := reComposite.FindStringSubmatch(text); m != nil {
		s.Composite = ParseFloat(m[1])
	}
	if m := reBrvm30.FindStringSubmatch(text); m != nil {
		s.Brvm30 = ParseFloat(m[1])
	}
	if m := rePrestige.FindStringSubmatch(text); m != nil {
		s.Prestige = ParseFloat(m[1])
	}

	// The variation blocks carry no index name of their own. The bulletin
	// prints them in index order, so the 1st/2nd/3rd occurrence is taken
	// as composite/BRVM 30/prestige. This is a layout assumption with no
	// structural anchor in the text.
	varJour := reVarJour.FindAllStringSubmatch(text, -1)
	varAnnuelle := reVarAnnuelle.FindAllStringSubmatch(text, -1)
	assignVariations(varJour, &s.VarComposite, &s.VarBrvm30, &s.VarPrestige)
	assignVariations(varAnnuelle, &s.VarCompositeAnnuelle, &s.VarBrvm30Annuelle, &s.VarPrestigeAnnuelle)

	if m := reCapitalisation.FindStringSubmatch(text); m != nil {
		s.Capitalisation = ParseInt(m[1])
	}
	if m := reVolumeTotal.FindStringSubmatch(text); m != nil {
		s.VolumeTotal = ParseInt(m[1])
	}
	if m := reValeurTotale.FindStringSubmatch(text); m != nil {
		s.ValeurTotale = ParseInt(m[1])
	}

	s.NbTitres = matchCount(reNbTitres, text)
	s.NbHausse = matchCount(reNbHausse, text)
	s.NbBaisse = matchCount(reNbBaisse, text)
	s.NbInchange = matchCount(reNbInchange, text)

	log.Printf("Page 1 extracted: composite=%s brvm30=%s prestige=%s seance=%s",
		fmtFloat(s.Composite), fmtFloat(s.Brvm30), fmtFloat(s.Prestige), fmtInt(s.SeanceNum))
	return s
}

func assignVariations(matches [][]string, slots ...**float64) {
	for i, slot := range slots {
		if i < len(matches) {
			*slot = ParseFloat(matches[i][1])
		}
	}
}

func matchCount(re *regexp.Regexp, text string) *int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "nil"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func fmtInt(v *int) string {
	if v == nil {
		return "nil"
	}
	return strconv.Itoa(*v)
}
