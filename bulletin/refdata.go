package bulletin

// RefData carries the fixed reference sets consulted during extraction:
// the known security symbols and the sector-code labels. It is built once
// and never mutated, so a single value can back every strategy. Injecting
// it keeps the extractor usable for another listing without code change.
type RefData struct {
	symbols  map[string]bool
	secteurs map[string]string
}

func NewRefData(symbols []string, secteurs map[string]string) RefData {
	ref := RefData{
		symbols:  make(map[string]bool, len(symbols)),
		secteurs: make(map[string]string, len(secteurs)),
	}
	for _, s := range symbols {
		ref.symbols[s] = true
	}
	for code, libelle := range secteurs {
		ref.secteurs[code] = libelle
	}
	return ref
}

func (r RefData) IsSymbol(s string) bool { return r.symbols[s] }

func (r RefData) IsSecteur(code string) bool {
	_, ok := r.secteurs[code]
	return ok
}

func (r RefData) SecteurLibelle(code string) string { return r.secteurs[code] }

// DefaultRefData returns the BRVM listing as of bulletin N°29 (séance of
// 11 February 2026): 12 PRESTIGE and 35 PRINCIPAL symbols, and the seven
// sector codes used in the securities table.
func DefaultRefData() RefData {
	return NewRefData(brvmSymbols, brvmSecteurs)
}

var brvmSecteurs = map[string]string{
	"TEL": "BRVM-TELECOMMUNICATIONS",
	"FIN": "BRVM-SERVICES FINANCIERS",
	"CD":  "BRVM-CONSOMMATION DISCRETIONNAIRE",
	"CB":  "BRVM-CONSOMMATION DE BASE",
	"IND": "BRVM-INDUSTRIELS",
	"ENE": "BRVM-ENERGIE",
	"SPU": "BRVM-SERVICES PUBLICS",
}

var brvmSymbols = []string{
	// COMPARTIMENT PRESTIGE
	"NTLC", "PALC", "SPHC", "SMBC", "TTLC", "TTLS",
	"ECOC", "SGBC", "SIBC", "ONTBF", "ORAC", "SNTS",
	// COMPARTIMENT PRINCIPAL
	"SCRC", "SICC", "SLBC", "SOGC", "STBC", "UNLC",
	"ABJC", "BNBC", "CFAC", "LNBB", "NEIC", "PRSC", "UNXC",
	"SHEC", "BICB", "BICC", "BOAB", "BOABF", "BOAC", "BOAM",
	"BOAN", "BOAS", "CBIBF", "ETIT", "NSBC", "ORGT", "SAFC",
	"CABC", "FTSC", "SDSC", "SEMC", "SIVC", "STAC",
	"CIEC", "SDCC",
}
