package bulletin

import (
	"math"

	"github.com/viktsys/brvmwatch/models"
)

// RowStrategy extracts security quote rows from a bulletin's content pages.
// The two implementations share one contract so the extractor can swap the
// fragile one in when the structured one under-yields.
type RowStrategy interface {
	Name() string
	ExtractRows(doc Document) []models.Cours
}

// Compartiment headings and labels as printed in the bulletin.
const (
	CompartimentPrestige  = "PRESTIGE"
	CompartimentPrincipal = "PRINCIPAL"

	headingPrestige  = "COMPARTIMENT PRESTIGE"
	headingPrincipal = "COMPARTIMENT PRINCIPAL"
)

// fieldSlot binds one position of the recovered numeric sequence to a named
// quote field. maxAbs, when non-zero, rejects implausible magnitudes for the
// slot: the value is dropped and the field stays absent.
type fieldSlot struct {
	name   string
	maxAbs float64
	set    func(*models.Cours, float64)
}

func setFloat(dst func(*models.Cours) **float64) func(*models.Cours, float64) {
	return func(c *models.Cours, v float64) { *dst(c) = &v }
}

func setInt(dst func(*models.Cours) **int64) func(*models.Cours, float64) {
	return func(c *models.Cours, v float64) {
		n := int64(v)
		*dst(c) = &n
	}
}

// quoteSlots is the column order of the "MARCHE DES ACTIONS" table. The
// volume guard only applies on the raw-text path, where an unrelated large
// figure can slip into the sequence; maxVolume 0 disables it.
func quoteSlots(maxVolume float64) []fieldSlot {
	return []fieldSlot{
		{"cours_precedent", 0, setFloat(func(c *models.Cours) **float64 { return &c.CoursPrecedent })},
		{"cours_ouverture", 0, setFloat(func(c *models.Cours) **float64 { return &c.CoursOuverture })},
		{"cours_cloture", 0, setFloat(func(c *models.Cours) **float64 { return &c.CoursCloture })},
		{"variation_jour", 0, setFloat(func(c *models.Cours) **float64 { return &c.VariationJour })},
		{"volume", maxVolume, setInt(func(c *models.Cours) **int64 { return &c.Volume })},
		{"valeur_seance", 0, setInt(func(c *models.Cours) **int64 { return &c.ValeurSeance })},
		{"cours_reference", 0, setFloat(func(c *models.Cours) **float64 { return &c.CoursReference })},
		{"variation_annuelle", 0, setFloat(func(c *models.Cours) **float64 { return &c.VariationAnnuelle })},
		{"dividende_montant", 0, setFloat(func(c *models.Cours) **float64 { return &c.DividendeMontant })},
		{"rendement_net", 0, setFloat(func(c *models.Cours) **float64 { return &c.RendementNet })},
		{"per", 0, setFloat(func(c *models.Cours) **float64 { return &c.PER })},
	}
}

// assignSlots consumes the numeric sequence and the slot list in lock-step.
// A short sequence leaves the remaining fields absent; an out-of-range value
// skips its slot only.
func assignSlots(c *models.Cours, nums []float64, slots []fieldSlot) {
	for i, slot := range slots {
		if i >= len(nums) {
			return
		}
		v := nums[i]
		if slot.maxAbs > 0 && math.Abs(v) >= slot.maxAbs {
			continue
		}
		slot.set(c, v)
	}
}

// deriveVariationJour computes the day variation from the closing and
// previous prices when the bulletin's own column was absent. An explicit
// value always takes precedence.
func deriveVariationJour(c *models.Cours) {
	if c.VariationJour != nil || c.CoursCloture == nil || c.CoursPrecedent == nil || *c.CoursPrecedent == 0 {
		return
	}
	v := math.Round((*c.CoursCloture-*c.CoursPrecedent)/(*c.CoursPrecedent)*100*100) / 100
	c.VariationJour = &v
}
