package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page1Sample = `BOURSE REGIONALE DES VALEURS MOBILIERES
BULLETIN OFFICIEL DE LA COTE N° 29
Séance du mercredi 11 février 2026

BRVM COMPOSITE 215,43
Variation Jour 1,25 %
Variation annuelle 8,40 %
BRVM 30 108,76
Variation Jour 0,95 %
Variation annuelle 7,12 %
BRVM PRESTIGE 121,02
Variation Jour -0,34 %
Variation annuelle 5,88 %

Capitalisation boursière (FCFA) : 10 500 123 456 789
Volume échangé (Actions) 512 345
Valeur transigée (FCFA) (Actions) 2 345 678 901
Nombre de titres transigés 41
Nombre de titres en hausse 18
Nombre de titres en baisse 15
Nombre de titres inchangés 8
`

func TestExtractSummary(t *testing.T) {
	s := ExtractSummary(page1Sample)

	require.NotNil(t, s.Composite)
	assert.Equal(t, 215.43, *s.Composite)
	require.NotNil(t, s.SeanceNum)
	assert.Equal(t, 29, *s.SeanceNum)

	// First/second/third variation occurrences belong to composite,
	// BRVM 30 and prestige, in page order.
	require.NotNil(t, s.VarComposite)
	assert.Equal(t, 1.25, *s.VarComposite)
	require.NotNil(t, s.VarBrvm30)
	assert.Equal(t, 0.95, *s.VarBrvm30)
	require.NotNil(t, s.VarPrestige)
	assert.Equal(t, -0.34, *s.VarPrestige)

	require.NotNil(t, s.VarCompositeAnnuelle)
	assert.Equal(t, 8.40, *s.VarCompositeAnnuelle)
	require.NotNil(t, s.VarPrestigeAnnuelle)
	assert.Equal(t, 5.88, *s.VarPrestigeAnnuelle)

	require.NotNil(t, s.Brvm30)
	assert.Equal(t, 108.76, *s.Brvm30)
	require.NotNil(t, s.Prestige)
	assert.Equal(t, 121.02, *s.Prestige)

	require.NotNil(t, s.Capitalisation)
	assert.Equal(t, int64(10500123456789), *s.Capitalisation)
	require.NotNil(t, s.VolumeTotal)
	assert.Equal(t, int64(512345), *s.VolumeTotal)
	require.NotNil(t, s.ValeurTotale)
	assert.Equal(t, int64(2345678901), *s.ValeurTotale)

	require.NotNil(t, s.NbTitres)
	assert.Equal(t, 41, *s.NbTitres)
	require.NotNil(t, s.NbHausse)
	assert.Equal(t, 18, *s.NbHausse)
	require.NotNil(t, s.NbBaisse)
	assert.Equal(t, 15, *s.NbBaisse)
	require.NotNil(t, s.NbInchange)
	assert.Equal(t, 8, *s.NbInchange)

	assert.Equal(t, "mercredi 11 février 2026", s.DateTexte)
}

func TestExtractSummaryMinimal(t *testing.T) {
	s := ExtractSummary("BRVM COMPOSITE 215,43\nVariation Jour 1,25 %\nN° 29")

	require.NotNil(t, s.Composite)
	assert.Equal(t, 215.43, *s.Composite)
	require.NotNil(t, s.VarComposite)
	assert.Equal(t, 1.25, *s.VarComposite)
	require.NotNil(t, s.SeanceNum)
	assert.Equal(t, 29, *s.SeanceNum)
}

// Missing patterns never fail the extraction; they only leave fields nil.
func TestExtractSummaryPartial(t *testing.T) {
	s := ExtractSummary("nothing matches here")

	assert.Nil(t, s.Composite)
	assert.Nil(t, s.VarComposite)
	assert.Nil(t, s.SeanceNum)
	assert.Nil(t, s.Capitalisation)
	assert.Nil(t, s.NbTitres)
	assert.Empty(t, s.DateTexte)
}

func TestExtractSummaryLabelVariants(t *testing.T) {
	s := ExtractSummary("Capitalisation boursière (FCFA) 9 000 000\nNombre de titres inchanges 3")

	require.NotNil(t, s.Capitalisation)
	assert.Equal(t, int64(9000000), *s.Capitalisation)
	require.NotNil(t, s.NbInchange)
	assert.Equal(t, 3, *s.NbInchange)
}
