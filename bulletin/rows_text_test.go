package bulletin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textDoc(page2 string, page3 string) fakeDoc {
	return fakeDoc{texts: []string{"page1", "page2", page2, page3}}
}

func TestTextStrategyParsesLine(t *testing.T) {
	page := strings.Join([]string{
		"COMPARTIMENT PRESTIGE",
		"FIN SGBC SOCIETE GENERALE COTE D'IVOIRE 22 000 22 100 22 500 +2,27% 1 200 27 000 000",
	}, "\n")

	rows := NewTextStrategy(DefaultRefData(), DefaultContentPages).ExtractRows(textDoc(page, ""))
	require.Len(t, rows, 1)

	c := rows[0]
	assert.Equal(t, "SGBC", c.Symbole)
	assert.Equal(t, "FIN", c.SecteurCode)
	assert.Equal(t, "SOCIETE GENERALE COTE D'IVOIRE", c.Titre)
	assert.Equal(t, CompartimentPrestige, c.Compartiment)

	require.NotNil(t, c.CoursPrecedent)
	assert.Equal(t, 22000.0, *c.CoursPrecedent)
	require.NotNil(t, c.VariationJour)
	assert.Equal(t, 2.27, *c.VariationJour)
	require.NotNil(t, c.Volume)
	assert.Equal(t, int64(1200), *c.Volume)
	require.NotNil(t, c.ValeurSeance)
	assert.Equal(t, int64(27000000), *c.ValeurSeance)
}

func TestTextStrategyTierCursor(t *testing.T) {
	page := strings.Join([]string{
		"COMPARTIMENT PRESTIGE",
		"TEL SNTS SONATEL 22 000 22 100 22 500",
		"COMPARTIMENT PRINCIPAL",
		"FIN BOAB BANK OF AFRICA BENIN 4 000 4 010 4 050",
	}, "\n")

	rows := NewTextStrategy(DefaultRefData(), DefaultContentPages).ExtractRows(textDoc(page, ""))
	require.Len(t, rows, 2)
	assert.Equal(t, CompartimentPrestige, rows[0].Compartiment)
	assert.Equal(t, CompartimentPrincipal, rows[1].Compartiment)
}

func TestTextStrategyStripsAsterisk(t *testing.T) {
	rows := NewTextStrategy(DefaultRefData(), DefaultContentPages).
		ExtractRows(textDoc("TEL SNTS* SONATEL 22 000 22 100 22 500", ""))
	require.Len(t, rows, 1)
	assert.Equal(t, "SNTS", rows[0].Symbole)
}

func TestTextStrategyVolumeGuard(t *testing.T) {
	// The 5th numeric is an implausible volume; the slot stays absent but
	// the following slot still binds positionally.
	line := "FIN SGBC TITRE 100 101 102 1,50 2000000000 500"

	rows := NewTextStrategy(DefaultRefData(), DefaultContentPages).ExtractRows(textDoc(line, ""))
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Volume)
	require.NotNil(t, rows[0].ValeurSeance)
	assert.Equal(t, int64(500), *rows[0].ValeurSeance)
}

func TestTextStrategyDedupesPerPage(t *testing.T) {
	page := strings.Join([]string{
		"TEL SNTS SONATEL 22 000 22 100 22 500",
		"TEL SNTS SONATEL 22 000 22 100 22 500",
	}, "\n")

	rows := NewTextStrategy(DefaultRefData(), DefaultContentPages).ExtractRows(textDoc(page, ""))
	require.Len(t, rows, 1)

	// A repeat on another page is kept; uniqueness across pages is the
	// store's insert-if-absent constraint.
	rows = NewTextStrategy(DefaultRefData(), DefaultContentPages).
		ExtractRows(textDoc("TEL SNTS SONATEL 22 000 22 100 22 500", "TEL SNTS SONATEL 22 000 22 100 22 500"))
	assert.Len(t, rows, 2)
}

func TestTextStrategySkipsThinLines(t *testing.T) {
	page := strings.Join([]string{
		"SNTS 22 000",        // 1 numeric
		"no symbol 1 2 3 4",  // no known symbol
		"",
	}, "\n")

	rows := NewTextStrategy(DefaultRefData(), DefaultContentPages).ExtractRows(textDoc(page, ""))
	assert.Empty(t, rows)
}

func TestExtractNumbers(t *testing.T) {
	cases := []struct {
		line string
		want []float64
	}{
		{"22 000 22 100 22 500", []float64{22000, 22100, 22500}},
		{"100 101 102", []float64{100, 101, 102}},
		{"2000000000 500", []float64{2000000000, 500}},
		{"1 200 +2,27% 27 000 000", []float64{1200, 2.27, 27000000}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, extractNumbers(tc.line), tc.line)
	}
}

func TestTextStrategyLowPricedQuoteLine(t *testing.T) {
	// Prices in the low hundreds are printed three digits wide, side by
	// side; they must bind as three prices, not merge into one figure.
	rows := NewTextStrategy(DefaultRefData(), DefaultContentPages).
		ExtractRows(textDoc("TEL SNTS SONATEL 100 101 102 1,50 500", ""))
	require.Len(t, rows, 1)

	c := rows[0]
	require.NotNil(t, c.CoursPrecedent)
	assert.Equal(t, 100.0, *c.CoursPrecedent)
	require.NotNil(t, c.CoursCloture)
	assert.Equal(t, 102.0, *c.CoursCloture)
	require.NotNil(t, c.VariationJour)
	assert.Equal(t, 1.5, *c.VariationJour)
	require.NotNil(t, c.Volume)
	assert.EqualValues(t, 500, *c.Volume)
}

func TestTextStrategyNoDerivedVariation(t *testing.T) {
	// Unlike the table path, raw-text recovery never synthesises the day
	// variation: with three numerics the 4th slot simply stays absent.
	rows := NewTextStrategy(DefaultRefData(), DefaultContentPages).
		ExtractRows(textDoc("TEL SNTS SONATEL 100 101 102", ""))
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].VariationJour)
}
