package registrations

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_QuotesAndRows(t *testing.T) {
	reg := Registration{
		ID:        "REG-17356896001231234",
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Owner: Owner{
			Name:     `Jane, "The Farmer"`,
			Mobile:   "9876543210",
			IDType:   "Aadhaar",
			IDNumber: "1111",
			Village:  "Rampur",
			District: "Ludhiana",
			State:    "Punjab",
		},
		Animals: []Animal{
			{
				ID: "a1", Species: SpeciesCattle, Sex: SexFemale, AgeValue: "5", AgeUnit: AgeUnitYears,
				AIResult: &BreedResult{BreedName: "Gir", Confidence: ConfidenceHigh, Reasoning: "hump\nand ears"},
			},
			{
				ID: "a2", Species: SpeciesBuffalo, Sex: SexMale, AgeValue: "8", AgeUnit: AgeUnitMonths,
				AIResult: &BreedResult{Error: "model timeout", BreedName: UnknownBreed, Confidence: ConfidenceLow},
			},
			{ID: "a3", Species: SpeciesCattle},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Registration{reg}))

	assert.Contains(t, buf.String(), `"Jane, ""The Farmer"""`)

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header + one row per animal")
	assert.Equal(t, csvHeader, rows[0])
	assert.Len(t, rows[0], 20)

	first := rows[1]
	assert.Equal(t, `Jane, "The Farmer"`, first[2])
	assert.Equal(t, "5 Years", first[12])
	assert.Equal(t, "Gir", first[13])
	assert.Equal(t, "Success", first[15])
	assert.Equal(t, "hump\nand ears", first[16])

	second := rows[2]
	assert.Equal(t, "8 Months", second[12])
	assert.Equal(t, "Failed", second[15])
	assert.Equal(t, "model timeout", second[19])

	third := rows[3]
	assert.Equal(t, "Failed", third[15])
	assert.Equal(t, "not analyzed", third[19])
}

func TestWriteCSV_EmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, strings.Join(csvHeader, ",")+"\n", buf.String())
}
