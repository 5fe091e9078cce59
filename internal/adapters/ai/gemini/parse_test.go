package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livestock-registry/internal/domain/registrations"
)

func TestParseBreedResult(t *testing.T) {
	text := "```json\n" + `{
		"breedName": " Sahiwal ",
		"confidence": "medium",
		"milkYieldPotential": "8-10 L/day",
		"careNotes": "Heat tolerant",
		"reasoning": "Reddish coat, loose skin",
		"topCandidates": [
			{"breedName": "Sahiwal", "confidence": 62.44},
			{"breedName": "Red Sindhi", "confidence": 30},
			{"breedName": "", "confidence": 8}
		]
	}` + "\n```"

	res, err := parseBreedResult(text)
	require.NoError(t, err)
	assert.Empty(t, res.Error)
	assert.Equal(t, "Sahiwal", res.BreedName)
	assert.Equal(t, registrations.ConfidenceMedium, res.Confidence)
	assert.Equal(t, "8-10 L/day", res.MilkYieldPotential)
	require.Len(t, res.TopCandidates, 2)
	assert.Equal(t, 62.4, res.TopCandidates[0].Confidence)
	assert.Equal(t, 62.4, res.ConfidencePercent())
}

func TestParseBreedResult_FractionsAreScaled(t *testing.T) {
	res, err := parseBreedResult(`{"breedName":"Murrah","confidence":"High","reasoning":"x",
		"topCandidates":[{"breedName":"Murrah","confidence":0.9},{"breedName":"Nili-Ravi","confidence":0.1}]}`)
	require.NoError(t, err)
	assert.Equal(t, 90.0, res.TopCandidates[0].Confidence)
	assert.Equal(t, 10.0, res.TopCandidates[1].Confidence)
}

func TestParseBreedResult_Degraded(t *testing.T) {
	res, err := parseBreedResult(`{"error":"photo too dark"}`)
	require.NoError(t, err)
	assert.Equal(t, "photo too dark", res.Error)
	assert.Equal(t, registrations.UnknownBreed, res.BreedName)
	assert.Equal(t, registrations.ConfidenceLow, res.Confidence)

	res, err = parseBreedResult(`{"confidence":"??"}`)
	require.NoError(t, err)
	assert.Equal(t, registrations.UnknownBreed, res.BreedName)
	assert.Equal(t, registrations.ConfidenceLow, res.Confidence)

	_, err = parseBreedResult("not json")
	require.Error(t, err)
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, clampPercent(-3))
	assert.Equal(t, 100.0, clampPercent(180))
	assert.Equal(t, 55.5, clampPercent(55.54))
}

func TestParseDetection(t *testing.T) {
	res, err := parseDetection(`{"animals":[
		{"species":"cow","gender":"female"},
		{"species":"Buffalo","gender":"Male"},
		{"species":"goat","gender":"Male"},
		{"species":"Cattle","gender":"?"}
	]}`)
	require.NoError(t, err)
	require.Len(t, res.Animals, 3)
	assert.Equal(t, registrations.SpeciesCattle, res.Animals[0].Species)
	assert.Equal(t, registrations.SexFemale, res.Animals[0].Sex)
	assert.Equal(t, registrations.SpeciesBuffalo, res.Animals[1].Species)
	assert.Equal(t, registrations.SexMale, res.Animals[1].Sex)
	assert.Empty(t, res.Animals[2].Sex)

	res, err = parseDetection(`{"error":"no animals visible","animals":[]}`)
	require.NoError(t, err)
	assert.Equal(t, "no animals visible", res.Error)
	assert.Empty(t, res.Animals)
}
