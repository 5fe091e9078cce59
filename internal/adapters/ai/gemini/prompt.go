package gemini

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"livestock-registry/internal/domain/registrations"
)

const identifySystem = `You are an expert in Indian cattle and buffalo breeds working for a livestock registration program.
Identify the breed of the single animal shown in the photos. All photos show the same animal.
Only answer with breeds from the allowed list; use "Unknown" when the photos are not usable.
Respond with JSON only.`

const detectSystem = `You look at a photo taken by a field agent and list every cattle or buffalo visible.
For each animal report species ("Cattle" or "Buffalo") and gender ("Male" or "Female").
If no cattle or buffalo is visible, return an empty list and explain why in "error".
Respond with JSON only.`

func identifyPrompt(species registrations.Species, allowed []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Declared species: %s.\n", species)
	if len(allowed) > 0 {
		fmt.Fprintf(&b, "Allowed breeds: %s.\n", strings.Join(allowed, ", "))
	}
	b.WriteString("Return breedName, confidence (High, Medium or Low), milkYieldPotential, careNotes, reasoning ")
	b.WriteString("and up to 3 topCandidates with breedName and confidence as a percentage between 0 and 100.")
	return b.String()
}

func chatSystem(breedName string) string {
	return fmt.Sprintf("You are a livestock advisor. Answer questions from a field agent about the %s breed: "+
		"care, feeding, milk yield, health and breeding. Keep answers short and practical.", breedName)
}

var breedSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"breedName":          {Type: genai.TypeString},
		"confidence":         {Type: genai.TypeString, Enum: []string{"High", "Medium", "Low"}},
		"milkYieldPotential": {Type: genai.TypeString},
		"careNotes":          {Type: genai.TypeString},
		"reasoning":          {Type: genai.TypeString},
		"topCandidates": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"breedName":  {Type: genai.TypeString},
					"confidence": {Type: genai.TypeNumber},
				},
				Required: []string{"breedName", "confidence"},
			},
		},
	},
	Required: []string{"breedName", "confidence", "reasoning"},
}

var detectSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"error": {Type: genai.TypeString},
		"animals": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"species": {Type: genai.TypeString, Enum: []string{"Cattle", "Buffalo"}},
					"gender":  {Type: genai.TypeString, Enum: []string{"Male", "Female"}},
				},
			},
		},
	},
	Required: []string{"animals"},
}
