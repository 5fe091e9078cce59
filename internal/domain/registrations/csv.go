package registrations

import (
	"encoding/csv"
	"io"
	"strings"
	"time"
)

const (
	analysisSuccess = "Success"
	analysisFailed  = "Failed"
)

var csvHeader = []string{
	"Registration ID",
	"Timestamp",
	"Owner Name",
	"Owner Mobile",
	"Owner ID Type",
	"Owner ID Number",
	"State",
	"District",
	"Village",
	"Animal UID",
	"Species",
	"Sex",
	"Age",
	"Breed Name",
	"Confidence",
	"AI Analysis Status",
	"AI Reasoning",
	"Milk Yield Potential",
	"Care Notes",
	"AI Error",
}

// WriteCSV escribe una fila por animal. encoding/csv aplica el escapado
// estándar (comillas dobles, comillas internas duplicadas).
func WriteCSV(w io.Writer, regs []Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range regs {
		for _, a := range r.Animals {
			if err := cw.Write(csvRow(r, a)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(r Registration, a Animal) []string {
	res := BreedResult{Error: "not analyzed"}
	if a.AIResult != nil {
		res = *a.AIResult
	}
	status := analysisSuccess
	if res.Failed() {
		status = analysisFailed
	}

	return []string{
		r.ID,
		r.Timestamp.UTC().Format(time.RFC3339),
		r.Owner.Name,
		r.Owner.Mobile,
		r.Owner.IDType,
		r.Owner.IDNumber,
		r.Owner.State,
		r.Owner.District,
		r.Owner.Village,
		a.ID,
		string(a.Species),
		string(a.Sex),
		strings.TrimSpace(a.AgeValue + " " + string(a.AgeUnit)),
		res.BreedName,
		string(res.Confidence),
		status,
		res.Reasoning,
		res.MilkYieldPotential,
		res.CareNotes,
		res.Error,
	}
}
