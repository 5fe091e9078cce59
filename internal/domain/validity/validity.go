// Package validity calcula la ventana de validez de un certificado a partir de
// la edad del animal y la fecha de emisión.
package validity

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Unit string

const (
	Years  Unit = "Years"
	Months Unit = "Months"
)

const (
	ReasonCalf     = "Calf — Valid until 1st Birthday"
	ReasonYoung    = "Young Animal — 1-Year Validity"
	ReasonMature   = "Mature Adult — 2-Year Validity"
	ReasonSenior   = "Senior Animal — 1-Year Validity"
	ReasonStandard = "Standard 1-Year Validity"
)

// Límites de banda en meses (inclusive por arriba).
const (
	calfMaxMonths   = 6
	youngMaxMonths  = 36
	matureMaxMonths = 96

	daysPerMonth = 30
)

type Result struct {
	ValidUntil time.Time `json:"validUntil"`
	Reason     string    `json:"reason"`
	IsSenior   bool      `json:"isSenior"`
}

// Compute nunca falla: cualquier entrada mal formada cae en la banda estándar.
func Compute(ageValue string, unit Unit, issueDate time.Time) Result {
	months, ok := toMonths(ageValue, unit)
	if !ok {
		return fallback(issueDate)
	}

	switch {
	case months <= calfMaxMonths:
		return Result{
			ValidUntil: birthDate(issueDate, months).AddDate(1, 0, 0),
			Reason:     ReasonCalf,
		}
	case months <= youngMaxMonths:
		return Result{ValidUntil: issueDate.AddDate(1, 0, 0), Reason: ReasonYoung}
	case months <= matureMaxMonths:
		return Result{ValidUntil: issueDate.AddDate(2, 0, 0), Reason: ReasonMature}
	default:
		return Result{ValidUntil: issueDate.AddDate(1, 0, 0), Reason: ReasonSenior, IsSenior: true}
	}
}

// Earliest devuelve la validez con ValidUntil mínimo y su índice.
// En empate gana el primero. Sin resultados devuelve -1.
func Earliest(results []Result) (Result, int) {
	idx := -1
	var best Result
	for i, r := range results {
		if idx == -1 || r.ValidUntil.Before(best.ValidUntil) {
			best = r
			idx = i
		}
	}
	return best, idx
}

func fallback(issueDate time.Time) Result {
	return Result{ValidUntil: issueDate.AddDate(1, 0, 0), Reason: ReasonStandard}
}

// Solo decimal plano: ParseFloat también acepta "0x1p3", "1_0", "1e1" o "Inf".
var decimalAge = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ParseAge interpreta una edad como número decimal no negativo.
func ParseAge(ageValue string) (float64, bool) {
	s := strings.TrimSpace(ageValue)
	if !decimalAge.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func toMonths(ageValue string, unit Unit) (float64, bool) {
	v, ok := ParseAge(ageValue)
	if !ok {
		return 0, false
	}
	switch unit {
	case Years:
		return v * 12, true
	case Months:
		return v, true
	default:
		return 0, false
	}
}

// birthDate: meses enteros vía AddDate, la fracción se aproxima en días.
func birthDate(issueDate time.Time, months float64) time.Time {
	whole := math.Floor(months)
	days := int(math.Round((months - whole) * daysPerMonth))
	return issueDate.AddDate(0, -int(whole), -days)
}
