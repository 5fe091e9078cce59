package registrations

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"livestock-registry/internal/domain/validity"
)

const certificatePrefix = "INAPH-CERT"

// stateCodes: códigos oficiales de dos letras (vehículos / ISO 3166-2:IN).
var stateCodes = map[string]string{
	"andhra pradesh":    "AP",
	"arunachal pradesh": "AR",
	"assam":             "AS",
	"bihar":             "BR",
	"chhattisgarh":      "CG",
	"goa":               "GA",
	"gujarat":           "GJ",
	"haryana":           "HR",
	"himachal pradesh":  "HP",
	"jharkhand":         "JH",
	"karnataka":         "KA",
	"kerala":            "KL",
	"madhya pradesh":    "MP",
	"maharashtra":       "MH",
	"manipur":           "MN",
	"meghalaya":         "ML",
	"mizoram":           "MZ",
	"nagaland":          "NL",
	"odisha":            "OD",
	"punjab":            "PB",
	"rajasthan":         "RJ",
	"sikkim":            "SK",
	"tamil nadu":        "TN",
	"telangana":         "TS",
	"tripura":           "TR",
	"uttar pradesh":     "UP",
	"uttarakhand":       "UK",
	"west bengal":       "WB",
	"delhi":             "DL",
	"jammu and kashmir": "JK",
	"ladakh":            "LA",
	"puducherry":        "PY",
	"chandigarh":        "CH",
}

// AnimalValidity es la validez calculada de un animal del registro.
type AnimalValidity struct {
	AnimalID string `json:"animalId"`
	validity.Result
}

// Certificate es la vista derivada (determinística) de un registro.
type Certificate struct {
	CertificateID   string           `json:"certificateId"`
	ReferenceNumber string           `json:"referenceNumber"`
	RegistrationID  string           `json:"registrationId"`
	IssueDate       time.Time        `json:"issueDate"`
	Validity        validity.Result  `json:"validity"`
	Animals         []AnimalValidity `json:"animals"`
}

// BuildCertificate calcula identificadores y validez; issueDate define el año.
func BuildCertificate(r Registration, issueDate time.Time) Certificate {
	year := issueDate.Year()
	digits := lastFourDigits(r.ID)

	animals := make([]AnimalValidity, 0, len(r.Animals))
	results := make([]validity.Result, 0, len(r.Animals))
	for _, a := range r.Animals {
		v := validity.Compute(a.AgeValue, validity.Unit(a.AgeUnit), issueDate)
		animals = append(animals, AnimalValidity{AnimalID: a.ID, Result: v})
		results = append(results, v)
	}

	overall, idx := validity.Earliest(results)
	if idx < 0 {
		overall = validity.Compute("", "", issueDate)
	}

	return Certificate{
		CertificateID:   fmt.Sprintf("%s-%d-%s", certificatePrefix, year, digits),
		ReferenceNumber: fmt.Sprintf("BPA/%s/%s/%d/%s", StateCode(r.Owner.State), DistrictCode(r.Owner.District), year, digits),
		RegistrationID:  r.ID,
		IssueDate:       issueDate,
		Validity:        overall,
		Animals:         animals,
	}
}

// StateCode devuelve el código de dos letras; para estados desconocidos usa
// las dos primeras letras en mayúscula.
func StateCode(state string) string {
	key := strings.ToLower(strings.Join(strings.Fields(state), " "))
	if code, ok := stateCodes[key]; ok {
		return code
	}
	return letterCode(state, 2)
}

// DistrictCode: primeras cuatro letras, rellenado con X.
func DistrictCode(district string) string {
	return letterCode(district, 4)
}

func letterCode(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == n {
			break
		}
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	for b.Len() < n {
		b.WriteByte('X')
	}
	return b.String()
}

// lastFourDigits toma el sufijo numérico del id (p.ej. REG-1735689600123 -> 0123).
func lastFourDigits(id string) string {
	end := len(id)
	start := end
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	suffix := id[start:end]
	if len(suffix) >= 4 {
		return suffix[len(suffix)-4:]
	}
	return strings.Repeat("0", 4-len(suffix)) + suffix
}
