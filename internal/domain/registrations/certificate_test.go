package registrations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"livestock-registry/internal/domain/validity"
)

func TestBuildCertificate(t *testing.T) {
	issue := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	reg := Registration{
		ID:    "REG-17356896001231234",
		Owner: Owner{State: "Punjab", District: "Ludhiana"},
		Animals: []Animal{
			{ID: "mature", AgeValue: "5", AgeUnit: AgeUnitYears},
			{ID: "young", AgeValue: "2", AgeUnit: AgeUnitYears},
		},
	}

	cert := BuildCertificate(reg, issue)

	assert.Equal(t, "INAPH-CERT-2025-1234", cert.CertificateID)
	assert.Equal(t, "BPA/PB/LUDH/2025/1234", cert.ReferenceNumber)
	assert.Equal(t, reg.ID, cert.RegistrationID)
	assert.Len(t, cert.Animals, 2)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), cert.Animals[0].ValidUntil)
	assert.Equal(t, validity.ReasonMature, cert.Animals[0].Reason)

	// la validez total es la más temprana
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), cert.Validity.ValidUntil)
	assert.Equal(t, validity.ReasonYoung, cert.Validity.Reason)
}

func TestBuildCertificate_NoAnimalsFallsBack(t *testing.T) {
	issue := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	cert := BuildCertificate(Registration{ID: "REG-7"}, issue)
	assert.Equal(t, "INAPH-CERT-2025-0007", cert.CertificateID)
	assert.Equal(t, validity.ReasonStandard, cert.Validity.Reason)
	assert.Equal(t, issue.AddDate(1, 0, 0), cert.Validity.ValidUntil)
}

func TestStateAndDistrictCodes(t *testing.T) {
	tests := []struct {
		in, state, district string
	}{
		{"Tamil  Nadu", "TN", "TAMI"},
		{"uttar pradesh", "UP", "UTTA"},
		{"Atlantis", "AT", "ATLA"},
		{"Goa", "GA", "GOAX"},
		{"", "XX", "XXXX"},
		{"Ño-1", "OX", "OXXX"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.state, StateCode(tt.in), tt.in)
		assert.Equal(t, tt.district, DistrictCode(tt.in), tt.in)
	}
}

func TestLastFourDigits(t *testing.T) {
	assert.Equal(t, "0123", lastFourDigits("REG-1735689600123"))
	assert.Equal(t, "0042", lastFourDigits("REG-42"))
	assert.Equal(t, "0000", lastFourDigits("legacy"))
}
