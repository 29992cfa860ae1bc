package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAcceptanceLine(t *testing.T) {
	line := formatAcceptanceLine(RequestAcceptedEvent{
		AcceptanceID:  "acc-1",
		RequestID:     "req-1",
		RecipientName: "Mona Said",
		HospitalName:  "Kasr El Aini",
		City:          "Cairo",
		BloodType:     "O+",
		UnitsNeeded:   2,
		Urgency:       "HIGH",
		DonorName:     "Ali Hassan",
		DonorPhone:    "+201000000001",
		AcceptedAt:    "2026-03-01T12:00:00Z",
	})

	assert.Contains(t, line, "[2026-03-01T12:00:00Z]")
	assert.Contains(t, line, "request_id=req-1")
	assert.Contains(t, line, "blood_type=O+")
	assert.Contains(t, line, "units=2")
	assert.Contains(t, line, "urgency=HIGH")
	assert.Contains(t, line, `hospital="Kasr El Aini"`)
	assert.Contains(t, line, `donor="Ali Hassan"`)
	assert.True(t, line[len(line)-1] == '\n')
}
