package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRequests() []BloodRequest {
	return []BloodRequest{
		{ID: "r1", City: "Cairo", BloodType: BloodOPos, Urgency: UrgencyHigh},
		{ID: "r2", City: "cairo", BloodType: BloodOPos, Urgency: UrgencyLow},
		{ID: "r3", City: "Alexandria", BloodType: BloodOPos, Urgency: UrgencyHigh},
	}
}

func TestRefineRequestsNoFilters(t *testing.T) {
	in := sampleRequests()
	out := RefineRequests(in, "", "")

	assert.Len(t, out, 3)
	assert.Equal(t, "r1", out[0].ID)
	assert.Equal(t, "r2", out[1].ID)
	assert.Equal(t, "r3", out[2].ID)
}

func TestRefineRequestsUrgency(t *testing.T) {
	out := RefineRequests(sampleRequests(), UrgencyHigh, "")

	assert.Len(t, out, 2)
	assert.Equal(t, "r1", out[0].ID)
	assert.Equal(t, "r3", out[1].ID)
}

func TestRefineRequestsCityIgnoresCase(t *testing.T) {
	out := RefineRequests(sampleRequests(), "", "CAIRO")

	assert.Len(t, out, 2)
	assert.Equal(t, "r1", out[0].ID)
	assert.Equal(t, "r2", out[1].ID)
}

func TestRefineRequestsCombined(t *testing.T) {
	out := RefineRequests(sampleRequests(), UrgencyLow, "cairo")

	assert.Len(t, out, 1)
	assert.Equal(t, "r2", out[0].ID)
}

func TestRefineRequestsEmptyInput(t *testing.T) {
	out := RefineRequests(nil, UrgencyHigh, "Cairo")

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestValidBloodType(t *testing.T) {
	for _, bt := range []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"} {
		assert.True(t, ValidBloodType(bt), bt)
	}
	assert.False(t, ValidBloodType("C+"))
	assert.False(t, ValidBloodType("o+")) // case matters
	assert.False(t, ValidBloodType(""))
}

func TestValidUrgency(t *testing.T) {
	for _, u := range []string{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical} {
		assert.True(t, ValidUrgency(u), u)
	}
	assert.False(t, ValidUrgency("URGENT"))
	assert.False(t, ValidUrgency("low"))
	assert.False(t, ValidUrgency(""))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleDonor))
	assert.True(t, ValidRole(RoleRecipient))
	assert.False(t, ValidRole("ADMIN"))
	assert.False(t, ValidRole("donor"))
}

func TestValidGender(t *testing.T) {
	assert.True(t, ValidGender(GenderMale))
	assert.True(t, ValidGender(GenderFemale))
	assert.False(t, ValidGender("OTHER"))
	assert.False(t, ValidGender(""))
}
