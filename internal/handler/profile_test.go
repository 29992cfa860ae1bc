package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink/blood-donation-api/internal/model"
)

func TestPutDonorSavesProfile(t *testing.T) {
	var saved *model.DonorProfile
	profiles := &mockProfileStore{
		saveDonorFunc: func(ctx context.Context, p *model.DonorProfile) error {
			p.ID = "dp-1"
			saved = p
			return nil
		},
	}
	h := NewProfileHandler(profiles)

	c, rec := newJSONContext(http.MethodPut, "/v1/profile/donor",
		`{"name":"Ali Hassan","age":30,"gender":"male","blood_type":"O+",
		  "phone":"+201000000001","city":"Cairo","last_donation_date":"2026-01-15","is_available":true}`)
	c.Set("user_id", "uid-d")
	require.NoError(t, h.PutDonor(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, saved)
	assert.Equal(t, "uid-d", saved.UserID)
	assert.Equal(t, model.GenderMale, saved.Gender)
	assert.Equal(t, model.BloodOPos, saved.BloodType)
	require.NotNil(t, saved.LastDonationDate)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *saved.LastDonationDate)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dp-1", resp["id"])
	assert.Equal(t, "2026-01-15", resp["last_donation_date"])
}

func TestPutDonorValidation(t *testing.T) {
	h := NewProfileHandler(&mockProfileStore{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"age":30,"gender":"MALE","blood_type":"O+","phone":"1","city":"Cairo"}`},
		{"bad age", `{"name":"A","age":0,"gender":"MALE","blood_type":"O+","phone":"1","city":"Cairo"}`},
		{"bad gender", `{"name":"A","age":30,"gender":"X","blood_type":"O+","phone":"1","city":"Cairo"}`},
		{"bad blood type", `{"name":"A","age":30,"gender":"MALE","blood_type":"Z-","phone":"1","city":"Cairo"}`},
		{"bad date", `{"name":"A","age":30,"gender":"MALE","blood_type":"O+","phone":"1","city":"Cairo","last_donation_date":"15/01/2026"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPut, "/v1/profile/donor", tc.body)
			c.Set("user_id", "uid-d")
			require.NoError(t, h.PutDonor(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPutRecipientSavesProfile(t *testing.T) {
	var saved *model.RecipientProfile
	profiles := &mockProfileStore{
		saveRecipientFunc: func(ctx context.Context, p *model.RecipientProfile) error {
			p.ID = "rp-1"
			saved = p
			return nil
		},
	}
	h := NewProfileHandler(profiles)

	c, rec := newJSONContext(http.MethodPut, "/v1/profile/recipient",
		`{"name":"Mona Said","hospital_name":"Kasr El Aini","phone":"+201000000002",
		  "city":"Cairo","patient_condition":"anemia"}`)
	c.Set("user_id", "uid-r")
	require.NoError(t, h.PutRecipient(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, saved)
	assert.Equal(t, "uid-r", saved.UserID)
	assert.Equal(t, "Kasr El Aini", saved.HospitalName)
	require.NotNil(t, saved.PatientCondition)
	assert.Equal(t, "anemia", *saved.PatientCondition)
}

func TestPutRecipientValidation(t *testing.T) {
	h := NewProfileHandler(&mockProfileStore{})

	c, rec := newJSONContext(http.MethodPut, "/v1/profile/recipient",
		`{"name":"Mona","hospital_name":"","phone":"1","city":"Cairo"}`)
	c.Set("user_id", "uid-r")
	require.NoError(t, h.PutRecipient(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfileNotCompleted(t *testing.T) {
	h := NewProfileHandler(&mockProfileStore{})

	c, rec := newJSONContext(http.MethodGet, "/v1/profile", "")
	c.Set("user_id", "uid-d")
	c.Set("role", model.RoleDonor)
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfileByRole(t *testing.T) {
	profiles := &mockProfileStore{
		getDonorFunc: func(ctx context.Context, userID string) (model.DonorProfile, error) {
			return donorProfileFixture(userID), nil
		},
		getRecipientFunc: func(ctx context.Context, userID string) (model.RecipientProfile, error) {
			return recipientProfileFixture(userID), nil
		},
	}
	h := NewProfileHandler(profiles)

	c, rec := newJSONContext(http.MethodGet, "/v1/profile", "")
	c.Set("user_id", "uid-d")
	c.Set("role", model.RoleDonor)
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var donor map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &donor))
	assert.Equal(t, "O+", donor["blood_type"])

	c, rec = newJSONContext(http.MethodGet, "/v1/profile", "")
	c.Set("user_id", "uid-r")
	c.Set("role", model.RoleRecipient)
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var recipient map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipient))
	assert.Equal(t, "Kasr El Aini", recipient["hospital_name"])
}
