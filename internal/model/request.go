package model

import (
	"strings"
	"time"
)

// Urgency tiers attached to a request.  They are ordinal display and
// filter values only; the service never uses them for automated
// prioritization or routing.
const (
	UrgencyLow      = "LOW"
	UrgencyMedium   = "MEDIUM"
	UrgencyHigh     = "HIGH"
	UrgencyCritical = "CRITICAL"
)

var urgencies = map[string]bool{
	UrgencyLow: true, UrgencyMedium: true, UrgencyHigh: true, UrgencyCritical: true,
}

// ValidUrgency reports whether u is a known urgency tier.
func ValidUrgency(u string) bool { return urgencies[u] }

// Request status values.  Only ACTIVE is ever assigned by the service;
// FULFILLED and EXPIRED are part of the schema for a lifecycle that has
// no transitions yet.
const (
	StatusActive    = "ACTIVE"
	StatusFulfilled = "FULFILLED"
	StatusExpired   = "EXPIRED"
)

// BloodRequest is a recipient-issued need for blood, stored in the
// `blood_requests` table.  Recipient name, hospital and city are
// denormalized snapshots taken from the recipient profile at creation
// time; a later profile edit does not propagate to existing requests.
//
// Fields:
//  ID            – UUID primary key.
//  RecipientID   – user who created the request.
//  RecipientName – snapshot of the recipient profile name.
//  HospitalName  – snapshot of the hospital name.
//  City          – snapshot of the hospital city; matched case-insensitively.
//  BloodType     – ABO/Rh type needed (exact match only).
//  UnitsNeeded   – positive number of units requested.
//  Urgency       – LOW, MEDIUM, HIGH or CRITICAL.
//  PatientNotes  – optional free-text notes for donors (nullable).
//  Status        – ACTIVE, FULFILLED or EXPIRED.
//  AcceptedBy    – donor user IDs in acceptance order; duplicates allowed.
//  CreatedAt     – timestamp of creation.
type BloodRequest struct {
	ID            string    `json:"id"`
	RecipientID   string    `json:"recipient_id"`
	RecipientName string    `json:"recipient_name"`
	HospitalName  string    `json:"hospital_name"`
	City          string    `json:"city"`
	BloodType     string    `json:"blood_type"`
	UnitsNeeded   int       `json:"units_needed"`
	Urgency       string    `json:"urgency"`
	PatientNotes  *string   `json:"patient_notes,omitempty"`
	Status        string    `json:"status"`
	AcceptedBy    []string  `json:"accepted_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// DonationAcceptance is a donor's commitment against a specific
// request, stored in the `donation_acceptances` table.  Donor name and
// phone are snapshots taken at acceptance time.  Acceptances are never
// mutated or deleted.
//
// Fields:
//  ID         – UUID primary key.
//  RequestID  – the accepted request.
//  DonorID    – accepting donor's user ID.
//  DonorName  – snapshot of the donor profile name.
//  DonorPhone – snapshot of the donor phone number.
//  AcceptedAt – timestamp of acceptance.
type DonationAcceptance struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	DonorID    string    `json:"donor_id"`
	DonorName  string    `json:"donor_name"`
	DonorPhone string    `json:"donor_phone"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// RefineRequests applies the donor dashboard's display-layer filters on
// top of an already matched request set: an exact urgency tier and a
// case-insensitive city. Empty filter values pass everything through.
// Order is preserved.
func RefineRequests(reqs []BloodRequest, urgency, city string) []BloodRequest {
	out := make([]BloodRequest, 0, len(reqs))
	for _, r := range reqs {
		if urgency != "" && r.Urgency != urgency {
			continue
		}
		if city != "" && !strings.EqualFold(r.City, city) {
			continue
		}
		out = append(out, r)
	}
	return out
}
