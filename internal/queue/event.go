// Package queue defines message payloads exchanged over the message broker.
package queue

// RequestAcceptedEvent is published when a donor accepts a blood request.
// It carries enough denormalized detail for downstream consumers to log
// or notify without querying the primary database.
type RequestAcceptedEvent struct {
	AcceptanceID  string `json:"acceptance_id"`
	RequestID     string `json:"request_id"`
	RecipientID   string `json:"recipient_id"`
	RecipientName string `json:"recipient_name"`
	HospitalName  string `json:"hospital_name"`
	City          string `json:"city"`
	BloodType     string `json:"blood_type"`
	UnitsNeeded   int    `json:"units_needed"`
	Urgency       string `json:"urgency"`
	DonorID       string `json:"donor_id"`
	DonorName     string `json:"donor_name"`
	DonorPhone    string `json:"donor_phone"`
	AcceptedAt    string `json:"accepted_at"`
}
