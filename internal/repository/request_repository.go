package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bloodlink/blood-donation-api/internal/model"
)

// RequestRepo maintains the collection of blood requests and answers
// queries against them.  Accepted donor IDs live in the
// request_accepted_donors table, ordered by an auto-increment sequence
// so acceptance order is preserved.  All timestamps are stored in UTC.
//
// Matching is deliberately exact on blood type: there is no ABO/Rh
// compatibility logic (an O- donor does not match an O+ request).
type RequestRepo struct {
	db *sql.DB
}

// NewRequestRepo returns a new RequestRepo bound to the given database.
func NewRequestRepo(db *sql.DB) *RequestRepo { return &RequestRepo{db: db} }

// DonorSnapshot carries the denormalized donor fields copied onto an
// acceptance at acceptance time.
type DonorSnapshot struct {
	ID    string
	Name  string
	Phone string
}

// Create inserts a new blood request.  It assigns a fresh UUID, sets
// the status to ACTIVE, leaves the accepted-donor list empty and stamps
// the creation time, all written back onto req.  The timestamp is
// assigned here and stored explicitly so a single INSERT carries the
// whole row, the same way Accept stamps accepted_at.  Field validation
// is the caller's responsibility.
func (r *RequestRepo) Create(ctx context.Context, req *model.BloodRequest) error {
	req.ID = uuid.NewString()
	req.Status = model.StatusActive
	req.AcceptedBy = []string{}
	req.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blood_requests
		 (id, recipient_id, recipient_name, hospital_name, city, blood_type, units_needed, urgency, patient_notes, status, created_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		req.ID, req.RecipientID, req.RecipientName, req.HospitalName, req.City,
		req.BloodType, req.UnitsNeeded, req.Urgency, nullString(req.PatientNotes), req.Status, req.CreatedAt)
	return err
}

// Accept records a donor's commitment against a request.  Within one
// transaction it verifies the request exists, inserts an acceptance
// row carrying a snapshot of the donor's name and phone, and appends
// the donor to the request's accepted-donor list.  ErrNotFound is
// returned when no request matches requestID.
//
// There is no duplicate guard: the same donor accepting the same
// request twice produces two acceptances and two accepted entries.
func (r *RequestRepo) Accept(ctx context.Context, requestID string, donor DonorSnapshot) (model.DonationAcceptance, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.DonationAcceptance{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM blood_requests WHERE id=? FOR UPDATE", requestID).Scan(&id)
	if err == sql.ErrNoRows {
		return model.DonationAcceptance{}, ErrNotFound
	}
	if err != nil {
		return model.DonationAcceptance{}, err
	}

	acc := model.DonationAcceptance{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		DonorID:    donor.ID,
		DonorName:  donor.Name,
		DonorPhone: donor.Phone,
		AcceptedAt: time.Now().UTC(),
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO donation_acceptances (id, request_id, donor_id, donor_name, donor_phone, accepted_at)
		 VALUES (?,?,?,?,?,?)`,
		acc.ID, acc.RequestID, acc.DonorID, acc.DonorName, acc.DonorPhone, acc.AcceptedAt); err != nil {
		return model.DonationAcceptance{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO request_accepted_donors (request_id, donor_id) VALUES (?,?)",
		acc.RequestID, acc.DonorID); err != nil {
		return model.DonationAcceptance{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.DonationAcceptance{}, err
	}
	return acc, nil
}

// GetByID returns a single request with its accepted-donor list.
// ErrNotFound is returned when the ID matches no request.
func (r *RequestRepo) GetByID(ctx context.Context, id string) (model.BloodRequest, error) {
	reqs, err := r.list(ctx, "WHERE id=?", id)
	if err != nil {
		return model.BloodRequest{}, err
	}
	if len(reqs) == 0 {
		return model.BloodRequest{}, ErrNotFound
	}
	return reqs[0], nil
}

// ListByRecipient returns all requests created by the given recipient
// in creation order.  An empty slice is returned when none exist.
func (r *RequestRepo) ListByRecipient(ctx context.Context, recipientID string) ([]model.BloodRequest, error) {
	return r.list(ctx, "WHERE recipient_id=? ORDER BY created_at, seq", recipientID)
}

// ListMatching returns ACTIVE requests whose blood type equals
// bloodType exactly and whose city equals city ignoring case, in
// creation order.  FULFILLED and EXPIRED requests are never returned.
func (r *RequestRepo) ListMatching(ctx context.Context, bloodType, city string) ([]model.BloodRequest, error) {
	return r.list(ctx,
		"WHERE status=? AND blood_type=? AND LOWER(city)=? ORDER BY created_at, seq",
		model.StatusActive, bloodType, strings.ToLower(city))
}

// list runs the shared select with the given WHERE/ORDER clause and
// populates accepted-donor lists for all returned requests in a single
// follow-up query.
func (r *RequestRepo) list(ctx context.Context, clause string, args ...interface{}) ([]model.BloodRequest, error) {
	q := `SELECT id, recipient_id, recipient_name, hospital_name, city, blood_type,
				 units_needed, urgency, patient_notes, status, created_at
		  FROM blood_requests ` + clause
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := make([]model.BloodRequest, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			req   model.BloodRequest
			notes sql.NullString
		)
		if err := rows.Scan(
			&req.ID, &req.RecipientID, &req.RecipientName, &req.HospitalName, &req.City,
			&req.BloodType, &req.UnitsNeeded, &req.Urgency, &notes, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		if notes.Valid {
			s := notes.String
			req.PatientNotes = &s
		}
		req.AcceptedBy = []string{}
		index[req.ID] = len(reqs)
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return reqs, nil
	}

	// Populate accepted-donor lists for all requests in one query.
	ids := make([]interface{}, 0, len(reqs))
	placeholders := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
		placeholders = append(placeholders, "?")
	}
	donorQ := `SELECT request_id, donor_id FROM request_accepted_donors
			   WHERE request_id IN (` + strings.Join(placeholders, ",") + `)
			   ORDER BY seq`
	drows, err := r.db.QueryContext(ctx, donorQ, ids...)
	if err != nil {
		return nil, err
	}
	defer drows.Close()
	for drows.Next() {
		var reqID, donorID string
		if err := drows.Scan(&reqID, &donorID); err != nil {
			return nil, err
		}
		idx, ok := index[reqID]
		if !ok {
			continue
		}
		reqs[idx].AcceptedBy = append(reqs[idx].AcceptedBy, donorID)
	}
	if err := drows.Err(); err != nil {
		return nil, err
	}
	return reqs, nil
}
