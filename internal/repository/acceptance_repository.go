package repository

import (
	"context"
	"database/sql"

	"github.com/bloodlink/blood-donation-api/internal/model"
)

// AcceptanceRepo answers queries over donation acceptances.  Rows are
// written by RequestRepo.Accept and are never mutated or deleted, so
// this repository is read-only.
type AcceptanceRepo struct {
	db *sql.DB
}

// NewAcceptanceRepo returns a new AcceptanceRepo bound to the given database.
func NewAcceptanceRepo(db *sql.DB) *AcceptanceRepo { return &AcceptanceRepo{db: db} }

// ListByRequest returns all acceptances referencing the given request
// in acceptance order.  An empty slice is returned when none exist;
// an unknown request ID is indistinguishable from a request with no
// acceptances here, existence checks belong to RequestRepo.
func (r *AcceptanceRepo) ListByRequest(ctx context.Context, requestID string) ([]model.DonationAcceptance, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, donor_id, donor_name, donor_phone, accepted_at
		 FROM donation_acceptances WHERE request_id=? ORDER BY accepted_at, seq`,
		requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accs := make([]model.DonationAcceptance, 0)
	for rows.Next() {
		var a model.DonationAcceptance
		if err := rows.Scan(&a.ID, &a.RequestID, &a.DonorID, &a.DonorName, &a.DonorPhone, &a.AcceptedAt); err != nil {
			return nil, err
		}
		accs = append(accs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return accs, nil
}
