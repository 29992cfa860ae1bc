package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/bloodlink/blood-donation-api/internal/model"
)

// ProfileRepo provides create-or-replace and lookup operations for
// donor and recipient profiles.  Each user has at most one profile row
// of the kind matching their role.  Saving a profile replaces any
// existing row in full; there is no partial update path.  Saving also
// flips the owning user's profile_completed flag, in the same
// transaction so the flag can never disagree with the profile tables.
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo returns a new ProfileRepo bound to the given database.
func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// SaveDonor inserts or fully replaces the donor profile of p.UserID and
// marks the user's profile as completed.  The row ID is written back
// onto p.  A single upsert keyed on the user_id unique index means two
// concurrent saves by the same user cannot race a SELECT-then-INSERT;
// an existing row keeps its ID so the profile identity is stable
// across replacements.
func (r *ProfileRepo) SaveDonor(ctx context.Context, p *model.DonorProfile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO donor_profiles
		 (id, user_id, name, age, gender, blood_type, phone, city, last_donation_date, is_available)
		 VALUES (?,?,?,?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		 name=VALUES(name), age=VALUES(age), gender=VALUES(gender), blood_type=VALUES(blood_type),
		 phone=VALUES(phone), city=VALUES(city), last_donation_date=VALUES(last_donation_date),
		 is_available=VALUES(is_available)`,
		uuid.NewString(), p.UserID, p.Name, p.Age, p.Gender, p.BloodType, p.Phone, p.City,
		nullTime(p.LastDonationDate), p.IsAvailable)
	if err != nil {
		return err
	}
	// Read back the row ID; on replace it is the original profile ID,
	// not the freshly generated one.
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM donor_profiles WHERE user_id=? LIMIT 1", p.UserID).Scan(&p.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET profile_completed=1 WHERE id=?", p.UserID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetDonorByUser returns the donor profile owned by userID.
// sql.ErrNoRows is returned when the user has no donor profile.
func (r *ProfileRepo) GetDonorByUser(ctx context.Context, userID string) (model.DonorProfile, error) {
	var (
		p        model.DonorProfile
		lastDate sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, age, gender, blood_type, phone, city, last_donation_date, is_available, created_at, updated_at
		 FROM donor_profiles WHERE user_id=? LIMIT 1`, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.Age, &p.Gender, &p.BloodType, &p.Phone, &p.City,
			&lastDate, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.DonorProfile{}, err
	}
	if lastDate.Valid {
		t := lastDate.Time
		p.LastDonationDate = &t
	}
	return p, nil
}

// SaveRecipient inserts or fully replaces the recipient profile of
// p.UserID and marks the user's profile as completed, mirroring
// SaveDonor's upsert.
func (r *ProfileRepo) SaveRecipient(ctx context.Context, p *model.RecipientProfile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipient_profiles
		 (id, user_id, name, hospital_name, phone, city, patient_condition)
		 VALUES (?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		 name=VALUES(name), hospital_name=VALUES(hospital_name), phone=VALUES(phone),
		 city=VALUES(city), patient_condition=VALUES(patient_condition)`,
		uuid.NewString(), p.UserID, p.Name, p.HospitalName, p.Phone, p.City,
		nullString(p.PatientCondition))
	if err != nil {
		return err
	}
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM recipient_profiles WHERE user_id=? LIMIT 1", p.UserID).Scan(&p.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET profile_completed=1 WHERE id=?", p.UserID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetRecipientByUser returns the recipient profile owned by userID.
// sql.ErrNoRows is returned when the user has no recipient profile.
func (r *ProfileRepo) GetRecipientByUser(ctx context.Context, userID string) (model.RecipientProfile, error) {
	var (
		p         model.RecipientProfile
		condition sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, hospital_name, phone, city, patient_condition, created_at, updated_at
		 FROM recipient_profiles WHERE user_id=? LIMIT 1`, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.HospitalName, &p.Phone, &p.City,
			&condition, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.RecipientProfile{}, err
	}
	if condition.Valid {
		s := condition.String
		p.PatientCondition = &s
	}
	return p, nil
}

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
