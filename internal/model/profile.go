package model

import "time"

// The eight ABO/Rh blood types accepted by profile and request forms.
const (
	BloodAPos  = "A+"
	BloodANeg  = "A-"
	BloodBPos  = "B+"
	BloodBNeg  = "B-"
	BloodABPos = "AB+"
	BloodABNeg = "AB-"
	BloodOPos  = "O+"
	BloodONeg  = "O-"
)

// bloodTypes is the closed set of valid ABO/Rh values.
var bloodTypes = map[string]bool{
	BloodAPos: true, BloodANeg: true,
	BloodBPos: true, BloodBNeg: true,
	BloodABPos: true, BloodABNeg: true,
	BloodOPos: true, BloodONeg: true,
}

// ValidBloodType reports whether bt is one of the eight ABO/Rh types.
func ValidBloodType(bt string) bool { return bloodTypes[bt] }

// Gender values stored in donor_profiles.gender.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// ValidGender reports whether g is a known gender value.
func ValidGender(g string) bool { return g == GenderMale || g == GenderFemale }

// DonorProfile is the one-to-one profile of a DONOR user, stored in
// the `donor_profiles` table.  Completing the form replaces any prior
// row for the user; there is no partial update path.
//
// Fields:
//  ID               – UUID primary key.
//  UserID           – owning user (unique).
//  Name             – full name.
//  Age              – donor age in years.
//  Gender           – MALE or FEMALE.
//  BloodType        – one of the eight ABO/Rh types.
//  Phone            – contact phone number.
//  City             – donor's city; drives request matching.
//  LastDonationDate – date of the most recent donation (nullable).
//  IsAvailable      – whether the donor is currently willing to donate.
//  CreatedAt        – timestamp of creation.
//  UpdatedAt        – timestamp of last replacement.
type DonorProfile struct {
	ID               string     // donor_profiles.id
	UserID           string     // donor_profiles.user_id
	Name             string     // donor_profiles.name
	Age              int        // donor_profiles.age
	Gender           string     // donor_profiles.gender
	BloodType        string     // donor_profiles.blood_type
	Phone            string     // donor_profiles.phone
	City             string     // donor_profiles.city
	LastDonationDate *time.Time // donor_profiles.last_donation_date (nullable)
	IsAvailable      bool       // donor_profiles.is_available
	CreatedAt        time.Time  // donor_profiles.created_at
	UpdatedAt        time.Time  // donor_profiles.updated_at
}

// RecipientProfile is the one-to-one profile of a RECIPIENT user,
// stored in the `recipient_profiles` table.  Same create-or-replace
// pattern as DonorProfile.
//
// Fields:
//  ID               – UUID primary key.
//  UserID           – owning user (unique).
//  Name             – contact name.
//  HospitalName     – hospital or medical centre the recipient acts for.
//  Phone            – contact phone number.
//  City             – hospital city; copied onto requests at creation.
//  PatientCondition – short free-text description of the patient (nullable).
//  CreatedAt        – timestamp of creation.
//  UpdatedAt        – timestamp of last replacement.
type RecipientProfile struct {
	ID               string    // recipient_profiles.id
	UserID           string    // recipient_profiles.user_id
	Name             string    // recipient_profiles.name
	HospitalName     string    // recipient_profiles.hospital_name
	Phone            string    // recipient_profiles.phone
	City             string    // recipient_profiles.city
	PatientCondition *string   // recipient_profiles.patient_condition (nullable)
	CreatedAt        time.Time // recipient_profiles.created_at
	UpdatedAt        time.Time // recipient_profiles.updated_at
}
