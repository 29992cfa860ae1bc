package model

import "time"

// Role names stored in users.role.  A user is either a donor offering
// blood or a recipient requesting it on behalf of a patient.  The role
// decides which profile table applies and which endpoints are reachable.
const (
	RoleDonor     = "DONOR"
	RoleRecipient = "RECIPIENT"
)

// ValidRole reports whether a role string is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleDonor || role == RoleRecipient
}

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column. Handlers define
// separate response types with JSON tags; this struct is used by the
// repository layer only.
//
// Fields:
//  ID               – UUID primary key of the user.
//  Email            – unique, lowercased email address.
//  PasswordHash     – bcrypt hashed password.
//  Role             – DONOR or RECIPIENT.
//  ProfileCompleted – whether the role profile has been filled in.
//  IsActive         – whether the account is active.
//  CreatedAt        – timestamp of creation.
//  UpdatedAt        – timestamp of last update.
type User struct {
	ID               string    // users.id
	Email            string    // users.email
	PasswordHash     string    // users.password_hash
	Role             string    // users.role
	ProfileCompleted bool      // users.profile_completed
	IsActive         bool      // users.is_active
	CreatedAt        time.Time // users.created_at
	UpdatedAt        time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation.  The plain token is not stored; only its
// SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    string     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
