package types

// DefaultRole is assigned when a member is registered without an explicit role.
// Roles are free-form strings; no role hierarchy exists.
const DefaultRole = "member"

// Member is a registered person in the community directory.
// Members are created once and never updated or deleted; the email address
// is the unique external handle used to reference a member from events and
// RSVPs.
type Member struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
	Active   bool   `json:"active"`
}
