package models

// Profile roles. Every admin account gets exactly one owner profile at
// registration; profiles added later are residents.
const (
	RoleOwner    = "owner"
	RoleResident = "resident"
)

// Profile is a household member under an admin account. Each profile
// carries one Preference per canonical room.
type Profile struct {
	UserID      string       `json:"userId"`
	AdminID     string       `json:"adminId"`
	Name        string       `json:"name"`
	ImagePath   string       `json:"imagePath,omitempty"`
	Role        string       `json:"role"` // owner | resident
	Preferences []Preference `json:"preferences"`
}
