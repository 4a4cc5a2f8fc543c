package models

// Admin is the account that owns a house and its profiles.
type Admin struct {
	AdminID      string `json:"adminId"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
	HouseAddress string `json:"houseAddress,omitempty"`
}
