package domain

// Role is the application-wide role of an authenticated user.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleDealer Role = "dealer"
	RoleAdmin  Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleDealer, RoleAdmin:
		return true
	}
	return false
}

// Principal identifies the caller of a service operation.
// For farmers and dealers UserID doubles as their farmer/dealer ID.
type Principal struct {
	UserID string `json:"userID"`
	Role   Role   `json:"role"`
}
