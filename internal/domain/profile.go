package domain

import "time"

// Role values carried by a profile. Only admins may manage the catalog.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Profile is the application-side record for an authenticated user. The
// identity itself (credentials, email verification) lives with the identity
// provider; the profile only carries what the API needs.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
