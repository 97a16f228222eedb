package domain

import "time"

// DefaultUserRole is the role assigned to every self-registered account.
const DefaultUserRole = "USER"

// AdminRole grants access to role management endpoints.
const AdminRole = "ADMIN"

// Role models an entry in the roles collection. The name is unique with
// case-insensitive lookup; status carries the label served by the
// configuration service.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Deleted     bool      `json:"deleted"`
	DeleteDate  time.Time `json:"delete_date,omitempty"`
	CreateDate  time.Time `json:"create_date"`
	UpdateDate  time.Time `json:"update_date,omitempty"`
}

// Info returns the projection embedded in UserDetails.
func (r *Role) Info() RoleInfo {
	return RoleInfo{ID: r.ID, Name: r.Name, Status: r.Status}
}
