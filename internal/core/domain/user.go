package domain

import "time"

// StatusActive is the status a user must carry to be loadable through the
// directory. Creation paths use the label served by the configuration
// service; this constant only backs the hardcoded comparison in
// FindByUsername.
const StatusActive = "Active"

// User models an account stored in the users collection. Roles are referenced
// by id only; the documents themselves live in the roles collection and their
// lifecycle is independent (stale ids are tolerated on read).
type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	PasswordHash        string    `json:"-"`
	Status              string    `json:"status"`
	Deleted             bool      `json:"deleted"`
	DeleteDate          time.Time `json:"delete_date,omitempty"`
	CreateDate          time.Time `json:"create_date"`
	UpdateDate          time.Time `json:"update_date,omitempty"`
	SecurityToken       string    `json:"-"`
	ForcePasswordChange bool      `json:"force_password_change"`
	RoleIDs             []string  `json:"role_ids"`
}

// HasRole reports whether the role id is already present in the user's set.
func (u *User) HasRole(roleID string) bool {
	for _, id := range u.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// RoleInfo is the role projection embedded in UserDetails.
type RoleInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// UserDetails is the view returned by the user directory: the account plus
// its resolved roles.
type UserDetails struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Password string     `json:"-"`
	Status   string     `json:"status"`
	Roles    []RoleInfo `json:"roles"`
}

// RoleNames returns the names of the resolved roles.
func (d *UserDetails) RoleNames() []string {
	names := make([]string, 0, len(d.Roles))
	for _, r := range d.Roles {
		names = append(names, r.Name)
	}
	return names
}
