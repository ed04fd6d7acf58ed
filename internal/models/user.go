package models

import "time"

// Role is the job function a user acts under.
type Role string

const (
	RoleAdministrator      Role = "Administrator"
	RoleQAManager          Role = "QA Manager"
	RoleDocumentController Role = "Document Controller"
	RoleReviewer           Role = "Reviewer"
	RoleApprover           Role = "Approver"
	RoleUser               Role = "User"
)

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	Active     bool      `json:"isActive"`
	LastLogin  time.Time `json:"lastLogin"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// UserUpdate is a partial update: nil fields are left untouched.
type UserUpdate struct {
	Username   *string
	Name       *string
	Email      *string
	Role       *Role
	Department *string
	Active     *bool
	LastLogin  *time.Time
}

// Apply merges u into user.
func (u UserUpdate) Apply(user *User) {
	discard := make(map[string]Change)
	merge(discard, "username", &user.Username, u.Username)
	merge(discard, "name", &user.Name, u.Name)
	merge(discard, "email", &user.Email, u.Email)
	merge(discard, "role", &user.Role, u.Role)
	merge(discard, "department", &user.Department, u.Department)
	merge(discard, "isActive", &user.Active, u.Active)
	mergeTime(discard, "lastLogin", &user.LastLogin, u.LastLogin)
}
