package model

import "time"

// User is an administrator account. Role is always RoleAdmin.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) PrincipalID() int64      { return u.ID }
func (u *User) PrincipalType() UserType { return UserTypeUser }
func (u *User) PrincipalRole() Role     { return u.Role }
func (u *User) isPrincipal()            {}

// LoginRequest is the payload for admin authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// CreateUserRequest is the payload for creating a new admin account.
// There is no role field: every account created here is an administrator.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// UpdateUserRequest is the payload for updating an admin account.
// Empty fields are left unchanged; a non-empty password is rehashed.
type UpdateUserRequest struct {
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	Password string `json:"password" binding:"omitempty,min=6,max=128"`
}
