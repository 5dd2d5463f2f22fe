package model

import (
	"strings"
	"time"
)

// Worker is a field worker account, identified by phone number.
type Worker struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (w *Worker) PrincipalID() int64      { return w.ID }
func (w *Worker) PrincipalType() UserType { return UserTypeWorker }
func (w *Worker) PrincipalRole() Role     { return w.Role }
func (w *Worker) isPrincipal()            {}

// FullName joins first and last name.
func (w *Worker) FullName() string {
	if w.LastName == "" {
		return w.FirstName
	}
	return w.FirstName + " " + w.LastName
}

// WorkerLoginRequest is the payload for worker authentication.
type WorkerLoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
	Password    string `json:"password" binding:"required,max=128"`
}

// CreateWorkerRequest is the payload for creating a worker account.
type CreateWorkerRequest struct {
	FirstName   string `json:"firstName" binding:"required,min=1,max=100"`
	LastName    string `json:"lastName" binding:"omitempty,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
	Password    string `json:"password" binding:"required,min=6,max=128"`
	Role        Role   `json:"role" binding:"omitempty,oneof=WORKER SUPERVISOR"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateWorkerRequest is the payload for updating a worker account.
// Empty fields are left unchanged.
type UpdateWorkerRequest struct {
	FirstName   string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName    string `json:"lastName" binding:"omitempty,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,phone"`
	Password    string `json:"password" binding:"omitempty,min=6,max=128"`
	Role        Role   `json:"role" binding:"omitempty,oneof=WORKER SUPERVISOR"`
	IsActive    *bool  `json:"isActive"`
}

// WorkerFilter narrows a worker listing.
type WorkerFilter struct {
	Search   string
	IsActive *bool
}

// NormalizePhone strips separators so that "+91 98765-43210" and
// "+919876543210" address the same worker.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	b.Grow(len(phone))
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
