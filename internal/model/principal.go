package model

// UserType discriminates the two kinds of authenticable principal.
type UserType string

const (
	UserTypeUser   UserType = "USER"
	UserTypeWorker UserType = "WORKER"
)

// Role is the authorization tag carried by every principal.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleWorker     Role = "WORKER"
	RoleSupervisor Role = "SUPERVISOR"
)

// Principal is an authenticable identity. The unexported marker keeps the
// set of implementations closed to *User and *Worker, so a type switch over
// a Principal only ever needs those two cases.
type Principal interface {
	PrincipalID() int64
	PrincipalType() UserType
	PrincipalRole() Role
	isPrincipal()
}
