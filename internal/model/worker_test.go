package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"+91 98765-43210", "+919876543210"},
		{" 9876543210 ", "9876543210"},
		{"(080) 1234.5678", "08012345678"},
		{"91+9876543210", "919876543210"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), tc.in)
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ravi Kumar", (&Worker{FirstName: "Ravi", LastName: "Kumar"}).FullName())
	assert.Equal(t, "Ravi", (&Worker{FirstName: "Ravi"}).FullName())
}

func TestPrincipals(t *testing.T) {
	var p Principal = &User{ID: 3, Role: RoleAdmin}
	assert.Equal(t, UserTypeUser, p.PrincipalType())
	assert.Equal(t, int64(3), p.PrincipalID())

	p = &Worker{ID: 4, Role: RoleSupervisor}
	assert.Equal(t, UserTypeWorker, p.PrincipalType())
	assert.Equal(t, RoleSupervisor, p.PrincipalRole())
}
