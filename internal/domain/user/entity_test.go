//go:build unit

package user_test

import (
	"testing"

	"peer-tutor-scheduler/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	cases := []struct {
		name  string
		dname string
		role  user.Role
		errIs error
	}{
		{name: "student", dname: "Ada", role: user.RoleStudent},
		{name: "tutor trims name", dname: "  Grace  ", role: user.RoleTutor},
		{name: "blank name", dname: "   ", role: user.RoleTutor, errIs: user.ErrEmptyDisplayName},
		{name: "unknown role", dname: "Linus", role: "viewer", errIs: user.ErrInvalidRole},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := user.NewProfile("u-1", c.dname, c.role)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", p.ID())
			assert.NotContains(t, p.DisplayName(), " ", "name should be trimmed")
			assert.Equal(t, c.role, p.Role())
		})
	}
}


func TestNewRole(t *testing.T) {
	r, err := user.NewRole("tutor")
	require.NoError(t, err)
	assert.Equal(t, user.RoleTutor, r)

	_, err = user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
