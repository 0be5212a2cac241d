//go:build unit || e2e

package authtest

import (
	"testing"

	"peer-tutor-scheduler/internal/domain/user"
	"peer-tutor-scheduler/tests/common/dbtest"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/stretchr/testify/require"
)

// CreateAndSign registers a directory user and returns its id with a bearer token.
func (h *JWTHelper) CreateAndSign(t *testing.T, db dbtest.DBLike, displayName string, role user.Role) (string, string) {
	t.Helper()
	id, err := gonanoid.New()
	require.NoError(t, err)
	userID := dbtest.CreateTestUser(t, db, string(role)+"-"+id, displayName, role)
	return userID, h.GenerateToken(t, userID, role)
}
