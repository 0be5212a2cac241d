//go:build unit

package userdir_test

import (
	"context"
	"testing"

	"peer-tutor-scheduler/internal/infra/userdir"
	"peer-tutor-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDirectory(t *testing.T) {
	ctx := context.Background()
	dir := userdir.NewStaticDirectory(map[string]string{"student-1": "Sam Student"})
	dir.Add("tutor-1", "Tia Tutor")

	ok, err := dir.Exists(ctx, "tutor-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dir.Exists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)

	name, err := dir.DisplayName(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, "Sam Student", name)

	_, err = dir.DisplayName(ctx, "ghost")
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
