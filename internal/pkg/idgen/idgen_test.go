//go:build unit

package idgen_test

import (
	"strings"
	"testing"

	"peer-tutor-scheduler/internal/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanoGenerator_NewID(t *testing.T) {
	gen := idgen.NewNanoGenerator()

	seen := make(map[string]struct{})
	for range 200 {
		id, err := gen.NewID(idgen.PrefixSlot)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(id, "slot_"), id)
		assert.Len(t, id, len("slot_")+16)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
