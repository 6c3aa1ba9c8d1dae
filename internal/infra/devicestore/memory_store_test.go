package devicestore

import (
	"context"
	"testing"

	"elevenstore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	state, err := store.Load(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDefault, state.Permission)

	require.NoError(t, store.SaveAdmin(ctx, "d1", true))
	require.NoError(t, store.SavePermission(ctx, "d1", entity.PermissionGranted))

	state, err = store.Load(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, state.Permission)
	assert.True(t, state.Admin)

	other, err := store.Load(ctx, "d2")
	require.NoError(t, err)
	assert.False(t, other.Admin)
}
