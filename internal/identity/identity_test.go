package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := FromContext(ctx)
	assert.False(t, ok)

	ident := Identity{UserID: 7, Role: RoleEmployee}
	got, ok := FromContext(WithIdentity(ctx, ident))
	require.True(t, ok)
	assert.Equal(t, ident, got)
}

func TestIdentityPredicates(t *testing.T) {
	assert.True(t, Identity{}.IsZero())
	assert.False(t, Identity{UserID: 1}.IsZero())
	assert.True(t, Identity{UserID: 1, Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{UserID: 1, Role: RoleEmployee}.IsAdmin())
}
