package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmhub/internal/usecase"
)

func TestStaticContent_ImplementsTheSamePipeline(t *testing.T) {
	ctx := context.Background()
	content := NewStaticContent()

	assert.Equal(t, usecase.ModeStatic, content.Mode())

	t.Run("programs", func(t *testing.T) {
		programs, err := content.ListPrograms(ctx)
		require.NoError(t, err)
		assert.Len(t, programs, 5)
	})

	t.Run("filtered resources", func(t *testing.T) {
		items, err := content.ListResources(ctx, usecase.ResourceFilters{
			Programs: []string{"immunizations"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, items)
		for _, item := range items {
			assert.Equal(t, "immunizations", item.Program)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		item, err := content.GetResource(ctx, "recStatic001")
		require.NoError(t, err)
		assert.Equal(t, "CMR Worksheet", item.Name)

		_, err = content.GetResource(ctx, "recMissing")
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("dashboard feeds", func(t *testing.T) {
		announcements, err := content.ListAnnouncements(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, announcements)

		quick, err := content.ListQuickAccess(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, quick)
	})
}

func TestStaticMembers(t *testing.T) {
	ctx := context.Background()
	members := NewStaticMembers()

	creds, err := members.FindByEmail(ctx, "Demo@PharmHub.Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "recStaticMember01", creds.Account.ID)

	_, err = members.FindByEmail(ctx, "stranger@example.com")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestUnconfiguredBackendsFailWithConfigError(t *testing.T) {
	ctx := context.Background()
	content := NewUnconfiguredContent()

	assert.Equal(t, usecase.ModeUnconfigured, content.Mode())

	_, err := content.ListPrograms(ctx)
	assert.ErrorIs(t, err, usecase.ErrConfig)
	_, err = content.ListResources(ctx, usecase.ResourceFilters{})
	assert.ErrorIs(t, err, usecase.ErrConfig)
	_, err = content.GetResource(ctx, "recAny")
	assert.ErrorIs(t, err, usecase.ErrConfig)
	_, err = content.ListAnnouncements(ctx)
	assert.ErrorIs(t, err, usecase.ErrConfig)
	_, err = content.ListQuickAccess(ctx)
	assert.ErrorIs(t, err, usecase.ErrConfig)

	_, err = NewUnconfiguredMembers().FindByEmail(ctx, "anyone@example.com")
	assert.ErrorIs(t, err, usecase.ErrConfig)
}
