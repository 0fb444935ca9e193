package store

import (
	"context"

	"pharmhub/internal/entity"
	"pharmhub/internal/usecase"
)

// UnconfiguredContent stands in when provider credentials are missing and
// demo mode is off. Every call fails with ErrConfig so the HTTP boundary
// reports CONFIG_ERROR instead of silently serving nothing.
type UnconfiguredContent struct{}

func NewUnconfiguredContent() *UnconfiguredContent { return &UnconfiguredContent{} }

func (s *UnconfiguredContent) Mode() string { return usecase.ModeUnconfigured }

func (s *UnconfiguredContent) ListPrograms(ctx context.Context) ([]entity.ClinicalProgram, error) {
	return nil, usecase.ErrConfig
}

func (s *UnconfiguredContent) ListResources(ctx context.Context, f usecase.ResourceFilters) ([]entity.ResourceItem, error) {
	return nil, usecase.ErrConfig
}

func (s *UnconfiguredContent) GetResource(ctx context.Context, id string) (entity.ResourceItem, error) {
	return entity.ResourceItem{}, usecase.ErrConfig
}

func (s *UnconfiguredContent) ListAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	return nil, usecase.ErrConfig
}

func (s *UnconfiguredContent) ListQuickAccess(ctx context.Context) ([]entity.QuickAccessItem, error) {
	return nil, usecase.ErrConfig
}

// UnconfiguredMembers rejects every lookup with ErrConfig.
type UnconfiguredMembers struct{}

func NewUnconfiguredMembers() *UnconfiguredMembers { return &UnconfiguredMembers{} }

func (s *UnconfiguredMembers) FindByEmail(ctx context.Context, email string) (usecase.MemberCredentials, error) {
	return usecase.MemberCredentials{}, usecase.ErrConfig
}
