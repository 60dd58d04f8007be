package usecase

import (
	"context"

	"boothly/internal/domain/entity"
)

// LayoutUsecase manages the dashboard layout flags.
type LayoutUsecase interface {
	GetLayout(ctx context.Context) (*entity.LayoutState, error)
	ToggleSidebar(ctx context.Context) (*entity.LayoutState, error)
	SetSidebarCollapsed(ctx context.Context, collapsed bool) (*entity.LayoutState, error)
}
