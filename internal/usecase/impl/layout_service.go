package impl

import (
	"context"
	"log/slog"

	deliverycontext "boothly/internal/delivery/context"
	"boothly/internal/domain/entity"
	"boothly/internal/domain/repository"
	"boothly/internal/usecase"
)

// layoutService implements the LayoutUsecase interface.
type layoutService struct {
	stores repository.StoreProvider
	logger *slog.Logger
}

// NewLayoutService is the constructor for layoutService.
func NewLayoutService(stores repository.StoreProvider, logger *slog.Logger) usecase.LayoutUsecase {
	return &layoutService{
		stores: stores,
		logger: logger,
	}
}

func (srv *layoutService) GetLayout(ctx context.Context) (*entity.LayoutState, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	return &entity.LayoutState{SidebarCollapsed: store.SidebarCollapsed()}, nil
}

func (srv *layoutService) ToggleSidebar(ctx context.Context) (*entity.LayoutState, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	store.ToggleSidebar()
	state := &entity.LayoutState{SidebarCollapsed: store.SidebarCollapsed()}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Sidebar toggled", slog.Bool("collapsed", state.SidebarCollapsed))

	return state, nil
}

func (srv *layoutService) SetSidebarCollapsed(ctx context.Context, collapsed bool) (*entity.LayoutState, error) {
	store, err := openStore(srv.stores)
	if err != nil {
		return nil, err
	}

	store.SetSidebarCollapsed(collapsed)

	return &entity.LayoutState{SidebarCollapsed: store.SidebarCollapsed()}, nil
}
