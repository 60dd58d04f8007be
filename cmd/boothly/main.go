package main

import (
	"context"
	"log/slog"
	"os"

	"boothly/config"
	"boothly/internal/delivery"
	"boothly/internal/delivery/api"
	"boothly/internal/delivery/api/router/handler"
	"boothly/internal/domain/repository"
	"boothly/internal/domain/service"
	logs "boothly/internal/infra/log"
	"boothly/internal/infra/qrcode"
	"boothly/internal/infra/seed"
	"boothly/internal/infra/state"
	"boothly/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectState(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			state.RegisterLifecycle,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
	)
}

func injectState() fx.Option {
	return fx.Provide(
		seed.New,
		state.NewProvider,
		func(p *state.Provider) repository.StoreProvider { return p },
	)
}

func injectService() fx.Option {
	return fx.Provide(
		newQRCodeService,
	)
}

// newQRCodeService creates a QR code service from the defaulted config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewProfileService,
		impl.NewPortfolioService,
		impl.NewPricingService,
		impl.NewBookingService,
		impl.NewEarningsService,
		impl.NewAvailabilityService,
		impl.NewLayoutService,
		impl.NewPublicPageService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewHealthHandler,
		handler.NewProfileHandler,
		handler.NewPortfolioHandler,
		handler.NewPricingHandler,
		handler.NewBookingHandler,
		handler.NewAvailabilityHandler,
		handler.NewLayoutHandler,
		handler.NewPublicPageHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer serves every delivery once the store is mounted. Invoke order
// puts this hook after the one registered by state.RegisterLifecycle.
func startServer(params startServerParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
