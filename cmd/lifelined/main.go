package main

import (
	"context"
	"log/slog"
	"os"

	"lifeline/config"
	"lifeline/internal/delivery"
	"lifeline/internal/delivery/http"
	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/router/handler"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	firebaseauth "lifeline/internal/infra/auth/firebase"
	"lifeline/internal/infra/firebase"
	logs "lifeline/internal/infra/log"
	"lifeline/internal/infra/persistence/firestore"
	"lifeline/internal/infra/pubsub"
	"lifeline/internal/infra/qrcode"
	"lifeline/internal/infra/report"
	"lifeline/internal/usecase"
	"lifeline/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewDonorRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebaseauth.NewIdentityService,
			report.NewPDFService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDonorService,
			impl.NewInventoryService,
			impl.NewSearchService,
			newReportUsecase,
		),
	)
}

// newReportUsecase wires the report export with the configured output directory
func newReportUsecase(
	donorRepo repository.DonorRepository,
	reportSvc service.ReportService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReportUsecase {
	outputDir := "reports"
	if cfg.Report != nil && cfg.Report.OutputDir != "" {
		outputDir = cfg.Report.OutputDir
	}

	return impl.NewReportExportService(donorRepo, reportSvc, outputDir, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDonorHandler,
			handler.NewSearchHandler,
			handler.NewInventoryHandler,
			handler.NewReportHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
