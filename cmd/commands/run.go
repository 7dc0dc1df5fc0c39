package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guestlens"
	"guestlens/config"
	"guestlens/internal/application/usecase"
	"guestlens/internal/domain/repository/broker"
	"guestlens/internal/infrastructure/minio"
	"guestlens/internal/presentation/handler"
	"guestlens/internal/presentation/middleware"
	"guestlens/internal/presentation/server"
	"guestlens/pkg/logger"
	"guestlens/web"

	brokerInfra "guestlens/internal/infrastructure/broker"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)
	defer logger.Sync()

	logger.Info("running guestlens", "version", guestlens.StringVersion())

	publisher, closeBroker := newPublisher(cfg)
	defer closeBroker()

	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIO)
	minIOLister := minio.NewLister(minIOClient.MinioClient, &cfg.MinIO)
	minIOGetter := minio.NewGetter(minIOClient.MinioClient, &cfg.MinIO)

	urls := usecase.NewMediaURLs(cfg.Default.PublicBaseURL)
	getter := usecase.NewGetter(minIOGetter)
	metrics := middleware.NewMetrics()

	handlers := server.Handlers{
		Upload: handler.NewUploadHandler(usecase.NewProcessor(minIOUploader, publisher, urls), metrics),
		List:   handler.NewListHandler(usecase.NewLister(minIOLister, urls), cfg.Gallery.DefaultLimit, cfg.Gallery.MaxLimit),
		Get:    handler.NewGetHandler(getter),
		Head:   handler.NewHeadHandler(getter),
	}

	if cfg.LegacyUpload.Enabled {
		logger.Warn("direct upload mode is deprecated", "mode", cfg.LegacyUpload.Mode)

		presigner := usecase.NewPresigner(minio.NewPresigner(minIOClient.MinioClient, &cfg.MinIO),
			usecase.PresignerConfig{
				Mode:    cfg.LegacyUpload.Mode,
				TTL:     time.Duration(cfg.LegacyUpload.ExpirySec) * time.Second,
				MaxSize: cfg.LegacyUpload.MaxSize << 20,
			})
		handlers.UploadURL = handler.NewUploadURLHandler(presigner)
	}

	e := server.New(server.Config{
		BodyLimit: cfg.HTTP.BodyLimit,
		RateLimit: cfg.HTTP.RateLimit,
		RateBurst: cfg.HTTP.RateBurst,
	}, handlers, metrics, web.FS())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "address", cfg.Default.Address)
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}

// newPublisher connects to the event stream when BROKER_URI is set. A broker
// that cannot be reached disables events instead of failing startup.
func newPublisher(cfg *config.Config) (broker.Publisher, func()) {
	if cfg.BrokerConfig.URI == "" {
		return brokerInfra.Disabled{}, func() {}
	}

	client, err := brokerInfra.NewClient(cfg.BrokerConfig)
	if err != nil {
		logger.Error("upload events disabled", "err", err)

		return brokerInfra.Disabled{}, func() {}
	}

	return brokerInfra.NewPublisher(client, cfg.PublisherConfig), func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close broker client", "err", err)
		}
	}
}
