package server

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"guestlens/internal/application/usecase"
	"guestlens/internal/presentation/handler"
	"guestlens/internal/presentation/middleware"
)

type Config struct {
	BodyLimit string
	// RateLimit is requests per second per client IP on the upload and
	// gallery APIs; zero disables limiting. Media and static assets are never
	// limited, guests often share one NAT address.
	RateLimit float64
	RateBurst int
}

// Handlers groups the endpoints served by New. UploadURL is optional and only
// registered when the deprecated direct upload mode is enabled.
type Handlers struct {
	Upload    *handler.UploadHandler
	UploadURL *handler.UploadURLHandler
	List      *handler.ListHandler
	Get       *handler.GetHandler
	Head      *handler.HeadHandler
}

// New builds the echo instance with middlewares and routes. assets is served
// at the root; it may be nil in tests.
func New(cfg Config, h Handlers, metrics *middleware.Metrics, assets fs.FS) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		// Media routes set their own CORS headers and answer preflights themselves.
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, usecase.MediaPath)
		},
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.SecureWithConfig(echoMiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))
	if cfg.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	}
	if cfg.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
			Skipper: func(c echo.Context) bool {
				path := c.Request().URL.Path

				return !strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, usecase.MediaPath)
			},
			Store: echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.RateLimit),
				Burst: max(cfg.RateBurst, int(cfg.RateLimit)),
			}),
		}))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.POST("/api/process-upload", h.Upload.Handle)
	if h.UploadURL != nil {
		e.POST("/api/upload", h.UploadURL.Handle)
	}
	e.GET("/api/gallery", h.List.HandleList)

	mediaRoute := usecase.MediaPath + "*"
	e.GET(mediaRoute, h.Get.HandleGet)
	e.HEAD(mediaRoute, h.Head.HandleHead)
	e.OPTIONS(mediaRoute, h.Head.HandleOptions)

	if assets != nil {
		e.FileFS("/", "index.html", assets)
		e.FileFS("/gallery", "gallery.html", assets)
		e.StaticFS("/", assets)
	}

	return e
}
