package cmd

import (
	"blob-integration/core/config"
	"blob-integration/core/loader"
	"blob-integration/core/logger"
	"blob-integration/core/middleware/auth"
	"blob-integration/core/middleware/rayid"
	"blob-integration/core/storage/providers"
	"blob-integration/feature/blob"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "blob-integration/docs/swagger"
)

// @title Blob Integration API
// @version 1.0
// @description HTTP function that saves text payloads to object storage containers.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// newApp wires middleware and features into a Fiber app. db may be nil.
func newApp(cfg *config.Config, logg *zap.Logger, db *gorm.DB) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	resolver := providers.NewResolver(cfg.Storage, logg.Named("storage"))

	mgr := loader.NewManager(logg)
	mgr.Register(blob.NewFeature(cfg.Storage.ConnectionString, resolver.Func(), db, logg.Named("blob")))

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}
