package blob

import (
	"blob-integration/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	ledger  *GormLedger
}

// NewFeature creates a new blob feature. When db is nil uploads are not recorded.
func NewFeature(credential string, resolver storage.Resolver, db *gorm.DB, logger *zap.Logger) *Feature {
	var ledger *GormLedger
	var l Ledger
	if db != nil {
		ledger = NewGormLedger(db)
		l = ledger
	}

	svc := NewService(credential, resolver, l, logger)
	return &Feature{service: svc, handler: NewHandler(svc), ledger: ledger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "blob"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the ledger when present and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.ledger != nil {
		if err := f.ledger.Migrate(); err != nil {
			return err
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service for non-HTTP callers.
func (f *Feature) Service() *Service {
	return f.service
}
