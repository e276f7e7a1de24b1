package blob

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// UploadRecord is one successful save recorded in the ledger.
type UploadRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Container string    `gorm:"size:63;index:idx_blob_uploads_container" json:"container"`
	Blob      string    `gorm:"size:1024" json:"blob"`
	Size      int       `json:"size"`
	RayID     string    `gorm:"size:64" json:"ray_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM.
func (UploadRecord) TableName() string {
	return "blob_uploads"
}

// Ledger records uploads and lists the most recent ones per container.
type Ledger interface {
	Record(ctx context.Context, rec *UploadRecord) error
	Recent(ctx context.Context, containerName string, limit int) ([]UploadRecord, error)
}

// GormLedger stores upload records with GORM.
type GormLedger struct {
	db *gorm.DB
}

// NewGormLedger creates a ledger on top of db.
func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

// Migrate creates or updates the ledger table.
func (l *GormLedger) Migrate() error {
	if err := l.db.AutoMigrate(&UploadRecord{}); err != nil {
		return fmt.Errorf("failed to migrate upload ledger: %w", err)
	}
	return nil
}

// Record inserts rec.
func (l *GormLedger) Record(ctx context.Context, rec *UploadRecord) error {
	if err := l.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record upload: %w", err)
	}
	return nil
}

// Recent returns up to limit records for the container, newest first.
func (l *GormLedger) Recent(ctx context.Context, containerName string, limit int) ([]UploadRecord, error) {
	var records []UploadRecord
	err := l.db.WithContext(ctx).
		Where("container = ?", containerName).
		Order("id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads for %s: %w", containerName, err)
	}
	return records, nil
}
