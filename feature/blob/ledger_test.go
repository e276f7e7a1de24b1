package blob

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

var uploadColumns = []string{"id", "container", "blob", "size", "ray_id", "created_at"}

func TestGormLedger_Record(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	ledger := NewGormLedger(db)

	sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO `blob_uploads`")).
		WithArgs("docs", "greeting", 5, "rid-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	rec := &UploadRecord{Container: "docs", Blob: "greeting", Size: 5, RayID: "rid-1"}
	require.NoError(t, ledger.Record(context.Background(), rec))
	assert.Equal(t, uint(7), rec.ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGormLedger_RecordFailure(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	ledger := NewGormLedger(db)

	sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO `blob_uploads`")).WillReturnError(assert.AnError)

	err := ledger.Record(context.Background(), &UploadRecord{Container: "docs", Blob: "x"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGormLedger_Recent(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	ledger := NewGormLedger(db)

	now := time.Now()
	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `blob_uploads` WHERE container = ?")).
		WillReturnRows(sqlmock.NewRows(uploadColumns).
			AddRow(2, "docs", "second", 6, "rid-2", now).
			AddRow(1, "docs", "first", 5, "rid-1", now))

	records, err := ledger.Recent(context.Background(), "docs", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[0].Blob)
	assert.Equal(t, uint(1), records[1].ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestUploadRecord_TableName(t *testing.T) {
	assert.Equal(t, "blob_uploads", UploadRecord{}.TableName())
}
