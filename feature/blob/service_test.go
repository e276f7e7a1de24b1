package blob

import (
	"context"
	"regexp"
	"testing"

	"blob-integration/core/container"
	"blob-integration/core/storage"
	"blob-integration/core/storage/memory"
	"blob-integration/core/storage/providers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCredential = "memory://blob-tests"

// setupService returns a service on a shared memory backend and that backend.
func setupService(t *testing.T, ledger Ledger) (*Service, *memory.Backend) {
	t.Helper()
	resolver := providers.NewResolver(storage.Config{}, zap.NewNop())

	backend, err := resolver.Open(context.Background(), testCredential)
	require.NoError(t, err)

	return NewService(testCredential, resolver.Func(), ledger, zap.NewNop()), backend.(*memory.Backend)
}

func TestService_SaveRead(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t, nil)

	require.NoError(t, svc.Save(ctx, "mycontainer", "greeting", "hello", ""))
	content, err := svc.Read(ctx, "mycontainer", "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	require.NoError(t, svc.Save(ctx, "mycontainer", "greeting", "bye", ""))
	content, err = svc.Read(ctx, "mycontainer", "greeting")
	require.NoError(t, err)
	assert.Equal(t, "bye", content)
}

func TestService_EmptyContent(t *testing.T) {
	ctx := context.Background()
	svc, backend := setupService(t, nil)

	for _, body := range []string{"", " ", "\n\t "} {
		err := svc.Save(ctx, "mycontainer", "x", body, "")
		assert.ErrorIs(t, err, ErrEmptyContent)
	}
	assert.Zero(t, backend.Containers())
}

func TestService_ReadMissing(t *testing.T) {
	svc, _ := setupService(t, nil)

	_, err := svc.Read(context.Background(), "mycontainer", "never-saved")
	assert.ErrorIs(t, err, container.ErrNotFound)
}

func TestService_InvalidCredential(t *testing.T) {
	svc := NewService("", providers.Open, nil, zap.NewNop())

	err := svc.Save(context.Background(), "mycontainer", "x", "y", "")
	assert.ErrorIs(t, err, container.ErrInvalidCredential)
}

func TestService_Ledger(t *testing.T) {
	ctx := context.Background()

	t.Run("Recorded", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		svc, _ := setupService(t, NewGormLedger(db))
		assert.True(t, svc.HasLedger())

		sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO `blob_uploads`")).
			WithArgs("mycontainer", "greeting", 5, "rid", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, svc.Save(ctx, "mycontainer", "greeting", "hello", "rid"))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("FailureDoesNotFailSave", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		svc, _ := setupService(t, NewGormLedger(db))

		sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO `blob_uploads`")).WillReturnError(assert.AnError)

		require.NoError(t, svc.Save(ctx, "mycontainer", "greeting", "hello", "rid"))
		content, err := svc.Read(ctx, "mycontainer", "greeting")
		require.NoError(t, err)
		assert.Equal(t, "hello", content)
	})

	t.Run("NoLedger", func(t *testing.T) {
		svc, _ := setupService(t, nil)
		assert.False(t, svc.HasLedger())

		records, err := svc.Uploads(ctx, "mycontainer", 10)
		assert.NoError(t, err)
		assert.Nil(t, records)
	})
}
