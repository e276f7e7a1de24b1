package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blob-integration/core/container"
	"blob-integration/core/storage"
	"blob-integration/core/storage/providers"
	"blob-integration/feature/blob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// useMemoryStorage points the blob commands at one in-process backend shared
// by every invocation in the test.
func useMemoryStorage(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_CONNECTION_STRING", "memory://cli")
	t.Setenv("LOG_LEVEL", "error")

	shared := providers.NewResolver(storage.Config{}, zap.NewNop())
	prev := storageResolver
	storageResolver = func(storage.Config, *zap.Logger) storage.Resolver { return shared.Func() }
	t.Cleanup(func() {
		storageResolver = prev
		blobFile = ""
	})
}

func runBlob(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	blobFile = ""

	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(append([]string{"blob"}, args...))
	t.Cleanup(func() {
		RootCmd.SetIn(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBlobSave_Stdin(t *testing.T) {
	useMemoryStorage(t)

	_, err := runBlob(t, "hello from stdin", "save", "mycontainer", "greeting")
	require.NoError(t, err)

	out, err := runBlob(t, "", "read", "mycontainer", "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello from stdin", out)
}

func TestBlobSave_File(t *testing.T) {
	useMemoryStorage(t)

	path := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello from file"), 0o600))

	_, err := runBlob(t, "ignored", "save", "mycontainer", "doc", "--file", path)
	require.NoError(t, err)

	out, err := runBlob(t, "", "read", "mycontainer", "doc")
	require.NoError(t, err)
	assert.Equal(t, "hello from file", out)
}

func TestBlobSave_BlankContent(t *testing.T) {
	useMemoryStorage(t)

	_, err := runBlob(t, "  \n\t ", "save", "mycontainer", "blank")
	assert.ErrorIs(t, err, blob.ErrEmptyContent)

	_, err = runBlob(t, "", "read", "mycontainer", "blank")
	assert.ErrorIs(t, err, container.ErrNotFound)
}

func TestBlobSave_MissingFile(t *testing.T) {
	useMemoryStorage(t)

	missing := filepath.Join(t.TempDir(), "absent.txt")
	_, err := runBlob(t, "", "save", "mycontainer", "doc", "-f", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBlobRead_Missing(t *testing.T) {
	useMemoryStorage(t)

	out, err := runBlob(t, "", "read", "mycontainer", "nothing")
	assert.ErrorIs(t, err, container.ErrNotFound)
	assert.Empty(t, out)
}

func TestBlob_ArgsRequired(t *testing.T) {
	useMemoryStorage(t)

	_, err := runBlob(t, "hello", "save", "mycontainer")
	assert.Error(t, err)
}

func TestInitManager_SaveRead(t *testing.T) {
	t.Setenv("STORAGE_CONNECTION_STRING", "memory://direct")
	t.Setenv("LOG_LEVEL", "error")

	mgr, _, err := initManager(context.Background(), "mycontainer")
	require.NoError(t, err)
	assert.True(t, mgr.IsInitialized())
	assert.Equal(t, "mycontainer", mgr.ContainerName())

	require.NoError(t, mgr.Save(context.Background(), "greeting", "hello"))
	got, err := mgr.Read(context.Background(), "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestInitManager_InvalidCredential(t *testing.T) {
	t.Setenv("STORAGE_CONNECTION_STRING", "   ")
	t.Setenv("LOG_LEVEL", "error")

	_, _, err := initManager(context.Background(), "mycontainer")
	assert.ErrorIs(t, err, container.ErrInvalidCredential)
}
