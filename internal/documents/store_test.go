package documents_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, maxBytes int64) *documents.Store {
	t.Helper()
	store := documents.New(t.TempDir(), maxBytes, nil)
	store.Now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	return store
}

func TestPutAndOpen(t *testing.T) {
	store := newStore(t, 0)
	scope := documents.StagingScope(models.WorkTickets)

	ref, err := store.Put(context.Background(), scope, documents.StagingName("t1", "fileA.pdf"), documents.File{
		OriginalName: "fileA.pdf",
		Size:         5,
		Reader:       strings.NewReader("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, "t1-fileA.pdf", ref.FileName)
	assert.Equal(t, "application/pdf", ref.Type)
	assert.Equal(t, uint64(5), ref.Size.Uint64())
	assert.Equal(t, "2024-03-01T09:30:00.000Z", ref.UploadedAt)

	file, info, err := store.Open(scope, "t1-fileA.pdf")
	require.NoError(t, err)
	defer file.Close()
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
	assert.Equal(t, int64(5), info.Size())
}

func TestPutRejectsOversizeBeforeWrite(t *testing.T) {
	store := newStore(t, 4)
	scope := documents.JobScope("j1")

	_, err := store.Put(context.Background(), scope, "big.pdf", documents.File{Size: 5, Reader: strings.NewReader("hello")})
	assert.ErrorIs(t, err, types.ErrPayloadTooLarge)

	_, statErr := os.Stat(filepath.Join(store.Root, "jobs", "j1"))
	assert.True(t, os.IsNotExist(statErr), "no directory should be created")
}

func TestPutRejectsUndeclaredOversize(t *testing.T) {
	store := newStore(t, 4)
	scope := documents.JobScope("j1")

	_, err := store.Put(context.Background(), scope, "big.pdf", documents.File{Size: -1, Reader: strings.NewReader("hello")})
	assert.ErrorIs(t, err, types.ErrPayloadTooLarge)
	assert.False(t, store.Exists(scope, "big.pdf"))
}

func TestOpenMissing(t *testing.T) {
	store := newStore(t, 0)
	_, _, err := store.Open(documents.JobScope("j1"), "nope.pdf")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"../secret", "a/b.pdf", `a\b.pdf`, "..", "x..y"} {
		assert.ErrorIs(t, documents.ValidateName(name), types.ErrPathTraversal, name)
	}
	assert.ErrorIs(t, documents.ValidateName(""), types.ErrMissingRequiredField)
	assert.NoError(t, documents.ValidateName("report final.pdf"))
}

func TestOpenRejectsTraversalEvenWhenFileExists(t *testing.T) {
	store := newStore(t, 0)
	require.NoError(t, os.MkdirAll(filepath.Join(store.Root, "jobs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(store.Root, "jobs", "secret.txt"), []byte("x"), 0o644))

	_, _, err := store.Open(documents.JobScope("j1"), "../secret.txt")
	assert.ErrorIs(t, err, types.ErrPathTraversal)
	_, _, err = store.Open(documents.JobScope(".."), "secret.txt")
	assert.ErrorIs(t, err, types.ErrPathTraversal)
}

func TestDeleteTolerant(t *testing.T) {
	store := newStore(t, 0)
	scope := documents.JobScope("j1")
	_, err := store.Put(context.Background(), scope, "a.pdf", documents.File{Size: 1, Reader: strings.NewReader("a")})
	require.NoError(t, err)

	require.NoError(t, store.Delete(scope, "a.pdf"))
	require.NoError(t, store.Delete(scope, "a.pdf"))
	assert.False(t, store.Exists(scope, "a.pdf"))
}

func TestDeleteScope(t *testing.T) {
	store := newStore(t, 0)
	scope := documents.JobScope("j1")
	_, err := store.Put(context.Background(), scope, "a.pdf", documents.File{Size: 1, Reader: strings.NewReader("a")})
	require.NoError(t, err)

	require.NoError(t, store.DeleteScope(scope))
	_, statErr := os.Stat(filepath.Join(store.Root, "jobs", "j1"))
	assert.True(t, os.IsNotExist(statErr))
	require.NoError(t, store.DeleteScope(scope))
}

func TestCleanOriginalName(t *testing.T) {
	name, err := documents.CleanOriginalName(`C:\Users\me\fileA.pdf`)
	require.NoError(t, err)
	assert.Equal(t, "fileA.pdf", name)

	name, err = documents.CleanOriginalName("/tmp/../plan.pdf")
	require.NoError(t, err)
	assert.Equal(t, "plan.pdf", name)

	_, err = documents.CleanOriginalName("")
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", documents.ContentType("image/png", "a.pdf"))
	assert.Equal(t, "application/pdf", documents.ContentType("", "a.pdf"))
	assert.Equal(t, "application/pdf", documents.ContentType("application/octet-stream", "a.pdf"))
	assert.Equal(t, "application/octet-stream", documents.ContentType("", "README"))
}
