package image_store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreFetchRaw(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hotel1.jpg"), []byte("raw"), 0644))

	store := NewFileStore(dir)
	b, err := store.FetchRaw(rcontext.Initial(), "hotel1.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), b)
}

func TestFileStoreMissingIsNotFound(t *testing.T) {
	store := NewFileStore(t.TempDir())
	_, err := store.FetchRaw(rcontext.Initial(), "missing.jpg")
	assert.ErrorIs(t, err, common.ErrImageNotFound)
}

func TestFileStoreEmptyIsNotFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.jpg"), []byte{}, 0644))

	_, err := NewFileStore(dir).FetchRaw(rcontext.Initial(), "empty.jpg")
	assert.ErrorIs(t, err, common.ErrImageNotFound)
}

func TestFileStoreRejectsUnsafeNames(t *testing.T) {
	dir := t.TempDir()
	inner := filepath.Join(dir, "images")
	require.NoError(t, os.Mkdir(inner, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("secret"), 0644))

	store := NewFileStore(inner)
	for _, name := range []string{"", ".", "..", "../secret.txt", "a/b.jpg", `a\b.jpg`} {
		_, err := store.FetchRaw(rcontext.Initial(), name)
		assert.ErrorIs(t, err, common.ErrImageNotFound, name)
	}
}

func TestFileStoreAllowsDotsInNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a..b.jpg"), []byte("raw"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "..hidden.jpg"), []byte("raw"), 0644))

	store := NewFileStore(dir)
	for _, name := range []string{"a..b.jpg", "..hidden.jpg"} {
		b, err := store.FetchRaw(rcontext.Initial(), name)
		require.NoError(t, err, name)
		assert.Equal(t, []byte("raw"), b)
	}
}

func TestFileStoreReadFailureIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	// A directory where a file is expected cannot be read
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.jpg"), 0755))

	_, err := NewFileStore(dir).FetchRaw(rcontext.Initial(), "folder.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, common.ErrImageNotFound))
}

func TestFileStoreLocate(t *testing.T) {
	store := NewFileStore("images")
	assert.Equal(t, filepath.Join("images", "hotel1.jpg"), store.Locate("hotel1.jpg"))
	assert.Equal(t, config.ImageStoreFile, store.Kind())
}

func TestNewFromConfig(t *testing.T) {
	conf := config.NewDefaultMainConfig().Images
	store, err := NewFromConfig(conf)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	conf.Store = config.ImageStoreS3
	_, err = NewFromConfig(conf)
	assert.Error(t, err)

	conf.S3 = config.S3Config{Endpoint: "localhost:9000", BucketName: "hotels", AccessKeyId: "key", AccessSecret: "secret", Prefix: "raw/"}
	store, err = NewFromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, "s3://hotels/raw/hotel1.jpg", store.Locate("hotel1.jpg"))

	conf.Store = "ftp"
	_, err = NewFromConfig(conf)
	assert.Error(t, err)
}
