package image_store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/pkg/errors"
)

type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) *FileStore {
	return &FileStore{basePath: basePath}
}

func (s *FileStore) Kind() string {
	return config.ImageStoreFile
}

func (s *FileStore) Locate(name string) string {
	return filepath.Join(s.basePath, name)
}

func (s *FileStore) FetchRaw(ctx rcontext.RequestContext, name string) ([]byte, error) {
	if !isSafeName(name) {
		ctx.Log.Warn("Refusing to read unsafe image name")
		return nil, common.ErrImageNotFound
	}

	target := s.Locate(name)
	b, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrImageNotFound
		}
		recordStoreError(s.Kind())
		return nil, errors.Wrap(common.ErrStoreUnavailable, err.Error())
	}
	if len(b) == 0 {
		ctx.Log.Debug("Raw image is empty: ", target)
		return nil, common.ErrImageNotFound
	}

	ctx.Log.Debugf("Read %s of raw image from %s", humanize.Bytes(uint64(len(b))), target)
	return b, nil
}

func isSafeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return !strings.ContainsRune(name, 0)
}
