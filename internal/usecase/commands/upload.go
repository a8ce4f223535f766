package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"path"
	"strconv"
	"strings"

	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
)

//go:generate mockgen -source=upload.go -destination=../../../tests/mock/commands/mock_upload.go -package=commandsmock

var ErrUploadFailed = errs.New("failed to upload file")

const (
	uploadPrefix     = "products"
	defaultUploadExt = ".jpg"
	uploadSuffixLen  = 6
)

var uploadSuffixSpace = new(big.Int).Exp(big.NewInt(36), big.NewInt(uploadSuffixLen), nil)

type UploadFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type UploadCommands interface {
	// UploadImages stores every file and returns their public URLs in order.
	UploadImages(ctx context.Context, files []UploadFile) ([]string, error)
}

type uploadCommandsImpl struct {
	storage ObjectStorage
	clock   clock.Clock
}

func NewUploadCommands(storage ObjectStorage, clk clock.Clock) UploadCommands {
	return &uploadCommandsImpl{
		storage: storage,
		clock:   clk,
	}
}

func (u *uploadCommandsImpl) UploadImages(ctx context.Context, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, errs.ErrNoFilesUploaded
	}
	for _, f := range files {
		if !strings.HasPrefix(f.ContentType, "image/") {
			return nil, errs.ErrUnsupportedUpload
		}
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		objectPath, err := u.objectPath(f.Filename)
		if err != nil {
			return nil, errs.Mark(err, ErrUploadFailed)
		}
		url, err := u.storage.Put(ctx, objectPath, f.ContentType, f.Body)
		if err != nil {
			return nil, errs.Mark(err, ErrUploadFailed)
		}
		urls = append(urls, url)
	}

	slog.Info("images uploaded", "count", len(urls))
	return urls, nil
}

// objectPath builds products/<unix millis>-<base36 suffix><ext>.
func (u *uploadCommandsImpl) objectPath(filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = defaultUploadExt
	}

	n, err := rand.Int(rand.Reader, uploadSuffixSpace)
	if err != nil {
		return "", err
	}
	suffix := strconv.FormatInt(n.Int64(), 36)
	if len(suffix) < uploadSuffixLen {
		suffix = strings.Repeat("0", uploadSuffixLen-len(suffix)) + suffix
	}

	return fmt.Sprintf("%s/%d-%s%s", uploadPrefix, u.clock.Now().UnixMilli(), suffix, ext), nil
}
