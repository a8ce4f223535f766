//go:build unit

package commands_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	commandsmock "storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUploadCommands_UploadImages(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.UnixMilli(1736510400123))
	pathPattern := regexp.MustCompile(`^products/1736510400123-[0-9a-z]{6}(\.png|\.jpg)$`)

	t.Run("success: stores every file under products/", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := commandsmock.NewMockObjectStorage(ctrl)
		cmds := commands.NewUploadCommands(storage, clk)

		var paths []string
		storage.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, path, _ string, _ any) (string, error) {
				paths = append(paths, path)
				return "https://storage.googleapis.com/bucket/" + path, nil
			}).Times(2)

		urls, err := cmds.UploadImages(ctx, []commands.UploadFile{
			{Filename: "Foto.PNG", ContentType: "image/png", Body: strings.NewReader("png")},
			{Filename: "sem-extensao", ContentType: "image/jpeg", Body: strings.NewReader("jpg")},
		})

		require.NoError(t, err)
		require.Len(t, urls, 2)
		assert.Regexp(t, pathPattern, paths[0])
		assert.True(t, strings.HasSuffix(paths[0], ".png"))
		assert.True(t, strings.HasSuffix(paths[1], ".jpg"), "missing extension defaults to .jpg")
		assert.NotEqual(t, paths[0], paths[1])
	})

	t.Run("error: no files", func(t *testing.T) {
		cmds := commands.NewUploadCommands(commandsmock.NewMockObjectStorage(gomock.NewController(t)), clk)

		_, err := cmds.UploadImages(ctx, nil)

		assert.ErrorIs(t, err, errs.ErrNoFilesUploaded)
	})

	t.Run("error: non-image rejected before any write", func(t *testing.T) {
		cmds := commands.NewUploadCommands(commandsmock.NewMockObjectStorage(gomock.NewController(t)), clk)

		_, err := cmds.UploadImages(ctx, []commands.UploadFile{
			{Filename: "a.png", ContentType: "image/png", Body: strings.NewReader("")},
			{Filename: "script.sh", ContentType: "text/x-shellscript", Body: strings.NewReader("")},
		})

		assert.ErrorIs(t, err, errs.ErrUnsupportedUpload)
	})

	t.Run("error: storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := commandsmock.NewMockObjectStorage(ctrl)
		storage.EXPECT().Put(ctx, gomock.Any(), "image/png", gomock.Any()).Return("", errors.New("403"))
		cmds := commands.NewUploadCommands(storage, clk)

		_, err := cmds.UploadImages(ctx, []commands.UploadFile{{Filename: "a.png", ContentType: "image/png", Body: strings.NewReader("")}})

		assert.True(t, errs.Is(err, commands.ErrUploadFailed))
	})
}
