//go:build unit

package api_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	nethttptest "net/http/httptest"
	"testing"

	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/httptest"
	commandsmock "storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UploadHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUploadCommands
}

func (s *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	cfg.Storage.MaxUploadSize = 16

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUploadCommands(s.mockCtrl)
	s.router.POST("/upload", api.NewUploadHandler(s.mockCommands, cfg).Upload)
}

func (s *UploadHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUploadHandlerSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}

type formFile struct {
	name        string
	contentType string
	body        string
}

func (s *UploadHandlerTestSuite) postFiles(files ...formFile) *nethttptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(s.T(), err)
		_, err = part.Write([]byte(f.body))
		require.NoError(s.T(), err)
	}
	require.NoError(s.T(), w.Close())

	req := nethttptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *UploadHandlerTestSuite) TestUpload() {
	s.Run("success: every file reaches the use case in order", func() {
		s.mockCommands.EXPECT().UploadImages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, files []commands.UploadFile) ([]string, error) {
				s.Require().Len(files, 2)
				s.Equal("a.png", files[0].Filename)
				s.Equal("image/png", files[0].ContentType)
				body, err := io.ReadAll(files[1].Body)
				s.Require().NoError(err)
				s.Equal("jpeg-bytes", string(body))
				return []string{"https://cdn/a.png", "https://cdn/b.jpg"}, nil
			})

		rec := s.postFiles(
			formFile{name: "a.png", contentType: "image/png", body: "png-bytes"},
			formFile{name: "b.jpg", contentType: "image/jpeg", body: "jpeg-bytes"},
		)

		var res resdto.UploadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]string{"https://cdn/a.png", "https://cdn/b.jpg"}, res.Paths)
	})

	s.Run("error: oversized file is rejected before upload", func() {
		rec := s.postFiles(formFile{name: "big.png", contentType: "image/png", body: "this body is longer than sixteen bytes"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "exceeds 16 bytes")
	})

	s.Run("error: no files", func() {
		s.mockCommands.EXPECT().UploadImages(gomock.Any(), gomock.Len(0)).Return(nil, errs.ErrNoFilesUploaded)

		rec := s.postFiles()

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no files uploaded")
	})

	s.Run("error: not multipart", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/upload", map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no files uploaded")
	})

	s.Run("error: unsupported type from the use case", func() {
		s.mockCommands.EXPECT().UploadImages(gomock.Any(), gomock.Any()).Return(nil, errs.ErrUnsupportedUpload)

		rec := s.postFiles(formFile{name: "doc.pdf", contentType: "application/pdf", body: "%PDF"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unsupported file type")
	})
}
