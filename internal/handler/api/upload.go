package api

import (
	"fmt"
	"mime/multipart"
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const uploadFormField = "files"

type UploadHandler struct {
	cmds    commands.UploadCommands
	maxSize int64
}

func NewUploadHandler(cmds commands.UploadCommands, cfg config.Config) *UploadHandler {
	return &UploadHandler{cmds: cmds, maxSize: cfg.Storage.MaxUploadSize}
}

// @Summary Upload product images
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Image files"
// @Success 200 {object} resdto.UploadResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.Abort(c, errs.ErrNoFilesUploaded)
		return
	}
	headers := form.File[uploadFormField]

	files := make([]commands.UploadFile, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > h.maxSize {
			httperr.Abort(c, errs.Validation(fmt.Sprintf("%s exceeds %d bytes", fh.Filename, h.maxSize)))
			return
		}
		f, err := fh.Open()
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid file", nil)
			return
		}
		defer closeQuietly(f)
		files = append(files, commands.UploadFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		})
	}

	paths, err := h.cmds.UploadImages(c.Request.Context(), files)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UploadResponse{
		Paths:   paths,
		Message: fmt.Sprintf("%d file(s) uploaded", len(paths)),
	})
}

func closeQuietly(f multipart.File) {
	_ = f.Close()
}
