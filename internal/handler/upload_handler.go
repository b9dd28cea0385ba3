package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
	"github.com/mentoraqua/guardianes-api/pkg/response"
)

type uploadService interface {
	Store(ctx context.Context, filename, mimeType string, size int64, r io.Reader) (*models.StoredFile, error)
}

type uploadMetrics interface {
	IncUpload()
}

// UploadHandler receives multipart evidence files.
type UploadHandler struct {
	service uploadService
	metrics uploadMetrics
	maxSize int64
}

// NewUploadHandler builds a new handler. metrics may be nil.
func NewUploadHandler(service uploadService, metrics uploadMetrics, maxSize int64) *UploadHandler {
	return &UploadHandler{service: service, metrics: metrics, maxSize: maxSize}
}

// Upload godoc
// @Summary Store an evidence file and return its descriptor
// @Tags Uploads
// @Accept mpfd
// @Produce json
// @Param file formData file true "Evidence file"
// @Success 201 {object} response.Envelope
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing file field"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "read uploaded file"))
		return
	}
	defer src.Close() //nolint:errcheck

	stored, err := h.service.Store(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, src)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncUpload()
	}
	response.Created(c, stored)
}
