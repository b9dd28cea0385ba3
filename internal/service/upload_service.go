package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mentoraqua/guardianes-api/internal/models"
	"github.com/mentoraqua/guardianes-api/pkg/config"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

type blobStore interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// UploadService stores evidence files on disk and returns the durable
// descriptor a module answer references.
type UploadService struct {
	store  blobStore
	cfg    config.UploadsConfig
	logger *zap.Logger
	newID  func() string
}

// NewUploadService constructs an UploadService.
func NewUploadService(store blobStore, cfg config.UploadsConfig, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{store: store, cfg: cfg, logger: logger, newID: uuid.NewString}
}

// Store validates size and MIME limits, writes the stream under a
// uuid-prefixed name and returns an uploaded StoredFile with its public URL.
func (s *UploadService) Store(ctx context.Context, filename, mimeType string, size int64, r io.Reader) (*models.StoredFile, error) {
	if s.cfg.MaxFileSizeBytes > 0 && size > s.cfg.MaxFileSizeBytes {
		return nil, appErrors.ErrUploadTooLarge
	}
	if !s.mimeAllowed(mimeType) {
		return nil, appErrors.ErrUnsupportedFile
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := fmt.Sprintf("%s-%s", s.newID(), sanitizeFilename(filename))
	if _, err := s.store.SaveStream(stored, io.LimitReader(r, s.limit())); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store upload")
	}
	s.logger.Info("evidence stored",
		zap.String("file", stored),
		zap.String("mimeType", mimeType),
		zap.Int64("size", size))

	return &models.StoredFile{
		Name:     filename,
		URL:      s.cfg.PublicBaseURL + "/" + stored,
		MimeType: mimeType,
		Size:     size,
		Status:   models.FileStatusUploaded,
	}, nil
}

func (s *UploadService) limit() int64 {
	if s.cfg.MaxFileSizeBytes > 0 {
		// One extra byte so a lying Content-Length cannot sneak past the cap
		// unnoticed; the handler enforces the request body limit.
		return s.cfg.MaxFileSizeBytes + 1
	}
	return 1 << 30
}

func (s *UploadService) mimeAllowed(mimeType string) bool {
	if len(s.cfg.AllowedMIMEs) == 0 {
		return true
	}
	for _, allowed := range s.cfg.AllowedMIMEs {
		if strings.EqualFold(allowed, mimeType) {
			return true
		}
		// "image/*" style prefixes.
		if strings.HasSuffix(allowed, "/*") && strings.HasPrefix(strings.ToLower(mimeType), strings.ToLower(strings.TrimSuffix(allowed, "*"))) {
			return true
		}
	}
	return false
}

// sanitizeFilename strips path separators and keeps only the final element
// so a crafted name cannot escape the uploads directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		return "archivo"
	}
	return name
}
