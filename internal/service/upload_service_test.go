package service

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoraqua/guardianes-api/internal/models"
	"github.com/mentoraqua/guardianes-api/pkg/config"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

type stubBlobStore struct {
	savedName string
	saved     []byte
	err       error
}

func (s *stubBlobStore) SaveStream(filename string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.savedName = filename
	s.saved = data
	return filename, nil
}

func uploadsCfg() config.UploadsConfig {
	return config.UploadsConfig{
		PublicBaseURL:    "/uploads",
		MaxFileSizeBytes: 1024,
		AllowedMIMEs:     []string{"image/*", "application/pdf"},
	}
}

func newTestUploadService(store *stubBlobStore) *UploadService {
	svc := NewUploadService(store, uploadsCfg(), nil)
	svc.newID = func() string { return "fixed-id" }
	return svc
}

func TestUploadServiceStoresAndDescribes(t *testing.T) {
	store := &stubBlobStore{}
	svc := newTestUploadService(store)

	file, err := svc.Store(context.Background(), "boceto maqueta.jpg", "image/jpeg", 12, bytes.NewBufferString("fake-picture"))
	require.NoError(t, err)

	assert.Equal(t, "boceto maqueta.jpg", file.Name)
	assert.Equal(t, "/uploads/fixed-id-boceto_maqueta.jpg", file.URL)
	assert.Equal(t, models.FileStatusUploaded, file.Status)
	assert.Equal(t, int64(12), file.Size)
	assert.Equal(t, "fixed-id-boceto_maqueta.jpg", store.savedName)
	assert.Equal(t, []byte("fake-picture"), store.saved)
}

func TestUploadServiceRejectsOversize(t *testing.T) {
	svc := newTestUploadService(&stubBlobStore{})

	_, err := svc.Store(context.Background(), "video.mp4", "image/png", 4096, bytes.NewBuffer(nil))
	assert.ErrorIs(t, err, appErrors.ErrUploadTooLarge)
}

func TestUploadServiceRejectsDisallowedMIME(t *testing.T) {
	svc := newTestUploadService(&stubBlobStore{})

	_, err := svc.Store(context.Background(), "script.exe", "application/x-msdownload", 10, bytes.NewBuffer(nil))
	assert.ErrorIs(t, err, appErrors.ErrUnsupportedFile)
}

func TestUploadServiceWildcardMIME(t *testing.T) {
	store := &stubBlobStore{}
	svc := newTestUploadService(store)

	_, err := svc.Store(context.Background(), "a.png", "image/png", 5, bytes.NewBufferString("12345"))
	require.NoError(t, err)

	_, err = svc.Store(context.Background(), "b.pdf", "application/pdf", 5, bytes.NewBufferString("12345"))
	require.NoError(t, err)
}

func TestSanitizeFilenameStripsPathTricks(t *testing.T) {
	assert.Equal(t, "passwd", sanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "foto.jpg", sanitizeFilename(`C:\fotos\foto.jpg`))
	assert.Equal(t, "archivo", sanitizeFilename(""))
	assert.Equal(t, "mi_foto_1.png", sanitizeFilename("mi foto 1.png"))
}
