package service

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

type fileStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// UploadConfig describes accepted uploads and their public location.
type UploadConfig struct {
	PublicPrefix      string
	AllowedExtensions []string
}

// UploadService validates and stores teacher photos.
type UploadService struct {
	storage fileStorage
	config  UploadConfig
	allowed map[string]struct{}
	logger  *zap.Logger
	now     func() time.Time
}

// NewUploadService constructs an UploadService.
func NewUploadService(storage fileStorage, config UploadConfig, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(config.AllowedExtensions) == 0 {
		config.AllowedExtensions = []string{"png", "jpg", "jpeg", "gif"}
	}
	if config.PublicPrefix == "" {
		config.PublicPrefix = "uploads/teachers"
	}
	allowed := make(map[string]struct{}, len(config.AllowedExtensions))
	for _, ext := range config.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &UploadService{storage: storage, config: config, allowed: allowed, logger: logger, now: time.Now}
}

// Allowed reports whether filename carries an accepted extension.
func (s *UploadService) Allowed(filename string) bool {
	_, ext, ok := splitExtension(filename)
	if !ok {
		return false
	}
	_, found := s.allowed[ext]
	return found
}

// SaveTeacherPhoto stores upload and returns the public relative path. A nil
// upload or empty filename returns "" and no error.
func (s *UploadService) SaveTeacherPhoto(upload *dto.PhotoUpload) (string, error) {
	if upload == nil || upload.Filename == "" {
		return "", nil
	}
	if !s.Allowed(upload.Filename) {
		return "", appErrors.Clone(appErrors.ErrInvalidUpload, fmt.Sprintf("file type not allowed: %s", baseName(upload.Filename)))
	}

	name := s.storedName(upload.Filename)
	if _, err := s.storage.SaveStream(name, upload.Content); err != nil {
		s.logger.Error("failed to store upload", zap.String("file", name), zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save photo")
	}
	return path.Join(s.config.PublicPrefix, name), nil
}

func (s *UploadService) storedName(filename string) string {
	base, ext, _ := splitExtension(filename)
	safe := slug.Make(base)
	if safe == "" {
		safe = "photo"
	}
	return fmt.Sprintf("%d_%s.%s", s.now().Unix(), safe, ext)
}

func splitExtension(filename string) (string, string, bool) {
	name := baseName(filename)
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return name, "", false
	}
	return name[:idx], strings.ToLower(name[idx+1:]), true
}

// baseName drops any client supplied directory part.
func baseName(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	if idx := strings.LastIndex(filename, "/"); idx >= 0 {
		filename = filename[idx+1:]
	}
	return filename
}
