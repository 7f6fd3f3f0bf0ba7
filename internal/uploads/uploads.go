// Package uploads validates and stores binary attachments, returning the
// public URL under which the stored file is served.
package uploads

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize caps every upload at 10 MiB.
const MaxFileSize = 10 << 20

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("file type not allowed")
)

var allowedExtensions = map[string]map[string]bool{
	"image":    {".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true},
	"video":    {".mp4": true, ".avi": true, ".mov": true, ".wmv": true, ".flv": true, ".webm": true},
	"document": {".pdf": true, ".doc": true, ".docx": true, ".txt": true},
}

// Subdirs is the fixed subdirectory tree ensured under the upload root at
// startup, one directory per attachment kind.
var Subdirs = []string{
	"projects/covers",
	"projects/photos",
	"team/members",
	"team/sections",
	"about/photos",
	"about/logos",
	"services/icons",
	"partners/logos",
	"work-processes",
	"news",
	"contact/cv",
}

// Store writes entity uploads under Dir and legacy generic uploads under
// ResourcesDir, prefixing returned URLs with BaseURL (the public domain;
// empty for relative URLs).
type Store struct {
	Dir          string
	ResourcesDir string
	BaseURL      string
}

var std Store

// Init configures the package-level store used by the handlers.
func Init(dir, resourcesDir, baseURL string) {
	std = Store{Dir: dir, ResourcesDir: resourcesDir, BaseURL: baseURL}
}

func Save(fh *multipart.FileHeader, subdir, category string) (string, error) {
	return std.Save(fh, subdir, category)
}

func SaveResource(fh *multipart.FileHeader, category string) (string, error) {
	return std.SaveResource(fh, category)
}

// Save validates the upload against the size ceiling and the extension
// allow-list of its category, then writes it under a generated unique name
// preserving the original extension. Returns the resolvable URL.
func (s Store) Save(fh *multipart.FileHeader, subdir, category string) (string, error) {
	name, err := s.validate(fh, category)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(s.Dir, filepath.FromSlash(subdir))
	if err := s.write(fh, dir, name); err != nil {
		return "", err
	}
	return s.BaseURL + path.Join("/uploads", subdir, name), nil
}

// SaveResource stores a generic upload directly under the resources
// directory, served at /resources. Same validation as Save.
func (s Store) SaveResource(fh *multipart.FileHeader, category string) (string, error) {
	name, err := s.validate(fh, category)
	if err != nil {
		return "", err
	}
	if err := s.write(fh, s.ResourcesDir, name); err != nil {
		return "", err
	}
	return s.BaseURL + path.Join("/resources", name), nil
}

func (s Store) validate(fh *multipart.FileHeader, category string) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	allowed, ok := allowedExtensions[category]
	if !ok {
		allowed = allowedExtensions["image"]
	}
	if !allowed[ext] {
		return "", ErrUnsupportedType
	}
	return uuid.New().String() + ext, nil
}

func (s Store) write(fh *multipart.FileHeader, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// HTTPStatus maps an upload failure to its response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	}
	return http.StatusInternalServerError
}

// EnsureDirs creates the upload subdirectory tree and the legacy resources
// directory. Creation is idempotent.
func EnsureDirs(uploadDir, resourcesDir string) error {
	for _, sub := range Subdirs {
		if err := os.MkdirAll(filepath.Join(uploadDir, filepath.FromSlash(sub)), 0o755); err != nil {
			return err
		}
	}
	return os.MkdirAll(resourcesDir, 0o755)
}
