package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Dir: t.TempDir()}
}

func TestSaveStoresFileAndReturnsURL(t *testing.T) {
	s := testStore(t)

	fh := fileHeader(t, "photo.JPG", []byte("fake image bytes"))
	url, err := s.Save(fh, "news", "image")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "/uploads/news/"), url)
	require.True(t, strings.HasSuffix(url, ".jpg"), url)
	// Generated names never leak the original filename.
	require.NotContains(t, url, "photo")

	onDisk := filepath.Join(s.Dir, "news", filepath.Base(url))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	require.Equal(t, []byte("fake image bytes"), data)
}

func TestSaveAppliesBaseURL(t *testing.T) {
	s := Store{Dir: t.TempDir(), BaseURL: "https://cdn.example.com"}

	fh := fileHeader(t, "a.png", []byte("x"))
	url, err := s.Save(fh, "news", "image")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "https://cdn.example.com/uploads/news/"), url)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	s := testStore(t)

	fh := fileHeader(t, "payload.exe", []byte("MZ"))
	_, err := s.Save(fh, "news", "image")
	require.ErrorIs(t, err, ErrUnsupportedType)

	// Extensions are checked against the requested category only.
	fh = fileHeader(t, "cv.pdf", []byte("%PDF"))
	_, err = s.Save(fh, "contact/cv", "image")
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = s.Save(fh, "contact/cv", "document")
	require.NoError(t, err)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	s := testStore(t)

	fh := fileHeader(t, "big.jpg", []byte("x"))
	fh.Size = MaxFileSize + 1
	_, err := s.Save(fh, "news", "image")
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestSaveUnknownCategoryFallsBackToImage(t *testing.T) {
	s := testStore(t)

	fh := fileHeader(t, "a.png", []byte("x"))
	_, err := s.Save(fh, "misc", "bogus")
	require.NoError(t, err)

	fh = fileHeader(t, "a.pdf", []byte("x"))
	_, err = s.Save(fh, "misc", "bogus")
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	s := testStore(t)

	fh := fileHeader(t, "same.png", []byte("x"))
	first, err := s.Save(fh, "news", "image")
	require.NoError(t, err)
	second, err := s.Save(fh, "news", "image")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestSaveResourceStoresUnderResources(t *testing.T) {
	s := Store{Dir: t.TempDir(), ResourcesDir: t.TempDir()}

	fh := fileHeader(t, "doc.pdf", []byte("%PDF"))
	url, err := s.SaveResource(fh, "document")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/resources/"), url)

	data, err := os.ReadFile(filepath.Join(s.ResourcesDir, filepath.Base(url)))
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF"), data)
}

func TestSaveResourceValidatesLikeSave(t *testing.T) {
	s := Store{Dir: t.TempDir(), ResourcesDir: t.TempDir()}

	fh := fileHeader(t, "payload.exe", []byte("MZ"))
	_, err := s.SaveResource(fh, "image")
	require.ErrorIs(t, err, ErrUnsupportedType)

	fh = fileHeader(t, "big.jpg", []byte("x"))
	fh.Size = MaxFileSize + 1
	_, err = s.SaveResource(fh, "image")
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, 413, HTTPStatus(ErrTooLarge))
	require.Equal(t, 415, HTTPStatus(ErrUnsupportedType))
	require.Equal(t, 500, HTTPStatus(os.ErrPermission))
}

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	uploadDir := filepath.Join(root, "uploads")
	resourcesDir := filepath.Join(root, "resources")

	require.NoError(t, EnsureDirs(uploadDir, resourcesDir))
	// Idempotent.
	require.NoError(t, EnsureDirs(uploadDir, resourcesDir))

	for _, sub := range Subdirs {
		info, err := os.Stat(filepath.Join(uploadDir, filepath.FromSlash(sub)))
		require.NoError(t, err, sub)
		require.True(t, info.IsDir())
	}
	info, err := os.Stat(resourcesDir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
