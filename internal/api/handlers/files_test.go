package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"institute-portal-backend/internal/storage"
	"institute-portal-backend/internal/testutils"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileRouter(t *testing.T) (*testutils.HTTPTestSuite, string, string) {
	store := storage.NewFileStore(afero.NewMemMapFs(), 1<<20)
	img, err := store.Save(storage.CategoryImages, "capa.png", bytes.NewBufferString("png-bytes"))
	require.NoError(t, err)
	doc, err := store.Save(storage.CategoryDocuments, "portaria.pdf", bytes.NewBufferString("%PDF-1.4"))
	require.NoError(t, err)

	h := NewFileHandler(store)
	s := testutils.SetupHTTPTest()
	s.Router.GET("/api/public/media/*path", h.PublicMedia)
	s.Router.GET("/api/v1/files/*path", h.Download)
	return s, img, doc
}

func TestPublicMediaServesImages(t *testing.T) {
	s, img, _ := newFileRouter(t)

	w := s.MakeRequest(http.MethodGet, "/api/public/media/"+img, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
}

// TestPublicMediaHidesDocuments tests that documents are never reachable
// through the public media route
func TestPublicMediaHidesDocuments(t *testing.T) {
	s, _, doc := newFileRouter(t)

	w := s.MakeRequest(http.MethodGet, "/api/public/media/"+doc, nil)
	testutils.AssertErrorResponse(t, w, http.StatusNotFound, "")

	w = s.MakeRequest(http.MethodGet, "/api/public/media/images/../documents/x.pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.MakeRequest(http.MethodGet, "/api/public/media/images/2024/01/missing.png", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownload(t *testing.T) {
	s, _, doc := newFileRouter(t)

	w := s.MakeRequest(http.MethodGet, "/api/v1/files/"+doc+"?download=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestDownloadRejectsUnknownCategory(t *testing.T) {
	s, _, _ := newFileRouter(t)

	w := s.MakeRequest(http.MethodGet, "/api/v1/files/config/app.yaml", nil)

	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid file path")
}
