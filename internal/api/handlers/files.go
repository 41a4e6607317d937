package handlers

import (
	"path"

	"github.com/gin-gonic/gin"

	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/storage"
)

// FileHandler serves stored uploads
type FileHandler struct {
	store storage.Store
}

// NewFileHandler creates a new file handler
func NewFileHandler(store storage.Store) *FileHandler {
	return &FileHandler{store: store}
}

// PublicMedia handles GET /api/public/media/{path}
// @Summary Public image
// @Description Only paths under images/ are served; documents need authentication
// @Tags public
// @Produce image/jpeg
// @Produce image/png
// @Produce image/webp
// @Param path path string true "Stored path, e.g. images/2024/05/<id>.jpg"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /public/media/{path} [get]
func (h *FileHandler) PublicMedia(c *gin.Context) {
	p, err := storage.Clean(c.Param("path"))
	if err != nil {
		respondError(c, apperrors.ErrFileNotFound)
		return
	}
	if storage.CategoryOf(p) != storage.CategoryImages {
		respondError(c, apperrors.ErrFileNotFound)
		return
	}
	h.serve(c, p, false)
}

// Download handles GET /files/{path}
// @Summary Stored file
// @Tags files
// @Produce application/pdf
// @Param path path string true "Stored path"
// @Param download query bool false "Send as attachment"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/files/{path} [get]
func (h *FileHandler) Download(c *gin.Context) {
	p, err := storage.Clean(c.Param("path"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.serve(c, p, c.Query("download") == "true")
}

func (h *FileHandler) serve(c *gin.Context, p string, download bool) {
	f, err := h.store.Open(p)
	if err != nil {
		respondError(c, err)
		return
	}
	serveFile(c, f, path.Base(p), download)
}
