package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"institute-portal-backend/internal/auth"
	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
)

// CommunicationsHandler handles news, photo galleries and institutional pages
type CommunicationsHandler struct {
	news      *service.NewsService
	galleries *service.GalleryService
	pages     *service.PageService
}

// NewCommunicationsHandler creates a new communications handler
func NewCommunicationsHandler(news *service.NewsService, galleries *service.GalleryService, pages *service.PageService) *CommunicationsHandler {
	return &CommunicationsHandler{news: news, galleries: galleries, pages: pages}
}

// CreateNews handles POST /communications/news
// @Summary Create a news article
// @Description The slug is derived from the title when omitted
// @Tags communications
// @Accept json
// @Produce json
// @Param article body service.NewsRequest true "Article"
// @Success 201 {object} models.NewsArticle
// @Security BearerAuth
// @Router /v1/communications/news [post]
func (h *CommunicationsHandler) CreateNews(c *gin.Context) {
	var req service.NewsRequest
	if !bindJSON(c, &req) {
		return
	}
	var author *uuid.UUID
	if id, ok := auth.GetUserID(c); ok {
		author = &id
	}
	article, err := h.news.Create(c, author, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// GetNews handles GET /communications/news/{id}
// @Summary Get a news article
// @Tags communications
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} models.NewsArticle
// @Security BearerAuth
// @Router /v1/communications/news/{id} [get]
func (h *CommunicationsHandler) GetNews(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	article, err := h.news.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListNews handles GET /communications/news
// @Summary List news articles
// @Tags communications
// @Produce json
// @Param status query string false "draft, published or archived"
// @Param q query string false "Text in title or summary"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.NewsArticle]
// @Security BearerAuth
// @Router /v1/communications/news [get]
func (h *CommunicationsHandler) ListNews(c *gin.Context) {
	h.listNews(c, repository.NewsFilter{Status: models.NewsStatus(c.Query("status")), Query: c.Query("q")})
}

// PublicNews handles GET /api/public/news
// @Summary Published news
// @Tags public
// @Produce json
// @Param q query string false "Text in title or summary"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.NewsArticle]
// @Router /public/news [get]
func (h *CommunicationsHandler) PublicNews(c *gin.Context) {
	h.listNews(c, repository.NewsFilter{Status: models.NewsStatusPublished, Query: c.Query("q")})
}

func (h *CommunicationsHandler) listNews(c *gin.Context, filter repository.NewsFilter) {
	page, size := pageParams(c)
	articles, err := h.news.List(filter, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// PublicNewsBySlug handles GET /api/public/news/{slug}
// @Summary A published news article
// @Tags public
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.NewsArticle
// @Failure 404 {object} ErrorResponse
// @Router /public/news/{slug} [get]
func (h *CommunicationsHandler) PublicNewsBySlug(c *gin.Context) {
	article, err := h.news.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// UpdateNews handles PUT /communications/news/{id}
// @Summary Update a news article
// @Tags communications
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param article body service.NewsRequest true "Article"
// @Success 200 {object} models.NewsArticle
// @Security BearerAuth
// @Router /v1/communications/news/{id} [put]
func (h *CommunicationsHandler) UpdateNews(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.NewsRequest
	if !bindJSON(c, &req) {
		return
	}
	article, err := h.news.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// PublishNews handles POST /communications/news/{id}/publish
// @Summary Publish a news article
// @Tags communications
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} models.NewsArticle
// @Security BearerAuth
// @Router /v1/communications/news/{id}/publish [post]
func (h *CommunicationsHandler) PublishNews(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	article, err := h.news.Publish(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ArchiveNews handles POST /communications/news/{id}/archive
// @Summary Archive a news article
// @Tags communications
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} models.NewsArticle
// @Security BearerAuth
// @Router /v1/communications/news/{id}/archive [post]
func (h *CommunicationsHandler) ArchiveNews(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	article, err := h.news.Archive(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// UploadCover handles POST /communications/news/{id}/cover
// @Summary Upload the cover image of an article
// @Tags communications
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Article ID"
// @Param file formData file true "JPEG, PNG or WebP image"
// @Success 200 {object} models.NewsArticle
// @Security BearerAuth
// @Router /v1/communications/news/{id}/cover [post]
func (h *CommunicationsHandler) UploadCover(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	f, name, ok := formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	article, err := h.news.UploadCover(c, id, name, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteNews handles DELETE /communications/news/{id}
// @Summary Delete a news article
// @Tags communications
// @Param id path string true "Article ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/communications/news/{id} [delete]
func (h *CommunicationsHandler) DeleteNews(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.news.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateGallery handles POST /communications/galleries
// @Summary Create a photo gallery
// @Tags communications
// @Accept json
// @Produce json
// @Param gallery body service.GalleryRequest true "Gallery"
// @Success 201 {object} models.Gallery
// @Security BearerAuth
// @Router /v1/communications/galleries [post]
func (h *CommunicationsHandler) CreateGallery(c *gin.Context) {
	var req service.GalleryRequest
	if !bindJSON(c, &req) {
		return
	}
	gallery, err := h.galleries.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gallery)
}

// GetGallery handles GET /communications/galleries/{id}
// @Summary Get a gallery with its photos
// @Tags communications
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} models.Gallery
// @Security BearerAuth
// @Router /v1/communications/galleries/{id} [get]
func (h *CommunicationsHandler) GetGallery(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	gallery, err := h.galleries.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

// ListGalleries handles GET /communications/galleries
// @Summary List galleries
// @Tags communications
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Gallery]
// @Security BearerAuth
// @Router /v1/communications/galleries [get]
func (h *CommunicationsHandler) ListGalleries(c *gin.Context) {
	h.listGalleries(c, false)
}

// PublicGalleries handles GET /api/public/galleries
// @Summary Published galleries
// @Tags public
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.Gallery]
// @Router /public/galleries [get]
func (h *CommunicationsHandler) PublicGalleries(c *gin.Context) {
	h.listGalleries(c, true)
}

func (h *CommunicationsHandler) listGalleries(c *gin.Context, publishedOnly bool) {
	page, size := pageParams(c)
	galleries, err := h.galleries.List(publishedOnly, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleries)
}

// PublicGallery handles GET /api/public/galleries/{id}
// @Summary A published gallery with its photos
// @Tags public
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} models.Gallery
// @Router /public/galleries/{id} [get]
func (h *CommunicationsHandler) PublicGallery(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	gallery, err := h.galleries.GetPublished(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

// UpdateGallery handles PUT /communications/galleries/{id}
// @Summary Update a gallery
// @Tags communications
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param gallery body service.GalleryRequest true "Gallery"
// @Success 200 {object} models.Gallery
// @Security BearerAuth
// @Router /v1/communications/galleries/{id} [put]
func (h *CommunicationsHandler) UpdateGallery(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.GalleryRequest
	if !bindJSON(c, &req) {
		return
	}
	gallery, err := h.galleries.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

// DeleteGallery handles DELETE /communications/galleries/{id}
// @Summary Delete a gallery and its photos
// @Tags communications
// @Param id path string true "Gallery ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/communications/galleries/{id} [delete]
func (h *CommunicationsHandler) DeleteGallery(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.galleries.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPhoto handles POST /communications/galleries/{id}/photos
// @Summary Upload a photo to a gallery
// @Tags communications
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Gallery ID"
// @Param file formData file true "JPEG, PNG or WebP image"
// @Param caption formData string false "Caption"
// @Success 201 {object} models.Photo
// @Security BearerAuth
// @Router /v1/communications/galleries/{id}/photos [post]
func (h *CommunicationsHandler) AddPhoto(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	f, name, ok := formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	photo, err := h.galleries.AddPhoto(c, id, name, c.PostForm("caption"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// ReorderPhotos handles PUT /communications/galleries/{id}/photos/order
// @Summary Reorder the photos of a gallery
// @Tags communications
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param order body service.ReorderPhotosRequest true "Photo IDs in display order"
// @Success 200 {object} models.Gallery
// @Security BearerAuth
// @Router /v1/communications/galleries/{id}/photos/order [put]
func (h *CommunicationsHandler) ReorderPhotos(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.ReorderPhotosRequest
	if !bindJSON(c, &req) {
		return
	}
	gallery, err := h.galleries.ReorderPhotos(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

// DeletePhoto handles DELETE /communications/photos/{id}
// @Summary Delete a photo
// @Tags communications
// @Param id path string true "Photo ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/communications/photos/{id} [delete]
func (h *CommunicationsHandler) DeletePhoto(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.galleries.DeletePhoto(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePage handles POST /communications/pages
// @Summary Create an institutional page
// @Tags communications
// @Accept json
// @Produce json
// @Param page body service.PageRequest true "Page"
// @Success 201 {object} models.Page
// @Security BearerAuth
// @Router /v1/communications/pages [post]
func (h *CommunicationsHandler) CreatePage(c *gin.Context) {
	var req service.PageRequest
	if !bindJSON(c, &req) {
		return
	}
	page, err := h.pages.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, page)
}

// GetPage handles GET /communications/pages/{id}
// @Summary Get a page
// @Tags communications
// @Produce json
// @Param id path string true "Page ID"
// @Success 200 {object} models.Page
// @Security BearerAuth
// @Router /v1/communications/pages/{id} [get]
func (h *CommunicationsHandler) GetPage(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	page, err := h.pages.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListPages handles GET /communications/pages
// @Summary List pages
// @Tags communications
// @Produce json
// @Success 200 {array} models.Page
// @Security BearerAuth
// @Router /v1/communications/pages [get]
func (h *CommunicationsHandler) ListPages(c *gin.Context) {
	h.listPages(c, false)
}

// PublicPages handles GET /api/public/pages
// @Summary Published pages in menu order
// @Tags public
// @Produce json
// @Success 200 {array} models.Page
// @Router /public/pages [get]
func (h *CommunicationsHandler) PublicPages(c *gin.Context) {
	h.listPages(c, true)
}

func (h *CommunicationsHandler) listPages(c *gin.Context, publishedOnly bool) {
	pages, err := h.pages.List(publishedOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

// PublicPageBySlug handles GET /api/public/pages/{slug}
// @Summary A published page
// @Tags public
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} models.Page
// @Router /public/pages/{slug} [get]
func (h *CommunicationsHandler) PublicPageBySlug(c *gin.Context) {
	page, err := h.pages.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdatePage handles PUT /communications/pages/{id}
// @Summary Update a page
// @Tags communications
// @Accept json
// @Produce json
// @Param id path string true "Page ID"
// @Param page body service.PageRequest true "Page"
// @Success 200 {object} models.Page
// @Security BearerAuth
// @Router /v1/communications/pages/{id} [put]
func (h *CommunicationsHandler) UpdatePage(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.PageRequest
	if !bindJSON(c, &req) {
		return
	}
	page, err := h.pages.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeletePage handles DELETE /communications/pages/{id}
// @Summary Delete a page
// @Tags communications
// @Param id path string true "Page ID"
// @Success 204
// @Security BearerAuth
// @Router /v1/communications/pages/{id} [delete]
func (h *CommunicationsHandler) DeletePage(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.pages.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
