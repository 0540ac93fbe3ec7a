package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"workbench/backend/internal/config"
	"workbench/backend/internal/gallery"
	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

type galleryImageResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	SrcSet       string    `json:"srcset"`
	Sizes        string    `json:"sizes"`
	CreatedAt    time.Time `json:"created_at"`
}

func newGalleryImageResponse(img models.GalleryImage) galleryImageResponse {
	imageURL := "/uploads/" + img.Filename
	thumbnailURL := imageURL
	if lo.Contains(img.Variants, "mobile") {
		thumbnailURL = "/uploads/" + gallery.VariantFilename(img.Filename, "mobile")
	}
	return galleryImageResponse{
		ID:           img.ID,
		Title:        img.Title,
		ImageURL:     imageURL,
		ThumbnailURL: thumbnailURL,
		SrcSet:       gallery.SrcSet(img.Filename, img.Variants),
		Sizes:        gallery.Sizes,
		CreatedAt:    img.CreatedAt,
	}
}

// ListGalleryImages returns all images, newest first.
func (h *Handler) ListGalleryImages(c *gin.Context) {
	images, err := h.Store.ListGalleryImages()
	if err != nil {
		logging.Logger.Error("failed to list gallery images", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, lo.Map(images, func(img models.GalleryImage, _ int) galleryImageResponse {
		return newGalleryImageResponse(img)
	}))
}

// CreateGalleryImage accepts a multipart form with gallery_image[title]
// and gallery_image[image], stores the original plus its responsive
// variants in the bucket, and records the row.
func (h *Handler) CreateGalleryImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxUploadSize)

	title := c.PostForm("gallery_image[title]")
	file, err := c.FormFile("gallery_image[image]")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": gin.H{"image": []string{"can't be blank"}},
		})
		return
	}

	img := models.GalleryImage{
		Title:            title,
		Filename:         gallery.NewUploadFilename(file.Filename),
		OriginalFilename: file.Filename,
	}
	if err := img.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	src, err := file.Open()
	if err != nil {
		respondInternalError(c)
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	variants, err := h.Gallery.StoreUpload(c.Request.Context(), img.Filename, src, contentType)
	if err != nil {
		logging.Logger.Error("failed to store gallery upload",
			zap.String("filename", img.Filename), zap.Error(err))
		respondInternalError(c)
		return
	}
	img.Variants = variants

	if err := h.Store.CreateGalleryImage(&img); err != nil {
		logging.Logger.Error("failed to create gallery image", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, newGalleryImageResponse(img))
}

// DeleteGalleryImage removes the row and the stored blobs. A blob that
// fails to delete is logged but does not fail the request.
func (h *Handler) DeleteGalleryImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	img, err := h.Store.GetGalleryImage(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if img == nil {
		respondNotFound(c)
		return
	}

	if err := h.Gallery.Remove(c.Request.Context(), img.Filename, img.Variants); err != nil {
		logging.Logger.Warn("failed to remove gallery blobs",
			zap.String("filename", img.Filename), zap.Error(err))
	}

	if err := h.Store.DeleteGalleryImage(id); err != nil {
		logging.Logger.Error("failed to delete gallery image", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ServeUpload streams an original or variant straight from the bucket.
func (h *Handler) ServeUpload(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" {
		respondNotFound(c)
		return
	}

	body, contentType, size, err := h.Gallery.Blobs.Open(c.Request.Context(), gallery.ObjectKey(filename))
	if err != nil {
		respondNotFound(c)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, size, contentType, body, nil)
}
