package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vikash-vatika/vatika-api/models"
	"github.com/vikash-vatika/vatika-api/repositories"
)

type mockGalleryRepo struct {
	images     []models.GalleryImage
	byID       map[uint]*models.GalleryImage
	byCategory map[uint][]models.GalleryImage
}

func (m *mockGalleryRepo) List() ([]models.GalleryImage, error) { return m.images, nil }

func (m *mockGalleryRepo) GetByID(id uint) (*models.GalleryImage, error) {
	image, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrGalleryImageNotFound
	}
	return image, nil
}

func (m *mockGalleryRepo) ListFeatured() ([]models.GalleryImage, error) { return nil, nil }

func (m *mockGalleryRepo) ListByCategory(categoryID uint) ([]models.GalleryImage, error) {
	return m.byCategory[categoryID], nil
}

func (m *mockGalleryRepo) Create(image *models.GalleryImage) error { return nil }

func (m *mockGalleryRepo) Update(image *models.GalleryImage) error { return nil }

func (m *mockGalleryRepo) Delete(id uint) error { return nil }

func TestGetGalleryImagesByCategory(t *testing.T) {
	weddings := uint(2)
	repo := &mockGalleryRepo{byCategory: map[uint][]models.GalleryImage{
		2: {
			{Title: "Mandap decor", Url: "https://cdn.example.com/gallery/mandap.jpg", CategoryID: &weddings},
		},
	}}

	router := gin.New()
	router.GET("/gallery/by-category", GetGalleryImagesByCategory(repo))

	t.Run("missing category_id is a client error", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/gallery/by-category", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "category_id query parameter is required")
	})

	t.Run("malformed category_id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/gallery/by-category?category_id=zero", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns the category's images", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/gallery/by-category?category_id=2", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Images []models.GalleryImage `json:"images"`
		}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Images, 1)
		assert.Equal(t, "Mandap decor", resp.Images[0].Title)
	})

	t.Run("unknown category is just empty", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/gallery/by-category?category_id=9", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Images []models.GalleryImage `json:"images"`
		}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Empty(t, resp.Images)
	})
}

func TestGetGalleryImage(t *testing.T) {
	decor := &models.GalleryImage{Title: "Stage decor", Url: "https://cdn.example.com/gallery/stage.jpg"}
	decor.ID = 5
	repo := &mockGalleryRepo{byID: map[uint]*models.GalleryImage{5: decor}}

	router := gin.New()
	router.GET("/gallery/:id", GetGalleryImage(repo))

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/gallery/5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Stage decor")
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/gallery/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
