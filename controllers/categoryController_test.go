package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vikash-vatika/vatika-api/models"
	"github.com/vikash-vatika/vatika-api/repositories"
)

// --- Mock repository ---

type mockCategoryRepo struct {
	categories []models.Category
	bySlug     map[string]*models.Category
	createErr  error
	lastSaved  *models.Category
}

func (m *mockCategoryRepo) List() ([]models.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryRepo) GetBySlug(slug string) (*models.Category, error) {
	category, ok := m.bySlug[slug]
	if !ok {
		return nil, repositories.ErrCategoryNotFound
	}
	return category, nil
}

func (m *mockCategoryRepo) Create(category *models.Category) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.lastSaved = category
	return nil
}

func (m *mockCategoryRepo) Update(category *models.Category) error {
	m.lastSaved = category
	return nil
}

func (m *mockCategoryRepo) Delete(slug string) error {
	if _, ok := m.bySlug[slug]; !ok {
		return repositories.ErrCategoryNotFound
	}
	return nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetCategories(t *testing.T) {
	repo := &mockCategoryRepo{categories: []models.Category{
		{Name: "Flowers", Slug: "flowers"},
		{Name: "Plants", Slug: "plants"},
	}}

	router := gin.New()
	router.GET("/categories", GetCategories(repo))

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Categories, 2)
	assert.Equal(t, "flowers", resp.Categories[0].Slug)
}

func TestCreateCategory(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		repo               *mockCategoryRepo
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *mockCategoryRepo)
	}{
		{
			name:               "Success",
			requestBody:        `{"name":"Flowers","slug":"flowers"}`,
			repo:               &mockCategoryRepo{},
			expectedStatusCode: http.StatusCreated,
			checkRepoCall: func(t *testing.T, repo *mockCategoryRepo) {
				assert.NotNil(t, repo.lastSaved)
				assert.Equal(t, "flowers", repo.lastSaved.Slug)
				assert.Equal(t, "Flowers", repo.lastSaved.Name)
			},
		},
		{
			name:               "Duplicate slug is a conflict",
			requestBody:        `{"name":"Flowers Again","slug":"flowers"}`,
			repo:               &mockCategoryRepo{createErr: repositories.ErrSlugTaken},
			expectedStatusCode: http.StatusConflict,
			checkRepoCall: func(t *testing.T, repo *mockCategoryRepo) {
				assert.Nil(t, repo.lastSaved)
			},
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `{invalid json`,
			repo:               &mockCategoryRepo{},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *mockCategoryRepo) {
				assert.Nil(t, repo.lastSaved)
			},
		},
		{
			name:               "Missing slug",
			requestBody:        `{"name":"No Slug"}`,
			repo:               &mockCategoryRepo{},
			expectedStatusCode: http.StatusBadRequest,
			checkRepoCall: func(t *testing.T, repo *mockCategoryRepo) {
				assert.Nil(t, repo.lastSaved)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/categories", CreateCategory(tc.repo))

			req := httptest.NewRequest("POST", "/categories", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, tc.repo)
			}
		})
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	router := gin.New()
	router.GET("/categories/:slug", GetCategory(&mockCategoryRepo{}))

	req := httptest.NewRequest("GET", "/categories/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
