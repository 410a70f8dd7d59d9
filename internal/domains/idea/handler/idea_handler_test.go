package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idealink-backend/internal/domains/idea"
)

// mockIdeaService returns canned results per call.
type mockIdeaService struct {
	createIdea *idea.Idea
	createErr  error
	listIdeas  []idea.Idea
	listErr    error
	getIdea    *idea.Idea
	getErr     error
	updateIdea *idea.Idea
	updateErr  error
	deleteErr  error
}

func (m *mockIdeaService) Create(_ context.Context, _ idea.CreateIdeaRequest) (*idea.Idea, error) {
	return m.createIdea, m.createErr
}

func (m *mockIdeaService) List(_ context.Context) ([]idea.Idea, error) {
	return m.listIdeas, m.listErr
}

func (m *mockIdeaService) GetByID(_ context.Context, _ uuid.UUID) (*idea.Idea, error) {
	return m.getIdea, m.getErr
}

func (m *mockIdeaService) Update(_ context.Context, _ uuid.UUID, _ idea.UpdateIdeaRequest) (*idea.Idea, error) {
	return m.updateIdea, m.updateErr
}

func (m *mockIdeaService) Delete(_ context.Context, _, _ uuid.UUID) error {
	return m.deleteErr
}

func newIdeaRouter(svc idea.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewIdeaHandler(svc)
	router := gin.New()
	router.GET("/ideas", h.List)
	router.POST("/ideas", h.Create)
	router.GET("/ideas/:id", h.GetByID)
	router.PATCH("/ideas/:id", h.Update)
	router.DELETE("/ideas/:id", h.Delete)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sampleIdea() *idea.Idea {
	return &idea.Idea{
		ID:               uuid.New(),
		Title:            "Open source recipe planner",
		ShortDescription: "Weekly meal planning with collaborative shopping lists",
		LongDescription:  "A web app where a household plans meals together.",
		Category:         "web",
		TimeRequired:     "3 months",
		MembersNeeded:    3,
		Professions:      []string{"backend developer"},
		Author: idea.Author{
			ID:    uuid.New(),
			Name:  "Grace Hopper",
			Email: "grace@example.com",
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func createIdeaBody(authorID uuid.UUID) gin.H {
	return gin.H{
		"title":            "Open source recipe planner",
		"shortDescription": "Weekly meal planning with collaborative shopping lists",
		"longDescription":  "A web app where a household plans meals together.",
		"category":         "web",
		"timeRequired":     "3 months",
		"isPaid":           false,
		"membersNeeded":    3,
		"professions":      []string{"backend developer"},
		"authorId":         authorID.String(),
		"authorName":       "Grace Hopper",
		"authorEmail":      "grace@example.com",
	}
}

func TestCreateIdeaHandler_Created(t *testing.T) {
	sample := sampleIdea()
	router := newIdeaRouter(&mockIdeaService{createIdea: sample})

	w := performJSON(t, router, http.MethodPost, "/ideas", createIdeaBody(sample.Author.ID))

	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	ideaBody, ok := body["idea"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, sample.Title, ideaBody["title"])

	authorBody, ok := ideaBody["author"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, sample.Author.Email, authorBody["email"])
}

func TestListIdeasHandler_Shape(t *testing.T) {
	sample := sampleIdea()
	router := newIdeaRouter(&mockIdeaService{listIdeas: []idea.Idea{*sample}})

	w := performJSON(t, router, http.MethodGet, "/ideas", nil)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	ideas, ok := body["ideas"].([]interface{})
	require.True(t, ok)
	assert.Len(t, ideas, 1)
}

func TestListIdeasHandler_EmptyIsArrayNotNull(t *testing.T) {
	router := newIdeaRouter(&mockIdeaService{listIdeas: []idea.Idea{}})

	w := performJSON(t, router, http.MethodGet, "/ideas", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ideas":[]`)
}

func TestGetIdeaHandler(t *testing.T) {
	sample := sampleIdea()

	t.Run("found", func(t *testing.T) {
		router := newIdeaRouter(&mockIdeaService{getIdea: sample})
		w := performJSON(t, router, http.MethodGet, "/ideas/"+sample.ID.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router := newIdeaRouter(&mockIdeaService{getErr: idea.ErrIdeaNotFound})
		w := performJSON(t, router, http.MethodGet, "/ideas/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router := newIdeaRouter(&mockIdeaService{})
		w := performJSON(t, router, http.MethodGet, "/ideas/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateIdeaHandler_NotOwner(t *testing.T) {
	router := newIdeaRouter(&mockIdeaService{updateErr: idea.ErrNotIdeaOwner})

	w := performJSON(t, router, http.MethodPatch, "/ideas/"+uuid.NewString(), createIdeaBody(uuid.New()))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteIdeaHandler(t *testing.T) {
	sample := sampleIdea()

	t.Run("missing userId", func(t *testing.T) {
		router := newIdeaRouter(&mockIdeaService{})
		w := performJSON(t, router, http.MethodDelete, "/ideas/"+sample.ID.String(), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed userId", func(t *testing.T) {
		router := newIdeaRouter(&mockIdeaService{})
		w := performJSON(t, router, http.MethodDelete, fmt.Sprintf("/ideas/%s?userId=abc", sample.ID), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not owner", func(t *testing.T) {
		router := newIdeaRouter(&mockIdeaService{deleteErr: idea.ErrNotIdeaOwner})
		w := performJSON(t, router, http.MethodDelete, fmt.Sprintf("/ideas/%s?userId=%s", sample.ID, uuid.New()), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner deletes", func(t *testing.T) {
		router := newIdeaRouter(&mockIdeaService{})
		w := performJSON(t, router, http.MethodDelete, fmt.Sprintf("/ideas/%s?userId=%s", sample.ID, sample.Author.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
	})
}
