package repositories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"postboard/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPPostRepositoryList(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/posts", r.URL.Path)
		gotQuery = r.URL.RawQuery

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*models.Post{
			{ID: 11, UserID: 2, Title: "first", Body: "a"},
			{ID: 12, UserID: 2, Title: "second", Body: "b"},
		})
	}))
	defer server.Close()

	repo := NewHTTPPostRepository(server.URL, server.Client())

	posts, err := repo.List(2, 5)
	require.NoError(t, err)
	assert.Equal(t, "_page=2&_limit=5", gotQuery)

	// Response order is preserved as-is.
	require.Len(t, posts, 2)
	assert.Equal(t, 11, posts[0].ID)
	assert.Equal(t, 12, posts[1].ID)
}

func TestHTTPPostRepositoryGetByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/posts/7" {
			json.NewEncoder(w).Encode(&models.Post{ID: 7, UserID: 1, Title: "seven", Body: "lucky"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	repo := NewHTTPPostRepository(server.URL, server.Client())

	t.Run("existing post", func(t *testing.T) {
		post, err := repo.GetByID(7)
		require.NoError(t, err)
		assert.Equal(t, "seven", post.Title)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestHTTPPostRepositoryCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/posts", r.URL.Path)
		require.Equal(t, "application/json; charset=UTF-8", r.Header.Get("Content-Type"))

		var post models.Post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&post))
		post.ID = 101 // server-assigned
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&post)
	}))
	defer server.Close()

	repo := NewHTTPPostRepository(server.URL, server.Client())

	post := &models.Post{UserID: 1, Title: "new", Body: "created"}
	err := repo.Create(post)
	require.NoError(t, err)
	assert.Equal(t, 101, post.ID)
	assert.Equal(t, "new", post.Title)
}

func TestHTTPPostRepositoryUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/posts/3", r.URL.Path)

		var post models.Post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&post))
		json.NewEncoder(w).Encode(&post)
	}))
	defer server.Close()

	repo := NewHTTPPostRepository(server.URL, server.Client())

	post := &models.Post{ID: 3, UserID: 1, Title: "edited", Body: "changed"}
	err := repo.Update(post)
	require.NoError(t, err)
	assert.Equal(t, "edited", post.Title)
}

func TestHTTPPostRepositoryDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/posts/4", r.URL.Path)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	repo := NewHTTPPostRepository(server.URL, server.Client())
	assert.NoError(t, repo.Delete(4))
}

func TestHTTPPostRepositoryServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewHTTPPostRepository(server.URL, server.Client())

	_, err := repo.List(1, 10)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}
