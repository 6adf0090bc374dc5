package demoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"postboard/app/models"
	"postboard/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := openTestStore(t)
	require.NoError(t, Seed(store))

	server := httptest.NewServer(NewServer(store).Router())
	t.Cleanup(server.Close)
	return server
}

func TestServerListPosts(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/posts?_page=1&_limit=3")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var posts []*models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	assert.Len(t, posts, 3)
}

func TestServerGetPost(t *testing.T) {
	server := setupTestServer(t)

	t.Run("existing", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/posts/1")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var post models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
		assert.Equal(t, 1, post.ID)
		assert.NotEmpty(t, post.Title)
	})

	t.Run("missing", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/posts/999")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServerCreatePost(t *testing.T) {
	server := setupTestServer(t)

	t.Run("valid payload", func(t *testing.T) {
		payload, _ := json.Marshal(&models.Post{UserID: 1, Title: "created", Body: "via POST"})
		resp, err := http.Post(server.URL+"/posts", "application/json; charset=UTF-8", bytes.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var post models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
		assert.NotZero(t, post.ID)
		assert.Equal(t, "created", post.Title)
	})

	t.Run("invalid payload", func(t *testing.T) {
		payload := []byte(`{"userId": 1, "title": ""}`)
		resp, err := http.Post(server.URL+"/posts", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServerComments(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/posts/1/comments")
	require.NoError(t, err)
	defer resp.Body.Close()

	var comments []*models.Comment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&comments))
	assert.NotEmpty(t, comments)
	for _, comment := range comments {
		assert.Equal(t, 1, comment.PostID)
	}

	resp, err = http.Get(server.URL + "/comments")
	require.NoError(t, err)
	defer resp.Body.Close()

	var all []*models.Comment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	assert.NotEmpty(t, all)
}

// The stand-in API must be a drop-in backend for the frontend's HTTP
// repositories.
func TestServerBacksHTTPRepositories(t *testing.T) {
	server := setupTestServer(t)

	postRepo := repositories.NewHTTPPostRepository(server.URL, server.Client())
	commentRepo := repositories.NewHTTPCommentRepository(server.URL, server.Client())

	posts, err := postRepo.List(1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	created := &models.Post{UserID: 1, Title: "round trip", Body: "frontend to stand-in and back"}
	require.NoError(t, postRepo.Create(created))
	assert.NotZero(t, created.ID)

	got, err := postRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "round trip", got.Title)

	created.Title = "round trip, edited"
	require.NoError(t, postRepo.Update(created))

	got, err = postRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "round trip, edited", got.Title)

	require.NoError(t, postRepo.Delete(created.ID))
	_, err = postRepo.GetByID(created.ID)
	assert.Equal(t, repositories.ErrNotFound, err)

	comments, err := commentRepo.ListByPost(posts[0].ID)
	require.NoError(t, err)
	for _, comment := range comments {
		assert.Equal(t, posts[0].ID, comment.PostID)
	}
}
