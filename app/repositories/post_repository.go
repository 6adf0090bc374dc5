package repositories

import (
	"fmt"
	"net/http"

	"postboard/app/models"
)

// HTTPPostRepository implements PostRepository against the remote
// demo API.
type HTTPPostRepository struct {
	apiClient
}

// NewHTTPPostRepository creates a new HTTPPostRepository. A nil
// client falls back to http.DefaultClient.
func NewHTTPPostRepository(baseURL string, client *http.Client) *HTTPPostRepository {
	return &HTTPPostRepository{apiClient: newAPIClient(baseURL, client)}
}

// List retrieves one page of posts in the order the API returns them
func (r *HTTPPostRepository) List(page, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	path := fmt.Sprintf("/posts?_page=%d&_limit=%d", page, limit)
	if err := r.getJSON(path, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID retrieves a single post by ID
func (r *HTTPPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	if err := r.getJSON(fmt.Sprintf("/posts/%d", id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Create submits a new post. The server assigns the ID; the returned
// record overwrites the argument in place.
func (r *HTTPPostRepository) Create(post *models.Post) error {
	return r.sendJSON(http.MethodPost, "/posts", post, post)
}

// Update replaces the post with the matching ID using the full payload
func (r *HTTPPostRepository) Update(post *models.Post) error {
	return r.sendJSON(http.MethodPut, fmt.Sprintf("/posts/%d", post.ID), post, post)
}

// Delete removes the post with the given ID. No payload either way.
func (r *HTTPPostRepository) Delete(id int) error {
	return r.sendJSON(http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}
