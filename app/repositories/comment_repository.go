package repositories

import (
	"fmt"
	"net/http"

	"postboard/app/models"
)

// HTTPCommentRepository implements CommentRepository against the
// remote demo API.
type HTTPCommentRepository struct {
	apiClient
}

// NewHTTPCommentRepository creates a new HTTPCommentRepository. A nil
// client falls back to http.DefaultClient.
func NewHTTPCommentRepository(baseURL string, client *http.Client) *HTTPCommentRepository {
	return &HTTPCommentRepository{apiClient: newAPIClient(baseURL, client)}
}

// ListByPost retrieves all comments attached to one post
func (r *HTTPCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.getJSON(fmt.Sprintf("/posts/%d/comments", postID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAll retrieves the entire comment collection
func (r *HTTPCommentRepository) ListAll() ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.getJSON("/comments", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
