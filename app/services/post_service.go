package services

import (
	"fmt"

	"postboard/app/models"
	"postboard/app/repositories"
)

// PostService handles business logic for posts fetched from the
// remote API.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// ListPosts retrieves one page of posts. Out-of-range arguments fall
// back to page 1 and a page size of 10.
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.postRepo.List(page, perPage)
}

// GetPost retrieves a single post by ID. Comments are fetched
// separately, on first expansion only.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// CreatePost validates and submits a new post. The server assigns the
// ID, which lands back on the argument.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}
	return s.postRepo.Create(post)
}

// UpdatePost validates and submits a full replacement for an existing
// post.
func (s *PostService) UpdatePost(post *models.Post) error {
	if post.ID < 1 {
		return fmt.Errorf("invalid post ID")
	}
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}
	return s.postRepo.Update(post)
}

// DeletePost removes a post by ID. There is no undo.
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}
