package repositories

import "postboard/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	List(page, limit int) ([]*models.Post, error)
	GetByID(id int) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access.
// Comments are never written through the frontend.
type CommentRepository interface {
	ListByPost(postID int) ([]*models.Comment, error)
	ListAll() ([]*models.Comment, error)
}
