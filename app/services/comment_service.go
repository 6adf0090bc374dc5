package services

import (
	"sync"

	"postboard/app/models"
	"postboard/app/repositories"
)

// CommentService handles comment fetches and memoizes them for the
// session: expanding a post's comments hits the API exactly once, and
// the per-post count mapping is derived from a single full listing.
type CommentService struct {
	commentRepo repositories.CommentRepository

	// The mutex is held across fetches so a given post is only ever
	// fetched once.
	mutex  sync.Mutex
	byPost map[int][]*models.Comment
	counts map[int]int
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		byPost:      make(map[int][]*models.Comment),
	}
}

// CommentsFor returns the comments attached to a post, fetching them
// lazily on the first call and serving the memo afterwards.
func (s *CommentService) CommentsFor(postID int) ([]*models.Comment, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if comments, seen := s.byPost[postID]; seen {
		return comments, nil
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	s.byPost[postID] = comments
	return comments, nil
}

// Counts returns the post ID to comment count mapping, built once
// from a full comment listing. A post with no comments has no entry.
func (s *CommentService) Counts() (map[int]int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.counts != nil {
		return s.counts, nil
	}

	comments, err := s.commentRepo.ListAll()
	if err != nil {
		return nil, err
	}
	s.counts = models.CountByPost(comments)
	return s.counts, nil
}
