// Package mock provides in-memory repository implementations for
// tests that need a frontend wired end to end without a live API.
package mock

import (
	"sort"
	"sync"

	"postboard/app/models"
	"postboard/app/repositories"
)

type PostRepository struct {
	mutex  sync.RWMutex
	posts  map[int]*models.Post
	nextID int

	// Fetches counts GetByID calls per post ID.
	Fetches map[int]int
}

type CommentRepository struct {
	mutex    sync.RWMutex
	comments map[int]*models.Comment

	// ListByPostCalls and ListAllCalls count remote fetches so tests
	// can assert memoization behavior.
	ListByPostCalls map[int]int
	ListAllCalls    int
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:   make(map[int]*models.Post),
		nextID:  1,
		Fetches: make(map[int]int),
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments:        make(map[int]*models.Comment),
		ListByPostCalls: make(map[int]int),
	}
}

// Seed inserts a post keeping the ID the caller chose.
func (m *PostRepository) Seed(post *models.Post) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts[post.ID] = post
	if post.ID >= m.nextID {
		m.nextID = post.ID + 1
	}
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.Fetches[id]++
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) List(page, limit int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	// Sort by ID for a stable listing order.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})

	offset := (page - 1) * limit
	if offset >= len(posts) {
		return []*models.Post{}, nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], nil
}

// Seed inserts a comment keeping the ID the caller chose.
func (m *CommentRepository) Seed(comment *models.Comment) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.comments[comment.ID] = comment
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.ListByPostCalls[postID]++
	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (m *CommentRepository) ListAll() ([]*models.Comment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.ListAllCalls++
	var comments []*models.Comment
	for _, comment := range m.comments {
		comments = append(comments, comment)
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}
