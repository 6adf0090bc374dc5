// Package board holds the transient view state for one browsing
// session: the currently displayed post collection, the page cursor,
// and the single shared error message. Nothing here survives a
// restart; every record is a copy of what the remote API last
// returned.
package board

import (
	"sync"

	"postboard/app/models"
)

// Board is the in-memory view state. Handlers are the only writers;
// a RWMutex keeps concurrent requests from tearing the slice.
type Board struct {
	mutex   sync.RWMutex
	posts   []*models.Post
	page    int
	perPage int
	lastErr string
}

// New creates an empty board starting at page 1.
func New(perPage int) *Board {
	if perPage < 1 {
		perPage = 10
	}
	return &Board{page: 1, perPage: perPage}
}

// Load replaces the held collection wholesale with one page of
// results, in the order given, and clears any previous error.
func (b *Board) Load(posts []*models.Post, page int) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.posts = posts
	b.page = page
	b.lastErr = ""
}

// Posts returns the held collection in display order.
func (b *Board) Posts() []*models.Post {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	out := make([]*models.Post, len(b.posts))
	copy(out, b.posts)
	return out
}

// Page returns the current page number.
func (b *Board) Page() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.page
}

// PerPage returns the fixed page size.
func (b *Board) PerPage() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.perPage
}

// Prepend puts a freshly created post at the front of the collection
// and clears any previous error.
func (b *Board) Prepend(post *models.Post) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.posts = append([]*models.Post{post}, b.posts...)
	b.lastErr = ""
}

// Replace swaps in the edited post for the record matching its ID.
// Every other record is left untouched. Returns false when no record
// matches.
func (b *Board) Replace(post *models.Post) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for i, held := range b.posts {
		if held.ID == post.ID {
			b.posts[i] = post
			b.lastErr = ""
			return true
		}
	}
	return false
}

// Remove filters out the record matching the given ID. Returns false
// when no record matches.
func (b *Board) Remove(id int) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for i, held := range b.posts {
		if held.ID == id {
			b.posts = append(b.posts[:i], b.posts[i+1:]...)
			b.lastErr = ""
			return true
		}
	}
	return false
}

// Fail records a failure message. The held collection is left
// untouched; the message stays up until the next successful load.
func (b *Board) Fail(msg string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.lastErr = msg
}

// Err returns the current failure message, empty when the last
// operation succeeded.
func (b *Board) Err() string {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.lastErr
}
