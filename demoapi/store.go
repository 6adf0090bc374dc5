// Package demoapi bundles a local stand-in for the public demo API:
// the same endpoint shapes, backed by an embedded Badger store seeded
// with sample data. Unlike the public API, mutations here persist;
// the frontend neither knows nor cares.
package demoapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"postboard/app/models"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	postKeyPrefix    = "post:"
	commentKeyPrefix = "comment:"

	// Sequence keys for auto-incrementing IDs
	postSeqKey    = "seq:post"
	commentSeqKey = "seq:comment"
)

var ErrNotFound = errors.New("record not found")

// Store persists posts and comments in BadgerDB.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) the Badger store at the given path.
func OpenStore(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %v", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// getNextID gets the next available ID for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}
	return id, nil
}

func postKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", postKeyPrefix, id))
}

func commentKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", commentKeyPrefix, id))
}

// CreatePost assigns the next ID and saves the post
func (s *Store) CreatePost(post *models.Post) error {
	return s.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, postSeqKey)
		if err != nil {
			return err
		}
		post.ID = id

		data, err := json.Marshal(post)
		if err != nil {
			return fmt.Errorf("failed to marshal post: %v", err)
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// GetPost retrieves a post by ID
func (s *Store) GetPost(id int) (*models.Post, error) {
	var post models.Post
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &post)
		})
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts retrieves one page of posts in key order
func (s *Store) ListPosts(page, limit int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	posts := []*models.Post{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		count := 0
		prefix := []byte(postKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if count < offset {
				count++
				continue
			}
			if count >= offset+limit {
				break
			}

			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			posts = append(posts, &post)
			count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost replaces an existing post wholesale
func (s *Store) UpdatePost(post *models.Post) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := json.Marshal(post)
		if err != nil {
			return fmt.Errorf("failed to marshal post: %v", err)
		}
		return txn.Set(key, data)
	})
}

// DeletePost deletes a post and the comments attached to it
func (s *Store) DeletePost(id int) error {
	comments, err := s.ListCommentsByPost(id)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		for _, comment := range comments {
			if err := txn.Delete(commentKey(comment.ID)); err != nil {
				return err
			}
		}
		return txn.Delete(key)
	})
}

// CreateComment assigns the next ID and saves the comment
func (s *Store) CreateComment(comment *models.Comment) error {
	return s.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, commentSeqKey)
		if err != nil {
			return err
		}
		comment.ID = id

		data, err := json.Marshal(comment)
		if err != nil {
			return fmt.Errorf("failed to marshal comment: %v", err)
		}
		return txn.Set(commentKey(comment.ID), data)
	})
}

// ListCommentsByPost retrieves all comments attached to one post
func (s *Store) ListCommentsByPost(postID int) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(commentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %v", err)
			}
			if comment.PostID == postID {
				comments = append(comments, &comment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAllComments retrieves the entire comment collection
func (s *Store) ListAllComments() ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(commentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %v", err)
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Empty reports whether the store holds no posts yet.
func (s *Store) Empty() (bool, error) {
	empty := true
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(postKeyPrefix)
		it.Seek(prefix)
		empty = !it.ValidForPrefix(prefix)
		return nil
	})
	return empty, err
}
