package demoapi

import "postboard/app/models"

// Seed fills an empty store with a handful of sample posts and
// comments so the frontend has something to browse offline. A store
// that already has posts is left alone.
func Seed(store *Store) error {
	empty, err := store.Empty()
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	posts := []*models.Post{
		{UserID: 1, Title: "Welcome to the demo board", Body: "Everything you see here lives in a local Badger store. Edit, delete, go wild."},
		{UserID: 1, Title: "Pagination works the same as upstream", Body: "Pass _page and _limit query parameters to the listing endpoint."},
		{UserID: 2, Title: "Comments are read-only", Body: "The frontend fetches them lazily and memoizes them per session."},
		{UserID: 2, Title: "Deletes really delete here", Body: "The public demo API only pretends to persist mutations. This one does not pretend."},
		{UserID: 3, Title: "A post with no comments", Body: "Expanding this one still costs exactly one fetch."},
	}
	for _, post := range posts {
		if err := store.CreatePost(post); err != nil {
			return err
		}
	}

	comments := []*models.Comment{
		{PostID: posts[0].ID, Name: "first reader", Email: "first@example.com", Body: "Glad to be here."},
		{PostID: posts[0].ID, Name: "second reader", Email: "second@example.com", Body: "Nice little board."},
		{PostID: posts[1].ID, Name: "curious reader", Email: "curious@example.com", Body: "What happens past the last page? An empty list, same as upstream."},
		{PostID: posts[2].ID, Name: "meta reader", Email: "meta@example.com", Body: "Commenting on the post about comments."},
		{PostID: posts[3].ID, Name: "skeptical reader", Email: "skeptic@example.com", Body: "I deleted a post and it stayed gone. Confirmed."},
	}
	for _, comment := range comments {
		if err := store.CreateComment(comment); err != nil {
			return err
		}
	}
	return nil
}
