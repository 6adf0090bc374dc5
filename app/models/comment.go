package models

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

// GroupByPost groups comments into a mapping from post ID to the
// comments attached to that post, preserving input order within each
// group.
func GroupByPost(comments []*Comment) map[int][]*Comment {
	grouped := make(map[int][]*Comment)
	for _, comment := range comments {
		grouped[comment.PostID] = append(grouped[comment.PostID], comment)
	}
	return grouped
}

// CountByPost derives a post ID to comment count mapping from a full
// comment listing.
func CountByPost(comments []*Comment) map[int]int {
	counts := make(map[int]int)
	for _, comment := range comments {
		counts[comment.PostID]++
	}
	return counts
}
