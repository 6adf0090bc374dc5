package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidate(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				ID:     1,
				PostID: 1,
				Name:   "Reader",
				Email:  "reader@example.com",
				Body:   "Nice post",
			},
			wantErr: false,
		},
		{
			name: "missing post ID",
			comment: &Comment{
				Name:  "Reader",
				Email: "reader@example.com",
				Body:  "Orphan comment",
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			comment: &Comment{
				PostID: 1,
				Name:   "Reader",
				Email:  "not-an-email",
				Body:   "Body",
			},
			wantErr: true,
		},
		{
			name: "missing body",
			comment: &Comment{
				PostID: 1,
				Name:   "Reader",
				Email:  "reader@example.com",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGroupByPost(t *testing.T) {
	comments := []*Comment{
		{ID: 1, PostID: 1, Name: "a", Email: "a@example.com", Body: "first"},
		{ID: 2, PostID: 2, Name: "b", Email: "b@example.com", Body: "second"},
		{ID: 3, PostID: 1, Name: "c", Email: "c@example.com", Body: "third"},
	}

	grouped := GroupByPost(comments)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)
	// Input order is preserved within each group.
	assert.Equal(t, 1, grouped[1][0].ID)
	assert.Equal(t, 3, grouped[1][1].ID)
}

func TestCountByPost(t *testing.T) {
	comments := []*Comment{
		{ID: 1, PostID: 5, Name: "a", Email: "a@example.com", Body: "x"},
		{ID: 2, PostID: 5, Name: "b", Email: "b@example.com", Body: "y"},
		{ID: 3, PostID: 7, Name: "c", Email: "c@example.com", Body: "z"},
	}

	counts := CountByPost(comments)

	assert.Equal(t, map[int]int{5: 2, 7: 1}, counts)
	assert.Empty(t, CountByPost(nil))
}
