package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				ID:     1,
				UserID: 1,
				Title:  "Hello World",
				Body:   "First post body",
			},
			wantErr: false,
		},
		{
			name: "valid post without server ID yet",
			post: &Post{
				UserID: 3,
				Title:  "Draft",
				Body:   "Not yet created on the server",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			post: &Post{
				UserID: 1,
				Body:   "Body without title",
			},
			wantErr: true,
		},
		{
			name: "title too long",
			post: &Post{
				UserID: 1,
				Title:  strings.Repeat("a", 201),
				Body:   "Body",
			},
			wantErr: true,
		},
		{
			name: "missing body",
			post: &Post{
				UserID: 1,
				Title:  "Title without body",
			},
			wantErr: true,
		},
		{
			name: "missing user ID",
			post: &Post{
				Title: "Title",
				Body:  "Body",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
