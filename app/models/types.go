package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Post represents a blog post as the demo API returns it.
type Post struct {
	ID     int    `json:"id" validate:"gte=0"`
	UserID int    `json:"userId" validate:"required,gte=1"`
	Title  string `json:"title" validate:"required,min=1,max=200"`
	Body   string `json:"body" validate:"required"`
}

// Comment represents a reader remark attached to exactly one post.
// Comments are read-only from the frontend's point of view.
type Comment struct {
	ID     int    `json:"id" validate:"gte=0"`
	PostID int    `json:"postId" validate:"required,gte=1"`
	Name   string `json:"name" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Body   string `json:"body" validate:"required"`
}
