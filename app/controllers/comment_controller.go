package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"postboard/app/models"
	"postboard/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comment expansion
type CommentController struct {
	commentService *services.CommentService
	templates      map[string]*template.Template
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, basePath string) *CommentController {
	return &CommentController{
		commentService: commentService,
		templates:      loadCommentTemplates(basePath),
	}
}

// loadCommentTemplates loads and parses all comment-related templates
func loadCommentTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["list"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/comments/list.html"),
	))
	return templates
}

// Index expands the comments for one post. The first expansion
// fetches from the API; repeats are served from the session memo.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		cc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	comments, err := cc.commentService.CommentsFor(postID)
	if err != nil {
		cc.sendError(w, r, "Failed to fetch comments: "+err.Error(), http.StatusBadGateway)
		return
	}

	if isAPIRequest(r) {
		if comments == nil {
			comments = []*models.Comment{}
		}
		cc.sendJSON(w, comments)
	} else {
		data := struct {
			PostID   int
			Comments []*models.Comment
		}{
			PostID:   postID,
			Comments: comments,
		}

		if err := cc.templates["list"].ExecuteTemplate(w, "layout", data); err != nil {
			cc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

// Counts returns the post ID to comment count mapping derived from
// one full comment listing.
func (cc *CommentController) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := cc.commentService.Counts()
	if err != nil {
		cc.sendError(w, r, "Failed to fetch comment counts: "+err.Error(), http.StatusBadGateway)
		return
	}
	cc.sendJSON(w, counts)
}

// Helper methods for consistent response handling

func (cc *CommentController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (cc *CommentController) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if isAPIRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
	} else {
		http.Error(w, message, status)
	}
}
