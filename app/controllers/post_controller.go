package controllers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"postboard/app/board"
	"postboard/app/models"
	"postboard/app/repositories"
	"postboard/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for browsing and editing posts
type PostController struct {
	postService    *services.PostService
	commentService *services.CommentService
	board          *board.Board
	templates      map[string]*template.Template
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, commentService *services.CommentService, b *board.Board, basePath string) *PostController {
	return &PostController{
		postService:    postService,
		commentService: commentService,
		board:          b,
		templates:      loadPostTemplates(basePath),
	}
}

// loadPostTemplates loads and parses all post-related templates
func loadPostTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/index.html"),
	))
	templates["show"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/show.html"),
	))
	templates["form"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/form.html"),
	))
	templates["confirm"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/confirm_delete.html"),
	))
	return templates
}

// Index loads one page of posts into the board and displays it
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	// Parse page parameter
	page := pc.board.Page()
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	// Parse per_page parameter
	perPage := pc.board.PerPage()
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}

	posts, err := pc.postService.ListPosts(page, perPage)
	if err != nil {
		pc.board.Fail("Failed to fetch posts: " + err.Error())
		pc.renderFailure(w, r)
		return
	}
	pc.board.Load(posts, page)

	// Comment counts decorate the listing; a failure here is logged
	// but does not replace the page.
	counts, err := pc.commentService.Counts()
	if err != nil {
		log.Printf("comment counts unavailable: %v", err)
	}

	if isAPIRequest(r) {
		pc.sendJSON(w, map[string]interface{}{
			"posts": posts,
			"page":  page,
		})
	} else {
		data := struct {
			Posts    []*models.Post
			Page     int
			PrevPage int
			NextPage int
			Counts   map[int]int
			Error    string
		}{
			Posts:    posts,
			Page:     page,
			PrevPage: page - 1,
			NextPage: page + 1,
			Counts:   counts,
		}

		if err := pc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
			pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

// Show displays a single post. Selecting a post triggers exactly one
// fetch for that ID; comments stay behind their own link.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		pc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.board.Fail("Failed to fetch post: " + err.Error())
		pc.sendError(w, r, "Post not found", statusFor(err))
		return
	}

	if isAPIRequest(r) {
		pc.sendJSON(w, post)
	} else {
		if err := pc.templates["show"].ExecuteTemplate(w, "layout", post); err != nil {
			pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

// New displays the form in create mode
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	data := formData{Post: &models.Post{UserID: 1}}
	if err := pc.templates["form"].ExecuteTemplate(w, "layout", data); err != nil {
		pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// EditForm displays the same form prefilled, in edit mode
func (pc *PostController) EditForm(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		pc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.board.Fail("Failed to fetch post: " + err.Error())
		pc.sendError(w, r, "Post not found", statusFor(err))
		return
	}

	data := formData{Post: post, Editing: true}
	if err := pc.templates["form"].ExecuteTemplate(w, "layout", data); err != nil {
		pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Create submits a new post and prepends the server-assigned record
// to the board
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if isAPIRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			pc.sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := parsePostForm(r, &post); err != nil {
			pc.sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := pc.postService.CreatePost(&post); err != nil {
		pc.board.Fail("Failed to create post: " + err.Error())
		pc.sendError(w, r, "Failed to create post: "+err.Error(), statusFor(err))
		return
	}
	pc.board.Prepend(&post)

	if isAPIRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(post)
	} else {
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
	}
}

// Edit replaces an existing post and swaps the returned record into
// the board by ID
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		pc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var post models.Post
	if isAPIRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			pc.sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := parsePostForm(r, &post); err != nil {
			pc.sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	post.ID = id

	if err := pc.postService.UpdatePost(&post); err != nil {
		pc.board.Fail("Failed to update post: " + err.Error())
		pc.sendError(w, r, "Failed to update post: "+err.Error(), statusFor(err))
		return
	}
	pc.board.Replace(&post)

	if isAPIRequest(r) {
		pc.sendJSON(w, post)
	} else {
		http.Redirect(w, r, "/posts/"+strconv.Itoa(post.ID), http.StatusSeeOther)
	}
}

// ConfirmDelete shows the interactive confirmation step before a
// delete goes out
func (pc *PostController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		pc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.board.Fail("Failed to fetch post: " + err.Error())
		pc.sendError(w, r, "Post not found", statusFor(err))
		return
	}

	if err := pc.templates["confirm"].ExecuteTemplate(w, "layout", post); err != nil {
		pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Delete removes a post and filters it out of the board. No undo.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		pc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		pc.board.Fail("Failed to delete post: " + err.Error())
		pc.sendError(w, r, "Failed to delete post: "+err.Error(), statusFor(err))
		return
	}
	pc.board.Remove(id)

	if isAPIRequest(r) {
		w.WriteHeader(http.StatusNoContent)
	} else {
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
	}
}

// renderFailure shows the shared error message in place of the main
// content, leaving the previously held collection alone.
func (pc *PostController) renderFailure(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		pc.sendErrorJSON(w, pc.board.Err(), http.StatusBadGateway)
		return
	}

	data := struct {
		Posts    []*models.Post
		Page     int
		PrevPage int
		NextPage int
		Counts   map[int]int
		Error    string
	}{
		Page:  pc.board.Page(),
		Error: pc.board.Err(),
	}
	if err := pc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Helper methods for consistent response handling

type formData struct {
	Post    *models.Post
	Editing bool
}

func parsePostForm(r *http.Request, post *models.Post) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	post.Title = r.FormValue("title")
	post.Body = r.FormValue("body")
	post.UserID = 1
	if userStr := r.FormValue("userId"); userStr != "" {
		if u, err := strconv.Atoi(userStr); err == nil {
			post.UserID = u
		}
	}
	return nil
}

func isAPIRequest(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api")
}

func statusFor(err error) int {
	if errors.Is(err, repositories.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (pc *PostController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendErrorJSON(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (pc *PostController) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if isAPIRequest(r) {
		pc.sendErrorJSON(w, message, status)
	} else {
		http.Error(w, message, status)
	}
}
