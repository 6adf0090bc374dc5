package demoapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"postboard/app/middleware"
	"postboard/app/models"

	"github.com/gorilla/mux"
)

// Server exposes the demo API endpoint shapes over a Store.
type Server struct {
	store *Store
}

// NewServer creates a new Server
func NewServer(store *Store) *Server {
	return &Server{store: store}
}

// Router builds the stand-in API's routes.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.HandleFunc("/posts", s.listPosts).Methods("GET")
	router.HandleFunc("/posts", s.createPost).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}", s.getPost).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}", s.updatePost).Methods("PUT")
	router.HandleFunc("/posts/{id:[0-9]+}", s.deletePost).Methods("DELETE")
	router.HandleFunc("/posts/{id:[0-9]+}/comments", s.listPostComments).Methods("GET")
	router.HandleFunc("/comments", s.listComments).Methods("GET")

	return router
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("_page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	limit := 10
	if limitStr := r.URL.Query().Get("_limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	posts, err := s.store.ListPosts(page, limit)
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, http.StatusOK, posts)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	post, err := s.store.GetPost(id)
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, http.StatusOK, post)
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		s.sendJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON: " + err.Error()})
		return
	}
	post.ID = 0 // the store assigns IDs

	if err := post.Validate(); err != nil {
		s.sendJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid post: " + err.Error()})
		return
	}

	if err := s.store.CreatePost(&post); err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, http.StatusCreated, &post)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		s.sendJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON: " + err.Error()})
		return
	}
	post.ID = id

	if err := post.Validate(); err != nil {
		s.sendJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid post: " + err.Error()})
		return
	}

	if err := s.store.UpdatePost(&post); err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, http.StatusOK, &post)
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := s.store.DeletePost(id); err != nil {
		s.sendError(w, err)
		return
	}
	// The upstream demo API answers deletes with an empty object.
	s.sendJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) listPostComments(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	comments, err := s.store.ListCommentsByPost(id)
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, http.StatusOK, comments)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.store.ListAllComments()
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSON(w, http.StatusOK, comments)
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) sendError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		s.sendJSON(w, http.StatusNotFound, map[string]string{})
		return
	}
	s.sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
