package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"postboard/app/board"
	"postboard/app/controllers"
	"postboard/app/models"
	"postboard/app/repositories/mock"
	"postboard/app/services"

	"github.com/stretchr/testify/require"
)

func setupTestTemplates(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")

	// Create directories
	dirs := []string{
		filepath.Join(viewsDir, "posts"),
		filepath.Join(viewsDir, "comments"),
	}
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	// Create template files
	templates := map[string]string{
		filepath.Join(viewsDir, "layout.html"):               `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		filepath.Join(viewsDir, "posts/index.html"):          `{{define "content"}}{{if .Error}}<p class="error">{{.Error}}</p>{{else}}{{range .Posts}}<h2>{{.Title}}</h2>{{end}}{{end}}{{end}}`,
		filepath.Join(viewsDir, "posts/show.html"):           `{{define "content"}}<h1>{{.Title}}</h1>{{end}}`,
		filepath.Join(viewsDir, "posts/form.html"):           `{{define "content"}}<form method="POST"><input name="title" value="{{.Post.Title}}"></form>{{end}}`,
		filepath.Join(viewsDir, "posts/confirm_delete.html"): `{{define "content"}}<p>Really delete {{.Title}}?</p>{{end}}`,
		filepath.Join(viewsDir, "comments/list.html"):        `{{define "content"}}{{range .Comments}}<p>{{.Body}}</p>{{end}}{{end}}`,
	}
	for path, content := range templates {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return tmpDir
}

func setupTestHandler(t *testing.T) http.Handler {
	t.Helper()
	tmpDir := setupTestTemplates(t)

	postRepo := mock.NewPostRepository()
	postRepo.Seed(&models.Post{ID: 1, UserID: 1, Title: "Routed Post", Body: "Body"})
	postRepo.Seed(&models.Post{ID: 2, UserID: 1, Title: "Another Post", Body: "Body"})

	commentRepo := mock.NewCommentRepository()
	commentRepo.Seed(&models.Comment{ID: 1, PostID: 1, Name: "r", Email: "r@example.com", Body: "hello"})

	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo)
	b := board.New(10)

	postController := controllers.NewPostController(postService, commentService, b, tmpDir)
	commentController := controllers.NewCommentController(commentService, tmpDir)

	return SetupRoutes(postController, commentController)
}
