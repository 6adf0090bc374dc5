package controllers

import (
	"os"
	"path/filepath"
	"testing"

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
		filepath.Join(viewsDir, "layout.html"):                `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		filepath.Join(viewsDir, "posts/index.html"):           `{{define "content"}}{{if .Error}}<p class="error">{{.Error}}</p>{{else}}<div class="posts">{{range .Posts}}<h2>{{.Title}}</h2>{{end}}</div>{{end}}{{end}}`,
		filepath.Join(viewsDir, "posts/show.html"):            `{{define "content"}}<h1>{{.Title}}</h1><p>{{.Body}}</p>{{end}}`,
		filepath.Join(viewsDir, "posts/form.html"):            `{{define "content"}}<form method="POST">{{if .Editing}}<input type="hidden" name="_method" value="PUT">{{end}}<input name="title" value="{{.Post.Title}}"><textarea name="body">{{.Post.Body}}</textarea></form>{{end}}`,
		filepath.Join(viewsDir, "posts/confirm_delete.html"):  `{{define "content"}}<p>Really delete {{.Title}}?</p>{{end}}`,
		filepath.Join(viewsDir, "comments/list.html"):         `{{define "content"}}<div class="comments">{{range .Comments}}<p>{{.Body}}</p>{{end}}</div>{{end}}`,
	}
	for path, content := range templates {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return tmpDir
}
