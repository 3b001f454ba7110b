// internal/app/features/site/types.go
package site

import (
	"html/template"

	"github.com/haemonga/portfolio/internal/domain/models"
)

// HomeVM is the view model for the one-page home.
type HomeVM struct {
	Title    string
	Profile  models.Profile
	Projects []models.Project
}

// WorkVM is the view model for a single project page. Projects holds
// the full list for the sidebar navigation.
type WorkVM struct {
	Title    string
	Project  models.Project
	Projects []models.Project
	Content  template.HTML
}

// NotFoundVM is the view model for the 404 page.
type NotFoundVM struct {
	Title string
}
