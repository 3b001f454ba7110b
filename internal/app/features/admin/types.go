// internal/app/features/admin/types.go
package admin

import (
	"html/template"

	"github.com/haemonga/portfolio/internal/domain/blocks"
	"github.com/haemonga/portfolio/internal/domain/catalog"
	"github.com/haemonga/portfolio/internal/domain/models"
)

// LoginVM is the view model for the login page.
type LoginVM struct {
	Title     string
	Error     string
	CSRFField template.HTML
}

// PanelVM is the view model for the admin panel shell. The panel is a
// thin client over the JSON API below.
type PanelVM struct {
	Title     string
	CSRFToken string
}

// projectListResponse wraps the project list.
type projectListResponse struct {
	List []models.Project `json:"list"`
}

// reorderRequest asks to swap the project at Index with a neighbor.
type reorderRequest struct {
	Index     int               `json:"index"`
	Direction catalog.Direction `json:"direction"`
}

// appendBlockRequest asks for a new block of the given kind.
type appendBlockRequest struct {
	Type models.BlockType `json:"type"`
}

// moveBlockRequest asks to swap a block with a neighbor.
type moveBlockRequest struct {
	Direction catalog.Direction `json:"direction"`
}

// updateBlockRequest is a field edit against one block.
type updateBlockRequest struct {
	Patch blocks.Patch `json:"patch"`
}

// exportResponse is the full-content export, the in-browser
// clipboard-export of old.
type exportResponse struct {
	Projects []models.Project `json:"projects"`
	Profile  models.Profile   `json:"profile"`
}
