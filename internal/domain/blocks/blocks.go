// Package blocks provides the content-block factory and the pure
// ordered-sequence operations the project editor is built on.
package blocks

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/haemonga/portfolio/internal/domain/models"
)

// ErrInvalidBlockType is returned when a caller asks the factory for a
// block kind that does not exist. This is a programmer error, not a
// user-input condition, so it fails loudly instead of self-healing.
var ErrInvalidBlockType = errors.New("invalid block type")

// EmbedPlaceholder is the starter payload for a freshly created video
// block: an empty iframe the admin replaces with real embed markup.
const EmbedPlaceholder = `<iframe src="" width="640" height="360" frameborder="0" allowfullscreen></iframe>`

// TextPlaceholder is the starter payload for a freshly created text block.
const TextPlaceholder = "New text content here..."

// New creates a block of the given kind with a freshly generated
// unique id, the kind's zero-value payload and its default settings.
// The caller is responsible for inserting the block into a sequence.
func New(t models.BlockType) (models.ContentBlock, error) {
	if !models.IsValidBlockType(t) {
		return models.ContentBlock{}, fmt.Errorf("%w: %q", ErrInvalidBlockType, t)
	}

	b := models.ContentBlock{
		ID:       uuid.NewString(),
		Type:     t,
		Settings: &models.BlockSettings{VerticalSpacing: models.DefaultSpacing},
	}

	switch t {
	case models.BlockText:
		b.Data = models.TextData(TextPlaceholder)
		b.Settings.FontSize = models.DefaultFontSize
		b.Settings.FontFamily = models.DefaultFontFamily
		b.Settings.TextAlign = models.DefaultTextAlign
	case models.BlockLargeImage:
		b.Data = models.ImageData("")
		b.Settings.Width = models.DefaultWidth
	case models.BlockVideo:
		b.Data = models.EmbedData(EmbedPlaceholder)
	case models.BlockConcept:
		b.Data = models.ConceptData{}
	case models.BlockGridGallery:
		b.Data = models.MediaListData{}
		b.Settings.Columns = models.DefaultColumns
	case models.BlockStoryboard, models.BlockGallery:
		b.Data = models.MediaListData{}
	case models.BlockProcess:
		b.Data = models.ProcessData{}
	}

	return b, nil
}
