// internal/domain/blocks/patch.go
package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/haemonga/portfolio/internal/domain/models"
)

// SettingsPatch is a partial settings update; nil fields keep the
// current value.
type SettingsPatch struct {
	FontSize        *string `json:"fontSize,omitempty"`
	FontFamily      *string `json:"fontFamily,omitempty"`
	TextAlign       *string `json:"textAlign,omitempty"`
	Width           *string `json:"width,omitempty"`
	Columns         *int    `json:"columns,omitempty"`
	VerticalSpacing *string `json:"verticalSpacing,omitempty"`
}

// Patch is one field edit against a block: a full replacement payload
// (shaped by the block's own type, never retyping it) and/or a partial
// settings update.
type Patch struct {
	Data     json.RawMessage `json:"data,omitempty"`
	Settings *SettingsPatch  `json:"settings,omitempty"`
}

// Apply returns a mutator suitable for UpdateField. The data payload
// is decoded against the block's fixed type, so an edit can never
// change the payload shape. Decode failures abort the whole edit.
func (p Patch) Apply(b *models.ContentBlock) error {
	if len(p.Data) > 0 {
		data, err := models.DecodeBlockData(b.Type, p.Data)
		if err != nil {
			return fmt.Errorf("block %q: %w", b.ID, err)
		}
		b.Data = data
	}
	if p.Settings != nil {
		s := b.Settings
		if s == nil {
			s = &models.BlockSettings{}
		} else {
			cp := *s
			s = &cp
		}
		if p.Settings.FontSize != nil {
			s.FontSize = *p.Settings.FontSize
		}
		if p.Settings.FontFamily != nil {
			s.FontFamily = *p.Settings.FontFamily
		}
		if p.Settings.TextAlign != nil {
			s.TextAlign = *p.Settings.TextAlign
		}
		if p.Settings.Width != nil {
			s.Width = *p.Settings.Width
		}
		if p.Settings.Columns != nil {
			s.Columns = *p.Settings.Columns
		}
		if p.Settings.VerticalSpacing != nil {
			s.VerticalSpacing = *p.Settings.VerticalSpacing
		}
		b.Settings = s
	}
	return nil
}
