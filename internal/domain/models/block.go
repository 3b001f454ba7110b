// internal/domain/models/block.go
package models

import (
	"encoding/json"
	"fmt"
)

// BlockType identifies the kind of a content block. The set is closed:
// a project body is an ordered sequence of these and nothing else.
type BlockType string

const (
	BlockText        BlockType = "text"
	BlockLargeImage  BlockType = "large-image"
	BlockVideo       BlockType = "video"
	BlockConcept     BlockType = "concept"
	BlockGridGallery BlockType = "grid-gallery"
	BlockStoryboard  BlockType = "storyboard"
	BlockGallery     BlockType = "gallery"
	BlockProcess     BlockType = "process"
)

// AllBlockTypes returns every recognized block type in editor order.
func AllBlockTypes() []BlockType {
	return []BlockType{
		BlockText,
		BlockLargeImage,
		BlockVideo,
		BlockConcept,
		BlockGridGallery,
		BlockStoryboard,
		BlockGallery,
		BlockProcess,
	}
}

// IsValidBlockType checks whether t names a recognized block type.
func IsValidBlockType(t BlockType) bool {
	for _, v := range AllBlockTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// BlockData is the payload of a content block. The concrete shape is
// fully determined by the owning block's Type; the sealed interface
// keeps the variants a closed set so every consumer (factory, editor,
// renderer) can match exhaustively.
type BlockData interface {
	blockData()
}

// TextData is the payload of a text block: the body copy itself.
type TextData string

// ImageData is the payload of a large-image block: an external URL or
// an inline data URL.
type ImageData string

// EmbedData is the payload of a video block: raw embed markup
// (typically an iframe snippet pasted from a video host). It is
// sanitized at render time, never trusted as-is.
type EmbedData string

// ConceptData is the payload of a concept block: the three-part
// concept writeup plus an optional side visual.
type ConceptData struct {
	Background     string `json:"background"`
	VisualStrategy string `json:"visualStrategy"`
	Message        string `json:"message"`
	ImageURL       string `json:"imageUrl"`
}

// MediaListData is the payload of the gallery-shaped blocks
// (grid-gallery, storyboard, gallery): an ordered sequence of media
// references.
type MediaListData []string

// ProcessStep is one entry of a process block.
type ProcessStep struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

// ProcessData is the payload of a process block.
type ProcessData []ProcessStep

func (TextData) blockData()      {}
func (ImageData) blockData()     {}
func (EmbedData) blockData()     {}
func (ConceptData) blockData()   {}
func (MediaListData) blockData() {}
func (ProcessData) blockData()   {}

// Spacing tokens for the shared vertical-spacing setting. The wire
// values are the presentation classes the original content was
// authored with, so persisted blocks round-trip untouched.
const (
	SpacingNone    = "py-0"
	SpacingSmall   = "py-12"
	SpacingMedium  = "py-24"
	SpacingLarge   = "py-32"
	SpacingXL      = "py-48"
	SpacingExtreme = "py-64"

	// DefaultSpacing applies when a block has no spacing setting.
	DefaultSpacing = SpacingMedium
)

// Default settings tokens per block kind.
const (
	DefaultFontSize   = "text-xl"
	DefaultFontFamily = "font-sans"
	DefaultTextAlign  = "text-left"
	DefaultWidth      = "w-full"

	// DefaultColumns is the grid-gallery column count when unset.
	DefaultColumns = 2
)

// BlockSettings is the optional per-block display configuration. Only
// a kind-dependent subset of fields is meaningful: font fields apply
// to text blocks, Width to large-image, Columns to grid-gallery, and
// VerticalSpacing to every kind.
type BlockSettings struct {
	FontSize        string `bson:"fontSize,omitempty"        json:"fontSize,omitempty"`
	FontFamily      string `bson:"fontFamily,omitempty"      json:"fontFamily,omitempty"`
	TextAlign       string `bson:"textAlign,omitempty"       json:"textAlign,omitempty"`
	Width           string `bson:"width,omitempty"           json:"width,omitempty"`
	Columns         int    `bson:"columns,omitempty"         json:"columns,omitempty"`
	VerticalSpacing string `bson:"verticalSpacing,omitempty" json:"verticalSpacing,omitempty"`
}

// Spacing returns the effective vertical spacing, applying the
// documented default when the settings or the field are absent.
func (s *BlockSettings) Spacing() string {
	if s == nil || s.VerticalSpacing == "" {
		return DefaultSpacing
	}
	return s.VerticalSpacing
}

// GridColumns returns the effective grid-gallery column count.
func (s *BlockSettings) GridColumns() int {
	if s == nil || s.Columns <= 0 {
		return DefaultColumns
	}
	return s.Columns
}

// ContentBlock is one typed unit of a project's body content.
//
// Invariants:
//   - ID is unique within the owning project's block sequence and
//     never changes after creation.
//   - Type is fixed at creation; there is no retype operation.
//   - Data's shape matches Type (see BlockData variants). A block
//     decoded with an unrecognized type carries nil Data and renders
//     as empty rather than failing.
type ContentBlock struct {
	ID       string
	Type     BlockType
	Data     BlockData
	Settings *BlockSettings
}

// blockWire is the JSON shape shared with the persisted and remote
// copies of a project.
type blockWire struct {
	ID       string          `json:"id"`
	Type     BlockType       `json:"type"`
	Data     json.RawMessage `json:"data,omitempty"`
	Settings *BlockSettings  `json:"settings,omitempty"`
}

// MarshalJSON encodes the block with its variant payload inline under
// the "data" key.
func (b ContentBlock) MarshalJSON() ([]byte, error) {
	w := blockWire{
		ID:       b.ID,
		Type:     b.Type,
		Settings: b.Settings,
	}
	if b.Data != nil {
		raw, err := json.Marshal(b.Data)
		if err != nil {
			return nil, fmt.Errorf("marshal %s block data: %w", b.Type, err)
		}
		w.Data = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the variant payload according to the block
// type. Unrecognized types are preserved with nil data so content
// written by a newer editor does not break an older reader.
func (b *ContentBlock) UnmarshalJSON(raw []byte) error {
	var w blockWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return err
	}
	b.ID = w.ID
	b.Type = w.Type
	b.Settings = w.Settings
	b.Data = nil

	if len(w.Data) == 0 || !IsValidBlockType(w.Type) {
		// Unknown kind: keep id/type/settings, drop the payload.
		return nil
	}

	data, err := DecodeBlockData(w.Type, w.Data)
	if err != nil {
		return fmt.Errorf("decode %s block %q: %w", w.Type, b.ID, err)
	}
	b.Data = data
	return nil
}

// DecodeBlockData decodes a raw JSON payload into the variant shape
// the given type dictates. Unknown types are an error here; tolerating
// them is the block decoder's job, not the editor's.
func DecodeBlockData(t BlockType, raw json.RawMessage) (BlockData, error) {
	switch t {
	case BlockText:
		var d TextData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case BlockLargeImage:
		var d ImageData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case BlockVideo:
		var d EmbedData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case BlockConcept:
		var d ConceptData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case BlockGridGallery, BlockStoryboard, BlockGallery:
		var d MediaListData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case BlockProcess:
		var d ProcessData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unrecognized block type %q", t)
	}
}

// Clone returns a deep copy of the block. Editing operations copy
// before mutating so previously returned sequences stay untouched.
func (b ContentBlock) Clone() ContentBlock {
	out := b
	if b.Settings != nil {
		s := *b.Settings
		out.Settings = &s
	}
	switch d := b.Data.(type) {
	case MediaListData:
		cp := make(MediaListData, len(d))
		copy(cp, d)
		out.Data = cp
	case ProcessData:
		cp := make(ProcessData, len(d))
		copy(cp, d)
		out.Data = cp
	}
	return out
}
