// Package render maps content blocks to a presentation tree. Render is
// a pure function of its input: it dispatches on the block type,
// handles all eight kinds, and renders unknown kinds as empty so an
// older renderer never crashes on newer content.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/haemonga/portfolio/internal/app/system/htmlsanitize"
	"github.com/haemonga/portfolio/internal/app/system/media"
	"github.com/haemonga/portfolio/internal/domain/models"
)

// Attr is one HTML attribute of a Node.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of the presentation tree. Exactly one of Text,
// Raw or Children carries content; Raw is reserved for markup that has
// already been sanitized.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Raw      template.HTML
	Children []*Node
}

// El builds a node with the given tag and class list.
func El(tag, class string, children ...*Node) *Node {
	n := &Node{Tag: tag, Children: children}
	if class != "" {
		n.Attrs = append(n.Attrs, Attr{Key: "class", Value: class})
	}
	return n
}

// WithAttr returns the node with an attribute appended.
func (n *Node) WithAttr(key, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// HTML serializes the node tree, escaping text and attribute values.
func (n *Node) HTML() template.HTML {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	n.write(&sb)
	return template.HTML(sb.String())
}

var voidTags = map[string]bool{"img": true, "br": true, "hr": true, "source": true}

func (n *Node) write(sb *strings.Builder) {
	sb.WriteString("<")
	sb.WriteString(n.Tag)
	for _, a := range n.Attrs {
		if a.Value == "" && a.Key != "alt" {
			sb.WriteString(" " + a.Key)
			continue
		}
		fmt.Fprintf(sb, ` %s="%s"`, a.Key, template.HTMLEscapeString(a.Value))
	}
	sb.WriteString(">")
	if voidTags[n.Tag] {
		return
	}
	if n.Text != "" {
		sb.WriteString(template.HTMLEscapeString(n.Text))
	}
	sb.WriteString(string(n.Raw))
	for _, c := range n.Children {
		if c != nil {
			c.write(sb)
		}
	}
	sb.WriteString("</" + n.Tag + ">")
}

// Render maps one block to its presentation subtree. It never mutates
// the block. Unknown kinds and kind/payload mismatches yield nil,
// which serializes to nothing.
func Render(block models.ContentBlock) *Node {
	spacing := block.Settings.Spacing()

	switch block.Type {
	case models.BlockText:
		return renderText(block, spacing)
	case models.BlockLargeImage:
		return renderLargeImage(block, spacing)
	case models.BlockVideo:
		return renderVideo(block, spacing)
	case models.BlockConcept:
		return renderConcept(block, spacing)
	case models.BlockGridGallery:
		return renderGridGallery(block, spacing)
	case models.BlockStoryboard:
		return renderStoryboard(block, spacing)
	case models.BlockGallery:
		return renderGallery(block, spacing)
	case models.BlockProcess:
		return renderProcess(block, spacing)
	default:
		return nil
	}
}

// Fragment renders a block sequence in order and concatenates the
// result. Sequence order is the only ordering signal.
func Fragment(seq []models.ContentBlock) template.HTML {
	var sb strings.Builder
	for _, b := range seq {
		sb.WriteString(string(Render(b).HTML()))
	}
	return template.HTML(sb.String())
}

func renderText(block models.ContentBlock, spacing string) *Node {
	data, ok := block.Data.(models.TextData)
	if !ok {
		return nil
	}
	s := block.Settings
	align := models.DefaultTextAlign
	size := models.DefaultFontSize
	family := models.DefaultFontFamily
	if s != nil {
		if s.TextAlign != "" {
			align = s.TextAlign
		}
		if s.FontSize != "" {
			size = s.FontSize
		}
		if s.FontFamily != "" {
			family = s.FontFamily
		}
	}
	body := El("div", classes("block-text-body", size))
	body.Text = string(data)
	return El("section", classes("block", "block-text", spacing, align, family), body)
}

func renderLargeImage(block models.ContentBlock, spacing string) *Node {
	data, ok := block.Data.(models.ImageData)
	if !ok {
		return nil
	}
	width := models.DefaultWidth
	if block.Settings != nil && block.Settings.Width != "" {
		width = block.Settings.Width
	}
	return El("section", classes("block", "block-large-image", spacing),
		El("figure", width, mediaNode(string(data))),
	)
}

func renderVideo(block models.ContentBlock, spacing string) *Node {
	data, ok := block.Data.(models.EmbedData)
	if !ok {
		return nil
	}
	embed := El("div", "block-video-frame")
	embed.Raw = htmlsanitize.EmbedHTML(string(data))
	return El("section", classes("block", "block-video", spacing), embed)
}

func renderConcept(block models.ContentBlock, spacing string) *Node {
	data, ok := block.Data.(models.ConceptData)
	if !ok {
		return nil
	}
	part := func(no, heading, text string) *Node {
		h := El("h3", "concept-heading")
		h.Text = no + ". " + heading
		p := El("p", "concept-copy")
		p.Text = text
		return El("div", "concept-part", h, p)
	}
	copyCol := El("div", "concept-copy-col",
		part("01", "Background", data.Background),
		part("02", "Visual Strategy", data.VisualStrategy),
		part("03", "Message", data.Message),
	)
	visualCol := El("div", "concept-visual-col")
	if data.ImageURL != "" {
		visualCol.Children = append(visualCol.Children, mediaNode(data.ImageURL))
	}
	return El("section", classes("block", "block-concept", spacing), copyCol, visualCol)
}

func renderGridGallery(block models.ContentBlock, spacing string) *Node {
	data, ok := block.Data.(models.MediaListData)
	if !ok {
		return nil
	}
	cols := block.Settings.GridColumns()
	grid := El("div", fmt.Sprintf("grid grid-cols-%d", cols))
	for _, ref := range data {
		grid.Children = append(grid.Children, El("figure", "grid-cell", mediaNode(ref)))
	}
	return El("section", classes("block", "block-grid-gallery", spacing), grid)
}

func renderStoryboard(block models.ContentBlock, spacing string) *Node {
	data, ok := block.Data.(models.MediaListData)
	if !ok {
		return nil
	}
	title := El("h2", "board-title")
	title.Text = "Visual Storyboarding"
	strip := El("div", "board-strip")
	for _, ref := range data {
		strip.Children = append(strip.Children, El("figure", "board-frame", mediaNode(ref)))
	}
	return El("section", classes("block", "block-storyboard", spacing), title, strip)
}

func renderGallery(block models.ContentBlock, spacing string) *Node {
	data, ok := block.Data.(models.MediaListData)
	if !ok {
		return nil
	}
	grid := El("div", "gallery-grid")
	for i, ref := range data {
		cls := "gallery-cell"
		if i == 0 {
			// Lead image spans the full row.
			cls = "gallery-cell gallery-lead"
		}
		grid.Children = append(grid.Children, El("figure", cls, mediaNode(ref)))
	}
	return El("section", classes("block", "block-gallery", spacing), grid)
}

func renderProcess(block models.ContentBlock, spacing string) *Node {
	data, ok := block.Data.(models.ProcessData)
	if !ok {
		return nil
	}
	title := El("h2", "process-title")
	title.Text = "Behind the Scenes"
	grid := El("div", "process-grid")
	for i, step := range data {
		label := El("p", "process-label")
		label.Text = fmt.Sprintf("Step %02d: %s", i+1, step.Label)
		grid.Children = append(grid.Children, El("div", "process-step",
			El("figure", "process-figure", mediaNode(step.ImageURL)),
			label,
		))
	}
	return El("section", classes("block", "block-process", spacing), title, grid)
}

// mediaNode builds the element for a media reference, choosing video
// or image by inspecting the reference.
func mediaNode(ref string) *Node {
	if media.IsVideo(ref) {
		return El("video", "media").
			WithAttr("src", ref).
			WithAttr("autoplay", "").
			WithAttr("muted", "").
			WithAttr("loop", "").
			WithAttr("playsinline", "")
	}
	return El("img", "media").WithAttr("src", ref).WithAttr("alt", "")
}

func classes(cs ...string) string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
