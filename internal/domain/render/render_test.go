package render

import (
	"strings"
	"testing"

	"github.com/haemonga/portfolio/internal/domain/models"
)

func TestRenderText(t *testing.T) {
	block := models.ContentBlock{
		ID:   "t1",
		Type: models.BlockText,
		Data: models.TextData("Silence <is> heavy"),
		Settings: &models.BlockSettings{
			FontSize:   "text-3xl",
			FontFamily: "font-serif",
			TextAlign:  "text-center",
		},
	}

	html := string(Render(block).HTML())

	for _, want := range []string{"block-text", "text-3xl", "font-serif", "text-center", models.DefaultSpacing} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
	if !strings.Contains(html, "Silence &lt;is&gt; heavy") {
		t.Errorf("text not escaped:\n%s", html)
	}
}

func TestRenderTextDefaults(t *testing.T) {
	block := models.ContentBlock{ID: "t2", Type: models.BlockText, Data: models.TextData("x")}

	html := string(Render(block).HTML())

	for _, want := range []string{models.DefaultFontSize, models.DefaultFontFamily, models.DefaultTextAlign, models.DefaultSpacing} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing default %q:\n%s", want, html)
		}
	}
}

func TestRenderLargeImage(t *testing.T) {
	block := models.ContentBlock{
		ID:   "i1",
		Type: models.BlockLargeImage,
		Data: models.ImageData("https://example.com/a.jpg"),
	}

	html := string(Render(block).HTML())

	if !strings.Contains(html, `<img class="media" src="https://example.com/a.jpg"`) {
		t.Errorf("image element missing:\n%s", html)
	}
	if !strings.Contains(html, models.DefaultWidth) {
		t.Errorf("default width missing:\n%s", html)
	}
}

func TestRenderVideoSanitizesEmbed(t *testing.T) {
	block := models.ContentBlock{
		ID:   "v1",
		Type: models.BlockVideo,
		Data: models.EmbedData(`<iframe src="https://player.vimeo.com/video/1" allowfullscreen></iframe><script>alert(1)</script>`),
	}

	html := string(Render(block).HTML())

	if !strings.Contains(html, "player.vimeo.com") {
		t.Errorf("iframe dropped:\n%s", html)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("script not stripped:\n%s", html)
	}
}

func TestRenderConcept(t *testing.T) {
	block := models.ContentBlock{
		ID:   "c1",
		Type: models.BlockConcept,
		Data: models.ConceptData{
			Background:     "bg copy",
			VisualStrategy: "vs copy",
			Message:        "msg copy",
			ImageURL:       "https://example.com/c.jpg",
		},
	}

	html := string(Render(block).HTML())

	for _, want := range []string{"01. Background", "02. Visual Strategy", "03. Message", "bg copy", "vs copy", "msg copy", "c.jpg"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRenderGridGalleryColumns(t *testing.T) {
	tests := []struct {
		name     string
		settings *models.BlockSettings
		want     string
	}{
		{"default", nil, "grid-cols-2"},
		{"explicit", &models.BlockSettings{Columns: 5}, "grid-cols-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := models.ContentBlock{
				ID:       "g1",
				Type:     models.BlockGridGallery,
				Data:     models.MediaListData{"a.jpg", "b.jpg"},
				Settings: tt.settings,
			}
			html := string(Render(block).HTML())
			if !strings.Contains(html, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, html)
			}
		})
	}
}

func TestRenderStoryboard(t *testing.T) {
	block := models.ContentBlock{
		ID:   "s1",
		Type: models.BlockStoryboard,
		Data: models.MediaListData{"f1.jpg", "f2.jpg", "f3.jpg"},
	}

	html := string(Render(block).HTML())

	if !strings.Contains(html, "Visual Storyboarding") {
		t.Errorf("storyboard title missing:\n%s", html)
	}
	if got := strings.Count(html, "board-frame"); got != 3 {
		t.Errorf("frame count = %d, want 3", got)
	}
}

func TestRenderGalleryLead(t *testing.T) {
	block := models.ContentBlock{
		ID:   "ga1",
		Type: models.BlockGallery,
		Data: models.MediaListData{"lead.jpg", "b.jpg", "c.jpg"},
	}

	html := string(Render(block).HTML())

	if got := strings.Count(html, "gallery-lead"); got != 1 {
		t.Errorf("gallery-lead count = %d, want 1", got)
	}
	if !strings.Contains(html, "lead.jpg") {
		t.Errorf("lead image missing:\n%s", html)
	}
}

func TestRenderProcess(t *testing.T) {
	block := models.ContentBlock{
		ID:   "p1",
		Type: models.BlockProcess,
		Data: models.ProcessData{
			{Label: "Modeling", ImageURL: "m.jpg"},
			{Label: "Lighting", ImageURL: "l.jpg"},
		},
	}

	html := string(Render(block).HTML())

	for _, want := range []string{"Behind the Scenes", "Step 01: Modeling", "Step 02: Lighting"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRenderVideoReference(t *testing.T) {
	block := models.ContentBlock{
		ID:   "g2",
		Type: models.BlockGridGallery,
		Data: models.MediaListData{"clip.mp4", "still.jpg"},
	}

	html := string(Render(block).HTML())

	if !strings.Contains(html, `<video class="media" src="clip.mp4"`) {
		t.Errorf("mp4 reference should render as video:\n%s", html)
	}
	if !strings.Contains(html, `<img class="media" src="still.jpg"`) {
		t.Errorf("jpg reference should render as img:\n%s", html)
	}
}

func TestRenderUnknownType(t *testing.T) {
	block := models.ContentBlock{ID: "u1", Type: models.BlockType("hologram")}

	if node := Render(block); node != nil {
		t.Errorf("unknown type should render nil, got %#v", node)
	}
	if html := Fragment([]models.ContentBlock{block}); html != "" {
		t.Errorf("fragment with unknown block = %q, want empty", html)
	}
}

func TestRenderMismatchedPayload(t *testing.T) {
	// A recognized type with a foreign payload renders nothing rather
	// than panicking.
	block := models.ContentBlock{ID: "m1", Type: models.BlockText, Data: models.MediaListData{"a.jpg"}}

	if node := Render(block); node != nil {
		t.Errorf("mismatched payload should render nil, got %#v", node)
	}
}

func TestFragmentOrder(t *testing.T) {
	blocks := []models.ContentBlock{
		{ID: "1", Type: models.BlockText, Data: models.TextData("first")},
		{ID: "2", Type: models.BlockText, Data: models.TextData("second")},
	}

	html := string(Fragment(blocks))

	if strings.Index(html, "first") > strings.Index(html, "second") {
		t.Errorf("blocks rendered out of order:\n%s", html)
	}
}

func TestNodeHTMLEscapesAttributes(t *testing.T) {
	n := El("img", "media").WithAttr("src", `x" onerror="alert(1)`)
	html := string(n.HTML())
	if strings.Contains(html, `onerror="alert`) {
		t.Errorf("attribute not escaped:\n%s", html)
	}
}
